package agent

import (
	"testing"
	"time"

	"mct/game/gametest"
	"mct/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestEvaluationAgent(t *testing.T) {
	t.Run("choosing the highest scoring move", func(t *testing.T) {
		g := gametest.New(4, "a", "b", "c").WithScore("b", 1)
		a := NewEvaluationAgent(WithPlayouts(30), WithSearchOptions(searcher.WithSeed(1), searcher.WithMetrics()))

		move, metric := a.FindMove(g, "p1")

		require.Equal(t, "b", move, "Agent should play the move with the best score")
		require.Equal(t, 30, metric.Playouts, "Agent should run the playout budget")
		require.Equal(t, 30, g.Randomized)
		require.Equal(t, g.Randomized, g.Cleared)
	})

	t.Run("returning no move when the game is over", func(t *testing.T) {
		g := gametest.New(0, "a")
		a := NewEvaluationAgent(WithPlayouts(5))

		move, _ := a.FindMove(g, "p1")

		require.Nil(t, move)
	})

	t.Run("searching for a duration", func(t *testing.T) {
		g := gametest.New(3, "a", "b")
		a := NewEvaluationAgent(WithDuration(5*time.Millisecond), WithSearchOptions(searcher.WithMetrics()))

		move, metric := a.FindMove(g, "p1")

		require.NotNil(t, move)
		require.Positive(t, metric.Playouts, "Agent should run playouts until the time is up")
		require.GreaterOrEqual(t, metric.Duration, 5*time.Millisecond)
	})
}

func TestTrainingAgent(t *testing.T) {
	t.Run("sampling the dominant move at low temperature", func(t *testing.T) {
		g := gametest.New(3, "a", "b").WithScore("a", 1)
		a := NewTrainingAgent(
			WithPlayouts(40),
			WithTemperature(0.05),
			WithRand(rand.New(rand.NewSource(9))),
			WithSearchOptions(searcher.WithSeed(2)),
		)

		move, _ := a.FindMove(g, "p1")

		require.Equal(t, "a", move, "Low temperature should follow the visit counts")
	})

	t.Run("returning no move when the game is over", func(t *testing.T) {
		a := NewTrainingAgent(WithPlayouts(2))

		move, _ := a.FindMove(gametest.New(0, "a"), "p1")

		require.Nil(t, move)
	})
}

func TestAdjustTemperature(t *testing.T) {
	t.Run("keeping proportions at temperature 1", func(t *testing.T) {
		got := adjustTemperature([]float64{1, 3}, 1)

		require.InDeltaSlice(t, []float64{0.25, 0.75}, got, 1e-9)
	})

	t.Run("sharpening at low temperature", func(t *testing.T) {
		got := adjustTemperature([]float64{1, 3}, 0.5)

		require.InDeltaSlice(t, []float64{0.1, 0.9}, got, 1e-9)
	})
}

func TestSample(t *testing.T) {
	require.Equal(t, 0, sample([]float64{0.5, 0.5}, 0.1))
	require.Equal(t, 1, sample([]float64{0.5, 0.5}, 0.6))
	require.Equal(t, 1, sample([]float64{0, 1}, 0))
	require.Equal(t, 1, sample([]float64{0.5, 0.49}, 0.999), "Should fall back to the last move")
}

func TestConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := newConfig(nil)

		require.Positive(t, c.playouts)
		require.Zero(t, c.duration)
		require.Equal(t, 1.0, c.temperature)
	})

	t.Run("last budget wins", func(t *testing.T) {
		c := newConfig([]Option{WithPlayouts(10), WithDuration(time.Second)})
		require.Zero(t, c.playouts)
		require.Equal(t, time.Second, c.duration)

		c = newConfig([]Option{WithDuration(time.Second), WithPlayouts(10)})
		require.Equal(t, 10, c.playouts)
		require.Zero(t, c.duration)
	})

	t.Run("ignoring invalid values", func(t *testing.T) {
		c := newConfig([]Option{WithPlayouts(-1), WithTemperature(0), WithRand(nil)})

		require.Equal(t, newConfig(nil).playouts, c.playouts)
		require.Equal(t, 1.0, c.temperature)
		require.Nil(t, c.rand)
	})
}

func TestRun(t *testing.T) {
	t.Run("playing at least once on a spent duration", func(t *testing.T) {
		c := newConfig([]Option{WithDuration(time.Nanosecond)})

		m := c.run(gametest.New(3, "a", "b"), "p1")

		require.NotNil(t, m.Root(), "Search should create a root")
		require.GreaterOrEqual(t, m.Root().Visits(), 1)
		require.NotEmpty(t, m.BestMoves(), "A move should be available")
	})

	t.Run("running exactly the playout budget", func(t *testing.T) {
		c := newConfig([]Option{WithPlayouts(7)})

		m := c.run(gametest.New(3, "a", "b"), "p1")

		require.Equal(t, 7, m.Root().Visits())
	})
}
