package engine

import (
	"testing"

	"mct/game"
	"mct/game/gametest"
	"mct/searcher"
	"mct/searcher/agent"

	"github.com/stretchr/testify/require"
)

func newAgents(playouts int) map[game.Player]agent.Agent {
	return map[game.Player]agent.Agent{
		"p1": agent.NewEvaluationAgent(agent.WithPlayouts(playouts), agent.WithSearchOptions(searcher.WithSeed(1))),
		"p2": agent.NewEvaluationAgent(agent.WithPlayouts(playouts), agent.WithSearchOptions(searcher.WithSeed(2))),
	}
}

func TestLocalRun(t *testing.T) {
	t.Run("playing until no legal moves are left", func(t *testing.T) {
		g := gametest.New(4, "a", "b").WithScore("a", 1)
		e := LocalEngine(g, newAgents(20))

		gameMetric, moveMetrics := e.Run()

		require.True(t, gameMetric.Finished, "Game should run out of moves")
		require.Equal(t, 4, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 4)
		require.Equal(t, game.Player("p1"), gameMetric.StartingPlayer)
		require.Equal(t, "a", moveMetrics[0].Move, "First player should open with the best move")
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
		}
		require.Equal(t, game.Player("p2"), moveMetrics[1].Player, "Players should alternate")
		require.Equal(t, map[game.Player]float64{"p1": 1, "p2": 1}, gameMetric.Scores)
		require.Equal(t, 4, g.CurrentState().(*gametest.State).Depth())
		require.Equal(t, g.Randomized, g.Cleared, "Every search should clear its hidden info")
	})

	t.Run("stopping at the turn limit", func(t *testing.T) {
		g := gametest.New(10, "a")
		e := LocalEngine(g, newAgents(3))
		e.MaxTurns = 2

		gameMetric, moveMetrics := e.Run()

		require.False(t, gameMetric.Finished)
		require.Equal(t, 2, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 2)
	})

	t.Run("finishing a game that is already over", func(t *testing.T) {
		g := gametest.New(0, "a")
		e := LocalEngine(g, newAgents(3))

		gameMetric, moveMetrics := e.Run()

		require.True(t, gameMetric.Finished)
		require.Zero(t, gameMetric.TotalMoves)
		require.Empty(t, moveMetrics)
	})

	t.Run("panicking without an agent for the player", func(t *testing.T) {
		g := gametest.New(2, "a")
		e := LocalEngine(g, map[game.Player]agent.Agent{"p2": agent.NewEvaluationAgent()})

		require.Panics(t, func() { e.Run() })
	})

	t.Run("panicking without agents", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine(gametest.New(1, "a"), nil) })
	})
}
