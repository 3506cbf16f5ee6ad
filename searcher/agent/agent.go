package agent

import (
	"time"

	"mct/game"
	"mct/meta"
	"mct/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove searches the game's current state on behalf of player and returns the
	// chosen move, nil if there is no legal move, with the search metrics
	FindMove(g game.Game, player game.Player) (game.Move, searcher.SearchMetric)
}

type Option func(c *config)

type config struct {
	playouts    int
	duration    time.Duration
	temperature float64
	rand        *rand.Rand
	search      []searcher.Option
}

// WithPlayouts bounds each search by a number of playouts.
func WithPlayouts(playouts int) Option {
	return func(c *config) {
		if playouts > 0 {
			c.playouts = playouts
			c.duration = 0
		}
	}
}

// WithDuration bounds each search by wall-clock time, checked between playouts.
func WithDuration(duration time.Duration) Option {
	return func(c *config) {
		if duration > 0 {
			c.duration = duration
			c.playouts = 0
		}
	}
}

func WithTemperature(temperature float64) Option {
	return func(c *config) {
		if temperature > 0 {
			c.temperature = temperature
		}
	}
}

func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}

// WithSearchOptions configures the searcher created for each move.
func WithSearchOptions(options ...searcher.Option) Option {
	return func(c *config) {
		c.search = append(c.search, options...)
	}
}

func newConfig(options []Option) config {
	c := config{ // Default values
		playouts:    meta.PLAYOUTS,
		temperature: meta.TEMPERATURE,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// run builds a fresh tree from the game's current state within the budget.
// At least one playout runs even when the duration is already spent.
func (c config) run(g game.Game, player game.Player) *searcher.MCTS {
	m := searcher.NewMCTS(g, c.search...)

	if c.playouts > 0 {
		for i := 0; i < c.playouts; i++ {
			m.Playout(player)
		}
	} else {
		start := time.Now()
		for {
			m.Playout(player)
			if time.Since(start) >= c.duration {
				break
			}
		}
	}

	if root := m.Root(); root != nil {
		log.Debug().Msgf("player %s searched %d playouts over %d moves", player, root.Visits(), root.ChildCount())
	}
	return m
}

func (c config) uniform() float64 {
	if c.rand == nil {
		return rand.Float64()
	}
	return c.rand.Float64()
}
