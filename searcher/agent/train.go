package agent

import (
	"math"

	"mct/game"
	"mct/searcher"
)

type trainingAgent struct {
	config
}

// NewTrainingAgent returns an agent for self-play that samples moves by visit count.
func NewTrainingAgent(options ...Option) Agent {
	return trainingAgent{config: newConfig(options)}
}

func (a trainingAgent) FindMove(g game.Game, player game.Player) (game.Move, searcher.SearchMetric) {
	m := a.run(g, player)
	policy := m.Policy()

	// Fixed move order keeps sampling reproducible under a seeded rand
	children := m.BestMoves()
	if len(children) == 0 {
		return nil, m.Metrics()
	}
	moves := make([]game.Move, len(children))
	visits := make([]float64, len(children))
	for i, child := range children {
		moves[i] = child.Value().Move()
		visits[i] = policy[moves[i]]
	}

	probs := adjustTemperature(visits, a.temperature)
	return moves[sample(probs, a.uniform())], m.Metrics()
}

func adjustTemperature(visits []float64, temperature float64) []float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make([]float64, len(visits))
	for i, visit := range visits {
		prob := math.Pow(visit, exponent)
		sum += prob
		adjusted[i] = prob
	}
	// Normalize
	for i := range adjusted {
		adjusted[i] /= sum
	}
	return adjusted
}

func sample(probs []float64, sampled float64) int {
	cumulative := 0.0
	for i, prob := range probs {
		cumulative += prob
		if sampled < cumulative {
			return i
		}
	}
	return len(probs) - 1 // Fallback in case of rounding errors
}
