package agent

import (
	"mct/game"
	"mct/searcher"
)

type evaluationAgent struct {
	config
}

// NewEvaluationAgent returns an agent that plays the move with the highest accumulated score.
func NewEvaluationAgent(options ...Option) Agent {
	return evaluationAgent{config: newConfig(options)}
}

func (a evaluationAgent) FindMove(g game.Game, player game.Player) (game.Move, searcher.SearchMetric) {
	m := a.run(g, player)
	best := m.BestMoves()
	if len(best) == 0 {
		return nil, m.Metrics()
	}
	return best[0].Value().Move(), m.Metrics()
}
