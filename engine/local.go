package engine

import (
	"fmt"
	"time"

	"mct/game"
	"mct/meta"
	"mct/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Local struct {
	Game     game.Playable
	Agents   map[game.Player]agent.Agent
	MaxTurns int
}

func LocalEngine(g game.Playable, agents map[game.Player]agent.Agent) *Local {
	if len(agents) == 0 {
		panic("need at least one agent")
	}

	return &Local{
		Game:     g,
		Agents:   agents,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the game loop until no legal move is left or the turn limit is hit.
func (e *Local) Run() (GameMetric, []MoveMetric) {
	maxTurns := e.MaxTurns
	if maxTurns <= 0 {
		maxTurns = meta.MAX_TURNS
	}

	gameMetric := GameMetric{
		StartingPlayer: e.Game.NextPlayer(nil),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("player %s is starting", gameMetric.StartingPlayer)

	var moveMetrics []MoveMetric
	state := e.Game.CurrentState()
	for turn := 1; turn <= maxTurns && e.Game.LegalMoveCount(state) > 0; turn++ {
		player := e.Game.NextPlayer(nil)
		a, ok := e.Agents[player]
		if !ok {
			panic(fmt.Sprintf("no agent for player %s", player))
		}

		move, searchMetric := a.FindMove(e.Game, player)
		if move == nil {
			log.Warn().Msgf("player %s found no move on turn %d", player, turn)
			break
		}
		log.Debug().Msgf("player %s chose move %v on turn %d", player, move, turn)

		state = e.Game.Play(move)
		moveMetrics = append(moveMetrics, MoveMetric{
			Step:         turn,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Finished = e.Game.LegalMoveCount(state) == 0
	gameMetric.Scores = make(map[game.Player]float64, len(e.Agents))
	for player := range e.Agents {
		gameMetric.Scores[player] = e.Game.HeuristicScore(state, player, nil)
	}

	if gameMetric.Finished {
		log.Info().Msgf("game over after %d moves", gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("stopped after %d moves (game not over)", gameMetric.TotalMoves)
	}
	return gameMetric, moveMetrics
}
