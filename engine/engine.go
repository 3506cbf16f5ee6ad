package engine

import (
	"time"

	"mct/game"
	"mct/searcher"
)

type Engine interface {
	// Run plays a game till it is over or a max number of turns is reached
	Run() (gameMetric GameMetric, moveMetrics []MoveMetric)
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Move
	searcher.SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Finished       bool                    // Game ran out of legal moves before the turn limit
	Scores         map[game.Player]float64 // Heuristic score of the final state per player
}
