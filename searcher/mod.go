package searcher

import (
	"math"
	"time"

	"mct/game"
	"mct/tree"

	"golang.org/x/exp/rand"
)

// Hyperparameters for MCTS

const C = math.Sqrt2 // Exploration constant

// Win flag recorded by every backpropagation. Conditioning it on the rollout score
// (e.g. score > 0.5) is a known variant that is not enabled.
const Win = 1.0

// Node is a search tree node holding a game state.
type Node = tree.Node[game.State]

func init() {
	// Seed the process-wide generator used when no rand is injected
	rand.Seed(uint64(time.Now().UnixNano()))
}
