package searcher

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"mct/game"
	"mct/tree"
	"mct/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *MCTS)

// MCTS grows a search tree over a game one playout at a time. It is not safe for
// concurrent use: playouts mutate the tree and the game's hidden information.
type MCTS struct {
	game    game.Game
	root    *Node
	rand    *rand.Rand
	cutoff  int
	metrics Collector
	log     zerolog.Logger
}

// WithRand draws expansion choices from r instead of the process-wide generator.
func WithRand(r *rand.Rand) Option {
	return func(m *MCTS) {
		if r != nil {
			m.rand = r
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rand = rand.New(rand.NewSource(seed))
	}
}

// WithCutoff stops rollouts after depth expansions and scores the state reached.
func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

// WithRoot searches from an existing tree instead of the game's current state.
func WithRoot(root *Node) Option {
	return func(m *MCTS) {
		m.root = root
	}
}

func NewMCTS(g game.Game, options ...Option) *MCTS {
	id := uuid.New()
	m := &MCTS{ // Default values
		game:    g,
		metrics: NewDummyCollector(),
		log:     log.With().Str("search", id.String()).Logger(),
	}
	for _, option := range options {
		option(m)
	}
	m.metrics.Start(id)
	return m
}

// Root returns the search tree, nil before the first playout.
func (m *MCTS) Root() *Node {
	return m.root
}

func (m *MCTS) Metrics() SearchMetric {
	return m.metrics.Complete()
}

// Playout runs one selection, expansion, simulation and backpropagation for player.
func (m *MCTS) Playout(player game.Player) {
	m.ensureRoot()

	leaf := m.Select()
	expanded := m.Expand(leaf, false)
	score := m.Simulate(expanded, player)
	m.BackPropagate(expanded, score)

	m.metrics.AddPlayout()
}

func (m *MCTS) ensureRoot() *Node {
	if m.root == nil {
		state := m.game.CurrentState()
		m.root = tree.New[game.State](nil, state)
		m.log.Debug().Msgf("created root for state %v", state)
	}
	return m.root
}

// Select descends from the root by UCT score and returns the first node that
// has untried moves or has not been expanded yet.
func (m *MCTS) Select() *Node {
	policy := newUCT(m.ensureRoot())

	node := m.root
	for {
		count := node.ChildCount()
		if count == 0 {
			return node
		}
		if count < m.game.LegalMoveCount(node.Value()) {
			return node
		}
		node = policy.pickChild(node)
	}
}

func (u uct) pickChild(node *Node) *Node {
	var selected *Node
	maxScore := math.Inf(-1)
	for i := 0; i < node.ChildCount(); i++ {
		child := node.ChildAt(i)
		score, ok := u.evaluate(child)
		if !ok || math.IsNaN(score) {
			score = -1
		}
		if selected == nil || score > maxScore {
			selected = child
			maxScore = score
		}
	}

	if selected == nil {
		panic(fmt.Sprintf("node %v has no suitable child node", node))
	}
	return selected
}

// Expand adds a child for one randomly chosen untried move of node and returns it.
// A node without legal moves is marked terminal and returned as is, as is a node
// whose legal moves are all tried already.
func (m *MCTS) Expand(node *Node, simulation bool) *Node {
	state := node.Value()
	moves := m.game.LegalMoves(state, simulation)

	if len(moves) == 0 {
		node.AddChildren()
		if node == m.root {
			m.log.Debug().Msgf("root state %v has no legal moves", state)
		}
		return node
	}

	untried := untriedMoves(node, moves)
	if len(untried) == 0 {
		return node
	}

	move := untried[m.intn(len(untried))]
	child := tree.New(node, m.game.NextState(state, move))
	node.AddChildren(child)
	return child
}

func untriedMoves(node *Node, moves []game.Move) []game.Move {
	tried := make([]game.Move, node.ChildCount())
	for i := range tried {
		tried[i] = node.ChildAt(i).Value().Move()
	}
	return utils.Without(moves, tried)
}

func (m *MCTS) intn(n int) int {
	if m.rand == nil {
		return rand.Intn(n)
	}
	return m.rand.Intn(n)
}

// Simulate plays a random rollout from node's state with hidden information
// determinized for player and returns the heuristic score of where it ended.
//
// The rollout grows in a scratch tree rooted at a parentless copy of node, which is
// dropped afterwards, so node itself is left untouched.
func (m *MCTS) Simulate(node *Node, player game.Player) float64 {
	from := node.Value()
	scratch := tree.New[game.State](nil, from)

	last, depth := m.rollout(scratch, player)
	score := m.game.HeuristicScore(last.Value(), player, from)

	scratch.DisownChildren()
	m.metrics.AddRollout(depth, score, last.IsLeafNode())
	return score
}

func (m *MCTS) rollout(scratch *Node, player game.Player) (*Node, int) {
	m.game.RandomizeHiddenInfo(scratch.Value(), player)
	defer m.game.ClearRandomizedHiddenInfo()

	node := scratch
	depth := 0
	for !node.IsLeafNode() && (m.cutoff == 0 || depth < m.cutoff) {
		next := m.Expand(node, true)
		if next == node { // Terminal, or nothing left to try
			break
		}
		node = next
		depth++
	}
	return node, depth
}

// BackPropagate records score on node and every ancestor up to the root.
func (m *MCTS) BackPropagate(node *Node, score float64) {
	for n := node; n != nil; n = n.Parent() {
		n.SetVisits(n.Visits() + 1)
		n.SetScore(n.Score() + score)
		n.SetWin(Win)
	}
}

// BestMoves returns the root's children ordered by descending accumulated score.
func (m *MCTS) BestMoves() []*Node {
	if m.root == nil {
		return nil
	}

	children := m.root.Children()
	slices.SortStableFunc(children, func(a, b *Node) int {
		return cmp.Compare(b.Score(), a.Score())
	})
	return children
}

// Policy returns the visit count of each move tried from the root.
func (m *MCTS) Policy() map[game.Move]float64 {
	if m.root == nil {
		return nil
	}

	policy := make(map[game.Move]float64, m.root.ChildCount())
	for i := 0; i < m.root.ChildCount(); i++ {
		child := m.root.ChildAt(i)
		policy[child.Value().Move()] += float64(child.Visits())
	}
	return policy
}
