package game

// Player identifies whose turn it is. Passed through to scoring and determinization.
type Player string

// Move is an opaque move identifier. Moves are compared with ==, so implementations
// must use comparable dynamic types (ints, strings, structs of those, pointers).
type Move interface{}

// State is an immutable snapshot of a game position.
type State interface {
	// Move returns the move that produced this state, nil for the starting state.
	Move() Move
	// Player returns whose turn it is in this state.
	Player() Player
}

// Game is the contract a game must implement to be searched. Every operation is
// expected to be total; the searcher does not recover from panics raised here.
type Game interface {
	CurrentState() State
	NextState(state State, move Move) State
	// NextPlayer returns whose turn is next in state, or in the current game state if state is nil.
	NextPlayer(state State) Player

	LegalMoveCount(state State) int
	// LegalMoves may enumerate differently when simulation is set, e.g. by sampling
	// a few moves instead of the full move list during rollouts.
	LegalMoves(state State, simulation bool) []Move

	// HeuristicScore evaluates state from player's perspective. from is the state the
	// rollout started at and may be nil.
	HeuristicScore(state State, player Player, from State) float64

	// RandomizeHiddenInfo resolves the information hidden from player into one concrete
	// guess. It stays in effect until ClearRandomizedHiddenInfo is called.
	RandomizeHiddenInfo(state State, player Player)
	ClearRandomizedHiddenInfo()
}

// Playable is a Game that can also advance its current state by committing a move.
type Playable interface {
	Game
	Play(move Move) State
}
