// Package gametest provides a scripted in-memory game for testing searchers and agents.
package gametest

import (
	"fmt"

	"mct/game"
)

// State is a position in a scripted game: the moves played so far and whose turn it is.
type State struct {
	Path []game.Move
	Turn game.Player
}

func (s *State) Move() game.Move {
	if len(s.Path) == 0 {
		return nil
	}
	return s.Path[len(s.Path)-1]
}

func (s *State) Player() game.Player {
	return s.Turn
}

// Depth returns the number of moves played to reach the state.
func (s *State) Depth() int {
	return len(s.Path)
}

func (s *State) String() string {
	return fmt.Sprintf("%v", s.Path)
}

// Game offers the same moves at every depth until Depth moves have been played.
// A state is scored by the first move on its path, so each opening move has a fixed value.
type Game struct {
	Players []game.Player
	Moves   []game.Move
	// SimulationMoves replaces Moves during rollouts when non-nil.
	SimulationMoves []game.Move
	Depth           int
	Scores          map[game.Move]float64

	// Determinization bookkeeping.
	Randomized   int
	Cleared      int
	HiddenScored int
	Hidden       bool

	current *State
}

// New returns a game lasting depth moves, offering moves at every turn, between
// players "p1" and "p2".
func New(depth int, moves ...game.Move) *Game {
	players := []game.Player{"p1", "p2"}
	return &Game{
		Players: players,
		Moves:   moves,
		Depth:   depth,
		Scores:  make(map[game.Move]float64),
		current: &State{Turn: players[0]},
	}
}

// WithScore sets the score of every state reached through the opening move.
func (g *Game) WithScore(move game.Move, score float64) *Game {
	g.Scores[move] = score
	return g
}

func (g *Game) CurrentState() game.State {
	return g.current
}

func (g *Game) NextState(state game.State, move game.Move) game.State {
	s := state.(*State)
	path := make([]game.Move, len(s.Path), len(s.Path)+1)
	copy(path, s.Path)
	path = append(path, move)
	return &State{
		Path: path,
		Turn: g.Players[len(path)%len(g.Players)],
	}
}

func (g *Game) NextPlayer(state game.State) game.Player {
	if state == nil {
		state = g.current
	}
	return state.Player()
}

func (g *Game) LegalMoveCount(state game.State) int {
	return len(g.LegalMoves(state, false))
}

func (g *Game) LegalMoves(state game.State, simulation bool) []game.Move {
	if state.(*State).Depth() >= g.Depth {
		return nil
	}
	if simulation && g.SimulationMoves != nil {
		return g.SimulationMoves
	}
	return g.Moves
}

func (g *Game) HeuristicScore(state game.State, player game.Player, from game.State) float64 {
	if g.Hidden {
		g.HiddenScored++
	}
	s := state.(*State)
	if len(s.Path) == 0 {
		return 0
	}
	return g.Scores[s.Path[0]]
}

func (g *Game) RandomizeHiddenInfo(state game.State, player game.Player) {
	if g.Hidden {
		panic("hidden info is already randomized")
	}
	g.Hidden = true
	g.Randomized++
}

func (g *Game) ClearRandomizedHiddenInfo() {
	g.Hidden = false
	g.Cleared++
}

func (g *Game) Play(move game.Move) game.State {
	g.current = g.NextState(g.current, move).(*State)
	return g.current
}
