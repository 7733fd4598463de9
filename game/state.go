package game

import (
	"fmt"
)

// Player represents a side. The sign is the owner: First is +1, Second is -1.
type Player int8

const (
	None   Player = 0
	First  Player = 1
	Second Player = -1
)

// Opponent returns the other side. The opponent of None is None.
func (p Player) Opponent() Player { return -p }

// IsValid returns true if p is one of the two sides.
func (p Player) IsValid() bool { return p == First || p == Second }

func (p Player) Format(s fmt.State, c rune) {
	switch c {
	case 'd':
		fmt.Fprintf(s, "%d", int8(p))
	case 's': // used in board games
		switch p {
		case First:
			fmt.Fprint(s, "☗")
		case Second:
			fmt.Fprint(s, "☖")
		default:
			fmt.Fprint(s, "·")
		}
	default: // used in debug
		switch p {
		case First:
			fmt.Fprint(s, "First")
		case Second:
			fmt.Fprint(s, "Second")
		default:
			fmt.Fprint(s, "None")
		}
	}
}

func (p Player) String() string { return fmt.Sprintf("%v", p) }

// Action is an index into the fixed size action space of a game.
type Action int32

// NoAction is returned alongside errors.
const NoAction Action = -1

// Zobrist is a type representing the hash of a position.
// Only Go and chess use real zobrist hashing, the name is kept for familiarity.
type Zobrist uint64

// State is an opaque game state. Concrete games type-assert it back.
type State interface {
	ToMove() Player  // returns the player to move
	MoveNumber() int // returns count of moves so far that led to this point.
	Hash() Zobrist   // returns the hash of the position

	// generics
	Eq(other State) bool
	Clone() State
}

// Game is the rules of a two player, perfect information game expressed over opaque States.
//
// Actions are always expressed in the frame of the player passed in. A search that only ever
// plays as First can therefore work on Canonical states and never reason about orientation.
type Game interface {
	Name() string
	InitialState() State
	BoardSize() (int, int) // returns the board size
	ActionSpace() int      // returns the number of permissible actions

	// NextState applies the action for player p. The input state is left untouched.
	NextState(s State, p Player, a Action) (State, Player, error)
	LegalMask(s State, p Player) []bool
	LegalActions(s State, p Player) []Action

	// TerminalValue is 0 if the game is ongoing, 1 if p has won and -1 if p has lost.
	TerminalValue(s State, p Player) float32
	Score(s State, p Player) float32

	Canonical(s State, p Player) State
	Symmetries(s State, policy []float32) []Symmetry
	StringKey(s State) string
}

// Symmetry is an equivalent (state, policy) pair, used to augment training data.
type Symmetry struct {
	State  State
	Policy []float32
}

// MetaState is the state of a game as seen by an observer of a match.
type MetaState interface {
	Name() string // name of the game
	GameNumber() int
	State() State
	Result() (ended bool, winner Player)
}
