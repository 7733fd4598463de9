package animalshogi

import (
	"fmt"

	"github.com/gorgonia/dobutsu/game"
)

// Kind is the type of a piece. Its numeric value is also the material value of the piece.
type Kind int8

const (
	Empty Kind = iota
	Chick
	Elephant
	Giraffe
	Hen
	Lion

	maxKind
)

// reserveKinds are the kinds that may be held in hand, in reserve index order.
var reserveKinds = [numReserveKinds]Kind{Chick, Elephant, Giraffe}

const numReserveKinds = 3

func (k Kind) glyph() byte {
	switch k {
	case Chick:
		return 'C'
	case Elephant:
		return 'E'
	case Giraffe:
		return 'G'
	case Hen:
		return 'H'
	case Lion:
		return 'L'
	}
	return '.'
}

func (k Kind) String() string {
	switch k {
	case Chick:
		return "Chick"
	case Elephant:
		return "Elephant"
	case Giraffe:
		return "Giraffe"
	case Hen:
		return "Hen"
	case Lion:
		return "Lion"
	}
	return "Empty"
}

// reserveIndex returns the index of k in a reserve, or -1 if k cannot be held.
func (k Kind) reserveIndex() int {
	switch k {
	case Chick:
		return 0
	case Elephant:
		return 1
	case Giraffe:
		return 2
	}
	return -1
}

// captured returns the kind that enters the capturer's hand.
func (k Kind) captured() Kind {
	if k == Hen {
		return Chick
	}
	return k
}

type delta struct{ df, dr int }

// directions are the single steps of each kind, as seen by First. Second negates dr.
func (k Kind) directions() []delta {
	switch k {
	case Chick:
		return []delta{{0, 1}}
	case Elephant:
		return []delta{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	case Giraffe:
		return []delta{{1, 0}, {0, -1}, {-1, 0}, {0, 1}}
	case Hen:
		return []delta{{-1, 1}, {0, 1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}}
	case Lion:
		return []delta{{1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}}
	}
	return nil
}

// Piece is a kind owned by a player. The zero Piece is an empty square.
type Piece struct {
	Owner game.Player
	Kind  Kind
}

// IsEmpty returns true if there is no piece.
func (p Piece) IsEmpty() bool { return p.Kind == Empty }

// Code is the signed integer code of the piece: the sign is the owner, the magnitude the kind.
func (p Piece) Code() int { return int(p.Owner) * int(p.Kind) }

// flip returns the piece as seen by the other player.
func (p Piece) flip() Piece {
	if p.IsEmpty() {
		return p
	}
	return Piece{Owner: p.Owner.Opponent(), Kind: p.Kind}
}

func (p Piece) Format(s fmt.State, c rune) {
	g := p.Kind.glyph()
	switch {
	case p.IsEmpty():
		fmt.Fprint(s, "·")
	case p.Owner == game.Second:
		fmt.Fprintf(s, "%c", g+'a'-'A')
	default:
		fmt.Fprintf(s, "%c", g)
	}
}

func pieceFromGlyph(r rune) (Piece, bool) {
	owner := game.First
	if r >= 'a' && r <= 'z' {
		owner = game.Second
		r = r - 'a' + 'A'
	}
	switch r {
	case '.', '·':
		return Piece{}, true
	case 'C':
		return Piece{owner, Chick}, true
	case 'E':
		return Piece{owner, Elephant}, true
	case 'G':
		return Piece{owner, Giraffe}, true
	case 'H':
		return Piece{owner, Hen}, true
	case 'L':
		return Piece{owner, Lion}, true
	}
	return Piece{}, false
}
