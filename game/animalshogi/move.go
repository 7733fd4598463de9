package animalshogi

import (
	"fmt"

	"github.com/gorgonia/dobutsu/game"
)

const (
	Files = 3
	Ranks = 4

	squares = Files * Ranks

	// ActionSpace is the number of actions: 12 board sources and 3 reserve kinds, times 12 destinations.
	ActionSpace = (squares + numReserveKinds) * squares

	dropFile = Files // pseudo source file used by drops
)

// Square is a (file, rank) coordinate. (0, 0) is the left corner of First's back rank.
type Square struct {
	File, Rank int
}

func (sq Square) onBoard() bool {
	return sq.File >= 0 && sq.File < Files && sq.Rank >= 0 && sq.Rank < Ranks
}

func (sq Square) add(d delta) Square { return Square{sq.File + d.df, sq.Rank + d.dr} }

// reflect is the point reflection through the centre of the board.
func (sq Square) reflect() Square { return Square{Files - 1 - sq.File, Ranks - 1 - sq.Rank} }

// mirror is the left-right reflection.
func (sq Square) mirror() Square { return Square{Files - 1 - sq.File, sq.Rank} }

func (sq Square) String() string { return fmt.Sprintf("%c%d", 'A'+sq.File, sq.Rank) }

// Move is either a board move From -> To, or a drop of Kind from the hand onto To.
type Move struct {
	Drop bool
	Kind Kind // only meaningful for drops
	From Square
	To   Square
}

// String returns the move in the notation [A0B1] for board moves and [CB2] for drops.
func (m Move) String() string {
	if m.Drop {
		return fmt.Sprintf("[%c%v]", m.Kind.glyph(), m.To)
	}
	return fmt.Sprintf("[%v%v]", m.From, m.To)
}

// reflect returns the same physical move described from the other side of the board.
func (m Move) reflect() Move {
	m.To = m.To.reflect()
	if !m.Drop {
		m.From = m.From.reflect()
	}
	return m
}

func (m Move) mirror() Move {
	m.To = m.To.mirror()
	if !m.Drop {
		m.From = m.From.mirror()
	}
	return m
}

// Encode returns the action of a move made by p. Second's moves are encoded in its own frame.
func Encode(m Move, p game.Player) game.Action {
	if p == game.Second {
		m = m.reflect()
	}
	return encode(m)
}

// Decode is the inverse of Encode.
func Decode(a game.Action, p game.Player) (Move, error) {
	m, err := decode(a)
	if err != nil {
		return m, err
	}
	if p == game.Second {
		m = m.reflect()
	}
	return m, nil
}

func encode(m Move) game.Action {
	sf, sr := m.From.File, m.From.Rank
	if m.Drop {
		sf, sr = dropFile, m.Kind.reserveIndex()
	}
	return game.Action(48*sf + 12*sr + 4*m.To.File + m.To.Rank)
}

func decode(a game.Action) (Move, error) {
	if a < 0 || int(a) >= ActionSpace {
		return Move{}, actionError(a)
	}
	i := int(a)
	sf, sr := i/48, (i/12)%4
	to := Square{(i / 4) % 3, i % 4}
	if sf == dropFile {
		return Move{Drop: true, Kind: reserveKinds[sr], To: to}, nil
	}
	return Move{From: Square{sf, sr}, To: to}, nil
}
