package animalshogi

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/gorgonia/dobutsu/game"
	"github.com/pkg/errors"
)

// maxCount is the number of pieces of a kind in a full set, counted per kind over both players.
// Hens count as Chicks.
var maxCount = map[Kind]int{
	Chick:    2,
	Elephant: 2,
	Giraffe:  2,
	Lion:     2,
}

// Parse reads a position written in the same notation Format produces:
//
//	⎢ g l e ⎥
//	⎢ · c · ⎥
//	⎢ · C · ⎥
//	⎢ E L G ⎥
//	hand: -
//
// Rows go from rank 3 down to rank 0. Upper case pieces belong to First, lower case ones to Second.
// Empty squares are written as '.' or '·'. The frame characters are optional. The hand line lists
// the pieces held, using the same case convention, or '-' when both hands are empty.
//
// The returned state has no repetition history.
func Parse(text string, toMove game.Player) (*State, error) {
	if !toMove.IsValid() {
		return nil, malformed("%v cannot be the side to move", toMove)
	}

	b := &Board{seen: make(map[game.Zobrist]int)}
	var rows []string
	var hand string
	var hasHand bool
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(strings.ToLower(line), "hand:"):
			if hasHand {
				return nil, malformed("more than one hand line")
			}
			hand, hasHand = strings.TrimSpace(line[len("hand:"):]), true
		default:
			rows = append(rows, line)
		}
	}
	if len(rows) != Ranks {
		return nil, malformed("expected %d rows. Got %d", Ranks, len(rows))
	}

	for i, row := range rows {
		r := Ranks - 1 - i
		var f int
		for _, c := range row {
			if unicode.IsSpace(c) || c == '⎢' || c == '⎥' || c == '|' {
				continue
			}
			p, ok := pieceFromGlyph(c)
			if !ok {
				return nil, malformed("unknown piece %q in row %d", c, r)
			}
			if f >= Files {
				return nil, malformed("row %d has more than %d squares", r, Files)
			}
			b.grid[f][r] = p
			f++
		}
		if f != Files {
			return nil, malformed("row %d has %d squares. Expected %d", r, f, Files)
		}
	}

	if hand != "-" {
		for _, c := range hand {
			if unicode.IsSpace(c) || c == ',' {
				continue
			}
			p, ok := pieceFromGlyph(c)
			if !ok || p.IsEmpty() {
				return nil, malformed("unknown piece %q in hand", c)
			}
			i := p.Kind.reserveIndex()
			if i < 0 {
				return nil, malformed("%v cannot be held in hand", p.Kind)
			}
			b.reserve[ownerIndex(p.Owner)][i]++
		}
	}

	if err := b.validate(); err != nil {
		return nil, err
	}
	return &State{b: b, nextToMove: toMove}, nil
}

// validate checks the piece counts of a board.
func (b *Board) validate() error {
	counts := make(map[Kind]int)
	var lions [2]int
	for f := 0; f < Files; f++ {
		for r := 0; r < Ranks; r++ {
			p := b.grid[f][r]
			if p.IsEmpty() {
				continue
			}
			counts[p.Kind.captured()]++
			if p.Kind == Lion {
				lions[ownerIndex(p.Owner)]++
			}
		}
	}
	for o := range b.reserve {
		for i, n := range b.reserve[o] {
			counts[reserveKinds[i]] += n
		}
	}
	for _, k := range []Kind{Chick, Elephant, Giraffe, Lion} {
		if counts[k] > maxCount[k] {
			return malformed("%d pieces of kind %v. At most %d are allowed", counts[k], k, maxCount[k])
		}
	}
	for o, n := range lions {
		if n > 1 {
			return malformed("%v has %d Lions", []game.Player{game.First, game.Second}[o], n)
		}
	}
	return nil
}

// Format prints the board with rank 3 at the top, followed by the hand line.
func (b *Board) Format(s fmt.State, c rune) {
	for r := Ranks - 1; r >= 0; r-- {
		fmt.Fprint(s, "⎢ ")
		for f := 0; f < Files; f++ {
			fmt.Fprintf(s, "%v ", b.grid[f][r])
		}
		fmt.Fprint(s, "⎥\n")
	}
	fmt.Fprintf(s, "hand: %s", b.handString())
}

func (b *Board) handString() string {
	var buf bytes.Buffer
	for o, owner := range []game.Player{game.First, game.Second} {
		for i, k := range reserveKinds {
			for n := 0; n < b.reserve[o][i]; n++ {
				fmt.Fprintf(&buf, "%v", Piece{owner, k})
			}
		}
	}
	if buf.Len() == 0 {
		return "-"
	}
	return buf.String()
}

func (s *State) Format(st fmt.State, c rune) {
	fmt.Fprintf(st, "%v\n", s.b)
	if st.Flag('+') {
		fmt.Fprintf(st, "to move: %v, move %d\n", s.nextToMove, s.moveNumber)
	}
}

func (s *State) String() string { return fmt.Sprintf("%v", s) }

// ParseMove reads a move written the way Move.String writes it. The brackets are optional and
// case is ignored, so "[B1B2]", "b1b2" and "cb2" are all accepted.
func ParseMove(text string) (Move, error) {
	t := strings.ToUpper(strings.Trim(strings.TrimSpace(text), "[]"))
	square := func(s string) (Square, bool) {
		sq := Square{int(s[0]) - 'A', int(s[1]) - '0'}
		return sq, sq.onBoard()
	}
	switch len(t) {
	case 3:
		p, ok := pieceFromGlyph(rune(t[0]))
		if !ok || p.Kind.reserveIndex() < 0 {
			return Move{}, errors.Errorf("%q cannot be dropped", t[0])
		}
		to, ok := square(t[1:])
		if !ok {
			return Move{}, errors.Errorf("no square %q", t[1:])
		}
		return Move{Drop: true, Kind: p.Kind, To: to}, nil
	case 4:
		from, ok := square(t[:2])
		if !ok {
			return Move{}, errors.Errorf("no square %q", t[:2])
		}
		to, ok := square(t[2:])
		if !ok {
			return Move{}, errors.Errorf("no square %q", t[2:])
		}
		return Move{From: from, To: to}, nil
	}
	return Move{}, errors.Errorf("unable to parse move %q", text)
}

// ParseAction reads a move made by the side to move in s and returns its action.
func (Game) ParseAction(s game.State, text string) (game.Action, error) {
	m, err := ParseMove(text)
	if err != nil {
		return game.NoAction, err
	}
	p := s.ToMove()
	a := Encode(m, p)
	if !mustState(s).b.Check(m, p) {
		return a, moveError{m, p}
	}
	return a, nil
}
