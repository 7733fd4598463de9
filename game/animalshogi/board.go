package animalshogi

import (
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/gorgonia/dobutsu/game"
)

// repetitions is the number of times a position has to occur for the mover to lose.
const repetitions = 3

// Board is the rules engine: the grid, both hands and the repetition history.
//
// Every position is hashed in the orientation of the initial board, regardless of how many times
// the board has been flipped to the other player's point of view.
type Board struct {
	grid    [Files][Ranks]Piece
	reserve [2][numReserveKinds]int

	seen     map[game.Zobrist]int
	repeater game.Player // the mover that completed a threefold repetition
	flipped  bool        // the board is seen from Second's side
}

// NewBoard creates a board in the initial configuration.
func NewBoard() *Board {
	b := &Board{seen: make(map[game.Zobrist]int)}
	b.grid[0][0] = Piece{game.First, Elephant}
	b.grid[1][0] = Piece{game.First, Lion}
	b.grid[2][0] = Piece{game.First, Giraffe}
	b.grid[1][1] = Piece{game.First, Chick}

	b.grid[1][2] = Piece{game.Second, Chick}
	b.grid[0][3] = Piece{game.Second, Giraffe}
	b.grid[1][3] = Piece{game.Second, Lion}
	b.grid[2][3] = Piece{game.Second, Elephant}
	return b
}

// At returns the piece on a square. Off-board squares are empty.
func (b *Board) At(sq Square) Piece {
	if !sq.onBoard() {
		return Piece{}
	}
	return b.grid[sq.File][sq.Rank]
}

// InHand returns how many pieces of kind k the owner holds.
func (b *Board) InHand(owner game.Player, k Kind) int {
	i := k.reserveIndex()
	if i < 0 || !owner.IsValid() {
		return 0
	}
	return b.reserve[ownerIndex(owner)][i]
}

// Repeater returns the player that completed a threefold repetition, or None.
func (b *Board) Repeater() game.Player { return b.repeater }

// LegalMoves returns the set of legal moves of owner, ordered by action.
func (b *Board) LegalMoves(owner game.Player) []Move {
	var dup [ActionSpace]bool
	var moves []Move
	b.eachMove(owner, func(m Move) bool {
		a := encode(m)
		if !dup[a] {
			dup[a] = true
			moves = append(moves, m)
		}
		return true
	})
	sort.Slice(moves, func(i, j int) bool { return encode(moves[i]) < encode(moves[j]) })
	return moves
}

// HasLegalMoves reports whether owner has at least one legal move.
func (b *Board) HasLegalMoves(owner game.Player) bool {
	var found bool
	b.eachMove(owner, func(Move) bool {
		found = true
		return false
	})
	return found
}

// eachMove calls fn with every legal move of owner until fn returns false.
func (b *Board) eachMove(owner game.Player, fn func(Move) bool) {
	if !owner.IsValid() {
		return
	}
	hand := b.reserve[ownerIndex(owner)]
	for i, k := range reserveKinds {
		if hand[i] == 0 {
			continue
		}
		for f := 0; f < Files; f++ {
			for r := 0; r < Ranks; r++ {
				if b.grid[f][r].IsEmpty() && !fn(Move{Drop: true, Kind: k, To: Square{f, r}}) {
					return
				}
			}
		}
	}

	for f := 0; f < Files; f++ {
		for r := 0; r < Ranks; r++ {
			p := b.grid[f][r]
			if p.Owner != owner || p.IsEmpty() {
				continue
			}
			from := Square{f, r}
			for _, d := range p.Kind.directions() {
				if owner == game.Second {
					d.dr = -d.dr
				}
				to := from.add(d)
				if !to.onBoard() || b.grid[to.File][to.Rank].Owner == owner {
					continue
				}
				if !fn(Move{From: from, To: to}) {
					return
				}
			}
		}
	}
}

// Check returns true if m is a legal move of owner.
func (b *Board) Check(m Move, owner game.Player) bool {
	if !owner.IsValid() || !m.To.onBoard() {
		return false
	}
	target := b.grid[m.To.File][m.To.Rank]
	if m.Drop {
		i := m.Kind.reserveIndex()
		return i >= 0 && b.reserve[ownerIndex(owner)][i] > 0 && target.IsEmpty()
	}

	if !m.From.onBoard() {
		return false
	}
	p := b.grid[m.From.File][m.From.Rank]
	if p.IsEmpty() || p.Owner != owner || target.Owner == owner {
		return false
	}
	for _, d := range p.Kind.directions() {
		if owner == game.Second {
			d.dr = -d.dr
		}
		if m.From.add(d) == m.To {
			return true
		}
	}
	return false
}

// Apply executes a move in place. An illegal move returns an error and leaves the board untouched.
func (b *Board) Apply(m Move, owner game.Player) error {
	if !b.Check(m, owner) {
		return moveError{m, owner}
	}
	oi := ownerIndex(owner)
	if m.Drop {
		b.reserve[oi][m.Kind.reserveIndex()]--
		b.grid[m.To.File][m.To.Rank] = Piece{owner, m.Kind}
		return nil
	}

	p := b.grid[m.From.File][m.From.Rank]
	b.grid[m.From.File][m.From.Rank] = Piece{}
	if target := b.grid[m.To.File][m.To.Rank]; !target.IsEmpty() {
		if i := target.Kind.captured().reserveIndex(); i >= 0 {
			b.reserve[oi][i]++
		}
	}
	if p.Kind == Chick && m.To.Rank == farRank(owner) {
		p.Kind = Hen
	}
	b.grid[m.To.File][m.To.Rank] = p

	h := b.positionHash()
	if b.seen == nil {
		b.seen = make(map[game.Zobrist]int)
	}
	b.seen[h]++
	if b.seen[h] >= repetitions && b.repeater == game.None {
		b.repeater = owner
	}
	return nil
}

// Score is the material balance from owner's point of view, hands included.
func (b *Board) Score(owner game.Player) int {
	var score int
	for f := 0; f < Files; f++ {
		for r := 0; r < Ranks; r++ {
			score += b.grid[f][r].Code()
		}
	}
	for i, k := range reserveKinds {
		score += int(k) * (b.reserve[0][i] - b.reserve[1][i])
	}
	return score * int(owner)
}

// lion returns the square of owner's Lion.
func (b *Board) lion(owner game.Player) (Square, bool) {
	for f := 0; f < Files; f++ {
		for r := 0; r < Ranks; r++ {
			if p := b.grid[f][r]; p.Kind == Lion && p.Owner == owner {
				return Square{f, r}, true
			}
		}
	}
	return Square{}, false
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	retVal := *b
	retVal.seen = make(map[game.Zobrist]int, len(b.seen))
	for k, v := range b.seen {
		retVal.seen[k] = v
	}
	return &retVal
}

// flip returns the board as seen by the other player.
func (b *Board) flip() *Board {
	retVal := b.Clone()
	for f := 0; f < Files; f++ {
		for r := 0; r < Ranks; r++ {
			sq := Square{f, r}.reflect()
			retVal.grid[f][r] = b.grid[sq.File][sq.Rank].flip()
		}
	}
	retVal.reserve[0], retVal.reserve[1] = b.reserve[1], b.reserve[0]
	retVal.repeater = b.repeater.Opponent()
	retVal.flipped = !b.flipped
	return retVal
}

// mirror returns the board reflected left to right. The mirrored position has no history.
func (b *Board) mirror() *Board {
	retVal := *b
	retVal.seen = make(map[game.Zobrist]int)
	for f := 0; f < Files; f++ {
		for r := 0; r < Ranks; r++ {
			retVal.grid[f][r] = b.grid[Files-1-f][r]
		}
	}
	return &retVal
}

func (b *Board) eq(other *Board) bool {
	if b.grid != other.grid || b.reserve != other.reserve ||
		b.repeater != other.repeater || b.flipped != other.flipped ||
		len(b.seen) != len(other.seen) {
		return false
	}
	for k, v := range b.seen {
		if other.seen[k] != v {
			return false
		}
	}
	return true
}

// appendPosition serializes the grid and both hands. If absolute is set, the position is written in
// the orientation of the initial board.
func (b *Board) appendPosition(buf []byte, absolute bool) []byte {
	turned := absolute && b.flipped
	for f := 0; f < Files; f++ {
		for r := 0; r < Ranks; r++ {
			p := b.grid[f][r]
			if turned {
				sq := Square{f, r}.reflect()
				p = b.grid[sq.File][sq.Rank].flip()
			}
			buf = append(buf, byte(int8(p.Code())))
		}
	}
	first, second := b.reserve[0], b.reserve[1]
	if turned {
		first, second = second, first
	}
	for _, n := range first {
		buf = append(buf, byte(n))
	}
	for _, n := range second {
		buf = append(buf, byte(n))
	}
	return buf
}

func (b *Board) positionHash() game.Zobrist {
	var buf [squares + 2*numReserveKinds]byte
	return game.Zobrist(xxhash.Sum64(b.appendPosition(buf[:0], true)))
}

func ownerIndex(p game.Player) int {
	if p == game.Second {
		return 1
	}
	return 0
}

// farRank is the rank where owner's chicks promote and the opponent's back rank.
func farRank(owner game.Player) int {
	if owner == game.Second {
		return 0
	}
	return Ranks - 1
}
