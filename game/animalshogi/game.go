package animalshogi

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/gorgonia/dobutsu/game"
	"github.com/pkg/errors"
)

var (
	_ game.State = &State{}
	_ game.Game  = Game{}
)

// State is a snapshot of a game: the board, who is to move and how many moves have been played.
// States are never mutated once handed out by Game.
type State struct {
	b          *Board
	nextToMove game.Player
	moveNumber int
}

// NewState returns the initial state.
func NewState() *State { return &State{b: NewBoard(), nextToMove: game.First} }

// Board returns the underlying board. It must not be modified.
func (s *State) Board() *Board { return s.b }

func (s *State) ToMove() game.Player { return s.nextToMove }

func (s *State) MoveNumber() int { return s.moveNumber }

// absoluteToMove is the side to move in the orientation of the initial board.
func (s *State) absoluteToMove() game.Player {
	if s.b.flipped {
		return s.nextToMove.Opponent()
	}
	return s.nextToMove
}

// Hash returns the hash of the position, in the orientation of the initial board.
func (s *State) Hash() game.Zobrist { return s.b.positionHash() }

func (s *State) Eq(other game.State) bool {
	ot, ok := other.(*State)
	if !ok {
		return false
	}
	return s.nextToMove == ot.nextToMove && s.moveNumber == ot.moveNumber && s.b.eq(ot.b)
}

func (s *State) Clone() game.State { return s.clone() }

func (s *State) clone() *State {
	return &State{
		b:          s.b.Clone(),
		nextToMove: s.nextToMove,
		moveNumber: s.moveNumber,
	}
}

// Game is the canonical two player adapter over Board. It holds no state of its own.
type Game struct{}

func (Game) Name() string { return "Animal Shogi" }

func (Game) InitialState() game.State { return NewState() }

func (Game) BoardSize() (int, int) { return Files, Ranks }

func (Game) ActionSpace() int { return ActionSpace }

func (Game) NextState(s game.State, p game.Player, a game.Action) (game.State, game.Player, error) {
	st := mustState(s)
	if p != st.nextToMove {
		return s, p, errors.Wrapf(game.ErrInvalidAction, "%v is not to move", p)
	}
	m, err := Decode(a, p)
	if err != nil {
		return s, p, err
	}
	next := st.clone()
	if err = next.b.Apply(m, p); err != nil {
		return s, p, errors.WithMessage(err, fmt.Sprintf("action %d", a))
	}
	next.nextToMove = p.Opponent()
	next.moveNumber++
	return next, next.nextToMove, nil
}

func (Game) LegalMask(s game.State, p game.Player) []bool {
	mask := make([]bool, ActionSpace)
	for _, m := range mustState(s).b.LegalMoves(p) {
		mask[Encode(m, p)] = true
	}
	return mask
}

func (Game) LegalActions(s game.State, p game.Player) []game.Action {
	moves := mustState(s).b.LegalMoves(p)
	retVal := make([]game.Action, 0, len(moves))
	for _, m := range moves {
		retVal = append(retVal, Encode(m, p))
	}
	if p == game.Second {
		sort.Slice(retVal, func(i, j int) bool { return retVal[i] < retVal[j] })
	}
	return retVal
}

// TerminalValue returns 1 if p has won, -1 if p has lost and 0 if the game goes on.
//
// A Lion on the opponent's back rank only wins once its owner is to move again, so the opponent
// gets one reply to capture it.
func (Game) TerminalValue(s game.State, p game.Player) float32 {
	st := mustState(s)
	b := st.b
	result := func(winner game.Player) float32 {
		if winner == p {
			return 1
		}
		return -1
	}

	if b.repeater != game.None {
		return result(b.repeater.Opponent())
	}

	mover := st.nextToMove
	if sq, ok := b.lion(mover); ok && sq.Rank == farRank(mover) {
		return result(mover)
	}

	_, firstLion := b.lion(game.First)
	_, secondLion := b.lion(game.Second)
	switch {
	case firstLion && !secondLion:
		return result(game.First)
	case secondLion && !firstLion:
		return result(game.Second)
	case !firstLion && !secondLion:
		return 0
	}

	if !b.HasLegalMoves(mover) {
		return result(mover.Opponent())
	}
	return 0
}

// Score is the material balance from p's point of view.
func (Game) Score(s game.State, p game.Player) float32 { return float32(mustState(s).b.Score(p)) }

// Canonical returns the state as seen by p. For Second the board is turned around, owners are
// swapped and the hands are exchanged.
func (Game) Canonical(s game.State, p game.Player) game.State {
	st := mustState(s)
	if p != game.Second {
		return st
	}
	return &State{
		b:          st.b.flip(),
		nextToMove: st.nextToMove.Opponent(),
		moveNumber: st.moveNumber,
	}
}

// Symmetries returns the state with its policy, and the left-right mirror of both.
func (Game) Symmetries(s game.State, policy []float32) []game.Symmetry {
	if len(policy) != ActionSpace {
		panic(fmt.Sprintf("expected a policy of length %d. Got %d", ActionSpace, len(policy)))
	}
	st := mustState(s)
	mirrored := &State{
		b:          st.b.mirror(),
		nextToMove: st.nextToMove,
		moveNumber: st.moveNumber,
	}
	pi := make([]float32, ActionSpace)
	for a := range policy {
		m, _ := decode(game.Action(a))
		pi[encode(m.mirror())] = policy[a]
	}
	return []game.Symmetry{
		{State: st, Policy: policy},
		{State: mirrored, Policy: pi},
	}
}

// StringKey is an exact serialization of the position as seen from the state's own frame, the side
// to move, the repetition flag and how often every position has occurred so far. States with the
// same key play out identically.
func (Game) StringKey(s game.State) string {
	st := mustState(s)
	seen := make([]game.Zobrist, 0, len(st.b.seen))
	for h := range st.b.seen {
		seen = append(seen, h)
	}
	sort.Slice(seen, func(i, j int) bool { return seen[i] < seen[j] })

	buf := make([]byte, 0, squares+2*numReserveKinds+2+9*len(seen))
	buf = st.b.appendPosition(buf, false)
	buf = append(buf, byte(st.nextToMove), byte(st.b.repeater))
	for _, h := range seen {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(h))
		buf = append(buf, byte(st.b.seen[h]))
	}
	return string(buf)
}

// ActionString describes an action of p in move notation.
func (Game) ActionString(a game.Action, p game.Player) string {
	m, err := Decode(a, p)
	if err != nil {
		return fmt.Sprintf("[%d]", a)
	}
	return m.String()
}

func mustState(s game.State) *State {
	st, ok := s.(*State)
	if !ok {
		panic(fmt.Sprintf("expected *animalshogi.State. Got %T", s))
	}
	return st
}
