package search

import (
	"fmt"

	"github.com/gorgonia/dobutsu/game"
	"github.com/pkg/errors"
)

// Minimax is a fixed depth negamax search with a material evaluation at the leaves.
//
// The move played at the root counts as the first ply. After every move the resulting state is
// checked for the end of the game from the mover's point of view: a win is worth Win and ends the
// search of its siblings, a loss is worth Loss. Otherwise the child is searched from the opponent's
// canonical point of view and its value negated. Every action of the root is searched with a full
// window, and the best ones are broken uniformly at random.
type Minimax struct {
	g     game.Game
	depth int
	settings

	tr *trace
}

// NewMinimax creates a minimax player searching depth plies. It panics if depth < 1.
func NewMinimax(g game.Game, depth int, opts ...Option) *Minimax {
	if depth < 1 {
		panic(fmt.Sprintf("minimax depth must be at least 1. Got %d", depth))
	}
	return &Minimax{g: g, depth: depth, settings: newSettings(opts)}
}

// Depth returns the number of plies searched.
func (m *Minimax) Depth() int { return m.depth }

func (m *Minimax) ChooseAction(s game.State) (game.Action, error) {
	_, candidates, err := m.Search(s)
	if err != nil {
		return game.NoAction, err
	}
	return pick(m.rng, candidates), nil
}

// Search returns the value of s for the side to move, and every root action that achieves it.
func (m *Minimax) Search(s game.State) (value int, best []game.Action, err error) {
	if m.traced {
		m.tr = newTrace(m.g)
	}
	p := s.ToMove()
	actions := m.g.LegalActions(s, p)
	if len(actions) == 0 {
		return Loss, nil, ErrNoLegalActions
	}

	for i, a := range actions {
		v, err := m.value(s, p, a, m.depth-1, Loss-1, Win+1, -1)
		if err != nil {
			return 0, nil, err
		}
		switch {
		case i == 0 || v > value:
			value = v
			best = append(best[:0], a)
		case v == value:
			best = append(best, a)
		}
	}
	return value, best, nil
}

// value is the value for p of playing a in s, with depth plies left to search afterwards.
func (m *Minimax) value(s game.State, p game.Player, a game.Action, depth, alpha, beta, parent int) (v int, err error) {
	next, opponent, err := m.g.NextState(s, p, a)
	if err != nil {
		return 0, errors.WithMessage(err, "minimax")
	}
	id := m.tr.add(parent, a, p)
	defer func() { m.tr.set(id, v) }()

	switch m.g.TerminalValue(next, p) {
	case 1:
		return Win, nil
	case -1:
		return Loss, nil
	}
	if depth == 0 {
		return int(m.g.Score(next, p)), nil
	}

	child := m.g.Canonical(next, opponent)
	cv, err := m.negamax(child, depth, -beta, -alpha, id)
	return -cv, err
}

// negamax returns the value of s for the side to move.
func (m *Minimax) negamax(s game.State, depth, alpha, beta, parent int) (int, error) {
	p := s.ToMove()
	actions := m.g.LegalActions(s, p)
	if len(actions) == 0 {
		return Loss, nil
	}

	best := Loss - 1
	for _, a := range actions {
		v, err := m.value(s, p, a, depth-1, alpha, beta, parent)
		if err != nil {
			return 0, err
		}
		if v > best {
			best = v
		}
		if v == Win {
			break
		}
		if m.alphaBeta {
			if v > alpha {
				alpha = v
			}
			if alpha >= beta {
				break
			}
		}
	}
	return best, nil
}

// ToDot returns the tree searched by the last call to ChooseAction in the Graphviz DOT format.
// It returns an empty graph unless the player was created WithTrace.
func (m *Minimax) ToDot() string { return m.tr.toDot() }
