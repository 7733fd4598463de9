package search

import (
	"github.com/gorgonia/dobutsu/game"
	"github.com/pkg/errors"
)

// Greedy plays the action that leaves the best material score after one move.
// Ties are broken uniformly at random.
type Greedy struct {
	g game.Game
	settings
}

func NewGreedy(g game.Game, opts ...Option) *Greedy {
	return &Greedy{g: g, settings: newSettings(opts)}
}

func (gr *Greedy) ChooseAction(s game.State) (game.Action, error) {
	p := s.ToMove()
	actions := gr.g.LegalActions(s, p)
	if len(actions) == 0 {
		return game.NoAction, ErrNoLegalActions
	}

	var best float32
	var candidates []game.Action
	for i, a := range actions {
		next, _, err := gr.g.NextState(s, p, a)
		if err != nil {
			return game.NoAction, errors.WithMessage(err, "greedy")
		}
		score := gr.g.Score(next, p)
		switch {
		case i == 0 || score > best:
			best = score
			candidates = append(candidates[:0], a)
		case score == best:
			candidates = append(candidates, a)
		}
	}
	return pick(gr.rng, candidates), nil
}
