package search

import (
	"github.com/gorgonia/dobutsu/game"
)

// Random plays a legal action chosen uniformly at random.
type Random struct {
	g game.Game
	settings
}

func NewRandom(g game.Game, opts ...Option) *Random {
	return &Random{g: g, settings: newSettings(opts)}
}

func (r *Random) ChooseAction(s game.State) (game.Action, error) {
	actions := r.g.LegalActions(s, s.ToMove())
	if len(actions) == 0 {
		return game.NoAction, ErrNoLegalActions
	}
	return pick(r.rng, actions), nil
}
