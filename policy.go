package dobutsu

import (
	"github.com/chewxy/math32"
	"github.com/gorgonia/dobutsu/game"
	"github.com/gorgonia/dobutsu/search"
	"github.com/pkg/errors"
)

var _ search.Player = &PolicyPlayer{}

// PolicyPlayer plays the legal action an Inferer likes most.
type PolicyPlayer struct {
	g   game.Game
	enc GameEncoder
	inf Inferer
}

func NewPolicyPlayer(g game.Game, enc GameEncoder, inf Inferer) *PolicyPlayer {
	return &PolicyPlayer{g: g, enc: enc, inf: inf}
}

func (pp *PolicyPlayer) ChooseAction(s game.State) (game.Action, error) {
	p := s.ToMove()
	mask := pp.g.LegalMask(s, p)
	policy, _, err := pp.inf.Infer(pp.enc(s))
	if err != nil {
		return game.NoAction, errors.Wrap(err, "inference failed")
	}
	if len(policy) != len(mask) {
		return game.NoAction, errors.Errorf("expected a policy of length %d. Got %d", len(mask), len(policy))
	}
	if !validPolicies(policy) {
		return game.NoAction, errors.Errorf("invalid policy %v", policy)
	}

	best := game.NoAction
	max := math32.Inf(-1)
	for a, legal := range mask {
		if legal && policy[a] > max {
			best, max = game.Action(a), policy[a]
		}
	}
	if best == game.NoAction {
		return game.NoAction, search.ErrNoLegalActions
	}
	return best, nil
}

// Close closes the underlying Inferer.
func (pp *PolicyPlayer) Close() error { return pp.inf.Close() }
