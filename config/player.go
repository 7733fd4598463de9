package config

import (
	"github.com/gorgonia/dobutsu/game"
	"github.com/gorgonia/dobutsu/search"
	"github.com/pkg/errors"
)

// NewPlayer builds the search player described by desc. A zero seed leaves the player seeded from
// the clock.
func NewPlayer(g game.Game, desc string, seed uint64) (search.Player, error) {
	ps, err := ParsePlayer(desc)
	if err != nil {
		return nil, err
	}
	return ps.Player(g, seed)
}

// Player builds the player p describes.
func (p PlayerSpec) Player(g game.Game, seed uint64) (search.Player, error) {
	var opts []search.Option
	if seed != 0 {
		opts = append(opts, search.WithSeed(seed))
	}
	switch p.Kind {
	case Random:
		return search.NewRandom(g, opts...), nil
	case Greedy:
		return search.NewGreedy(g, opts...), nil
	case AlphaBeta:
		opts = append(opts, search.WithAlphaBeta())
		fallthrough
	case Minimax:
		return search.NewMinimax(g, p.Depth, opts...), nil
	}
	return nil, errors.Errorf("unknown player %v", p)
}
