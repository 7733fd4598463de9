// Package search provides fixed-depth players for two player games that implement game.Game.
//
// Every player picks an action for whoever is to move in the state it is given. Drivers usually
// hand over states in canonical form, so the side to move is game.First.
package search

import (
	"time"

	"github.com/gorgonia/dobutsu/game"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrNoLegalActions is returned when the side to move has nothing to play.
var ErrNoLegalActions = errors.New("no legal actions")

const (
	// Win is the value of a position that has been won by the player it is scored for.
	Win = 255
	// Loss is the value of a lost position.
	Loss = -Win
)

// Player chooses an action for the side to move.
type Player interface {
	ChooseAction(s game.State) (game.Action, error)
}

type settings struct {
	rng       *rand.Rand
	alphaBeta bool
	traced    bool
}

// Option configures a player.
type Option func(s *settings)

// WithSeed seeds the random number generator used to break ties.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the random number generator used to break ties.
func WithRand(rng *rand.Rand) Option {
	return func(s *settings) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithAlphaBeta enables alpha-beta pruning below the root. It does not change the chosen action.
func WithAlphaBeta() Option {
	return func(s *settings) { s.alphaBeta = true }
}

// WithTrace records the tree searched by the last call to ChooseAction. Only Minimax records one.
func WithTrace() Option {
	return func(s *settings) { s.traced = true }
}

func newSettings(opts []Option) settings {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return s
}

// pick returns one of the candidates uniformly at random.
func pick(rng *rand.Rand, candidates []game.Action) game.Action {
	if len(candidates) == 1 {
		return candidates[0]
	}
	return candidates[rng.Intn(len(candidates))]
}
