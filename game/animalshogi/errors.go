package animalshogi

import (
	"fmt"

	"github.com/gorgonia/dobutsu/game"
	"github.com/pkg/errors"
)

type moveError struct {
	Move
	Owner game.Player
}

func (err moveError) Error() string {
	return fmt.Sprintf("Unable to make %v for %v", err.Move, err.Owner)
}

func (err moveError) Unwrap() error { return game.ErrInvalidAction }

func actionError(a game.Action) error {
	return errors.Wrapf(game.ErrInvalidAction, "action %d is outside [0, %d)", a, ActionSpace)
}

func malformed(format string, args ...interface{}) error {
	return errors.Wrapf(game.ErrMalformedState, format, args...)
}
