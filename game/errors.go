package game

import "github.com/pkg/errors"

var (
	// ErrInvalidAction is returned when an action is out of range or not legal for the state.
	ErrInvalidAction = errors.New("invalid action")

	// ErrMalformedState is returned when a state violates the invariants of its game.
	ErrMalformedState = errors.New("malformed state")
)
