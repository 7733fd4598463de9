package dobutsu

import (
	"io"

	"github.com/gorgonia/dobutsu/game"
	"github.com/rs/zerolog"
)

// DefaultPlyLimit is the number of plies after which a game is declared a draw.
const DefaultPlyLimit = 100

type Config struct {
	Name     string
	PlyLimit int    // games longer than this are draws. Defaults to DefaultPlyLimit
	Seed     uint64 // seeds the colour assignment. 0 uses the clock

	// extensions
	Encoder   GameEncoder
	Augmenter Augmenter
	Logger    *zerolog.Logger
}

// GameEncoder encodes a game state as a slice of floats
type GameEncoder func(s game.State) []float32

// OutputEncoder encodes the entire meta state as whatever.
//
// An example OutputEncoder is the GifEncoder. Another example would be a websocket stream.
type OutputEncoder interface {
	Encode(ms game.MetaState) error
	Flush() error
}

// Augmenter takes an example and the canonical state it was recorded in, and creates more examples from it.
type Augmenter func(s game.State, ex Example) []Example

// Example is a representation of an example.
type Example struct {
	GameID string
	Ply    int
	Player game.Player // the side that moved

	Board  []float32
	Policy []float32
	Value  float32
}

// Inferer is anything that can infer given an input.
type Inferer interface {
	Infer(a []float32) (policy []float32, value float32, err error)
	io.Closer
}
