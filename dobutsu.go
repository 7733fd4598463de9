// Package dobutsu plays matches of Animal Shogi, or any other game.Game, between search players.
//
// A Match owns an Arena, plays a number of games in it and keeps Statistics of the results.
// Games can be recorded as Examples for an external trainer.
package dobutsu

import (
	"github.com/gorgonia/dobutsu/game"
	"github.com/pkg/errors"
)

// Match is the top level structure and the entry point of the API.
type Match struct {
	Arena
	Statistics

	outEnc OutputEncoder
}

// New creates a match between a and b.
func New(g game.Game, a, b *Agent, conf Config) *Match {
	return &Match{
		Arena:      MakeArena(g, a, b, conf),
		Statistics: makeStatistics(),
	}
}

// SetOutputEncoder sets the encoder every ply of every game is sent to.
func (m *Match) SetOutputEncoder(enc OutputEncoder) { m.outEnc = enc }

// Tally is the result of a series of games, from the point of view of agent A.
type Tally struct {
	Wins, Losses, Draws int
}

// Play plays n games. Examples are only returned when record is set.
func (m *Match) Play(n int, record bool) (tally Tally, examples []Example, err error) {
	for i := 0; i < n; i++ {
		winner, exs, err := m.Arena.Play(record, m.outEnc)
		if err != nil {
			return tally, examples, errors.Wrapf(err, "game %d", m.GameNumber())
		}
		examples = append(examples, exs...)

		switch winner {
		case game.None:
			tally.Draws++
		case m.A.Colour:
			tally.Wins++
		default:
			tally.Losses++
		}
		m.Statistics.update(m.A)
		m.Statistics.update(m.B)
	}
	if m.outEnc != nil {
		if err := m.outEnc.Flush(); err != nil {
			return tally, examples, errors.WithMessage(err, "flushing output")
		}
	}
	return tally, examples, nil
}

// Reset clears the agents' records and the statistics.
func (m *Match) Reset() {
	m.A.resetStats()
	m.B.resetStats()
	m.Statistics = makeStatistics()
}
