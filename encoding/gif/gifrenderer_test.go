package gif

import (
	"bytes"
	stdgif "image/gif"
	"testing"

	"github.com/gorgonia/dobutsu/game"
	"github.com/gorgonia/dobutsu/game/animalshogi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type meta struct {
	s      game.State
	ended  bool
	winner game.Player
}

func (m meta) Name() string                { return "Animal Shogi" }
func (m meta) GameNumber() int             { return 1 }
func (m meta) State() game.State           { return m.s }
func (m meta) Result() (bool, game.Player) { return m.ended, m.winner }
func (m meta) LastAction() string          { return "[B1B2]" }

func TestEncoder(t *testing.T) {
	var g animalshogi.Game
	var buf bytes.Buffer
	enc := NewGifEncoder(&buf, 600, 800)
	assert.Error(t, enc.Flush(), "nothing has been encoded yet")

	s := g.InitialState()
	require.NoError(t, enc.Encode(meta{s: s}))
	next, _, err := g.NextState(s, game.First, 66)
	require.NoError(t, err)
	require.NoError(t, enc.Encode(meta{s: next, ended: true, winner: game.First}))
	assert.Equal(t, 2, enc.Frames())

	require.NoError(t, enc.Flush())
	decoded, err := stdgif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, decoded.Image, 2)
	assert.Equal(t, []int{50, 300}, decoded.Delay)
	assert.LessOrEqual(t, decoded.Image[0].Bounds().Dx(), 800)
	assert.LessOrEqual(t, decoded.Image[0].Bounds().Dy(), 600)
	assert.Equal(t, decoded.Image[0].Bounds(), decoded.Image[1].Bounds(), "every frame has the size of the first")
}

func TestLines(t *testing.T) {
	var g animalshogi.Game
	s := g.InitialState()
	text := lines(meta{s: s})
	require.Len(t, text, 7, "four ranks, the hand, the name and the move")
	assert.Equal(t, "hand: -", text[4])
	assert.Equal(t, "Animal Shogi", text[5])
	assert.Equal(t, "Game 1, move 0 [B1B2]", text[6])

	text = lines(meta{s: s, ended: true, winner: game.Second})
	assert.Equal(t, "Winner: Second", text[len(text)-1])
}
