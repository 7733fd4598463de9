package animalshogi

import (
	"fmt"
	"testing"

	"github.com/gorgonia/dobutsu/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	s, err := Parse(fmt.Sprintf("%v", NewState()), game.First)
	require.NoError(t, err)
	assert.True(t, s.Eq(NewState()), "Format and Parse should round trip\n%v", s)

	s, err = Parse(`
		|g l e|
		|. . .|
		|. C .|
		|E L G|
		hand: C`, game.Second)
	require.NoError(t, err)
	assert.Equal(t, game.Second, s.ToMove())
	assert.Equal(t, 1, s.Board().InHand(game.First, Chick))
	assert.Equal(t, 0, s.Board().InHand(game.Second, Chick))
	assert.Equal(t, "⎢ g l e ⎥\n⎢ · · · ⎥\n⎢ · C · ⎥\n⎢ E L G ⎥\nhand: C", fmt.Sprintf("%v", s.Board()))
}

func TestParse_Malformed(t *testing.T) {
	testCases := []struct {
		name   string
		text   string
		toMove game.Player
	}{
		{"too few rows", "g l e\n. c .\nE L G", game.First},
		{"too many squares", "g l e .\n. c .\n. C .\nE L G", game.First},
		{"too few squares", "g l\n. c .\n. C .\nE L G", game.First},
		{"unknown glyph", "g l e\n. x .\n. C .\nE L G", game.First},
		{"two lions", "g l e\n. c .\n. L .\nE L G", game.First},
		{"too many chicks", "g l e\n. c .\n. C .\nE L G\nhand: C", game.First},
		{"promoted piece in hand", "g l e\n. . .\n. C .\nE L G\nhand: H", game.First},
		{"lion in hand", "g . e\n. c .\n. C .\nE L G\nhand: l", game.First},
		{"nobody to move", "g l e\n. c .\n. C .\nE L G", game.None},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.text, tc.toMove)
			assert.ErrorIs(t, err, game.ErrMalformedState)
		})
	}
}

func TestEncodeFeatures(t *testing.T) {
	var g Game
	s := g.InitialState()
	enc := EncodeFeatures(s)
	require.Len(t, enc, EncodedLen)

	lion := func(enc []float32, plane int) float32 { return enc[plane*squares+1*Ranks+0] }
	assert.Equal(t, float32(1), lion(enc, int(Lion)-1), "mover's lion")
	assert.Equal(t, float32(1), enc[(Features-1)*squares])

	// after First takes a chick, Second sees it in the opponent's hand
	next := play(t, s, 66)
	enc = EncodeFeatures(next)
	assert.Equal(t, float32(1), lion(enc, int(Lion)-1), "the encoding is seen from the side to move")
	opponentChicks := enc[(piecePlanes+numReserveKinds)*squares]
	assert.Equal(t, float32(0.5), opponentChicks)
	assert.Equal(t, float32(0), enc[piecePlanes*squares])
	assert.Equal(t, float32(-1), enc[(Features-1)*squares])

	// canonical states of Second keep the real side to move
	canon := EncodeFeatures(g.Canonical(next, game.Second))
	assert.Equal(t, enc, canon)
	assert.Equal(t, float32(1), EncodeFeatures(g.Canonical(s, game.First))[(Features-1)*squares])
}

func TestParseMove(t *testing.T) {
	testCases := []struct {
		text string
		want Move
	}{
		{"[B1B2]", Move{From: Square{1, 1}, To: Square{1, 2}}},
		{"b0a1", Move{From: Square{1, 0}, To: Square{0, 1}}},
		{" [CB2] ", Move{Drop: true, Kind: Chick, To: Square{1, 2}}},
		{"ga0", Move{Drop: true, Kind: Giraffe, To: Square{0, 0}}},
	}
	for _, tc := range testCases {
		m, err := ParseMove(tc.text)
		require.NoError(t, err, tc.text)
		assert.Equal(t, tc.want, m)
		if tc.text == "[B1B2]" {
			assert.Equal(t, tc.text, m.String())
		}
	}

	for _, bad := range []string{"", "B1", "D0A1", "A4A3", "LB2", "HB2", "B1B2B3"} {
		_, err := ParseMove(bad)
		assert.Error(t, err, bad)
	}

	var g Game
	s := g.InitialState()
	a, err := g.ParseAction(s, "b1b2")
	require.NoError(t, err)
	assert.Equal(t, game.Action(66), a)
	_, err = g.ParseAction(s, "a0a1")
	assert.ErrorIs(t, err, game.ErrInvalidAction)

	// Second writes moves in the same coordinates as First
	next := play(t, s, 66)
	a, err = g.ParseAction(next, "b3b2")
	require.NoError(t, err)
	assert.Equal(t, game.Action(53), a)
}
