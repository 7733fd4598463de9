package animalshogi

import (
	"testing"

	"github.com/gorgonia/dobutsu/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, Piece{game.First, Lion}, b.At(Square{1, 0}))
	assert.Equal(t, Piece{game.Second, Lion}, b.At(Square{1, 3}))
	assert.Equal(t, Piece{game.First, Chick}, b.At(Square{1, 1}))
	assert.Equal(t, Piece{game.Second, Giraffe}, b.At(Square{0, 3}))
	assert.True(t, b.At(Square{5, 5}).IsEmpty())
	assert.Equal(t, 0, b.Score(game.First))
	assert.Equal(t, game.None, b.Repeater())

	// the initial position is point symmetric
	for f := 0; f < Files; f++ {
		for r := 0; r < Ranks; r++ {
			sq := Square{f, r}
			assert.Equal(t, b.At(sq).flip(), b.At(sq.reflect()), "%v", sq)
		}
	}
}

func TestBoard_LegalMoves(t *testing.T) {
	b := NewBoard()
	moves := b.LegalMoves(game.First)
	expected := []Move{
		{From: Square{1, 0}, To: Square{0, 1}},
		{From: Square{1, 0}, To: Square{2, 1}},
		{From: Square{1, 1}, To: Square{1, 2}},
		{From: Square{2, 0}, To: Square{2, 1}},
	}
	assert.Equal(t, expected, moves)
	assert.True(t, b.HasLegalMoves(game.Second))
	assert.Empty(t, b.LegalMoves(game.None))

	for _, m := range moves {
		assert.True(t, b.Check(m, game.First), "%v", m)
		assert.False(t, b.Check(m, game.Second), "%v", m)
	}
}

func TestBoard_Apply(t *testing.T) {
	b := NewBoard()
	capture := Move{From: Square{1, 1}, To: Square{1, 2}}
	require.NoError(t, b.Apply(capture, game.First))
	assert.Equal(t, 1, b.InHand(game.First, Chick))
	assert.Equal(t, 2, b.Score(game.First))
	assert.Equal(t, -2, b.Score(game.Second))

	// drops are offered once a piece is held
	drop := Move{Drop: true, Kind: Chick, To: Square{0, 1}}
	assert.True(t, b.Check(drop, game.First))
	assert.False(t, b.Check(drop, game.Second))
	assert.False(t, b.Check(Move{Drop: true, Kind: Chick, To: Square{1, 0}}, game.First), "occupied square")

	before := b.Clone()
	illegal := Move{From: Square{0, 0}, To: Square{0, 1}}
	err := b.Apply(illegal, game.First)
	assert.ErrorIs(t, err, game.ErrInvalidAction)
	assert.True(t, before.eq(b), "an illegal move must leave the board untouched")

	require.NoError(t, b.Apply(drop, game.First))
	assert.Equal(t, 0, b.InHand(game.First, Chick))
	assert.Equal(t, Piece{game.First, Chick}, b.At(Square{0, 1}))
	assert.Equal(t, 2, b.Score(game.First), "drops do not change material")
}

func TestBoard_Promotion(t *testing.T) {
	s, err := Parse(`
		. l .
		C . .
		. . .
		. L .`, game.First)
	require.NoError(t, err)
	b := s.Board().Clone()
	require.NoError(t, b.Apply(Move{From: Square{0, 2}, To: Square{0, 3}}, game.First))
	assert.Equal(t, Piece{game.First, Hen}, b.At(Square{0, 3}))

	// a captured Hen enters the hand as a Chick
	require.NoError(t, b.Apply(Move{From: Square{1, 3}, To: Square{0, 3}}, game.Second))
	assert.Equal(t, 1, b.InHand(game.Second, Chick))
	assert.Equal(t, Piece{game.Second, Lion}, b.At(Square{0, 3}))

	// dropped chicks do not promote
	require.NoError(t, b.Apply(Move{From: Square{1, 0}, To: Square{1, 1}}, game.First))
	require.NoError(t, b.Apply(Move{Drop: true, Kind: Chick, To: Square{2, 0}}, game.Second))
	assert.Equal(t, Piece{game.Second, Chick}, b.At(Square{2, 0}))
}

func TestBoard_LionCapture(t *testing.T) {
	b := NewBoard()
	b.grid[1][0] = Piece{}
	b.grid[1][1] = Piece{}
	b.grid[1][2] = Piece{game.First, Lion}
	require.NoError(t, b.Apply(Move{From: Square{1, 3}, To: Square{1, 2}}, game.Second))
	for _, k := range reserveKinds {
		assert.Equal(t, 0, b.InHand(game.Second, k), "Lions are never held")
	}
	_, ok := b.lion(game.First)
	assert.False(t, ok)
}

func TestBoard_Repetition(t *testing.T) {
	b := NewBoard()
	cycle := []struct {
		Move
		owner game.Player
	}{
		{Move{From: Square{2, 0}, To: Square{2, 1}}, game.First},
		{Move{From: Square{0, 3}, To: Square{0, 2}}, game.Second},
		{Move{From: Square{2, 1}, To: Square{2, 0}}, game.First},
		{Move{From: Square{0, 2}, To: Square{0, 3}}, game.Second},
	}
	for i := 0; i < 8; i++ {
		c := cycle[i%len(cycle)]
		require.NoError(t, b.Apply(c.Move, c.owner))
		assert.Equal(t, game.None, b.Repeater(), "move %d", i)
	}
	require.NoError(t, b.Apply(cycle[0].Move, cycle[0].owner))
	assert.Equal(t, game.First, b.Repeater())
}

func TestBoard_flip(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.Apply(Move{From: Square{1, 1}, To: Square{1, 2}}, game.First))

	f := b.flip()
	assert.True(t, f.flipped)
	assert.Equal(t, 1, f.InHand(game.Second, Chick))
	assert.Equal(t, Piece{game.Second, Chick}, f.At(Square{1, 1}))
	assert.Equal(t, b.positionHash(), f.positionHash(), "hashes are independent of the orientation")
	assert.Equal(t, b.Score(game.First), f.Score(game.Second))
	assert.True(t, b.eq(f.flip()))
}
