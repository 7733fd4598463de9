package dobutsu

import (
	"testing"

	"github.com/gorgonia/dobutsu/game/animalshogi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetryAugmenter(t *testing.T) {
	var g animalshogi.Game
	s := g.InitialState()
	policy := make([]float32, animalshogi.ActionSpace)
	policy[57] = 2
	ex := Example{GameID: "x", Ply: 3, Board: animalshogi.EncodeFeatures(s), Policy: policy, Value: 1}

	aug := SymmetryAugmenter(g, animalshogi.EncodeFeatures)(s, ex)
	require.Len(t, aug, 2)
	assert.Equal(t, float32(1), aug[0].Policy[57], "policies are renormalised")
	assert.Equal(t, float32(1), aug[1].Policy[49])
	assert.Equal(t, float32(2), policy[57], "the input policy is left alone")
	for _, a := range aug {
		assert.Equal(t, "x", a.GameID)
		assert.Equal(t, 3, a.Ply)
		assert.Equal(t, float32(1), a.Value)
	}
	assert.NotEqual(t, aug[0].Board, aug[1].Board)
}

func TestBatch(t *testing.T) {
	var g animalshogi.Game
	s := g.InitialState()
	policy := make([]float32, animalshogi.ActionSpace)
	examples := []Example{
		{Board: animalshogi.EncodeFeatures(s), Policy: policy, Value: 1},
		{Board: animalshogi.EncodeFeatures(s), Policy: policy, Value: -1},
	}

	Xs, policies, values, err := Batch(examples, animalshogi.Features, animalshogi.Files, animalshogi.Ranks)
	require.NoError(t, err)
	assert.Equal(t, []int{2, animalshogi.Features, animalshogi.Files, animalshogi.Ranks}, []int(Xs.Shape()))
	assert.Equal(t, []int{2, animalshogi.ActionSpace}, []int(policies.Shape()))
	assert.Equal(t, []float32{1, -1}, values.Data())

	_, _, _, err = Batch(nil, 1, 1, 1)
	assert.Error(t, err)

	examples[1].Board = examples[1].Board[:3]
	_, _, _, err = Batch(examples, animalshogi.Features, animalshogi.Files, animalshogi.Ranks)
	assert.Error(t, err)
}
