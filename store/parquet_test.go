package store

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/gorgonia/dobutsu"
	"github.com/gorgonia/dobutsu/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteExamples(t *testing.T) {
	id := uuid.NewString()
	examples := []dobutsu.Example{
		{GameID: id, Ply: 0, Player: game.First, Board: []float32{1, 0, 0.5}, Policy: []float32{0, 1}, Value: 1},
		{GameID: id, Ply: 1, Player: game.Second, Board: []float32{0, 1, 0}, Policy: []float32{1, 0}, Value: -1},
	}

	path := filepath.Join(t.TempDir(), "games", "examples.parquet")
	require.NoError(t, WriteExamples(path, examples, "test"))

	read, err := ReadExamples(path)
	require.NoError(t, err)
	if diff := cmp.Diff(examples, read); diff != "" {
		t.Errorf("examples differ after a round trip (-want +got):\n%s", diff)
	}

	assert.Error(t, WriteExamples(path, nil, "test"))
	_, err = ReadExamples(filepath.Join(t.TempDir(), "missing.parquet"))
	assert.Error(t, err)
}

func TestRows(t *testing.T) {
	rows := Rows([]dobutsu.Example{{GameID: "g", Ply: 3, Player: game.Second, Value: 0}}, "pit")
	require.Len(t, rows, 1)
	assert.Equal(t, int32(-1), rows[0].Player)
	assert.Equal(t, int32(3), rows[0].Ply)
	assert.Equal(t, "pit", rows[0].Source)
}
