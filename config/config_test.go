package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Games)
	assert.Equal(t, 100, cfg.PlyLimit)
	assert.Equal(t, "minimax:3", cfg.PlayerA)
	assert.Equal(t, "random", cfg.PlayerB)
	assert.Empty(t, cfg.GifPath)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)
}

func TestLoad_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pit.yaml")
	yaml := "games: 3\nply_limit: 40\nplayer_b: greedy\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	t.Setenv("DOBUTSU_PLY_LIMIT", "50")

	flags := Flags()
	require.NoError(t, flags.Parse([]string{"--a", "alphabeta:2", "--seed", "9"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Games, "from the file")
	assert.Equal(t, 50, cfg.PlyLimit, "the environment beats the file")
	assert.Equal(t, "greedy", cfg.PlayerB)
	assert.Equal(t, "alphabeta:2", cfg.PlayerA, "flags beat everything")
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)

	flags := Flags()
	require.NoError(t, flags.Parse([]string{"--games", "0"}))
	_, err = Load("", flags)
	assert.Error(t, err)

	flags = Flags()
	require.NoError(t, flags.Parse([]string{"--b", "minimax"}))
	_, err = Load("", flags)
	assert.Error(t, err)

	flags = Flags()
	require.NoError(t, flags.Parse([]string{"--log-level", "loud"}))
	_, err = Load("", flags)
	assert.Error(t, err)
}

func TestParsePlayer(t *testing.T) {
	testCases := []struct {
		in      string
		want    PlayerSpec
		wantErr bool
	}{
		{"random", PlayerSpec{Kind: Random}, false},
		{" Greedy ", PlayerSpec{Kind: Greedy}, false},
		{"minimax:3", PlayerSpec{Kind: Minimax, Depth: 3}, false},
		{"alphabeta:5", PlayerSpec{Kind: AlphaBeta, Depth: 5}, false},
		{"minimax:0", PlayerSpec{}, true},
		{"minimax:x", PlayerSpec{}, true},
		{"random:2", PlayerSpec{}, true},
		{"mcts", PlayerSpec{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePlayer(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) PlayerSpec {
	t.Helper()
	p, err := ParsePlayer(s)
	require.NoError(t, err)
	return p
}
