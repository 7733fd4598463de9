package main

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorgonia/dobutsu"
	"github.com/gorgonia/dobutsu/game/animalshogi"
	"github.com/gorgonia/dobutsu/search"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder(t *testing.T) {
	enc := NewEncoder()
	srv := httptest.NewServer(enc)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer c.Close()
	require.Eventually(t, func() bool { return enc.numClients() == 1 }, time.Second, 10*time.Millisecond)

	var g animalshogi.Game
	a := dobutsu.NewAgent("a", search.NewGreedy(g, search.WithSeed(1)))
	b := dobutsu.NewAgent("b", search.NewGreedy(g, search.WithSeed(2)))
	ar := dobutsu.NewArena(g, a, b, dobutsu.Config{PlyLimit: 1, Seed: 1})
	_, _, err = ar.Play(false, multiEncoder{enc})
	require.NoError(t, err)

	require.NoError(t, c.SetReadDeadline(time.Now().Add(time.Second)))
	_, msg, err := c.ReadMessage()
	require.NoError(t, err)

	var f frame
	require.NoError(t, json.Unmarshal(msg, &f))
	assert.Equal(t, ar.GameID(), f.GameID)
	assert.Equal(t, 1, f.Game)
	assert.Equal(t, 1, f.Ply)
	assert.Equal(t, "[B1B2]", f.Move, "greedy takes the chick")
	assert.True(t, f.Ended)
	assert.Equal(t, "None", f.Winner)
	assert.Contains(t, f.Board, "⎢")
}
