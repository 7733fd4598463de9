package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorgonia/dobutsu"
	"github.com/gorgonia/dobutsu/game"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// frame is sent to every websocket client after each ply.
type frame struct {
	GameID string `json:"game_id,omitempty"`
	Game   int    `json:"game"`
	Ply    int    `json:"ply"`
	Move   string `json:"move,omitempty"`
	Board  string `json:"board"`
	Ended  bool   `json:"ended"`
	Winner string `json:"winner,omitempty"`
}

type identified interface {
	GameID() string
	LastAction() string
}

// Encoder streams every ply to the connected websocket clients.
// It implements dobutsu.OutputEncoder. Slow clients miss frames instead of holding up the game.
type Encoder struct {
	sync.Mutex
	clients map[chan []byte]struct{}
}

var upgrader = websocket.Upgrader{} // use default options

func NewEncoder() *Encoder {
	return &Encoder{clients: make(map[chan []byte]struct{})}
}

func (enc *Encoder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("upgrade")
		return
	}
	defer c.Close()

	ch := make(chan []byte, 64)
	enc.Lock()
	enc.clients[ch] = struct{}{}
	enc.Unlock()
	defer func() {
		enc.Lock()
		delete(enc.clients, ch)
		enc.Unlock()
	}()

	for {
		select {
		case b := <-ch:
			if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
				log.Warn().Err(err).Msg("write")
				return
			}
		case <-r.Context().Done():
			return
		}
	}
}

// Encode a game
func (enc *Encoder) Encode(ms game.MetaState) error {
	s := ms.State()
	ended, winner := ms.Result()
	f := frame{
		Game:  ms.GameNumber(),
		Ply:   s.MoveNumber(),
		Board: fmt.Sprintf("%v", s),
		Ended: ended,
	}
	if id, ok := ms.(identified); ok {
		f.GameID = id.GameID()
		f.Move = id.LastAction()
	}
	if ended {
		f.Winner = winner.String()
	}
	b, err := json.Marshal(f)
	if err != nil {
		return errors.WithStack(err)
	}

	enc.Lock()
	defer enc.Unlock()
	for ch := range enc.clients {
		select {
		case ch <- b:
		default:
		}
	}
	return nil
}

// Flush ...
func (enc *Encoder) Flush() error { return nil }

func (enc *Encoder) numClients() int {
	enc.Lock()
	defer enc.Unlock()
	return len(enc.clients)
}

// multiEncoder sends every meta state to each of its encoders in turn.
type multiEncoder []dobutsu.OutputEncoder

func (m multiEncoder) Encode(ms game.MetaState) error {
	for _, enc := range m {
		if err := enc.Encode(ms); err != nil {
			return err
		}
	}
	return nil
}

func (m multiEncoder) Flush() error {
	for _, enc := range m {
		if err := enc.Flush(); err != nil {
			return err
		}
	}
	return nil
}
