// Package gtp implements a line based text protocol for driving a game engine, modelled on the Go
// Text Protocol: https://www.lysator.liu.se/%7Egunnar/gtp/gtp2-spec-draft2/gtp2-spec.html
//
// Moves are written in the notation of the game being played, e.g. "b1b2" or "cb2" in Animal Shogi.
package gtp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gorgonia/dobutsu/game"
	"github.com/gorgonia/dobutsu/search"
	"github.com/pkg/errors"
)

// Game is a game.Game that can read and write moves as text.
type Game interface {
	game.Game
	ParseAction(s game.State, text string) (game.Action, error)
	ActionString(a game.Action, p game.Player) string
}

type Engine struct {
	g       Game
	s       game.State
	history []game.State

	known map[string]Command
	done  bool

	ch  chan string
	ret chan string

	// Generate picks the engine's moves. It is handed canonical states.
	Generate      search.Player
	name, version string
}

// New creates an engine at the initial position of g. If known is nil, StandardLib is used.
func New(g Game, name, version string, known map[string]Command) *Engine {
	if known == nil {
		known = StandardLib()
	}
	return &Engine{
		g:       g,
		s:       g.InitialState(),
		known:   known,
		name:    name,
		version: version,
	}
}

// Start runs the engine in a goroutine. Commands are sent on input and each response comes back on
// output. Output is closed after "quit".
func (e *Engine) Start() (input, output chan string) {
	e.ch = make(chan string)
	e.ret = make(chan string)
	go e.start()
	return e.ch, e.ret
}

// Serve reads commands line by line from r and writes the responses to w until "quit" or EOF.
func (e *Engine) Serve(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for !e.done && sc.Scan() {
		resp, ok := e.exec(sc.Text())
		if !ok {
			continue
		}
		if _, err := io.WriteString(w, resp); err != nil {
			return errors.Wrap(err, "unable to write response")
		}
	}
	return sc.Err()
}

// State returns the current position.
func (e *Engine) State() game.State { return e.s }

func (e *Engine) start() {
	defer close(e.ret)
	for cmd := range e.ch {
		resp, ok := e.exec(cmd)
		if !ok {
			continue
		}
		e.ret <- resp
		if e.done {
			return
		}
	}
}

func (e *Engine) exec(cmd string) (resp string, ok bool) {
	id, x, args, err := e.parse(cmd)
	if x == nil && err == nil {
		return "", false
	}
	if err != nil {
		return handleErr(id, err), true
	}
	id, result, err := x.Do(id, args, e)
	return handleResult(id, result, err), true
}

func (e *Engine) parse(cmd string) (id int, x Command, args []string, err error) {
	tokens := strings.Fields(preprocess(cmd))
	if len(tokens) == 0 {
		return -1, nil, nil, nil
	}
	if id, err = strconv.Atoi(tokens[0]); err == nil {
		// we've consumed ID
		tokens = tokens[1:]
	} else {
		// ID is optional
		err = nil
		id = -1
	}

	if len(tokens) == 0 {
		return id, nil, nil, nil // an ID on its own is ignored
	}

	var ok bool
	if x, ok = e.known[tokens[0]]; !ok {
		return id, nil, nil, errors.Errorf("Unknown command %q", tokens[0])
	}
	if len(tokens) > 1 {
		args = tokens[1:]
	}
	return
}

// apply plays a for the side to move and remembers the previous position for undo.
func (e *Engine) apply(a game.Action) error {
	next, _, err := e.g.NextState(e.s, e.s.ToMove(), a)
	if err != nil {
		return err
	}
	e.history = append(e.history, e.s)
	e.s = next
	return nil
}

// over reports whether the current position is terminal.
func (e *Engine) over() bool {
	return e.g.TerminalValue(e.s, e.s.ToMove()) != 0
}

func preprocess(a string) string {
	if i := strings.IndexByte(a, '#'); i >= 0 {
		a = a[:i]
	}
	return strings.ToLower(strings.TrimSpace(a))
}

func handleErr(id int, err error) string {
	if id != -1 {
		return fmt.Sprintf("? %d %v\n\n", id, err)
	}
	return fmt.Sprintf("? %v\n\n", err)
}

func handleResult(id int, result string, err error) string {
	if err != nil {
		return handleErr(id, err)
	}

	if id != -1 {
		return fmt.Sprintf("= %d %v\n\n", id, result)
	}
	return fmt.Sprintf("= %v\n\n", result)
}
