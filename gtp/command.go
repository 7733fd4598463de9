package gtp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gorgonia/dobutsu/game"
	"github.com/pkg/errors"
)

type Command interface {
	Do(id int, args []string, e *Engine) (int, string, error)
}

type stdlib func(e *Engine) string

type stdlib2 func(e *Engine, args []string) (string, error)

func (f stdlib) Do(id int, args []string, e *Engine) (int, string, error) {
	str := f(e)
	return id, str, nil
}

func (f stdlib2) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e, args)
	return id, str, err
}

func protocolVersion(e *Engine) string { return "2" }
func name(e *Engine) string            { return e.name }
func version(e *Engine) string         { return e.version }

func listCommands(e *Engine) string {
	cmds := make([]string, 0, len(e.known))
	for c := range e.known {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)
	return strings.Join(cmds, "\n")
}

func quit(e *Engine) string { e.done = true; return "" }

func clearBoard(e *Engine) string {
	e.s = e.g.InitialState()
	e.history = e.history[:0]
	return ""
}

func showboard(e *Engine) string { return strings.TrimRight(fmt.Sprintf("\n%+v", e.s), "\n") }

func legalMoves(e *Engine) string {
	p := e.s.ToMove()
	if e.over() {
		return ""
	}
	actions := e.g.LegalActions(e.s, p)
	moves := make([]string, 0, len(actions))
	for _, a := range actions {
		moves = append(moves, e.g.ActionString(a, p))
	}
	return strings.Join(moves, " ")
}

func finalScore(e *Engine) string {
	p := e.s.ToMove()
	switch v := e.g.TerminalValue(e.s, p); {
	case v > 0:
		return strings.ToLower(p.String())
	case v < 0:
		return strings.ToLower(p.Opponent().String())
	}
	return "ongoing"
}

func undo(e *Engine, args []string) (string, error) {
	if len(e.history) == 0 {
		return "", errors.New("cannot undo")
	}
	last := len(e.history) - 1
	e.s = e.history[last]
	e.history = e.history[:last]
	return "", nil
}

func knownCommand(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"known_command\"")
	}
	if _, ok := e.known[args[0]]; ok {
		return "true", nil
	}
	return "false", nil
}

// colour checks that an optional colour argument names the side to move, and strips it.
func colour(e *Engine, args []string) ([]string, error) {
	if len(args) == 0 {
		return args, nil
	}
	var p game.Player
	switch args[0] {
	case "first", "b", "black":
		p = game.First
	case "second", "w", "white":
		p = game.Second
	default:
		return args, nil
	}
	if p != e.s.ToMove() {
		return nil, errors.Errorf("%v is not to move", p)
	}
	return args[1:], nil
}

func play(e *Engine, args []string) (string, error) {
	args, err := colour(e, args)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"play\"")
	}
	if e.over() {
		return "", errors.New("the game is over")
	}
	a, err := e.g.ParseAction(e.s, args[0])
	if err != nil {
		return "", errors.WithMessage(err, "illegal move")
	}
	return "", e.apply(a)
}

func genmove(e *Engine, args []string) (string, error) {
	if _, err := colour(e, args); err != nil {
		return "", err
	}
	if e.Generate == nil {
		return "", errors.New("Unable to generate moves. No generator found")
	}
	if e.over() {
		return "", errors.New("the game is over")
	}
	p := e.s.ToMove()
	a, err := e.Generate.ChooseAction(e.g.Canonical(e.s, p))
	if err != nil {
		return "", err
	}
	if err = e.apply(a); err != nil {
		return "", err
	}
	return e.g.ActionString(a, p), nil
}

func StandardLib() map[string]Command {
	return map[string]Command{
		"protocol_version": stdlib(protocolVersion),
		"name":             stdlib(name),
		"version":          stdlib(version),
		"list_commands":    stdlib(listCommands),
		"quit":             stdlib(quit),
		"clear_board":      stdlib(clearBoard),
		"showboard":        stdlib(showboard),
		"legal_moves":      stdlib(legalMoves),
		"final_score":      stdlib(finalScore),

		"known_command": stdlib2(knownCommand),
		"undo":          stdlib2(undo),
		"play":          stdlib2(play),
		"genmove":       stdlib2(genmove),
	}
}
