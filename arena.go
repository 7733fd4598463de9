package dobutsu

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"github.com/google/uuid"
	"github.com/gorgonia/dobutsu/game"
	"github.com/gorgonia/dobutsu/search"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

var _ game.MetaState = &Arena{}

// Arena plays games between two agents.
type Arena struct {
	r    *rand.Rand
	g    game.Game
	A, B *Agent

	// state
	state         game.State
	currentPlayer *Agent
	lastAction    game.Action
	ended         bool
	winner        game.Player

	plyLimit int
	enc      GameEncoder
	aug      Augmenter
	logger   zerolog.Logger

	name       string
	gameNumber int // which game is this in
	gameID     uuid.UUID
}

// MakeArena makes an arena given a game.
func MakeArena(g game.Game, a, b *Agent, conf Config) Arena {
	seed := conf.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	plyLimit := conf.PlyLimit
	if plyLimit <= 0 {
		plyLimit = DefaultPlyLimit
	}
	name := conf.Name
	if name == "" {
		name = g.Name()
	}
	logger := zerolog.Nop()
	if conf.Logger != nil {
		logger = *conf.Logger
	}

	return Arena{
		r:          rand.New(rand.NewSource(seed)),
		g:          g,
		A:          a,
		B:          b,
		state:      g.InitialState(),
		lastAction: game.NoAction,
		plyLimit:   plyLimit,
		enc:        conf.Encoder,
		aug:        conf.Augmenter,
		logger:     logger.With().Str("arena", name).Logger(),
		name:       name,
	}
}

func NewArena(g game.Game, a, b *Agent, conf Config) *Arena {
	ar := MakeArena(g, a, b, conf)
	return &ar
}

// Play plays a game, and returns a winner. If it is a draw, the returned player is None.
//
// If record is set, every move is recorded as an example: the encoded canonical state, a one-hot
// policy on the chosen action and the final result from the mover's point of view. Recording needs
// an Encoder in the Config.
func (a *Arena) Play(record bool, enc OutputEncoder) (winner game.Player, examples []Example, err error) {
	if record && a.enc == nil {
		return game.None, nil, errors.New("cannot record examples without a GameEncoder")
	}
	a.reset()
	log := a.logger.With().Str("game", a.gameID.String()).Int("number", a.gameNumber).Logger()
	log.Info().
		Str("first", a.currentPlayer.Name()).
		Str("second", a.opponent().Name()).
		Bool("record", record).
		Msg("Playing")

	for ply := 0; !a.ended; {
		p := a.state.ToMove()
		c := a.g.Canonical(a.state, p)
		best, err := a.currentPlayer.choose(c)
		if err != nil {
			return game.None, nil, errors.Wrapf(err, "%v (%s) failed to move at ply %d", p, a.currentPlayer.Name(), ply)
		}

		if record {
			examples = append(examples, a.example(c, p, best, ply)...)
		}

		next, _, err := a.g.NextState(a.state, p, best)
		if err != nil {
			return game.None, nil, errors.Wrapf(err, "%v (%s) played an illegal action", p, a.currentPlayer.Name())
		}
		log.Debug().Int("ply", ply).Stringer("player", p).Str("move", a.actionString(best, p)).Msg("Move")

		a.state = next
		a.lastAction = best
		a.switchPlayer()
		ply++
		a.checkEnd(ply)

		if enc != nil {
			if err := enc.Encode(a); err != nil {
				return game.None, nil, errors.WithMessage(err, "output encoder")
			}
		}
	}

	winner = a.winner
	for i := range examples {
		switch {
		case winner == game.None:
			examples[i].Value = 0
		case examples[i].Player == winner:
			examples[i].Value = 1
		default:
			examples[i].Value = -1
		}
	}
	a.A.result(winner)
	a.B.result(winner)

	winnerName := "none"
	switch winner {
	case a.A.Colour:
		winnerName = a.A.Name()
	case a.B.Colour:
		winnerName = a.B.Name()
	}
	log.Info().Stringer("winner", winner).Str("agent", winnerName).Int("plies", a.state.MoveNumber()).Msg("Done playing")
	return winner, examples, nil
}

func (a *Arena) Name() string       { return a.name }
func (a *Arena) GameNumber() int    { return a.gameNumber }
func (a *Arena) GameID() string     { return a.gameID.String() }
func (a *Arena) State() game.State  { return a.state }
func (a *Arena) Game() game.Game    { return a.g }
func (a *Arena) LastAction() string { return a.actionString(a.lastAction, a.state.ToMove().Opponent()) }

// Result returns whether the current game is over and who won it.
func (a *Arena) Result() (ended bool, winner game.Player) { return a.ended, a.winner }

// reset starts a new game with randomly assigned colours.
func (a *Arena) reset() {
	if a.r.Intn(2) == 0 {
		a.A.Colour = game.First
		a.B.Colour = game.Second
		a.currentPlayer = a.A
	} else {
		a.A.Colour = game.Second
		a.B.Colour = game.First
		a.currentPlayer = a.B
	}
	a.state = a.g.InitialState()
	a.lastAction = game.NoAction
	a.ended, a.winner = false, game.None
	a.gameNumber++
	a.gameID = uuid.New()
	a.checkEnd(0)
}

func (a *Arena) checkEnd(ply int) {
	p := a.state.ToMove()
	switch v := a.g.TerminalValue(a.state, p); {
	case v > 0:
		a.ended, a.winner = true, p
	case v < 0:
		a.ended, a.winner = true, p.Opponent()
	case ply >= a.plyLimit:
		a.ended, a.winner = true, game.None
	}
}

func (a *Arena) example(c game.State, p game.Player, best game.Action, ply int) []Example {
	policy := make([]float32, a.g.ActionSpace())
	policy[best] = 1
	ex := Example{
		GameID: a.gameID.String(),
		Ply:    ply,
		Player: p,
		Board:  a.enc(c),
		Policy: policy,
	}
	if !validPolicies(ex.Policy) {
		return nil
	}
	if a.aug != nil {
		return a.aug(c, ex)
	}
	return []Example{ex}
}

func (a *Arena) actionString(act game.Action, p game.Player) string {
	if act == game.NoAction {
		return ""
	}
	if f, ok := a.g.(search.ActionFormatter); ok {
		return f.ActionString(act, p)
	}
	return fmt.Sprintf("%d", act)
}

func (a *Arena) opponent() *Agent {
	if a.currentPlayer == a.A {
		return a.B
	}
	return a.A
}

func (a *Arena) switchPlayer() { a.currentPlayer = a.opponent() }

func validPolicies(policy []float32) bool {
	for _, v := range policy {
		if math32.IsInf(v, 0) {
			return false
		}
		if math32.IsNaN(v) {
			return false
		}
	}
	return true
}
