package dobutsu

import (
	"sync"

	"github.com/gorgonia/dobutsu/game"
	"github.com/gorgonia/dobutsu/search"
)

// An Agent is a named search player together with its results.
type Agent struct {
	search.Player
	Colour game.Player // the side played in the current game

	// Statistics
	Wins float32
	Loss float32
	Draw float32
	sync.Mutex

	name    string
	actions int
}

func NewAgent(name string, p search.Player) *Agent {
	return &Agent{Player: p, name: name}
}

func (a *Agent) Name() string { return a.name }

// Record returns the wins, losses and draws so far.
func (a *Agent) Record() (wins, losses, draws float32) {
	a.Lock()
	defer a.Unlock()
	return a.Wins, a.Loss, a.Draw
}

// Actions returns the number of actions chosen so far.
func (a *Agent) Actions() int {
	a.Lock()
	defer a.Unlock()
	return a.actions
}

func (a *Agent) choose(s game.State) (game.Action, error) {
	act, err := a.ChooseAction(s)
	if err == nil {
		a.Lock()
		a.actions++
		a.Unlock()
	}
	return act, err
}

func (a *Agent) result(winner game.Player) {
	a.Lock()
	switch winner {
	case game.None:
		a.Draw++
	case a.Colour:
		a.Wins++
	default:
		a.Loss++
	}
	a.Unlock()
}

func (a *Agent) resetStats() {
	a.Lock()
	a.Wins = 0
	a.Loss = 0
	a.Draw = 0
	a.actions = 0
	a.Unlock()
}
