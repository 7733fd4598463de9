package search

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/gorgonia/dobutsu/game"
)

// ActionFormatter is implemented by games that can describe their actions in words.
type ActionFormatter interface {
	ActionString(a game.Action, p game.Player) string
}

type traceNode struct {
	parent int
	action game.Action
	mover  game.Player
	value  int
}

// trace is the tree of moves visited by a search. A nil trace records nothing.
type trace struct {
	g     game.Game
	nodes []traceNode
}

func newTrace(g game.Game) *trace { return &trace{g: g} }

func (t *trace) add(parent int, a game.Action, mover game.Player) int {
	if t == nil {
		return -1
	}
	t.nodes = append(t.nodes, traceNode{parent: parent, action: a, mover: mover})
	return len(t.nodes) - 1
}

func (t *trace) set(id, value int) {
	if t == nil || id < 0 {
		return
	}
	t.nodes[id].value = value
}

func (t *trace) label(n traceNode) string {
	move := strconv.Itoa(int(n.action))
	if f, ok := t.g.(ActionFormatter); ok {
		move = f.ActionString(n.action, n.mover)
	}
	return strconv.Quote(fmt.Sprintf("%v %s = %d", n.mover, move, n.value))
}

func (t *trace) toDot() string {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		panic(err)
	}
	g.SetDir(true)
	if t == nil {
		return g.String()
	}

	g.AddNode("G", "root", map[string]string{"shape": "point"})
	for i, n := range t.nodes {
		name := fmt.Sprintf("n%d", i)
		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    "box",
			"label":    t.label(n),
		}
		g.AddNode("G", name, attrs)

		parent := "root"
		if n.parent >= 0 {
			parent = fmt.Sprintf("n%d", n.parent)
		}
		g.AddEdge(parent, name, true, nil)
	}
	return g.String()
}
