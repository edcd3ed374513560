package graph_test

import (
	"fmt"

	"github.com/slabwalk/slabwalk/pkg/arena"
	"github.com/slabwalk/slabwalk/pkg/graph"
)

// module is a sample payload: a named node with outgoing edges.
type module struct {
	name string
	deps []arena.Key
}

func (m *module) Children() []arena.Key { return m.deps }

func ExampleGraph() {
	// Build a small dependency graph: app depends on lib, lib on core.
	g := graph.New[*module]()
	core := g.Insert(&module{name: "core"})
	lib := g.Insert(&module{name: "lib", deps: []arena.Key{core}})
	app := g.Insert(&module{name: "app", deps: []arena.Key{lib}})

	n, _ := g.Node(app)
	fmt.Println("nodes:", g.Len())
	fmt.Println("app deps:", len(n.Children()))
	// Output:
	// nodes: 3
	// app deps: 1
}

func ExampleGraph_Remove() {
	g := graph.New[*module]()
	k := g.Insert(&module{name: "temp"})
	g.Remove(k)

	_, ok := g.Node(k)
	fmt.Println("resolves after remove:", ok)
	// Output:
	// resolves after remove: false
}
