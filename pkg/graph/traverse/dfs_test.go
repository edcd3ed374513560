package traverse_test

import (
	"errors"
	"testing"

	"github.com/slabwalk/slabwalk/pkg/arena"
	"github.com/slabwalk/slabwalk/pkg/graph"
	"github.com/slabwalk/slabwalk/pkg/graph/traverse"
)

// node is the payload used across traversal tests: a bare edge list.
type node struct {
	children []arena.Key
}

func (n *node) Children() []arena.Key { return n.children }

// link points parent at the given children, after the keys exist.
func link(g *graph.Graph[*node], parent arena.Key, children ...arena.Key) {
	n, ok := g.Node(parent)
	if !ok {
		panic("link: unknown parent")
	}
	n.children = append(n.children, children...)
}

func keysEqual(a, b []arena.Key) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDepthFirst_Chain(t *testing.T) {
	g := graph.New[*node]()
	a := g.Insert(&node{})
	b := g.Insert(&node{})
	c := g.Insert(&node{})
	link(g, a, b)
	link(g, b, c)

	order, err := traverse.DepthFirst(g, a)
	if err != nil {
		t.Fatalf("DepthFirst() error = %v", err)
	}
	if want := []arena.Key{a, b, c}; !keysEqual(order, want) {
		t.Errorf("DepthFirst() = %v, want %v", order, want)
	}
}

func TestDepthFirst_DiamondVisitsOnce(t *testing.T) {
	//   a
	//  / \
	// b   c
	//  \ /
	//   d
	g := graph.New[*node]()
	a := g.Insert(&node{})
	b := g.Insert(&node{})
	c := g.Insert(&node{})
	d := g.Insert(&node{})
	link(g, a, b, c)
	link(g, b, d)
	link(g, c, d)

	order, err := traverse.DepthFirst(g, a)
	if err != nil {
		t.Fatalf("DepthFirst() error = %v", err)
	}
	if len(order) != 4 {
		t.Fatalf("DepthFirst() emitted %d keys, want 4: %v", len(order), order)
	}
	if order[0] != a {
		t.Errorf("DepthFirst() starts with %v, want %v", order[0], a)
	}
	seen := map[arena.Key]int{}
	for _, k := range order {
		seen[k]++
	}
	for _, k := range []arena.Key{a, b, c, d} {
		if seen[k] != 1 {
			t.Errorf("node %v emitted %d times, want 1", k, seen[k])
		}
	}
}

func TestDepthFirst_CycleTerminates(t *testing.T) {
	g := graph.New[*node]()
	a := g.Insert(&node{})
	b := g.Insert(&node{})
	link(g, a, b)
	link(g, b, a)

	order, err := traverse.DepthFirst(g, a)
	if err != nil {
		t.Fatalf("DepthFirst() error = %v", err)
	}
	if want := []arena.Key{a, b}; !keysEqual(order, want) {
		t.Errorf("DepthFirst() = %v, want %v", order, want)
	}
}

func TestDepthFirst_UnreachableExcluded(t *testing.T) {
	g := graph.New[*node]()
	a := g.Insert(&node{})
	b := g.Insert(&node{})
	g.Insert(&node{}) // island
	link(g, a, b)

	order, err := traverse.DepthFirst(g, a)
	if err != nil {
		t.Fatalf("DepthFirst() error = %v", err)
	}
	if len(order) != 2 {
		t.Errorf("DepthFirst() emitted %d keys, want 2", len(order))
	}
}

func TestDepthFirst_DanglingChildFails(t *testing.T) {
	g := graph.New[*node]()
	a := g.Insert(&node{})
	b := g.Insert(&node{})
	link(g, a, b)
	g.Remove(b)

	if _, err := traverse.DepthFirst(g, a); !errors.Is(err, graph.ErrNodeNotFound) {
		t.Errorf("DepthFirst() error = %v, want ErrNodeNotFound", err)
	}
}

func TestDepthFirst_UnknownStartFails(t *testing.T) {
	g := graph.New[*node]()
	g.Insert(&node{})

	if _, err := traverse.DepthFirst(g, arena.Key{}); !errors.Is(err, graph.ErrNodeNotFound) {
		t.Errorf("DepthFirst() error = %v, want ErrNodeNotFound", err)
	}
}

func TestDepthFirstFrom_RevisitAfterPop(t *testing.T) {
	// Diamond a→{b,c}, b→d, c→d. With on-stack-only de-duplication, d is
	// popped once via c's branch and rediscovered by b after the pop, so
	// it is emitted twice.
	g := graph.New[*node]()
	a := g.Insert(&node{})
	b := g.Insert(&node{})
	c := g.Insert(&node{})
	d := g.Insert(&node{})
	link(g, a, b, c)
	link(g, b, d)
	link(g, c, d)

	order, err := traverse.DepthFirstFrom(g, []arena.Key{a})
	if err != nil {
		t.Fatalf("DepthFirstFrom() error = %v", err)
	}
	count := 0
	for _, k := range order {
		if k == d {
			count++
		}
	}
	if count != 2 {
		t.Errorf("node d emitted %d times, want 2: %v", count, order)
	}
}

func TestDepthFirstFrom_PendingNodeNotDuplicated(t *testing.T) {
	// b→{d,e}, e→d. e is popped while d still waits on the stack, so e's
	// rediscovery of d is suppressed and d is emitted once.
	g := graph.New[*node]()
	b := g.Insert(&node{})
	d := g.Insert(&node{})
	e := g.Insert(&node{})
	link(g, b, d, e)
	link(g, e, d)

	order, err := traverse.DepthFirstFrom(g, []arena.Key{b})
	if err != nil {
		t.Fatalf("DepthFirstFrom() error = %v", err)
	}
	if want := []arena.Key{b, e, d}; !keysEqual(order, want) {
		t.Errorf("DepthFirstFrom() = %v, want %v", order, want)
	}
}

func TestDepthFirstFrom_MultipleStarts(t *testing.T) {
	g := graph.New[*node]()
	a := g.Insert(&node{})
	b := g.Insert(&node{})
	shared := g.Insert(&node{})
	link(g, a, shared)
	link(g, b, shared)

	order, err := traverse.DepthFirstFrom(g, []arena.Key{a, b})
	if err != nil {
		t.Fatalf("DepthFirstFrom() error = %v", err)
	}
	// Both roots are covered; shared is reachable twice, once per root
	// that rediscovers it after a pop.
	seen := map[arena.Key]int{}
	for _, k := range order {
		seen[k]++
	}
	if seen[a] != 1 || seen[b] != 1 {
		t.Errorf("roots emitted %d/%d times, want 1/1: %v", seen[a], seen[b], order)
	}
	if seen[shared] != 2 {
		t.Errorf("shared emitted %d times, want 2: %v", seen[shared], order)
	}
}

func TestDepthFirstFrom_DuplicateSeedsCollapse(t *testing.T) {
	g := graph.New[*node]()
	a := g.Insert(&node{})

	order, err := traverse.DepthFirstFrom(g, []arena.Key{a, a, a})
	if err != nil {
		t.Fatalf("DepthFirstFrom() error = %v", err)
	}
	if want := []arena.Key{a}; !keysEqual(order, want) {
		t.Errorf("DepthFirstFrom() = %v, want %v", order, want)
	}
}

func TestDepthFirstFrom_EmptyStarts(t *testing.T) {
	g := graph.New[*node]()
	g.Insert(&node{})

	order, err := traverse.DepthFirstFrom(g, nil)
	if err != nil {
		t.Fatalf("DepthFirstFrom() error = %v", err)
	}
	if len(order) != 0 {
		t.Errorf("DepthFirstFrom(nil) = %v, want empty", order)
	}
}
