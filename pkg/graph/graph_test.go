package graph

import (
	"testing"

	"github.com/slabwalk/slabwalk/pkg/arena"
)

// listNode is a minimal payload for container tests.
type listNode struct {
	children []arena.Key
}

func (n *listNode) Children() []arena.Key { return n.children }

func TestInsertAndNode(t *testing.T) {
	g := New[*listNode]()

	leaf := g.Insert(&listNode{})
	root := g.Insert(&listNode{children: []arena.Key{leaf}})

	n, ok := g.Node(root)
	if !ok {
		t.Fatal("Node(root) missing")
	}
	if len(n.Children()) != 1 || n.Children()[0] != leaf {
		t.Errorf("Children() = %v, want [%v]", n.Children(), leaf)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
}

func TestNodeMissAfterRemove(t *testing.T) {
	g := New[*listNode]()
	k := g.Insert(&listNode{})

	if _, ok := g.Remove(k); !ok {
		t.Fatal("Remove(k) = false, want true")
	}
	if _, ok := g.Node(k); ok {
		t.Error("Node(k) resolved after Remove, want miss")
	}
}

func TestDanglingChildTolerated(t *testing.T) {
	g := New[*listNode]()
	leaf := g.Insert(&listNode{})
	root := g.Insert(&listNode{children: []arena.Key{leaf}})
	g.Remove(leaf)

	// The container itself does not reject dangling edges; only
	// traversals fail on them.
	n, ok := g.Node(root)
	if !ok {
		t.Fatal("Node(root) missing")
	}
	if _, ok := g.Node(n.Children()[0]); ok {
		t.Error("dangling child resolved, want miss")
	}
}

func TestSetReplacesPayload(t *testing.T) {
	g := New[*listNode]()
	a := g.Insert(&listNode{})
	b := g.Insert(&listNode{})
	root := g.Insert(&listNode{children: []arena.Key{a}})

	if !g.Set(root, &listNode{children: []arena.Key{b}}) {
		t.Fatal("Set(root) = false, want true")
	}
	n, _ := g.Node(root)
	if len(n.Children()) != 1 || n.Children()[0] != b {
		t.Errorf("Children() after Set = %v, want [%v]", n.Children(), b)
	}
}

func TestAllCoversEveryNode(t *testing.T) {
	g := New[*listNode]()
	want := map[arena.Key]bool{}
	for i := 0; i < 4; i++ {
		want[g.Insert(&listNode{})] = true
	}

	got := map[arena.Key]bool{}
	for k, n := range g.All() {
		if n == nil {
			t.Fatalf("All() yielded nil payload for %v", k)
		}
		got[k] = true
	}
	if len(got) != len(want) {
		t.Errorf("All() visited %d nodes, want %d", len(got), len(want))
	}
	for k := range want {
		if !got[k] {
			t.Errorf("All() missed %v", k)
		}
	}
}
