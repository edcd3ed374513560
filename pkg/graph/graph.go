package graph

import (
	"errors"
	"iter"

	"github.com/slabwalk/slabwalk/pkg/arena"
)

// ErrNodeNotFound is returned (wrapped) by traversals and exporters when
// a key — a traversal start or a declared child — has no live payload in
// the graph's arena. It indicates a malformed graph, a dangling edge, or
// a key minted by a different arena.
var ErrNodeNotFound = errors.New("node not found in graph")

// Node is the capability every payload type must satisfy: expose its
// outgoing edges as a sequence of arena keys. The returned slice is
// read-only from the container's point of view; implementations should
// return their backing slice rather than a copy.
type Node interface {
	Children() []arena.Key
}

// Graph bundles one arena of node payloads and forwards its operations.
// All adjacency is derived by asking payloads for their children; the
// graph adds no edge storage of its own.
//
// Graph is not safe for concurrent mutation. Traversals assume exclusive
// access for the duration of a call.
type Graph[T Node] struct {
	nodes arena.Arena[T]
}

// New creates an empty graph.
func New[T Node]() *Graph[T] { return &Graph[T]{} }

// Insert adds a payload and returns its key.
func (g *Graph[T]) Insert(payload T) arena.Key {
	return g.nodes.Insert(payload)
}

// Node returns the payload for k and true, or the zero value and false
// if k does not resolve.
func (g *Graph[T]) Node(k arena.Key) (T, bool) {
	return g.nodes.Get(k)
}

// Set replaces the payload for k in place, reporting whether k resolved.
func (g *Graph[T]) Set(k arena.Key, payload T) bool {
	return g.nodes.Set(k, payload)
}

// Remove deletes the payload for k and returns it. Edges held by other
// payloads that reference k become dangling; see [ErrNodeNotFound].
func (g *Graph[T]) Remove(k arena.Key) (T, bool) {
	return g.nodes.Remove(k)
}

// Len returns the number of nodes in the graph.
func (g *Graph[T]) Len() int { return g.nodes.Len() }

// All iterates over (key, payload) pairs in arena order: unspecified but
// stable for a given graph state.
func (g *Graph[T]) All() iter.Seq2[arena.Key, T] { return g.nodes.All() }

// Keys returns the keys of all nodes in iteration order.
func (g *Graph[T]) Keys() []arena.Key { return g.nodes.Keys() }

// Arena exposes the underlying arena for callers that need direct
// access, such as BFS visitors mutating payloads mid-traversal.
func (g *Graph[T]) Arena() *arena.Arena[T] { return &g.nodes }
