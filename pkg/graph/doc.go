// Package graph provides a generic directed-graph container backed by a
// generational-key arena.
//
// # Overview
//
// A [Graph] owns exactly one [arena.Arena] of node payloads. The graph
// itself stores no edges: adjacency is declared by each payload through
// the [Node] capability, which exposes a node's outgoing edges as a
// slice of arena keys. Any payload type that can report its children
// works as a node, with no wrapper allocation and no dynamic dispatch at
// the container level.
//
// # Basic Usage
//
// Define a payload type that implements [Node], insert payloads, and
// wire them up by key:
//
//	type task struct {
//		name string
//		deps []arena.Key
//	}
//
//	func (t *task) Children() []arena.Key { return t.deps }
//
//	g := graph.New[*task]()
//	core := g.Insert(&task{name: "core"})
//	app := g.Insert(&task{name: "app", deps: []arena.Key{core}})
//
// Traversal algorithms live in [graph/traverse]; the DOT projection in
// the render package.
//
// # Dangling Edges
//
// A child key is not required to resolve: payloads may reference nodes
// that were never inserted or have been removed. The container tolerates
// this, but traversals treat an unresolvable key as a hard error rather
// than silently skipping it — see [ErrNodeNotFound].
package graph
