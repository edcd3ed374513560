package traverse

import (
	"fmt"

	"github.com/slabwalk/slabwalk/pkg/arena"
	"github.com/slabwalk/slabwalk/pkg/graph"
)

// DepthFirst returns the keys reachable from start in pre-order. Each
// node is visited at most once no matter how many paths lead to it:
// nodes are marked seen at discovery time, before they are pushed, so a
// node can enter the stack only once.
//
// Children are expanded most-recently-discovered first (LIFO). The
// output always begins with start.
//
// DepthFirst returns an error wrapping [graph.ErrNodeNotFound] if start
// or any discovered node has no live payload.
func DepthFirst[T graph.Node](g *graph.Graph[T], start arena.Key) ([]arena.Key, error) {
	seen := map[arena.Key]struct{}{start: {}}
	stack := []arena.Key{start}
	order := make([]arena.Key, 0, g.Len())

	for len(stack) > 0 {
		key := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, key)

		node, ok := g.Node(key)
		if !ok {
			return nil, fmt.Errorf("traverse: node %s: %w", key, graph.ErrNodeNotFound)
		}
		for _, child := range node.Children() {
			if _, met := seen[child]; met {
				continue
			}
			seen[child] = struct{}{}
			stack = append(stack, child)
		}
	}
	return order, nil
}

// DepthFirstFrom returns a pre-order walk seeded with every key in
// starts. Unlike [DepthFirst], the de-duplication set only tracks nodes
// currently on the stack — membership is dropped when a node is popped.
// A node rediscovered after it has been popped is emitted again, so the
// output may contain a key once per path that reaches it while it is
// not pending. Callers that need visit-once semantics should use
// [DepthFirst] per start instead.
//
// Duplicate or already-pending seeds are skipped at seeding time.
// DepthFirstFrom returns an error wrapping [graph.ErrNodeNotFound] if
// any popped key has no live payload.
func DepthFirstFrom[T graph.Node](g *graph.Graph[T], starts []arena.Key) ([]arena.Key, error) {
	onStack := make(map[arena.Key]struct{}, len(starts))
	stack := make([]arena.Key, 0, len(starts))
	for _, s := range starts {
		if _, pending := onStack[s]; pending {
			continue
		}
		onStack[s] = struct{}{}
		stack = append(stack, s)
	}

	var order []arena.Key
	for len(stack) > 0 {
		key := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		delete(onStack, key)
		order = append(order, key)

		node, ok := g.Node(key)
		if !ok {
			return nil, fmt.Errorf("traverse: node %s: %w", key, graph.ErrNodeNotFound)
		}
		for _, child := range node.Children() {
			if _, pending := onStack[child]; pending {
				continue
			}
			onStack[child] = struct{}{}
			stack = append(stack, child)
		}
	}
	return order, nil
}
