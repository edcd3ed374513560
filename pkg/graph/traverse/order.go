package traverse

import (
	"fmt"

	"github.com/slabwalk/slabwalk/pkg/arena"
	"github.com/slabwalk/slabwalk/pkg/graph"
)

// depEdge is one parent/child record on the dependency-order stack. A
// seed edge carries no parent; every other edge remembers which node is
// waiting on the child so the parent's pending counter can be
// decremented once the child resolves.
type depEdge struct {
	child     arena.Key
	parent    arena.Key
	hasParent bool
}

// DependencyOrder returns every node reachable from starts in an order
// where each node appears after all of its children (children are
// interpreted as dependencies). Each reachable node appears exactly
// once, no matter how many paths lead to it; shared sub-dependencies
// (diamonds) are short-circuited without double counting.
//
// The traversal is iterative — an explicit stack of parent/child edge
// records — so dependency chains deeper than the call stack are fine.
// Per node, a pending-children counter is initialized lazily to the
// node's child count on first encounter and counts down as dependencies
// resolve; a node is emitted when its counter reaches zero.
//
// DependencyOrder does not detect cycles: a cycle keeps pending counters
// above zero and the call never returns. Callers must supply acyclic
// reachable subgraphs.
//
// It returns an error wrapping [graph.ErrNodeNotFound] if any
// encountered key has no live payload.
func DependencyOrder[T graph.Node](g *graph.Graph[T], starts []arena.Key) ([]arena.Key, error) {
	stack := make([]depEdge, 0, len(starts))
	for _, s := range starts {
		stack = append(stack, depEdge{child: s})
	}

	pending := make(map[arena.Key]int)
	emitted := make(map[arena.Key]struct{})
	var order []arena.Key

	for len(stack) > 0 {
		edge := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		count, met := pending[edge.child]
		if !met {
			node, ok := g.Node(edge.child)
			if !ok {
				return nil, fmt.Errorf("traverse: node %s: %w", edge.child, graph.ErrNodeNotFound)
			}
			count = len(node.Children())
			pending[edge.child] = count
		}

		if count > 0 {
			// Still waiting on children: park this edge under them and
			// push one edge per unresolved child. A child whose own
			// counter already hit zero is a satisfied dependency — count
			// it off right here instead of re-processing it.
			stack = append(stack, edge)
			node, ok := g.Node(edge.child)
			if !ok {
				return nil, fmt.Errorf("traverse: node %s: %w", edge.child, graph.ErrNodeNotFound)
			}
			for _, child := range node.Children() {
				if childCount, met := pending[child]; met && childCount == 0 {
					pending[edge.child]--
					continue
				}
				stack = append(stack, depEdge{child: child, parent: edge.child, hasParent: true})
			}
			continue
		}

		if _, done := emitted[edge.child]; !done {
			emitted[edge.child] = struct{}{}
			order = append(order, edge.child)
		}
		if edge.hasParent {
			pending[edge.parent]--
		}
	}
	return order, nil
}
