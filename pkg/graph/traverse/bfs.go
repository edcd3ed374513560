package traverse

import (
	"errors"
	"fmt"

	"github.com/slabwalk/slabwalk/pkg/arena"
	"github.com/slabwalk/slabwalk/pkg/graph"
)

// ErrNilVisitor is returned by [BreadthFirst] when no visitor is supplied.
var ErrNilVisitor = errors.New("nil visitor")

// Directive is the outcome a BFS visitor returns for the dequeued node.
// It controls what happens to the node and its children.
type Directive int

const (
	// VisitChildren consumes the node and enqueues its children, read
	// from the graph after the visitor ran (so payload mutations made by
	// the visitor are honored). Children already waiting in the queue
	// are not enqueued twice.
	VisitChildren Directive = iota

	// TerminateBranch consumes the node without examining its children,
	// pruning this branch of the traversal.
	TerminateBranch

	// Postpone pushes the node back onto the tail of the queue unvisited;
	// its children are not examined this round. A visitor that postpones
	// the same node unconditionally never terminates.
	Postpone
)

// String returns the directive name for logs and debug output.
func (d Directive) String() string {
	switch d {
	case VisitChildren:
		return "visit-children"
	case TerminateBranch:
		return "terminate-branch"
	case Postpone:
		return "postpone"
	}
	return fmt.Sprintf("directive(%d)", int(d))
}

// Visitor decides the fate of each dequeued node. It receives the graph
// itself and may mutate payloads — including the children a node
// reports — before expansion happens. A non-nil error aborts the
// traversal and is returned from [BreadthFirst] unchanged (wrapped with
// the node's key).
type Visitor[T graph.Node] func(g *graph.Graph[T], node arena.Key) (Directive, error)

// BreadthFirst walks the graph from start in strict FIFO order, calling
// visit for every dequeued node. The visitor holds exclusive access to
// the graph for the duration of the call, so BFS doubles as a controlled
// mutation mechanism.
//
// An in-queue set keyed by node prevents a node from occupying the queue
// twice at once. It does not prevent a node from being re-enqueued after
// it has been processed: the visitor's directives are the only bound on
// repeat visits.
//
// BreadthFirst returns an error wrapping [graph.ErrNodeNotFound] if a
// node chosen for expansion has no live payload.
func BreadthFirst[T graph.Node](g *graph.Graph[T], start arena.Key, visit Visitor[T]) error {
	if visit == nil {
		return fmt.Errorf("traverse: %w", ErrNilVisitor)
	}

	inQueue := map[arena.Key]struct{}{start: {}}
	queue := []arena.Key{start}

	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		delete(inQueue, key)

		directive, err := visit(g, key)
		if err != nil {
			return fmt.Errorf("traverse: visit %s: %w", key, err)
		}

		switch directive {
		case Postpone:
			queue = append(queue, key)
			inQueue[key] = struct{}{}
			continue
		case TerminateBranch:
			continue
		case VisitChildren:
			// expand below
		default:
			return fmt.Errorf("traverse: visit %s returned unknown %s", key, directive)
		}

		// Children are read after the visitor ran: it may have rewritten
		// the node's adjacency.
		node, ok := g.Node(key)
		if !ok {
			return fmt.Errorf("traverse: node %s: %w", key, graph.ErrNodeNotFound)
		}
		for _, child := range node.Children() {
			if _, waiting := inQueue[child]; waiting {
				continue
			}
			inQueue[child] = struct{}{}
			queue = append(queue, child)
		}
	}
	return nil
}
