// Package traverse implements the traversal algorithms for arena-backed
// graphs: depth-first search, dependency ordering, and breadth-first
// search with caller-controlled expansion.
//
// # Algorithms
//
//   - [DepthFirst]: single-start pre-order DFS; every reachable node
//     appears exactly once.
//   - [DepthFirstFrom]: multi-start pre-order DFS; de-duplication only
//     tracks nodes currently pending on the stack, so a node can appear
//     again if it becomes reachable after having been popped. This
//     asymmetry with DepthFirst is deliberate and relied upon by
//     callers that want per-path emission across roots.
//   - [DependencyOrder]: post-order-like topological traversal; every
//     node appears exactly once, after all of its children.
//   - [BreadthFirst]: FIFO traversal that hands each dequeued node to a
//     visitor; the returned [Directive] decides whether the node is
//     re-queued, dropped, or expanded.
//
// All algorithms are iterative with explicit stacks or queues, so deep
// graphs cannot exhaust the call stack. Per-call bookkeeping (seen sets,
// pending counters) is keyed by arena keys and discarded when the call
// returns; nothing is attached to the payloads, so independent
// traversals of the same graph never interfere.
//
// # Errors
//
// A key that does not resolve in the graph — a bad start or a dangling
// edge — aborts the traversal immediately with an error wrapping
// [graph.ErrNodeNotFound]. There are no partial results: either the
// traversal completes or the caller gets an error and no ordering.
//
// # Cycles
//
// DepthFirst and BreadthFirst handle cyclic graphs (the seen and
// in-queue sets bound the work). DependencyOrder does not detect cycles:
// a dependency cycle keeps its pending counters above zero forever and
// the call never returns. Supplying an acyclic reachable subgraph is a
// caller responsibility, as is avoiding a BFS visitor that postpones
// unconditionally.
package traverse
