package render

import (
	"bytes"
	"fmt"

	"github.com/slabwalk/slabwalk/pkg/graph"
)

// ToDOT renders the graph's node/edge set as a directed-graph
// description: a "digraph {" header, one `"node" -> "child"` line per
// edge, and a closing brace. Identifiers are the quoted debug form of
// the arena keys.
//
// Dangling children are rendered as-is — the projection does not verify
// that a child key resolves. The graph is not modified.
func ToDOT[T graph.Node](g *graph.Graph[T]) string {
	var buf bytes.Buffer
	buf.WriteString("digraph {\n")
	for key, node := range g.All() {
		for _, child := range node.Children() {
			fmt.Fprintf(&buf, "%q -> %q\n", key, child)
		}
	}
	buf.WriteString("}")
	return buf.String()
}
