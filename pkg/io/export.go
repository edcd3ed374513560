package io

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/slabwalk/slabwalk/pkg/graph"
)

// WriteJSON encodes a loaded graph back into a JSON document, writing
// names rather than arena keys. Nodes are sorted by name for
// deterministic output, so load/save round-trips are diff-stable.
//
// A dangling edge — a child key with no live payload — is an error
// wrapping [graph.ErrNodeNotFound]: a document cannot name a node that
// no longer exists.
func WriteJSON(g *graph.Graph[*Node], w io.Writer) error {
	out := document{Nodes: make([]docNode, 0, g.Len())}

	for _, n := range g.All() {
		dn := docNode{Name: n.Name}
		for _, key := range n.Edges {
			child, ok := g.Node(key)
			if !ok {
				return fmt.Errorf("node %q child %s: %w", n.Name, key, graph.ErrNodeNotFound)
			}
			dn.Children = append(dn.Children, child.Name)
		}
		out.Nodes = append(out.Nodes, dn)
	}

	slices.SortFunc(out.Nodes, func(a, b docNode) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
