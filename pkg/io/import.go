package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/slabwalk/slabwalk/pkg/arena"
	"github.com/slabwalk/slabwalk/pkg/graph"
)

var (
	// ErrInvalidNodeName is returned when a document declares a node
	// with an empty name. All nodes must be nameable by edges.
	ErrInvalidNodeName = errors.New("node name must not be empty")

	// ErrDuplicateNodeName is returned when two nodes in a document
	// share a name. Names are the document's only node identity.
	ErrDuplicateNodeName = errors.New("duplicate node name")

	// ErrUnknownChild is returned when a node's children list references
	// a name not declared in the document.
	ErrUnknownChild = errors.New("unknown child node")

	// ErrUnsupportedFormat is returned by [ReadFile] for file extensions
	// other than .toml and .json.
	ErrUnsupportedFormat = errors.New("unsupported graph document format")
)

// Node is the payload type for loaded graph documents: a display name
// plus the node's outgoing edges.
type Node struct {
	Name  string
	Edges []arena.Key
}

// Children returns the node's outgoing edges, satisfying the graph
// package's node capability.
func (n *Node) Children() []arena.Key { return n.Edges }

// document is the wire shape shared by the TOML and JSON readers.
type document struct {
	Nodes []docNode `toml:"node" json:"nodes"`
}

type docNode struct {
	Name     string   `toml:"name" json:"name"`
	Children []string `toml:"children" json:"children,omitempty"`
}

// ReadTOML decodes a TOML graph document from r. See the package
// documentation for the format. It returns the loaded graph and an
// index from node name to arena key.
func ReadTOML(r io.Reader) (*graph.Graph[*Node], map[string]arena.Key, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("decode toml: %w", err)
	}
	return build(doc)
}

// ReadJSON decodes a JSON graph document from r. See the package
// documentation for the format. It returns the loaded graph and an
// index from node name to arena key.
func ReadJSON(r io.Reader) (*graph.Graph[*Node], map[string]arena.Key, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("decode json: %w", err)
	}
	return build(doc)
}

// ReadFile loads a graph document from path, picking the decoder by
// file extension (.toml or .json).
func ReadFile(path string) (*graph.Graph[*Node], map[string]arena.Key, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ReadTOML(f)
	case ".json":
		return ReadJSON(f)
	}
	return nil, nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// build resolves a decoded document into a graph. Nodes are inserted
// first and edges wired in a second pass, so forward references between
// nodes are fine.
func build(doc document) (*graph.Graph[*Node], map[string]arena.Key, error) {
	g := graph.New[*Node]()
	index := make(map[string]arena.Key, len(doc.Nodes))

	for _, dn := range doc.Nodes {
		if dn.Name == "" {
			return nil, nil, ErrInvalidNodeName
		}
		if _, exists := index[dn.Name]; exists {
			return nil, nil, fmt.Errorf("node %q: %w", dn.Name, ErrDuplicateNodeName)
		}
		index[dn.Name] = g.Insert(&Node{Name: dn.Name})
	}

	for _, dn := range doc.Nodes {
		if len(dn.Children) == 0 {
			continue
		}
		n, _ := g.Node(index[dn.Name])
		n.Edges = make([]arena.Key, len(dn.Children))
		for i, child := range dn.Children {
			key, ok := index[child]
			if !ok {
				return nil, nil, fmt.Errorf("node %q child %q: %w", dn.Name, child, ErrUnknownChild)
			}
			n.Edges[i] = key
		}
	}
	return g, index, nil
}
