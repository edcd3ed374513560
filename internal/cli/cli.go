// Package cli implements the slabwalk command-line interface.
//
// The CLI loads graph documents (TOML or JSON), runs traversals over
// them, and exports or renders the result. Commands are built with
// cobra; logging uses charmbracelet/log with the logger attached to the
// command context.
//
// # Commands
//
//   - walk: depth-first traversal from one or more start nodes
//   - order: dependency-first ordering (children before parents)
//   - visit: breadth-first traversal with per-node directives
//   - export: write the graph as DOT or JSON
//   - render: rasterize the graph to SVG or PNG via Graphviz
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/slabwalk/slabwalk/pkg/arena"
	"github.com/slabwalk/slabwalk/pkg/buildinfo"
	"github.com/slabwalk/slabwalk/pkg/cache"
	"github.com/slabwalk/slabwalk/pkg/graph"
	graphio "github.com/slabwalk/slabwalk/pkg/io"
)

// appName is the application name used for directories and display.
const appName = "slabwalk"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Slabwalk traverses arena-backed dependency graphs",
		Long:         `Slabwalk loads graph documents, walks them depth-first, breadth-first, or in dependency order, and exports the result as DOT, JSON, SVG, or PNG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.walkCommand())
	root.AddCommand(c.orderCommand())
	root.AddCommand(c.visitCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache creates the render cache: a file cache under the XDG cache
// directory, or a null cache when caching is disabled or the directory
// cannot be determined.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/slabwalk/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// loadedGraph bundles a graph document with its name lookups in both
// directions.
type loadedGraph struct {
	graph *graph.Graph[*graphio.Node]
	index map[string]arena.Key // name -> key
	names map[arena.Key]string // key -> name
}

// loadGraph reads a graph document from path and builds the reverse
// name index used for display.
func loadGraph(path string) (*loadedGraph, error) {
	g, index, err := graphio.ReadFile(path)
	if err != nil {
		return nil, err
	}

	names := make(map[arena.Key]string, len(index))
	for name, key := range index {
		names[key] = name
	}
	return &loadedGraph{graph: g, index: index, names: names}, nil
}

// name returns the display name for a key, falling back to the key
// itself for nodes outside the document index.
func (lg *loadedGraph) name(k arena.Key) string {
	if n, ok := lg.names[k]; ok {
		return n
	}
	return k.String()
}

// edgeCount counts edges across the whole graph.
func (lg *loadedGraph) edgeCount() int {
	total := 0
	for _, n := range lg.graph.All() {
		total += len(n.Edges)
	}
	return total
}

// resolveStarts maps node names to arena keys, preserving order.
func (lg *loadedGraph) resolveStarts(names []string) ([]arena.Key, error) {
	keys := make([]arena.Key, len(names))
	for i, name := range names {
		key, ok := lg.index[name]
		if !ok {
			return nil, fmt.Errorf("unknown node %q", name)
		}
		keys[i] = key
	}
	return keys, nil
}

// roots returns the keys of all nodes with no incoming edge, sorted by
// name for stable output. A graph where every node has a parent (a
// cycle) yields an empty slice.
func (lg *loadedGraph) roots() []arena.Key {
	hasParent := make(map[arena.Key]bool)
	for _, n := range lg.graph.All() {
		for _, child := range n.Edges {
			hasParent[child] = true
		}
	}

	var roots []arena.Key
	for key := range lg.graph.All() {
		if !hasParent[key] {
			roots = append(roots, key)
		}
	}
	sort.Slice(roots, func(i, j int) bool {
		return lg.name(roots[i]) < lg.name(roots[j])
	})
	return roots
}
