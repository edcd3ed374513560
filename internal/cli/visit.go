package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slabwalk/slabwalk/pkg/arena"
	"github.com/slabwalk/slabwalk/pkg/graph"
	"github.com/slabwalk/slabwalk/pkg/graph/traverse"
	graphio "github.com/slabwalk/slabwalk/pkg/io"
)

// visitOpts holds the command-line flags for the visit command.
type visitOpts struct {
	start       string   // start node name (empty: first root)
	prune       []string // node names whose subtrees are skipped
	postpone    []string // node names pushed to the back of the queue once
	interactive bool     // decide directives per node in a TUI
}

// visitCommand creates the visit command for controlled breadth-first
// traversal. Each visited node yields a directive: expand its children,
// terminate the branch, or postpone the node to the back of the queue.
func (c *CLI) visitCommand() *cobra.Command {
	var opts visitOpts

	cmd := &cobra.Command{
		Use:   "visit [file]",
		Short: "Visit nodes breadth-first with per-node directives",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVisit(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.start, "start", "s", "", "start node name (defaults to the first root)")
	cmd.Flags().StringArrayVar(&opts.prune, "prune", nil, "skip the subtree below this node (repeatable)")
	cmd.Flags().StringArrayVar(&opts.postpone, "postpone", nil, "push this node to the back of the queue once (repeatable)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "choose a directive per node interactively")

	return cmd
}

func (c *CLI) runVisit(cmd *cobra.Command, input string, opts *visitOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	lg, err := loadGraph(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s: %d nodes, %d edges", input, lg.graph.Len(), lg.edgeCount())

	start, err := resolveVisitStart(lg, opts.start, input)
	if err != nil {
		return err
	}

	if opts.interactive {
		return c.runVisitTUI(cmd.Context(), lg, start)
	}

	prune, err := resolveNameSet(lg, opts.prune)
	if err != nil {
		return err
	}
	postpone, err := resolveNameSet(lg, opts.postpone)
	if err != nil {
		return err
	}

	step := 0
	postponed := make(map[arena.Key]bool)
	visitor := func(g *graph.Graph[*graphio.Node], key arena.Key) (traverse.Directive, error) {
		name := lg.name(key)
		switch {
		case prune[key]:
			printDetail("%s (branch terminated)", name)
			return traverse.TerminateBranch, nil
		case postpone[key] && !postponed[key]:
			postponed[key] = true
			printDetail("%s (postponed)", name)
			return traverse.Postpone, nil
		}
		printStep(step, name, key.String())
		step++
		return traverse.VisitChildren, nil
	}

	if err := traverse.BreadthFirst(lg.graph, start, visitor); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Visited %d node(s)", step))
	return nil
}

// resolveVisitStart picks the traversal start: the named node, or the
// first root when no name is given.
func resolveVisitStart(lg *loadedGraph, name, input string) (arena.Key, error) {
	if name != "" {
		key, ok := lg.index[name]
		if !ok {
			return arena.Key{}, fmt.Errorf("unknown start node %q", name)
		}
		return key, nil
	}
	roots := lg.roots()
	if len(roots) == 0 {
		return arena.Key{}, fmt.Errorf("no root nodes in %s; pass --start explicitly", input)
	}
	return roots[0], nil
}

// resolveNameSet maps node names to a key set.
func resolveNameSet(lg *loadedGraph, names []string) (map[arena.Key]bool, error) {
	keys, err := lg.resolveStarts(names)
	if err != nil {
		return nil, err
	}
	set := make(map[arena.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set, nil
}
