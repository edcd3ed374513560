package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slabwalk/slabwalk/pkg/arena"
	"github.com/slabwalk/slabwalk/pkg/graph/traverse"
)

// walkCommand creates the walk command for depth-first traversal.
//
// With a single --start the traversal visits every reachable node
// exactly once in pre-order. With multiple starts, deduplication only
// spans the active stack: a node may appear again under a later start
// or a later sibling branch.
func (c *CLI) walkCommand() *cobra.Command {
	var starts []string

	cmd := &cobra.Command{
		Use:   "walk [file]",
		Short: "Walk the graph depth-first from one or more start nodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWalk(cmd, args[0], starts)
		},
	}

	cmd.Flags().StringArrayVarP(&starts, "start", "s", nil, "start node name (repeatable; defaults to all roots)")

	return cmd
}

func (c *CLI) runWalk(cmd *cobra.Command, input string, startNames []string) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	lg, err := loadGraph(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s: %d nodes, %d edges", input, lg.graph.Len(), lg.edgeCount())

	starts, err := lg.resolveStarts(startNames)
	if err != nil {
		return err
	}
	if len(starts) == 0 {
		starts = lg.roots()
		if len(starts) == 0 {
			return fmt.Errorf("no root nodes in %s; pass --start explicitly", input)
		}
		logger.Debugf("No --start given, walking from %d root(s)", len(starts))
	}

	var order []arena.Key
	if len(starts) == 1 {
		order, err = traverse.DepthFirst(lg.graph, starts[0])
	} else {
		order, err = traverse.DepthFirstFrom(lg.graph, starts)
	}
	if err != nil {
		return err
	}

	for i, key := range order {
		printStep(i, lg.name(key), key.String())
	}
	printStats(lg.graph.Len(), lg.edgeCount(), false)
	prog.done(fmt.Sprintf("Visited %d node(s)", len(order)))
	return nil
}
