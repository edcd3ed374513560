package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slabwalk/slabwalk/pkg/graph/traverse"
)

// orderCommand creates the order command for dependency-first ordering.
// Every node appears after all of its children, so the output can be
// consumed as a build or processing schedule.
func (c *CLI) orderCommand() *cobra.Command {
	var starts []string

	cmd := &cobra.Command{
		Use:   "order [file]",
		Short: "List nodes in dependency order (children before parents)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOrder(cmd, args[0], starts)
		},
	}

	cmd.Flags().StringArrayVarP(&starts, "start", "s", nil, "start node name (repeatable; defaults to all roots)")

	return cmd
}

func (c *CLI) runOrder(cmd *cobra.Command, input string, startNames []string) error {
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
		logger.Debugf("No --start given, ordering from %d root(s)", len(starts))
	}

	order, err := traverse.DependencyOrder(lg.graph, starts)
	if err != nil {
		return err
	}

	for i, key := range order {
		printStep(i, lg.name(key), key.String())
	}
	prog.done(fmt.Sprintf("Ordered %d node(s)", len(order)))
	return nil
}
