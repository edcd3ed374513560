package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	graphio "github.com/slabwalk/slabwalk/pkg/io"
	"github.com/slabwalk/slabwalk/pkg/render"
)

const (
	exportFormatDOT  = "dot"
	exportFormatJSON = "json"
)

// exportCommand creates the export command for writing the graph as
// DOT or JSON.
func (c *CLI) exportCommand() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the graph as DOT or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != exportFormatDOT && format != exportFormatJSON {
				return fmt.Errorf("invalid format: %s (must be 'dot' or 'json')", format)
			}
			return c.runExport(cmd, args[0], output, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", exportFormatDOT, "output format: dot, json")

	return cmd
}

func (c *CLI) runExport(cmd *cobra.Command, input, output, format string) error {
	logger := loggerFromContext(cmd.Context())

	lg, err := loadGraph(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s: %d nodes, %d edges", input, lg.graph.Len(), lg.edgeCount())

	var out io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case exportFormatDOT:
		if _, err := io.WriteString(out, render.ToDOT(lg.graph)); err != nil {
			return err
		}
	case exportFormatJSON:
		if err := graphio.WriteJSON(lg.graph, out); err != nil {
			return err
		}
	}

	if output != "" {
		printSuccess("Exported %s", format)
		printFile(output)
		if format == exportFormatDOT {
			printNextStep("Render it", fmt.Sprintf("%s render %s", appName, input))
		}
	}
	return nil
}
