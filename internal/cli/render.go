package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/slabwalk/slabwalk/pkg/cache"
	"github.com/slabwalk/slabwalk/pkg/render"
)

const (
	renderFormatSVG = "svg"
	renderFormatPNG = "png"

	// renderCacheTTL bounds how long rendered artifacts are reused.
	// The cache key covers the DOT text, so entries only go stale when
	// Graphviz itself changes.
	renderCacheTTL = 30 * 24 * time.Hour
)

// renderCommand creates the render command for rasterizing the graph
// with the in-process Graphviz engine. Rendered artifacts are cached
// by content hash under the XDG cache directory.
func (c *CLI) renderCommand() *cobra.Command {
	var output, format string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the graph to SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != renderFormatSVG && format != renderFormatPNG {
				return fmt.Errorf("invalid format: %s (must be 'svg' or 'png')", format)
			}
			return c.runRender(cmd, args[0], output, format, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&format, "format", "f", renderFormatSVG, "output format: svg, png")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the render cache")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input, output, format string, noCache bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	lg, err := loadGraph(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s: %d nodes, %d edges", input, lg.graph.Len(), lg.edgeCount())

	store, err := newCache(noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	dot := render.ToDOT(lg.graph)
	data, cached, err := renderCached(ctx, store, dot, format)
	if err != nil {
		return err
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}

	printSuccess("Rendered %s", strings.ToUpper(format))
	printFile(output)
	printStats(lg.graph.Len(), lg.edgeCount(), cached)
	prog.done(fmt.Sprintf("Wrote %d bytes", len(data)))
	return nil
}

// renderCached renders DOT text to the requested format, reusing a
// cached artifact when the same graph was rendered before.
func renderCached(ctx context.Context, store cache.Cache, dot, format string) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)
	key := cache.Key(format, []byte(dot))

	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		logger.Debugf("Cache hit for %s", key[:16])
		return data, true, nil
	}

	spin := newSpinner(ctx, "Rendering with Graphviz")
	spin.Start()

	var data []byte
	var err error
	switch format {
	case renderFormatPNG:
		data, err = render.RenderPNG(ctx, dot)
	default:
		data, err = render.RenderSVG(ctx, dot)
	}
	if err != nil {
		spin.StopWithError("Render failed")
		return nil, false, err
	}
	spin.Stop()

	if err := store.Set(ctx, key, data, renderCacheTTL); err != nil {
		logger.Debugf("Cache store failed: %v", err)
	}
	return data, false, nil
}
