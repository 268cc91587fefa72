package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nkrahm/boxgrid/api/schemas"
	"github.com/nkrahm/boxgrid/internal/box"
	"github.com/nkrahm/boxgrid/internal/config"
	"github.com/nkrahm/boxgrid/internal/document"
	"github.com/nkrahm/boxgrid/internal/grid"
	"github.com/nkrahm/boxgrid/internal/observability"
	"github.com/nkrahm/boxgrid/internal/report"
)

// newInspectCmd creates and configures the `inspect` command.
func newInspectCmd() *cobra.Command {
	inspectCmd := &cobra.Command{
		Use:   "inspect [files...]",
		Short: "Measures the grid in each document and reports its tracks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Use the context passed from main (signal-aware).
			ctx := cmd.Context()
			logger := observability.GetLogger()
			cfg := configFromContext(ctx)

			output, _ := cmd.Flags().GetString("output")
			format, _ := cmd.Flags().GetString("format")
			docFormat, _ := cmd.Flags().GetString("doc-format")
			concurrency, _ := cmd.Flags().GetInt("concurrency")
			if concurrency <= 0 {
				concurrency = 1
			}

			// Centralize the runtime settings for this run; the flags
			// are not consulted again below.
			cfg.SetInspectConfig(config.InspectConfig{
				Targets:     args,
				Output:      output,
				Format:      format,
				Concurrency: concurrency,
			})
			ic := cfg.Inspect()

			logger.Info("Inspecting documents",
				zap.Int("count", len(ic.Targets)),
				zap.String("format", ic.Format),
				zap.Int("concurrency", ic.Concurrency),
			)

			reporter, err := report.New(ic.Format, ic.Output)
			if err != nil {
				return fmt.Errorf("failed to initialize reporter: %w", err)
			}
			defer func() {
				if err := reporter.Close(); err != nil {
					logger.Error("Failed to close reporter", zap.Error(err))
				}
			}()

			g, groupCtx := errgroup.WithContext(ctx)
			g.SetLimit(ic.Concurrency)
			for _, target := range ic.Targets {
				g.Go(func() error {
					rep, err := measureDocument(groupCtx, cfg, target, docFormat, logger)
					if err != nil {
						return fmt.Errorf("inspecting %s: %w", target, err)
					}
					if err := reporter.Write(rep); err != nil {
						return fmt.Errorf("writing report for %s: %w", target, err)
					}
					logger.Info("Document measured",
						zap.String("document", target),
						zap.Int("rows", rep.RowCount),
						zap.Int("columns", rep.ColumnCount),
					)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				if errors.Is(err, context.Canceled) {
					logger.Warn("Inspection aborted")
				}
				return err
			}

			logger.Info("Inspection complete", zap.Int("documents", len(ic.Targets)))
			return nil
		},
	}

	inspectCmd.Flags().StringP("output", "o", "", "Output path for the report. Defaults to stdout.")
	inspectCmd.Flags().StringP("format", "f", "text", "Report format ('text' or 'json').")
	inspectCmd.Flags().String("doc-format", "", "Document format ('xul' or 'html'). Inferred from the file extension when unset.")
	inspectCmd.Flags().IntP("concurrency", "j", 1, "Number of documents measured concurrently.")

	return inspectCmd
}

// measureDocument loads one document, runs a layout pass over it and
// snapshots its grid. The report command family shares this path.
func measureDocument(ctx context.Context, cfg config.Interface, target, formatName string, logger *zap.Logger) (*schemas.GridReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := resolveFormat(target, formatName)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	state := box.NewLayoutState(logger.With(zap.String("document", target)), measurerFromConfig(cfg.Layout()))
	root, err := document.Load(state, data, f)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	gridBox, err := document.FindGrid(root)
	if err != nil {
		return nil, err
	}
	g, err := grid.ContextFor(gridBox)
	if err != nil {
		return nil, err
	}

	layoutDocument(state, root, cfg.Layout())

	return report.Build(state, g, report.Options{Source: target, Format: f.String()}), nil
}

// measurerFromConfig maps the layout metrics onto the text measurer.
func measurerFromConfig(lc config.LayoutConfig) box.Measurer {
	return box.TextMeasurer{
		CharWidth:   lc.CharWidth,
		LineHeight:  lc.LineHeight,
		TextPadding: lc.TextPadding,
	}
}

// layoutDocument places the tree inside the configured viewport. A zero
// viewport axis falls back to the document's preferred extent.
func layoutDocument(state *box.LayoutState, root *box.Box, lc config.LayoutConfig) {
	pref := root.PrefSize(state)
	width := box.Extent(lc.ViewportWidth)
	if lc.ViewportWidth == 0 {
		width = pref.Width
	}
	height := box.Extent(lc.ViewportHeight)
	if lc.ViewportHeight == 0 {
		height = pref.Height
	}
	root.Bounds = box.Rect{Width: width, Height: height}
	root.DoLayout(state)
}

// resolveFormat prefers an explicit format name over the extension.
func resolveFormat(target, name string) (document.Format, error) {
	if name != "" {
		return document.ParseFormat(name)
	}
	return document.FormatForPath(target)
}
