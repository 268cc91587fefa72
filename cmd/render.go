package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nkrahm/boxgrid/internal/observability"
	"github.com/nkrahm/boxgrid/internal/render"
)

// newRenderCmd creates and configures the `render` command.
func newRenderCmd() *cobra.Command {
	renderCmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draws the measured grid as an SVG diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()
			cfg := configFromContext(ctx)

			target := args[0]
			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				output = strings.TrimSuffix(target, filepath.Ext(target)) + ".svg"
			}
			docFormat, _ := cmd.Flags().GetString("doc-format")

			rc := cfg.Render()
			if cmd.Flags().Changed("scale") {
				rc.Scale, _ = cmd.Flags().GetFloat64("scale")
			}
			if cmd.Flags().Changed("padding") {
				rc.Padding, _ = cmd.Flags().GetFloat64("padding")
			}

			rep, err := measureDocument(ctx, cfg, target, docFormat, logger)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", target, err)
			}

			out, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating output file %s: %w", output, err)
			}
			if err := render.SVG(out, rep, render.Options{Scale: rc.Scale, Padding: rc.Padding}); err != nil {
				out.Close()
				return fmt.Errorf("rendering %s: %w", target, err)
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("closing output file: %w", err)
			}

			logger.Info("Rendered grid",
				zap.String("document", target),
				zap.String("output", output),
				zap.Float64("scale", rc.Scale),
			)
			cmd.Printf("Rendered %s to %s\n", target, output)
			return nil
		},
	}

	renderCmd.Flags().StringP("output", "o", "", "Output SVG path. Defaults to the document name with a .svg extension.")
	renderCmd.Flags().String("doc-format", "", "Document format ('xul' or 'html'). Inferred from the file extension when unset.")
	renderCmd.Flags().Float64("scale", 0, "Pixels per layout unit. (Overrides config)")
	renderCmd.Flags().Float64("padding", 0, "Margin around the diagram in pixels. (Overrides config)")

	return renderCmd
}
