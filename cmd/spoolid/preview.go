package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/handiism/spoolid/internal/display"
	ioutils "github.com/handiism/spoolid/internal/io"
	"github.com/handiism/spoolid/internal/preview"
)

func newPreviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <filament-code>",
		Short: "Render what the reader's screen shows for a code as a PNG",
		Example: `  spoolid preview 10101 --out black.png
  spoolid preview --material GFH02 --variant G02-B0 --out petg.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			scale, _ := cmd.Flags().GetInt("scale")
			materialID, _ := cmd.Flags().GetString("material")
			variantID, _ := cmd.Flags().GetString("variant")
			if scale <= 0 {
				scale = a.settings.PreviewScale
			}

			var q display.Query
			switch {
			case len(args) == 1:
				q = display.CodeQuery(args[0])
			case materialID != "" && variantID != "":
				q = display.PairQuery(materialID, variantID)
			default:
				return errors.New("give either a filament code or both --material and --variant")
			}

			res := display.Resolve(a.catalog, q, a.settings.FallbackLabel)
			data, err := preview.NewRenderer(scale).PNG(res)
			if err != nil {
				return fmt.Errorf("render preview: %w", err)
			}

			if err := ioutils.WriteFile(cmd.Context(), out, data); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			a.log.Info("wrote preview", zap.String("query", q.String()), zap.Bool("found", res.Found), zap.String("path", out))
			return nil
		},
	}

	cmd.Flags().StringP("out", "o", "preview.png", "output PNG file")
	cmd.Flags().Int("scale", 0, "pixel scale factor (default preview_scale)")
	cmd.Flags().String("material", "", "material id, e.g. GFA00")
	cmd.Flags().String("variant", "", "variant id, e.g. A00-K0")

	return cmd
}
