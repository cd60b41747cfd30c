package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/handiism/spoolid/internal/export"
	ioutils "github.com/handiism/spoolid/internal/io"
	"github.com/handiism/spoolid/internal/model"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole catalog in json, yaml, toml, csv or snippet form",
		Example: `  spoolid export --format csv
  spoolid export --format snippet --out materials_snippet.h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("format")
			out, _ := cmd.Flags().GetString("out")

			format, err := export.ParseFormat(name)
			if err != nil {
				return err
			}

			records := make([]model.Record, 0, a.catalog.Count())
			for _, rec := range a.catalog.All() {
				records = append(records, rec)
			}

			data, err := export.NewExporter(format).Export(records)
			if err != nil {
				return fmt.Errorf("export %s: %w", format, err)
			}

			if out == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			if err := ioutils.WriteFile(cmd.Context(), out, data); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			a.log.Info("exported catalog", zap.String("format", format.String()), zap.String("path", out), zap.Int("records", len(records)))
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "json", "json, yaml, toml, csv or snippet")
	cmd.Flags().StringP("out", "o", "", "output file (default stdout)")

	return cmd
}
