package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/handiism/spoolid/internal/generate"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Refresh the generated catalog from the Bambu-Lab-RFID-Library",
		Long: `Fetch the Bambu-Lab-RFID-Library README (and any extra_sources), merge
it with the materials.json already in the output directory and write
materials.json plus the configured export formats.

Point generated_path at the new materials.json to use it for lookups.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := *a.settings
			if out, _ := cmd.Flags().GetString("out"); out != "" {
				settings.OutputDir = out
			}
			if formats, _ := cmd.Flags().GetStringSlice("format"); len(formats) > 0 {
				settings.ExportFormats = formats
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			manager := generate.NewManager(&settings, a.log, func(event generate.ProgressEvent) {
				if event.Level == generate.LevelVerbose && !a.verbose {
					return
				}
				fmt.Fprintln(out, progressPrefix(event.Level)+event.Message)
			})

			result, err := manager.Run(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return fmt.Errorf("generation cancelled: %w", ctx.Err())
				}
				return err
			}

			fmt.Fprintf(out, "\nGenerated %d records into %s\n", len(result.Records), settings.OutputDir)
			return nil
		},
	}

	cmd.Flags().String("out", "", "output directory (overrides output_dir)")
	cmd.Flags().StringSlice("format", nil, "export formats besides json (overrides export_formats)")

	return cmd
}

func progressPrefix(level generate.ProgressLevel) string {
	switch level {
	case generate.LevelError:
		return "✗ "
	case generate.LevelWarning:
		return "! "
	case generate.LevelSuccess:
		return "✓ "
	case generate.LevelInfo:
		return "› "
	default:
		return "  "
	}
}
