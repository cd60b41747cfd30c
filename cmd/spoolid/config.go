package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/handiism/spoolid/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the spoolid config file",
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file with the default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "spoolid.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			force, _ := cmd.Flags().GetBool("force")

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.DefaultSettings().Save(path); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().Bool("force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.settings
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "readme_url:             %s\n", s.ReadmeURL)
			fmt.Fprintf(out, "extra_sources:          %v\n", s.ExtraSources)
			fmt.Fprintf(out, "output_dir:             %s\n", s.OutputDir)
			fmt.Fprintf(out, "export_formats:         %v\n", s.ExportFormats)
			fmt.Fprintf(out, "max_concurrent_fetches: %d\n", s.MaxConcurrentFetches)
			fmt.Fprintf(out, "fetch_timeout:          %g\n", s.FetchTimeout)
			fmt.Fprintf(out, "fetch_max_retries:      %d\n", s.FetchMaxRetries)
			fmt.Fprintf(out, "fetch_retry_cooldown:   %g\n", s.FetchRetryCooldown)
			fmt.Fprintf(out, "fetch_retry_exponent:   %g\n", s.FetchRetryExponent)
			fmt.Fprintf(out, "generated_path:         %s\n", s.GeneratedPath)
			fmt.Fprintf(out, "fallback_label:         %s\n", s.FallbackLabel)
			fmt.Fprintf(out, "serial_port:            %s\n", s.SerialPort)
			fmt.Fprintf(out, "baud_rate:              %d\n", s.BaudRate)
			fmt.Fprintf(out, "preview_scale:          %d\n", s.PreviewScale)
			fmt.Fprintf(out, "log_level:              %s\n", s.LogLevel)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
