package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/handiism/spoolid/internal/catalog"
	"github.com/handiism/spoolid/internal/config"
	"github.com/handiism/spoolid/internal/logging"
)

// app holds what every subcommand needs once flags are parsed.
type app struct {
	settings *config.Settings
	log      *zap.Logger
	catalog  *catalog.Catalog
	verbose  bool
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "spoolid",
		Short: "Identify Bambu Lab filament spools from their RFID codes",
		Long: `spoolid maps the filament code or material/variant ids read from a
Bambu Lab spool's RFID tag to a material name and color. It can also
export the catalog, refresh it from the Bambu-Lab-RFID-Library and listen
to a reader on a serial port.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default ./spoolid.yaml or ~/.config/spoolid/spoolid.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newLookupCmd(a),
		newListCmd(a),
		newFamiliesCmd(a),
		newExportCmd(a),
		newGenerateCmd(a),
		newWatchCmd(a),
		newPreviewCmd(a),
		newTUICmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

// setup loads settings, builds the logger and opens the catalog.
func (a *app) setup(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	a.verbose, _ = cmd.Flags().GetBool("verbose")

	settings, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	a.settings = settings

	logger, err := logging.New(settings.LogLevel, a.verbose)
	if err != nil {
		return err
	}
	a.log = logger

	if settings.GeneratedPath == "" {
		a.catalog = catalog.Default()
	} else {
		cat, err := catalog.Load(settings.GeneratedPath)
		if err != nil {
			return err
		}
		a.catalog = cat
	}

	a.log.Debug("catalog ready",
		zap.Int("records", a.catalog.Count()),
		zap.String("generated_path", settings.GeneratedPath))
	return nil
}
