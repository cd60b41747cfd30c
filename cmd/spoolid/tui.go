package main

import (
	"github.com/spf13/cobra"

	"github.com/handiism/spoolid/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive lookup UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Console logs would draw over the alt screen.
			return tui.Run(a.catalog, a.settings, nil)
		},
	}
}
