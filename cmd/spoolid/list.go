package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/handiism/spoolid/internal/model"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog records in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			family, _ := cmd.Flags().GetString("family")

			var records []model.Record
			if family != "" {
				records = a.catalog.Family(family)
				if len(records) == 0 {
					return fmt.Errorf("no records for family %q", family)
				}
			} else {
				for _, rec := range a.catalog.All() {
					records = append(records, rec)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), recordTable(records))
			return nil
		},
	}

	cmd.Flags().String("family", "", "only list one material family, e.g. \"PLA Basic\"")

	return cmd
}

func newFamiliesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List material families with their record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range a.catalog.Families() {
				fmt.Fprintf(out, "%s (%d)\n", name, len(a.catalog.Family(name)))
			}
			return nil
		},
	}
}

func recordTable(records []model.Record) string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.FilamentCode, rec.Name, rec.Color, rec.VariantID, rec.MaterialID})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(false).
		Headers("CODE", "MATERIAL", "COLOR", "VARIANT", "ID").
		Rows(rows...).
		String()
}
