package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/handiism/spoolid/internal/catalog"
	"github.com/handiism/spoolid/internal/display"
)

func newLookupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup [filament-code]",
		Short: "Look up a spool by filament code or material/variant ids",
		Long: `Look up a spool by the 5-digit filament code, or by the material and
variant ids with --material and --variant.

Prints the two display lines (material, color). On a miss the configured
fallback label and the query are printed and the command fails.`,
		Example: `  spoolid lookup 10101
  spoolid lookup --material GFH02 --variant G02-B0`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			materialID, _ := cmd.Flags().GetString("material")
			variantID, _ := cmd.Flags().GetString("variant")
			asJSON, _ := cmd.Flags().GetBool("json")

			var q display.Query
			switch {
			case len(args) == 1 && materialID == "" && variantID == "":
				q = display.CodeQuery(args[0])
			case len(args) == 0 && materialID != "" && variantID != "":
				q = display.PairQuery(materialID, variantID)
			default:
				return errors.New("give either a filament code or both --material and --variant")
			}

			res := display.Resolve(a.catalog, q, a.settings.FallbackLabel)
			a.log.Debug("lookup", zap.String("query", q.String()), zap.Bool("found", res.Found))

			out := cmd.OutOrStdout()
			if asJSON {
				if !res.Found {
					return fmt.Errorf("%w: %s", catalog.ErrNotFound, q)
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res.Record)
			}

			fmt.Fprintln(out, res.Line1)
			fmt.Fprintln(out, res.Line2)
			if res.Found && a.verbose {
				fmt.Fprintf(out, "code %s  variant %s  material %s\n",
					res.Record.FilamentCode, res.Record.VariantID, res.Record.MaterialID)
			}

			if !res.Found {
				return fmt.Errorf("%w: %s", catalog.ErrNotFound, q)
			}
			return nil
		},
	}

	cmd.Flags().String("material", "", "material id, e.g. GFA00")
	cmd.Flags().String("variant", "", "variant id, e.g. A00-K0")
	cmd.Flags().Bool("json", false, "print the matching record as JSON")

	return cmd
}
