package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tayloree/phonecmp/internal/catalog"
	"github.com/tayloree/phonecmp/internal/display"
	"github.com/tayloree/phonecmp/internal/filter"
)

var facetsCmd = &cobra.Command{
	Use:     "facets",
	Aliases: []string{"brands", "tiers"},
	Short:   "List brands and price tiers with phone counts",
	Example: `  phonecmp facets
  phonecmp facets --json`,
	Args: cobra.NoArgs,
	RunE: runFacets,
}

func init() {
	rootCmd.AddCommand(facetsCmd)
}

func runFacets(cmd *cobra.Command, _ []string) error {
	all := catalog.Phones()
	brands := filter.BrandCounts(all)
	tiers := filter.TierCounts(all)

	if flagJSON {
		return display.PrintFacetsJSON(cmd.OutOrStdout(), brands, tiers)
	}
	display.PrintFacets(cmd.OutOrStdout(), brands, tiers)
	return nil
}
