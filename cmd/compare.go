package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tayloree/phonecmp/internal/catalog"
	"github.com/tayloree/phonecmp/internal/compare"
	"github.com/tayloree/phonecmp/internal/display"
)

var (
	flagYAML bool
	flagOnly []string
)

var compareCmd = &cobra.Command{
	Use:   "compare [ID...]",
	Short: "Compare selected phones side by side",
	Long: "Renders the selected phones as a table with the best value in each row marked ▲\n" +
		"and the worst marked ▼. Pass ids to compare them without changing the selection.",
	Example: `  phonecmp compare
  phonecmp compare iphone-15-pro pixel-8-pro
  phonecmp compare --only battery,screen-size
  phonecmp compare --yaml
  phonecmp compare --json`,
	Args: cobra.MaximumNArgs(compare.MaxSelected),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Output as YAML")
	compareCmd.Flags().StringSliceVar(&flagOnly, "only", nil, "Rows to show (price, battery, screen-size, camera, storage, ram, processor)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	if flagJSON && flagYAML {
		return invalidArgsError(
			"--json and --yaml cannot be combined",
			"phonecmp compare --json",
			"phonecmp compare --yaml",
		)
	}

	keys, err := rowKeysFromFlag(flagOnly)
	if err != nil {
		return err
	}

	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	ids, err := compareIDs(args, s)
	if err != nil {
		return err
	}

	items := catalog.Resolve(ids)
	rows := compare.SelectRows(compare.Table(items), keys)
	s.logger.Debug("comparing", "ids", ids, "rows", len(rows))

	switch {
	case flagJSON:
		return display.PrintComparisonJSON(cmd.OutOrStdout(), items, rows)
	case flagYAML:
		return display.PrintComparisonYAML(cmd.OutOrStdout(), items, rows)
	default:
		display.PrintComparison(cmd.OutOrStdout(), items, rows, s.theme.Mode())
		return nil
	}
}

// compareIDs picks explicit ids when given, otherwise the saved selection.
func compareIDs(args []string, s *session) ([]string, error) {
	if len(args) == 0 {
		ids := s.selection.IDs()
		if len(ids) < compare.MinCompare {
			return nil, invalidArgsError(
				fmt.Sprintf("select at least %d phones to compare (%d/%d selected)", compare.MinCompare, len(ids), compare.MaxSelected),
				"phonecmp select iphone-15-pro galaxy-s24-ultra",
				"phonecmp compare pixel-8a nothing-phone-2",
			)
		}
		return ids, nil
	}

	seen := make(map[string]struct{}, len(args))
	ids := make([]string, 0, len(args))
	for _, id := range args {
		if !catalog.Known(id) {
			return nil, unknownPhoneError(id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) < compare.MinCompare {
		return nil, invalidArgsError(
			fmt.Sprintf("compare needs at least %d different phones", compare.MinCompare),
			"phonecmp compare pixel-8a nothing-phone-2",
		)
	}
	return ids, nil
}

func rowKeysFromFlag(names []string) ([]compare.AttributeKey, error) {
	keys := make([]compare.AttributeKey, 0, len(names))
	for _, name := range names {
		key, ok := compare.ParseAttributeKey(name)
		if !ok {
			return nil, invalidArgsError(
				fmt.Sprintf("unknown comparison row %q (use price, battery, screen-size, camera, storage, ram, processor)", name),
				"phonecmp compare --only battery,screen-size",
			)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
