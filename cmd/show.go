package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tayloree/phonecmp/internal/catalog"
	"github.com/tayloree/phonecmp/internal/display"
)

var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show every spec for one phone",
	Example: `  phonecmp show pixel-8a
  phonecmp show oneplus-12 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	item, ok := catalog.Lookup(args[0])
	if !ok {
		return unknownPhoneError(args[0])
	}
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	selected := s.selection.IsSelected(item.ID)
	if flagJSON {
		return display.PrintPhoneDetailJSON(cmd.OutOrStdout(), item, selected)
	}
	display.PrintPhoneDetail(cmd.OutOrStdout(), item, selected)
	return nil
}
