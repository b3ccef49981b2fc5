package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tayloree/phonecmp/internal/catalog"
	"github.com/tayloree/phonecmp/internal/compare"
	"github.com/tayloree/phonecmp/internal/display"
)

var selectCmd = &cobra.Command{
	Use:   "select ID...",
	Short: "Toggle phones in the comparison selection",
	Long: fmt.Sprintf("Adds each phone that is not selected and removes each phone that is.\n"+
		"At most %d phones can be selected; extra additions are skipped.", compare.MaxSelected),
	Example: `  phonecmp select iphone-15-pro galaxy-s24-ultra
  phonecmp select pixel-8a --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSelect,
}

var removeCmd = &cobra.Command{
	Use:     "remove ID...",
	Aliases: []string{"rm", "deselect"},
	Short:   "Remove phones from the comparison selection",
	Example: `  phonecmp remove pixel-8a`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRemove,
}

var clearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Empty the comparison selection",
	Example: `  phonecmp clear`,
	Args:    cobra.NoArgs,
	RunE:    runClear,
}

var selectionCmd = &cobra.Command{
	Use:     "selection",
	Aliases: []string{"selected"},
	Short:   "Show the phones selected for comparison",
	Example: `  phonecmp selection
  phonecmp selection --json`,
	Args: cobra.NoArgs,
	RunE: runSelection,
}

func init() {
	rootCmd.AddCommand(selectCmd, removeCmd, clearCmd, selectionCmd)
}

func runSelect(cmd *cobra.Command, args []string) error {
	for _, id := range args {
		if !catalog.Known(id) {
			return unknownPhoneError(id)
		}
	}
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	for _, id := range args {
		wasSelected := s.selection.IsSelected(id)
		if !s.selection.Toggle(id) {
			display.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf(
				"note: skipped %s; selection is full (%d/%d). Remove a phone first.",
				id, s.selection.Len(), compare.MaxSelected,
			))
			continue
		}
		if wasSelected {
			s.logger.Debug("deselected", "id", id)
		} else {
			s.logger.Debug("selected", "id", id)
		}
	}
	return printSelection(cmd, s)
}

func runRemove(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	for _, id := range args {
		if !s.selection.Remove(id) {
			display.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("note: %s was not selected.", id))
		}
	}
	return printSelection(cmd, s)
}

func runClear(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	s.selection.Clear()
	return printSelection(cmd, s)
}

func runSelection(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	return printSelection(cmd, s)
}

func printSelection(cmd *cobra.Command, s *session) error {
	ids := s.selection.IDs()
	items := catalog.Resolve(ids)
	if flagJSON {
		return display.PrintSelectionJSON(cmd.OutOrStdout(), ids, items, s.selection.CanAddMore(), s.selection.CanCompare())
	}
	display.PrintSelection(cmd.OutOrStdout(), items, s.selection.CanCompare())
	return nil
}
