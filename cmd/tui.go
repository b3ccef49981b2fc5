package cmd

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tayloree/phonecmp/internal/catalog"
	"github.com/tayloree/phonecmp/internal/display"
	"github.com/tayloree/phonecmp/internal/filter"
	"golang.org/x/term"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse, select and compare phones interactively",
	Example: `  phonecmp tui
  phonecmp tui --brand google --tier mid`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	registerFilterFlags(tuiCmd.Flags())
}

func runTUI(cmd *cobra.Command, _ []string) error {
	state, err := filterStateFromFlags()
	if err != nil {
		return err
	}
	if !flagJSON && !isInteractiveSession(cmd.InOrStdin(), cmd.OutOrStdout()) {
		return invalidArgsError(
			"`phonecmp tui` requires an interactive terminal",
			"Use `phonecmp list --json` in pipelines.",
		)
	}

	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	if flagJSON {
		all := catalog.Phones()
		return display.PrintPhonesJSON(cmd.OutOrStdout(), filter.Apply(all, state), state, len(all), s.selection.IsSelected)
	}

	model := newPhonesTUIModel(tuiConfig{
		phones:    catalog.Phones(),
		state:     state,
		selection: s.selection,
		theme:     s.theme,
		logger:    s.logger,
	})
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithContext(cmd.Context()),
	)
	_, err = program.Run()
	return err
}

func isInteractiveSession(stdin io.Reader, stdout io.Writer) bool {
	inputFile, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	if !term.IsTerminal(int(inputFile.Fd())) {
		return false
	}
	return isTTY(stdout)
}
