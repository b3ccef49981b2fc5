package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tayloree/phonecmp/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|toggle]",
	Short: "Show or change the saved color theme",
	Example: `  phonecmp theme
  phonecmp theme dark
  phonecmp theme toggle`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(theme.Light), string(theme.Dark), "toggle"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

type themeJSON struct {
	Theme   string `json:"theme"`
	Changed bool   `json:"changed"`
}

func runTheme(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	before := s.theme.Mode()
	if len(args) == 1 {
		switch arg := strings.ToLower(strings.TrimSpace(args[0])); arg {
		case "toggle":
			s.theme.Toggle()
		default:
			mode, perr := theme.Parse(arg)
			if perr != nil {
				return invalidArgsError(
					fmt.Sprintf("invalid theme %q (use light, dark, or toggle)", args[0]),
					"phonecmp theme dark",
					"phonecmp theme toggle",
				)
			}
			if mode != before {
				s.theme.Set(mode)
			}
		}
	}

	after := s.theme.Mode()
	if flagJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(themeJSON{Theme: string(after), Changed: after != before})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\n", after)
	return nil
}
