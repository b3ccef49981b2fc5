package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tayloree/phonecmp/internal/catalog"
	"github.com/tayloree/phonecmp/internal/display"
	"github.com/tayloree/phonecmp/internal/filter"
)

var (
	flagQuery        string
	flagBrand        string
	flagTier         string
	flagJSON         bool
	flagConfig       string
	flagStoreBackend string
	flagStorePath    string
	flagVerbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "phonecmp",
	Short: "Browse, filter and compare smartphones side by side",
	Long: "CLI tool that lists a phone catalog, filters it by search text, brand and price tier,\n" +
		"and compares up to three selected phones with best and worst values highlighted.\n" +
		"The selection and theme are saved between runs.\n\n" +
		"Agent-friendly mode: minor syntax issues are auto-corrected when intent is clear " +
		"(for example: -brand apple, brand=apple, --brnd apple).",
	Example: `  phonecmp list
  phonecmp --query pixel
  phonecmp --brand samsung --tier premium
  phonecmp select iphone-15-pro galaxy-s24-ultra pixel-8-pro
  phonecmp compare
  phonecmp compare --yaml
  phonecmp theme toggle`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagJSON, "json", false, "Output as JSON")
	pf.StringVar(&flagConfig, "config", "", "Config file (default $XDG_CONFIG_HOME/phonecmp/config.yaml)")
	pf.StringVar(&flagStoreBackend, "store-backend", "", "State backend: file, sqlite, or memory")
	pf.StringVar(&flagStorePath, "store-path", "", "State file or database path")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug details to stderr")

	registerFilterFlags(rootCmd.Flags())

	rootCmd.AddCommand(listCmd)
	registerFilterFlags(listCmd.Flags())
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalog, optionally filtered",
	Example: `  phonecmp list
  phonecmp list --brand google --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// Execute runs the root command.
func Execute() {
	os.Exit(runCLI(os.Args[1:], os.Stdout, os.Stderr))
}

func runCLI(args []string, stdout, stderr io.Writer) int {
	resetCLIState()
	defer closeSession()

	normalizedArgs, notes := normalizeCLIArgs(args)
	for _, note := range notes {
		fmt.Fprintf(stderr, "note: %s\n", note)
	}

	if len(normalizedArgs) == 0 {
		if err := printQuickStart(stdout, !isTTY(stdout)); err != nil {
			cliErr := classifyCLIError(err)
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
			return cliErr.ExitCode
		}
		return ExitSuccess
	}

	if shouldAutoJSON(normalizedArgs, isTTY(stdout)) {
		normalizedArgs = withJSONFlag(normalizedArgs)
	}

	setCommandIO(rootCmd, stdout, stderr)
	rootCmd.SetArgs(normalizedArgs)

	if err := rootCmd.Execute(); err != nil {
		cliErr := classifyCLIError(err)
		if hasFlag(normalizedArgs, "--json") {
			if jerr := printCLIErrorJSON(stderr, cliErr); jerr != nil {
				fmt.Fprintln(stderr, formatCLIErrorText(classifyCLIError(jerr)))
				return ExitInternal
			}
		} else {
			display.PrintError(stderr, formatCLIErrorText(cliErr))
		}
		return cliErr.ExitCode
	}
	return ExitSuccess
}

// withJSONFlag adds --json ahead of any "--" so it is parsed as a flag.
func withJSONFlag(args []string) []string {
	out := make([]string, 0, len(args)+1)
	for i, arg := range args {
		if arg == "--" {
			out = append(out, "--json")
			return append(out, args[i:]...)
		}
		out = append(out, arg)
	}
	return append(out, "--json")
}

func setCommandIO(cmd *cobra.Command, stdout, stderr io.Writer) {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	for _, child := range cmd.Commands() {
		setCommandIO(child, stdout, stderr)
	}
}

// resetCLIState restores every flag to its default so repeated runs in one
// process (tests) do not leak values or Changed marks into each other.
func resetCLIState() {
	resetFlags(rootCmd)
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func registerFilterFlags(f *pflag.FlagSet) {
	f.StringVarP(&flagQuery, "query", "q", "", "Search phones by name or brand")
	f.StringVarP(&flagBrand, "brand", "b", "", "Filter by brand (Apple, Samsung, Google, OnePlus, Nothing)")
	f.StringVarP(&flagTier, "tier", "t", "", "Filter by price tier (budget, mid, premium)")
}

// filterStateFromFlags validates --brand and --tier into a filter state.
func filterStateFromFlags() (filter.State, error) {
	var state filter.State
	state.SetQuery(flagQuery)

	brand, err := filter.ParseBrand(flagBrand)
	if err != nil {
		return state, invalidArgsError(
			fmt.Sprintf("invalid value for --brand: %v", err),
			"phonecmp --brand apple",
			"phonecmp facets",
		)
	}
	state.SetBrand(brand)

	tier, err := filter.ParseTier(flagTier)
	if err != nil {
		return state, invalidArgsError(
			fmt.Sprintf("invalid value for --tier: %v (use budget, mid, or premium)", err),
			"phonecmp --tier mid",
		)
	}
	state.SetTier(tier)
	return state, nil
}

func runList(cmd *cobra.Command, _ []string) error {
	state, err := filterStateFromFlags()
	if err != nil {
		return err
	}
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	all := catalog.Phones()
	items := filter.Apply(all, state)
	s.logger.Debug("filtered catalog", "filters", state.Summary(), "matched", len(items), "total", len(all))

	if len(items) == 0 {
		return notFoundError(
			"no phones match your filters",
			"Relax filters like --query/--brand/--tier.",
			"phonecmp facets",
		)
	}

	if flagJSON {
		return display.PrintPhonesJSON(cmd.OutOrStdout(), items, state, len(all), s.selection.IsSelected)
	}
	display.PrintPhones(cmd.OutOrStdout(), items, state, len(all), s.selection.IsSelected)
	return nil
}
