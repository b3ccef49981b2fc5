package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tayloree/phonecmp/internal/catalog"
	"golang.org/x/term"
)

const (
	// ExitSuccess is returned when the command succeeds.
	ExitSuccess = 0
	// ExitNotFound is returned when a phone id or filtered listing has no match.
	ExitNotFound = 1
	// ExitInvalidArgs is returned when the command input is invalid.
	ExitInvalidArgs = 2
	// ExitStorage is returned when the state store cannot be opened.
	ExitStorage = 3
	// ExitInternal is returned for unexpected internal failures.
	ExitInternal = 4
)

// Error codes reported in JSON error payloads.
const (
	codeNotFound    = "NOT_FOUND"
	codeInvalidArgs = "INVALID_ARGS"
	codeStorage     = "STORAGE_ERROR"
	codeInternal    = "INTERNAL_ERROR"
)

var exitCodes = map[string]int{
	codeNotFound:    ExitNotFound,
	codeInvalidArgs: ExitInvalidArgs,
	codeStorage:     ExitStorage,
	codeInternal:    ExitInternal,
}

type cliError struct {
	Code        string
	Message     string
	Suggestions []string
	ExitCode    int
}

func (e *cliError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func newCLIError(code, message string, suggestions ...string) *cliError {
	return &cliError{
		Code:        code,
		Message:     message,
		Suggestions: suggestions,
		ExitCode:    exitCodes[code],
	}
}

func invalidArgsError(message string, suggestions ...string) error {
	return newCLIError(codeInvalidArgs, message, suggestions...)
}

func notFoundError(message string, suggestions ...string) error {
	return newCLIError(codeNotFound, message, suggestions...)
}

func storageError(action string, err error) error {
	return newCLIError(codeStorage, fmt.Sprintf("%s: %v", action, err),
		"Check --store-path points at a writable location.",
		"Use --store-backend memory to run without saved state.",
	)
}

// unknownPhoneError reports an id missing from the catalog, suggesting the
// closest known id when one is near.
func unknownPhoneError(id string) error {
	suggestions := []string{"phonecmp --json", "phonecmp facets"}
	if guess, ok := closestMatch(strings.ToLower(strings.TrimSpace(id)), catalog.IDs(), 3); ok {
		suggestions = append([]string{fmt.Sprintf("Did you mean `%s`?", guess)}, suggestions...)
	}
	return notFoundError(fmt.Sprintf("unknown phone id %q", id), suggestions...)
}

// classifyRule maps an untyped error, usually one of cobra's, to a code by
// substring. Rules are tried in order.
type classifyRule struct {
	code    string
	markers []string
	suggest func(msg string) []string
}

var classifyRules = []classifyRule{
	{
		code:    codeInvalidArgs,
		markers: []string{"unknown command"},
		suggest: suggestCommand,
	},
	{
		code:    codeInvalidArgs,
		markers: []string{"unknown flag", "unknown shorthand flag"},
		suggest: suggestFlag,
	},
	{
		code: codeInvalidArgs,
		markers: []string{
			"requires an argument for flag",
			"flag needs an argument",
			"invalid argument",
			"accepts",
			"requires at least",
		},
		suggest: fixedSuggestions("phonecmp select iphone-15-pro", "phonecmp show pixel-8a"),
	},
	{
		code:    codeNotFound,
		markers: []string{"unknown phone id", "no phones match"},
	},
	{
		code:    codeStorage,
		markers: []string{"opening storage", "file store", "sqlite store"},
		suggest: fixedSuggestions("Use --store-backend memory to run without saved state."),
	},
}

func classifyCLIError(err error) *cliError {
	if err == nil {
		return nil
	}

	var typed *cliError
	if errors.As(err, &typed) {
		return typed
	}

	msg := strings.TrimSpace(err.Error())
	lowerMsg := strings.ToLower(msg)
	for _, rule := range classifyRules {
		for _, marker := range rule.markers {
			if !strings.Contains(lowerMsg, marker) {
				continue
			}
			var suggestions []string
			if rule.suggest != nil {
				suggestions = rule.suggest(msg)
			}
			return newCLIError(rule.code, msg, suggestions...)
		}
	}
	return newCLIError(codeInternal, msg, "Run `phonecmp --help` for usage details.")
}

func fixedSuggestions(s ...string) func(string) []string {
	return func(string) []string { return s }
}

func suggestCommand(msg string) []string {
	suggestions := []string{"phonecmp --brand apple", "phonecmp compare"}
	bad := extractUnknownValue(msg, "unknown command")
	if guess, ok := closestMatch(strings.ToLower(bad), commandNames, 2); ok && bad != "" {
		suggestions = append([]string{fmt.Sprintf("Did you mean `%s`?", guess)}, suggestions...)
	}
	return suggestions
}

func suggestFlag(msg string) []string {
	suggestions := []string{"phonecmp --query pixel", "phonecmp --brand samsung --tier premium"}
	bad := strings.TrimLeft(extractUnknownValue(msg, "unknown flag"), "-")
	if name, ok := resolveFlagName(bad); ok && bad != "" {
		suggestions = append([]string{fmt.Sprintf("Try `--%s`.", name)}, suggestions...)
	}
	return suggestions
}

type jsonErrorPayload struct {
	Error jsonErrorBody `json:"error"`
}

type jsonErrorBody struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
	ExitCode    int      `json:"exitCode"`
}

func printCLIErrorJSON(w io.Writer, err *cliError) error {
	if err == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(jsonErrorPayload{Error: jsonErrorBody(*err)})
}

func formatCLIErrorText(err *cliError) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "error[%s]: %s", strings.ToLower(err.Code), err.Message)
	if len(err.Suggestions) > 0 {
		b.WriteString("\nsuggestions:")
		for _, suggestion := range err.Suggestions {
			b.WriteString("\n  " + suggestion)
		}
	}
	return b.String()
}

func isTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// hasFlag reports whether any of names appears before a "--" boundary, bare
// or in `--name=value` form.
func hasFlag(args []string, names ...string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		for _, name := range names {
			if arg == name || strings.HasPrefix(arg, name+"=") {
				return true
			}
		}
	}
	return false
}

// shouldAutoJSON turns on JSON when stdout is piped, unless the caller
// already chose a format or asked for help or a completion script.
func shouldAutoJSON(args []string, stdoutIsTTY bool) bool {
	if stdoutIsTTY || len(args) == 0 {
		return false
	}
	if hasFlag(args, "--json", "--yaml", "-h", "--help") {
		return false
	}
	kind, ok := commandKind(firstCommand(args))
	return !ok || (kind != argsCommand && kind != argsShell)
}

// firstCommand returns the first positional, skipping flag values.
func firstCommand(args []string) string {
	pending := false
	for _, arg := range args {
		switch {
		case pending:
			pending = false
		case arg == "--":
			return ""
		case !strings.HasPrefix(arg, "-"):
			return arg
		default:
			pending = flagTakesValue(arg)
		}
	}
	return ""
}

type quickStartJSON struct {
	Name     string   `json:"name"`
	Usage    string   `json:"usage"`
	Examples []string `json:"examples"`
	Flags    []string `json:"flags"`
}

func printQuickStart(w io.Writer, asJSON bool) error {
	help := quickStartJSON{
		Name:  "phonecmp",
		Usage: "phonecmp [flags] | [" + strings.Join(quickStartCommands(), "|") + "] [args] [flags]",
		Examples: []string{
			"phonecmp list --brand google --tier mid",
			"phonecmp select iphone-15-pro galaxy-s24-ultra",
			"phonecmp compare",
		},
	}
	for _, name := range flagNames {
		if name != "help" {
			help.Flags = append(help.Flags, "--"+name)
		}
	}

	if asJSON {
		return json.NewEncoder(w).Encode(help)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\nusage: %s\nexamples:\n", help.Name, help.Usage)
	for _, example := range help.Examples {
		fmt.Fprintf(&b, "  %s\n", example)
	}
	fmt.Fprintf(&b, "flags: %s\n", strings.Join(help.Flags, " "))
	_, err := io.WriteString(w, b.String())
	return err
}

// quickStartCommands lists the commands that work on phones and state.
func quickStartCommands() []string {
	out := make([]string, 0, len(commandNames))
	for _, name := range commandNames {
		if kind := knownCommands[name]; kind != argsCommand && kind != argsShell {
			out = append(out, name)
		}
	}
	return out
}
