package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/tayloree/phonecmp/internal/catalog"
	"github.com/tayloree/phonecmp/internal/theme"
)

type flagSpec struct {
	requiresValue bool
	shorthand     byte
	// facet flags also accept the bare `brand:apple` form.
	facet bool
}

var knownFlags = map[string]flagSpec{
	"query":         {requiresValue: true, shorthand: 'q', facet: true},
	"brand":         {requiresValue: true, shorthand: 'b', facet: true},
	"tier":          {requiresValue: true, shorthand: 't', facet: true},
	"json":          {},
	"yaml":          {},
	"only":          {requiresValue: true},
	"config":        {requiresValue: true},
	"store-backend": {requiresValue: true},
	"store-path":    {requiresValue: true},
	"verbose":       {shorthand: 'v'},
	"help":          {shorthand: 'h'},
}

var flagNames = slices.Sorted(maps.Keys(knownFlags))

var flagAliases = map[string]string{
	"search":      "query",
	"make":        "brand",
	"maker":       "brand",
	"price-tier":  "tier",
	"pricetier":   "tier",
	"category":    "tier",
	"backend":     "store-backend",
	"storage":     "store-backend",
	"state":       "store-path",
	"state-path":  "store-path",
	"config-file": "config",
	"debug":       "verbose",
	"rows":        "only",
	"fields":      "only",
}

// argKind says what a command's positionals are, which decides how a bare
// token after the command is repaired.
type argKind int

const (
	argsFlagsOnly argKind = iota
	argsPhoneIDs
	argsTheme
	argsCommand
	argsShell
)

var knownCommands = map[string]argKind{
	"list":       argsFlagsOnly,
	"facets":     argsFlagsOnly,
	"selection":  argsFlagsOnly,
	"clear":      argsFlagsOnly,
	"tui":        argsFlagsOnly,
	"show":       argsPhoneIDs,
	"select":     argsPhoneIDs,
	"remove":     argsPhoneIDs,
	"compare":    argsPhoneIDs,
	"theme":      argsTheme,
	"help":       argsCommand,
	"completion": argsShell,
}

var commandNames = slices.Sorted(maps.Keys(knownCommands))

// Cobra aliases are recognized as written but never used as typo targets.
var commandAliases = map[string]string{
	"rm":       "remove",
	"deselect": "remove",
	"selected": "selection",
	"brands":   "facets",
	"tiers":    "facets",
}

var themeArgAliases = map[string]string{
	"night":  string(theme.Dark),
	"day":    string(theme.Light),
	"switch": "toggle",
	"flip":   "toggle",
}

var completionShells = map[string]string{
	"bash":       "bash",
	"zsh":        "zsh",
	"fish":       "fish",
	"powershell": "powershell",
	"pwsh":       "powershell",
}

type argNormalizer struct {
	out   []string
	notes []string

	command string
	kind    argKind
	// nestedDone is set once help has taken its command argument.
	nestedDone   bool
	pendingValue bool
	literal      bool
}

// normalizeCLIArgs repairs common slips before cobra sees the arguments and
// returns one note per rewrite.
func normalizeCLIArgs(args []string) ([]string, []string) {
	n := &argNormalizer{
		out:   make([]string, 0, len(args)),
		notes: make([]string, 0, 2),
	}
	for i, tok := range args {
		n.feed(tok, i == len(args)-1)
	}
	return n.out, n.notes
}

func (n *argNormalizer) feed(tok string, last bool) {
	switch {
	case n.literal || n.pendingValue:
		n.pendingValue = false
		n.out = append(n.out, tok)
	case tok == "--":
		n.literal = true
		n.out = append(n.out, tok)
	case strings.HasPrefix(tok, "-") && len(tok) > 1:
		n.flag(tok, last)
	default:
		n.positional(tok, last)
	}
}

func (n *argNormalizer) flag(tok string, last bool) {
	if !strings.HasPrefix(tok, "--") && len(tok) == 2 {
		n.out = append(n.out, tok)
		n.pendingValue = flagTakesValue(tok) && !last
		return
	}
	name, value := splitFlag(strings.TrimLeft(tok, "-"))
	canonical, ok := resolveFlagName(name)
	if !ok {
		n.out = append(n.out, tok)
		return
	}
	n.emitFlag(tok, canonical, value, last)
}

func (n *argNormalizer) positional(tok string, last bool) {
	if n.facetPair(tok, last) {
		return
	}

	if n.command == "" {
		if name, ok := resolveCommand(tok); ok {
			n.command = name
			n.kind, _ = commandKind(name)
			n.emit("command", tok, name)
			return
		}
	}

	switch n.kind {
	case argsFlagsOnly:
		if canonical, ok := resolveFlagName(tok); ok {
			n.emitFlag(tok, canonical, "", last)
			return
		}
	case argsPhoneIDs:
		if id, ok := canonicalPhoneID(tok); ok {
			n.emit("phone", tok, id)
			return
		}
	case argsTheme:
		if arg, ok := canonicalThemeArg(tok); ok {
			n.emit("theme", tok, arg)
			return
		}
	case argsCommand:
		if !n.nestedDone {
			if name, ok := resolveCommand(tok); ok {
				n.nestedDone = true
				n.emit("command", tok, name)
				return
			}
		}
	case argsShell:
		if shell, ok := completionShells[strings.ToLower(tok)]; ok {
			n.emit("shell", tok, shell)
			return
		}
	}
	n.out = append(n.out, tok)
}

// facetPair rewrites `tier=mid` for any known flag and `brand:apple` for the
// facet flags.
func (n *argNormalizer) facetPair(tok string, last bool) bool {
	if name, value, ok := strings.Cut(tok, "="); ok {
		if canonical, known := resolveFlagName(name); known {
			n.emitFlag(tok, canonical, "="+value, last)
			return true
		}
		return false
	}
	if name, value, ok := strings.Cut(tok, ":"); ok && value != "" {
		canonical, known := exactFlagName(name)
		if known && knownFlags[canonical].facet {
			n.emitFlag(tok, canonical, "="+value, last)
			return true
		}
	}
	return false
}

func (n *argNormalizer) emitFlag(orig, canonical, value string, last bool) {
	n.emit("", orig, "--"+canonical+value)
	n.pendingValue = knownFlags[canonical].requiresValue && value == "" && !last
}

func (n *argNormalizer) emit(what, orig, rewritten string) {
	n.out = append(n.out, rewritten)
	if orig == rewritten {
		return
	}
	if what != "" {
		what += " "
	}
	n.notes = append(n.notes, fmt.Sprintf("interpreted %s`%s` as `%s`; use `%s` next time.", what, orig, rewritten, rewritten))
}

// flagTakesValue reports whether a flag token consumes the next argument.
func flagTakesValue(tok string) bool {
	if !strings.HasPrefix(tok, "--") && len(tok) == 2 {
		spec, ok := shorthandSpec(tok[1])
		return ok && spec.requiresValue
	}
	name, value := splitFlag(strings.TrimLeft(tok, "-"))
	spec, ok := knownFlags[name]
	return ok && spec.requiresValue && value == ""
}

func shorthandSpec(c byte) (flagSpec, bool) {
	for _, name := range flagNames {
		if spec := knownFlags[name]; spec.shorthand == c {
			return spec, true
		}
	}
	return flagSpec{}, false
}

func exactFlagName(raw string) (string, bool) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "_", "-")
	if canonical, ok := flagAliases[name]; ok {
		return canonical, true
	}
	_, ok := knownFlags[name]
	return name, ok
}

func resolveFlagName(raw string) (string, bool) {
	if name, ok := exactFlagName(raw); ok {
		return name, true
	}
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "_", "-")
	return closestMatch(name, flagNames, 2)
}

func resolveCommand(raw string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := commandKind(name); ok {
		return name, true
	}
	return closestMatch(name, commandNames, 2)
}

func commandKind(name string) (argKind, bool) {
	if canonical, ok := commandAliases[name]; ok {
		name = canonical
	}
	kind, ok := knownCommands[name]
	return kind, ok
}

// canonicalPhoneID maps a case, spacing or separator variant of a catalog id
// ("Pixel_8a", "pixel8a", "Galaxy S24 Ultra") to the id. Typos are left for
// the command to reject with a suggestion, so a near miss never selects the
// wrong phone.
func canonicalPhoneID(tok string) (string, bool) {
	if catalog.Known(tok) {
		return tok, true
	}
	words := strings.FieldsFunc(strings.ToLower(tok), func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	})
	slug := strings.Join(words, "-")
	if catalog.Known(slug) {
		return slug, true
	}
	compact := strings.Join(words, "")
	for _, id := range catalog.IDs() {
		if strings.ReplaceAll(id, "-", "") == compact {
			return id, true
		}
	}
	return "", false
}

func canonicalThemeArg(tok string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(tok))
	if alias, ok := themeArgAliases[name]; ok {
		name = alias
	}
	if name == "toggle" {
		return name, true
	}
	mode, err := theme.Parse(name)
	if err != nil {
		return "", false
	}
	return string(mode), true
}

func explainCLIError(err error) string {
	return formatCLIErrorText(classifyCLIError(err))
}

func splitFlag(value string) (string, string) {
	if name, rest, ok := strings.Cut(value, "="); ok {
		return name, "=" + rest
	}
	return value, ""
}

// extractUnknownValue pulls the offending token out of a cobra message such as
// `unknown command "selction" for "phonecmp"` or `unknown flag: --brnd`.
func extractUnknownValue(msg, marker string) string {
	_, rest, ok := strings.Cut(msg, marker)
	if !ok {
		return ""
	}
	rest = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), ":"))
	for _, quote := range []string{`"`, "`"} {
		if inner, ok := strings.CutPrefix(rest, quote); ok {
			if value, _, closed := strings.Cut(inner, quote); closed {
				return value
			}
		}
	}
	if fields := strings.Fields(rest); len(fields) > 0 {
		return strings.Trim(fields[0], "\"`")
	}
	return ""
}

// closestMatch returns the first candidate at the smallest edit distance, so
// callers pass candidates in a stable order.
func closestMatch(target string, candidates []string, maxDistance int) (string, bool) {
	best, bestDist := "", maxDistance+1
	for _, candidate := range candidates {
		if d := levenshtein(target, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best, bestDist <= maxDistance
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			next := min(row[j]+1, row[j-1]+1, diag+cost)
			diag, row[j] = row[j], next
		}
	}
	return row[len(rb)]
}
