package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCLIArgs_RewritesCommonFlagSyntax(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"-brand", "apple", "json"})

	assert.Equal(t, []string{"--brand", "apple", "--json"}, args)
	assert.NotEmpty(t, notes)
}

func TestNormalizeCLIArgs_RewritesTypoFlag(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"--brnd", "apple"})

	assert.Equal(t, []string{"--brand", "apple"}, args)
	assert.NotEmpty(t, notes)
}

func TestNormalizeCLIArgs_RewritesAssignmentSyntax(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"list", "tier=mid"})

	assert.Equal(t, []string{"list", "--tier=mid"}, args)
	assert.NotEmpty(t, notes)
}

func TestNormalizeCLIArgs_RewritesAlias(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"--search", "pixel"})

	assert.Equal(t, []string{"--query", "pixel"}, args)
	assert.NotEmpty(t, notes)
}

func TestNormalizeCLIArgs_RewritesCommandTypo(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"selction", "--json"})

	assert.Equal(t, []string{"selection", "--json"}, args)
	assert.NotEmpty(t, notes)
}

func TestNormalizeCLIArgs_LeavesPhoneIDsAlone(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"compare", "iphone-15-pro", "pixel-8-pro"})

	assert.Equal(t, []string{"compare", "iphone-15-pro", "pixel-8-pro"}, args)
	assert.Empty(t, notes)

	args, notes = normalizeCLIArgs([]string{"select", "pixel-8a"})
	assert.Equal(t, []string{"select", "pixel-8a"}, args)
	assert.Empty(t, notes)
}

func TestNormalizeCLIArgs_LeavesThemeArgAlone(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"theme", "dark"})

	assert.Equal(t, []string{"theme", "dark"}, args)
	assert.Empty(t, notes)
}

func TestNormalizeCLIArgs_DoesNotRewriteCompletionPositionalArgs(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"completion", "zsh"})

	assert.Equal(t, []string{"completion", "zsh"}, args)
	assert.Empty(t, notes)
}

func TestNormalizeCLIArgs_DoesNotRewriteHelpCommandArgAsFlag(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"help", "select"})

	assert.Equal(t, []string{"help", "select"}, args)
	assert.Empty(t, notes)
}

func TestNormalizeCLIArgs_RespectsDoubleDashBoundary(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"list", "--", "brand", "apple"})

	assert.Equal(t, []string{"list", "--", "brand", "apple"}, args)
	assert.Empty(t, notes)
}

func TestNormalizeCLIArgs_LeavesKnownShorthandUntouched(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"-b", "apple", "-q", "pro"})

	assert.Equal(t, []string{"-b", "apple", "-q", "pro"}, args)
	assert.Empty(t, notes)
}

func TestExplainCLIError_UnknownFlagIncludesSuggestionAndExamples(t *testing.T) {
	msg := explainCLIError(errors.New("unknown flag: --brnd"))

	assert.Contains(t, msg, "Try `--brand`.")
	assert.Contains(t, msg, "phonecmp --query pixel")
	assert.Contains(t, msg, "phonecmp --brand samsung --tier premium")
}

func TestExplainCLIError_UnknownCommandIncludesSuggestionAndExamples(t *testing.T) {
	msg := explainCLIError(errors.New("unknown command \"selction\" for \"phonecmp\""))

	assert.Contains(t, msg, "Did you mean `selection`?")
	assert.Contains(t, msg, "phonecmp compare")
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("tier", "tier"))
	assert.Equal(t, 1, levenshtein("brnd", "brand"))
	assert.Equal(t, 4, levenshtein("", "json"))
}

func TestNormalizeCLIArgs_CanonicalizesPhoneIDVariants(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"compare", "iPhone_15_Pro", "pixel8pro", "Galaxy S24 Ultra"})

	assert.Equal(t, []string{"compare", "iphone-15-pro", "pixel-8-pro", "galaxy-s24-ultra"}, args)
	assert.Len(t, notes, 3)
	assert.Contains(t, notes[0], "interpreted phone `iPhone_15_Pro` as `iphone-15-pro`")
}

func TestNormalizeCLIArgs_LeavesMistypedPhoneIDForTheCommand(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"show", "pixel-9"})

	assert.Equal(t, []string{"show", "pixel-9"}, args)
	assert.Empty(t, notes)
}

func TestNormalizeCLIArgs_CanonicalizesThemeArg(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"theme", "Night"})
	assert.Equal(t, []string{"theme", "dark"}, args)
	assert.NotEmpty(t, notes)

	args, _ = normalizeCLIArgs([]string{"theme", "switch"})
	assert.Equal(t, []string{"theme", "toggle"}, args)
}

func TestNormalizeCLIArgs_RewritesFacetColonPair(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"list", "brand:apple", "tier:premium"})

	assert.Equal(t, []string{"list", "--brand=apple", "--tier=premium"}, args)
	assert.Len(t, notes, 2)
}

func TestNormalizeCLIArgs_ColonPairNeedsFacetFlag(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"list", "json:true"})

	assert.Equal(t, []string{"list", "json:true"}, args)
	assert.Empty(t, notes)
}

func TestNormalizeCLIArgs_CommandAliasesAreNotRewritten(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"rm", "Pixel_8a"})

	assert.Equal(t, []string{"rm", "pixel-8a"}, args)
	assert.Len(t, notes, 1)
}

func TestNormalizeCLIArgs_HelpRepairsCommandArg(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"help", "selct"})

	assert.Equal(t, []string{"help", "select"}, args)
	assert.NotEmpty(t, notes)
}

func TestNormalizeCLIArgs_CompletionShellAlias(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"completion", "pwsh"})

	assert.Equal(t, []string{"completion", "powershell"}, args)
	assert.NotEmpty(t, notes)
}

func TestNormalizeCLIArgs_ShorthandValueIsNotRewritten(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"-t", "json"})

	assert.Equal(t, []string{"-t", "json"}, args)
	assert.Empty(t, notes)
}

func TestCanonicalPhoneID(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"pixel-8a", "pixel-8a", true},
		{"PIXEL-8A", "pixel-8a", true},
		{"oneplus_12", "oneplus-12", true},
		{"nothingphone2", "nothing-phone-2", true},
		{"pixel-8", "", false},
	}
	for _, tt := range tests {
		got, ok := canonicalPhoneID(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}
