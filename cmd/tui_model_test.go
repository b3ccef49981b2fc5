package cmd

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/phonecmp/internal/catalog"
	"github.com/tayloree/phonecmp/internal/compare"
	"github.com/tayloree/phonecmp/internal/filter"
	"github.com/tayloree/phonecmp/internal/storage"
	"github.com/tayloree/phonecmp/internal/theme"
)

func newTestTUIModel(t *testing.T, state filter.State) (phonesTUIModel, storage.Store) {
	t.Helper()
	store := storage.NewMemory()
	m := newPhonesTUIModel(tuiConfig{
		phones:    catalog.Phones(),
		state:     state,
		selection: compare.NewSelection(store),
		theme:     theme.Load(store, theme.Light, nil),
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return next.(phonesTUIModel), store
}

func press(t *testing.T, m phonesTUIModel, keys ...tea.KeyMsg) phonesTUIModel {
	t.Helper()
	for _, key := range keys {
		next, _ := m.Update(key)
		var ok bool
		m, ok = next.(phonesTUIModel)
		require.True(t, ok)
	}
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestTUI_InitialStateShowsEveryPhone(t *testing.T) {
	m, _ := newTestTUIModel(t, filter.State{})

	assert.Equal(t, 8, m.visiblePhones)
	assert.Equal(t, "iphone-15-pro", m.selectedID)
	assert.Contains(t, m.View(), "0/3 selected")
}

func TestTUI_CycleBrandAndTier(t *testing.T) {
	m, _ := newTestTUIModel(t, filter.State{})

	m = press(t, m, runeKey("b"))
	assert.Equal(t, catalog.BrandApple, m.state.Brand)
	assert.Equal(t, 2, m.visiblePhones)

	m = press(t, m, runeKey("p"))
	assert.Equal(t, catalog.TierBudget, m.state.Tier)
	assert.Equal(t, 0, m.visiblePhones)
	assert.Contains(t, m.detail.View(), "No phones match")

	m = press(t, m, runeKey("x"))
	assert.False(t, m.state.HasActive())
	assert.Equal(t, 8, m.visiblePhones)
}

func TestTUI_InitialFiltersAndReset(t *testing.T) {
	m, _ := newTestTUIModel(t, filter.State{Brand: catalog.BrandGoogle})
	assert.Equal(t, 2, m.visiblePhones)
	assert.Equal(t, 3, m.brandIndex)

	m = press(t, m, runeKey("x"))
	assert.Equal(t, 8, m.visiblePhones)

	m = press(t, m, runeKey("r"))
	assert.Equal(t, catalog.BrandGoogle, m.state.Brand)
	assert.Equal(t, 2, m.visiblePhones)
}

func TestTUI_SearchNarrowsAsYouType(t *testing.T) {
	m, _ := newTestTUIModel(t, filter.State{})

	m = press(t, m, runeKey("/"))
	assert.Equal(t, tuiFocusQuery, m.focus)

	m = press(t, m, runeKey("p"), runeKey("i"), runeKey("x"))
	assert.Equal(t, "pix", m.state.Query)
	assert.Equal(t, 2, m.visiblePhones)
	assert.Equal(t, catalog.Brand(""), m.state.Brand)

	m = press(t, m, enterKey)
	assert.Equal(t, tuiFocusList, m.focus)
	assert.Equal(t, "pix", m.state.Query)
}

func TestTUI_ToggleSelectionPersists(t *testing.T) {
	m, store := newTestTUIModel(t, filter.State{})

	m = press(t, m, spaceKey, downKey, spaceKey)
	assert.Equal(t, []string{"iphone-15-pro", "iphone-15"}, m.selection.IDs())
	assert.Contains(t, m.View(), "2/3 selected")

	raw, ok, err := store.Get(compare.SelectionKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["iphone-15-pro","iphone-15"]`, raw)

	m = press(t, m, spaceKey)
	assert.Equal(t, []string{"iphone-15-pro"}, m.selection.IDs())
}

func TestTUI_SelectionFullIgnoresFourth(t *testing.T) {
	m, _ := newTestTUIModel(t, filter.State{})

	m = press(t, m, spaceKey, downKey, spaceKey, downKey, spaceKey, downKey, spaceKey)
	assert.Equal(t, 3, m.selection.Len())
	assert.False(t, m.selection.IsSelected("galaxy-a54"))

	m = press(t, m, runeKey("X"))
	assert.Equal(t, 0, m.selection.Len())
}

func TestTUI_CompareViewNeedsTwo(t *testing.T) {
	m, _ := newTestTUIModel(t, filter.State{})

	m = press(t, m, spaceKey, runeKey("c"))
	assert.Equal(t, tuiViewBrowse, m.view)

	m = press(t, m, downKey, downKey, spaceKey, runeKey("c"))
	require.Equal(t, tuiViewCompare, m.view)
	view := m.detail.View()
	assert.Contains(t, view, "Comparison")
	assert.Contains(t, view, "Galaxy S24 Ultra")
	assert.Contains(t, view, "▲")

	m = press(t, m, escKey)
	assert.Equal(t, tuiViewBrowse, m.view)
}

func TestTUI_ThemeTogglePersists(t *testing.T) {
	m, store := newTestTUIModel(t, filter.State{})

	m = press(t, m, runeKey("t"))
	assert.Equal(t, theme.Dark, m.theme.Mode())

	raw, ok, err := store.Get(theme.Key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", raw)
	assert.Contains(t, m.View(), "theme: dark")
}

func TestTUI_TooSmallTerminal(t *testing.T) {
	m, _ := newTestTUIModel(t, filter.State{})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Contains(t, next.View(), "Terminal too small")
}

func TestRenderPhoneDetailContent(t *testing.T) {
	p, ok := catalog.Lookup("galaxy-a54")
	require.True(t, ok)

	content := renderPhoneDetailContent(p, true, 60)
	assert.Contains(t, content, "Galaxy A54")
	assert.Contains(t, content, "$449")
	assert.Contains(t, content, "Selected for comparison")
	assert.Contains(t, content, "Exynos 1380")
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "", wrapText("   ", 20))
	assert.Equal(t, "alpha beta\ngamma", wrapText("alpha beta gamma", 12))
}
