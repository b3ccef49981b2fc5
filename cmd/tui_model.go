package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/tayloree/phonecmp/internal/catalog"
	"github.com/tayloree/phonecmp/internal/compare"
	"github.com/tayloree/phonecmp/internal/display"
	"github.com/tayloree/phonecmp/internal/filter"
	"github.com/tayloree/phonecmp/internal/logging"
	"github.com/tayloree/phonecmp/internal/theme"
)

const (
	minTUIWidth  = 92
	minTUIHeight = 24
)

var (
	tuiHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	tuiMetaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tuiHintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tuiValueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tuiPickedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	tuiNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tuiMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	tuiSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
)

type tuiConfig struct {
	phones    []catalog.Phone
	state     filter.State
	selection *compare.Selection
	theme     *theme.Preference
	logger    *log.Logger
}

type tuiFocus int

const (
	tuiFocusList tuiFocus = iota
	tuiFocusDetail
	tuiFocusQuery
)

type tuiView int

const (
	tuiViewBrowse tuiView = iota
	tuiViewCompare
)

type tuiPhoneItem struct {
	phone    catalog.Phone
	selected bool
}

func (p tuiPhoneItem) FilterValue() string { return strings.ToLower(p.phone.Name + " " + string(p.phone.Brand)) }
func (p tuiPhoneItem) Title() string {
	if p.selected {
		return "[x] " + p.phone.Name
	}
	return "[ ] " + p.phone.Name
}
func (p tuiPhoneItem) Description() string {
	return fmt.Sprintf("%s  •  %s  •  %s", catalog.FormatPrice(p.phone.Price), p.phone.Brand, p.phone.PriceTier)
}

type phonesTUIModel struct {
	allPhones []catalog.Phone
	state     filter.State
	initial   filter.State

	selection *compare.Selection
	theme     *theme.Preference
	logger    *log.Logger

	brandChoices []catalog.Brand
	brandIndex   int
	tierChoices  []catalog.PriceTier
	tierIndex    int

	list   list.Model
	detail viewport.Model
	query  textinput.Model

	focus      tuiFocus
	view       tuiView
	showHelp   bool
	selectedID string

	visiblePhones int

	width, height   int
	bodyHeight      int
	listPaneWidth   int
	detailPaneWidth int
	tooSmall        bool
}

func newPhonesTUIModel(cfg tuiConfig) phonesTUIModel {
	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(1)

	lst := list.New([]list.Item{}, delegate, 0, 0)
	lst.Title = "Phones"
	lst.SetStatusBarItemName("phone", "phones")
	lst.SetShowStatusBar(true)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.SetShowPagination(true)
	lst.DisableQuitKeybindings()

	detail := viewport.New(0, 0)
	detail.KeyMap.PageDown.SetKeys("f", "pgdown")
	detail.KeyMap.PageUp.SetKeys("pgup")
	detail.KeyMap.HalfPageDown.SetKeys("d")
	detail.KeyMap.HalfPageUp.SetKeys("u")

	query := textinput.New()
	query.Prompt = "search: "
	query.Placeholder = "name or brand"
	query.CharLimit = 64
	query.SetValue(cfg.state.Query)

	selection := cfg.selection
	if selection == nil {
		selection = compare.NewSelection(nil)
	}
	pref := cfg.theme
	if pref == nil {
		pref = theme.Load(nil, theme.Light, cfg.logger)
	}
	logger := cfg.logger
	if logger == nil {
		logger = logging.Discard()
	}

	m := phonesTUIModel{
		allPhones:    cfg.phones,
		state:        cfg.state,
		initial:      cfg.state,
		selection:    selection,
		theme:        pref,
		logger:       logger,
		brandChoices: filter.BrandChoices(),
		tierChoices:  filter.TierChoices(),
		list:         lst,
		detail:       detail,
		query:        query,
		focus:        tuiFocusList,
	}
	m.syncChoiceIndexes()
	m.applyCurrentFilters(true)
	return m
}

func (m phonesTUIModel) Init() tea.Cmd {
	return nil
}

func (m phonesTUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.focus == tuiFocusQuery {
			return m.updateQuery(msg)
		}
		if m.view == tuiViewCompare {
			return m.updateCompare(msg)
		}
		if next, cmd, handled := m.handleBrowseKey(msg); handled {
			return next, cmd
		}
		if m.focus == tuiFocusDetail {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.refreshDetail(false)
	return m, cmd
}

func (m phonesTUIModel) handleBrowseKey(msg tea.KeyMsg) (phonesTUIModel, tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	case "tab":
		if m.focus == tuiFocusList {
			m.focus = tuiFocusDetail
		} else {
			m.focus = tuiFocusList
		}
		return m, nil, true
	case "esc":
		if m.focus == tuiFocusDetail {
			m.focus = tuiFocusList
		}
		return m, nil, true
	case "?":
		m.showHelp = !m.showHelp
		m.resize()
		return m, nil, true
	case "/":
		m.focus = tuiFocusQuery
		return m, m.query.Focus(), true
	case "b":
		m.cycleBrand()
		return m, nil, true
	case "p":
		m.cycleTier()
		return m, nil, true
	case "x":
		m.state.Clear()
		m.query.SetValue("")
		m.syncChoiceIndexes()
		m.applyCurrentFilters(false)
		return m, nil, true
	case "r":
		m.state = m.initial
		m.query.SetValue(m.state.Query)
		m.syncChoiceIndexes()
		m.applyCurrentFilters(false)
		return m, nil, true
	case " ", "enter":
		return m, m.toggleHighlighted(), true
	case "X":
		m.selection.Clear()
		m.applyCurrentFilters(false)
		return m, m.list.NewStatusMessage("Selection cleared."), true
	case "c":
		if !m.selection.CanCompare() {
			return m, m.list.NewStatusMessage(fmt.Sprintf("Select at least %d phones to compare.", compare.MinCompare)), true
		}
		m.view = tuiViewCompare
		m.resize()
		m.refreshComparison()
		return m, nil, true
	case "t":
		mode := m.theme.Toggle()
		m.logger.Debug("theme toggled", "theme", mode)
		return m, m.list.NewStatusMessage("Theme: " + string(mode)), true
	}
	return m, nil, false
}

func (m phonesTUIModel) updateQuery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "tab":
		m.query.Blur()
		m.focus = tuiFocusList
		return m, nil
	}
	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	if m.query.Value() != m.state.Query {
		m.state.SetQuery(m.query.Value())
		m.applyCurrentFilters(false)
	}
	return m, cmd
}

func (m phonesTUIModel) updateCompare(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "c":
		m.view = tuiViewBrowse
		m.resize()
		m.refreshDetail(true)
		return m, nil
	case "t":
		m.theme.Toggle()
		m.refreshComparison()
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m *phonesTUIModel) toggleHighlighted() tea.Cmd {
	item, ok := m.list.SelectedItem().(tuiPhoneItem)
	if !ok {
		return nil
	}
	id := item.phone.ID
	if !m.selection.Toggle(id) {
		return m.list.NewStatusMessage(fmt.Sprintf("Selection is full (%d/%d). Remove a phone first.", m.selection.Len(), compare.MaxSelected))
	}
	m.logger.Debug("selection toggled", "id", id, "selected", m.selection.IsSelected(id))
	m.applyCurrentFilters(false)
	return nil
}

func (m phonesTUIModel) View() string {
	if m.width == 0 || m.height == 0 {
		return tuiMetaStyle.Render("Loading interface...")
	}
	if m.tooSmall {
		return lipgloss.NewStyle().
			Padding(1, 2).
			Render(
				fmt.Sprintf(
					"Terminal too small (%dx%d).\nResize to at least %dx%d for the two-pane phone browser.",
					m.width, m.height, minTUIWidth, minTUIHeight,
				),
			)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		m.bodyView(),
		m.footerView(),
	)
}

func (m *phonesTUIModel) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}

	m.tooSmall = m.width < minTUIWidth || m.height < minTUIHeight
	if m.tooSmall {
		return
	}

	headerH := 4
	footerH := 3
	if m.showHelp {
		footerH = 8
	}
	m.bodyHeight = maxInt(8, m.height-headerH-footerH-1)

	listWidth := maxInt(40, int(float64(m.width)*0.40))
	if listWidth > m.width-42 {
		listWidth = m.width / 2
	}
	detailWidth := m.width - listWidth - 1
	if detailWidth < 36 {
		detailWidth = 36
		listWidth = m.width - detailWidth - 1
	}

	m.listPaneWidth = listWidth
	m.detailPaneWidth = detailWidth

	listInnerWidth := maxInt(24, listWidth-4)
	detailInnerWidth := maxInt(24, detailWidth-4)
	panelInnerHeight := maxInt(6, m.bodyHeight-2)

	m.list.SetSize(listInnerWidth, panelInnerHeight)
	m.query.Width = maxInt(12, m.width-24)
	if m.view == tuiViewCompare {
		m.detail.Width = maxInt(24, m.width-4)
	} else {
		m.detail.Width = detailInnerWidth
	}
	m.detail.Height = panelInnerHeight
	if m.view == tuiViewCompare {
		m.refreshComparison()
	} else {
		m.refreshDetail(false)
	}
}

func (m phonesTUIModel) headerView() string {
	focus := "list"
	switch m.focus {
	case tuiFocusDetail:
		focus = "detail"
	case tuiFocusQuery:
		focus = "search"
	}

	top := fmt.Sprintf("phonecmp tui  |  theme: %s", m.theme.Mode())
	bottom := fmt.Sprintf(
		"phones: %d visible / %d total  |  filters (%d): %s  |  focus: %s",
		m.visiblePhones, len(m.allPhones), m.state.ActiveCount(), m.state.Summary(), focus,
	)

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(tuiHeaderStyle.Render(top) + "\n" + tuiMetaStyle.Render(bottom) + "\n" + m.query.View())
}

func (m phonesTUIModel) bodyView() string {
	accent := display.PaletteFor(m.theme.Mode()).Header.GetForeground()
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)

	if m.view == tuiViewCompare {
		return border.
			BorderForeground(accent).
			Width(m.width - 2).
			Height(m.bodyHeight).
			Render(m.detail.View())
	}

	listBorder := border
	detailBorder := border
	if m.focus == tuiFocusDetail {
		detailBorder = detailBorder.BorderForeground(accent)
	} else {
		listBorder = listBorder.BorderForeground(accent)
	}

	left := listBorder.
		Width(m.listPaneWidth).
		Height(m.bodyHeight).
		Render(m.list.View())
	right := detailBorder.
		Width(m.detailPaneWidth).
		Height(m.bodyHeight).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m phonesTUIModel) footerView() string {
	bar := m.compareBar()
	base := "space select • c compare • / search • b brand • p tier • x clear filters • X clear selection • t theme • ? help • q quit"
	switch {
	case m.view == tuiViewCompare:
		base = "Compare: j/k or ↑/↓ scroll • t theme • esc back • q quit"
	case m.focus == tuiFocusDetail:
		base = "Detail: j/k or ↑/↓ scroll • u/d half-page • pgup/f page • esc list • ? help • q quit"
	case m.focus == tuiFocusQuery:
		base = "Search: type to filter • enter/esc done"
	}

	if !m.showHelp {
		return lipgloss.NewStyle().Padding(0, 1).Render(bar + "\n" + tuiHintStyle.Render(base))
	}

	lines := []string{
		"Key Help",
		"list pane: ↑/↓ or j/k move • space/enter toggle selection • X clear selection",
		"filters: / search by name or brand • b cycle brand • p cycle price tier • x clear all • r reset to launch filters",
		fmt.Sprintf("compare: c opens the table once %d-%d phones are selected • ▲ best • ▼ worst", compare.MinCompare, compare.MaxSelected),
		"detail pane: j/k or ↑/↓ scroll • u/d half-page • pgup/f page up/down",
		"global: tab switch pane • t toggle theme • ? toggle help • q quit • ctrl+c force quit",
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Render(bar + "\n" + tuiHintStyle.Render(strings.Join(lines, "\n")))
}

// compareBar is the "n/3 selected" strip listing the chosen phones.
func (m phonesTUIModel) compareBar() string {
	items := catalog.Resolve(m.selection.IDs())
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	label := tuiPickedStyle.Render(fmt.Sprintf("%d/%d selected", len(items), compare.MaxSelected))
	if len(names) == 0 {
		return label
	}
	line := label + "  " + tuiValueStyle.Render(strings.Join(names, ", "))
	if m.selection.CanCompare() {
		line += "  " + tuiMetaStyle.Render("• press c to compare")
	}
	return line
}

func (m *phonesTUIModel) syncChoiceIndexes() {
	m.brandIndex = indexOfBrand(m.brandChoices, m.state.Brand)
	if m.brandIndex < 0 {
		m.brandIndex = 0
		m.state.SetBrand(m.brandChoices[0])
	}
	m.tierIndex = indexOfTier(m.tierChoices, m.state.Tier)
	if m.tierIndex < 0 {
		m.tierIndex = 0
		m.state.SetTier(m.tierChoices[0])
	}
}

func (m *phonesTUIModel) cycleBrand() {
	if len(m.brandChoices) == 0 {
		return
	}
	m.brandIndex = (m.brandIndex + 1) % len(m.brandChoices)
	m.state.SetBrand(m.brandChoices[m.brandIndex])
	m.applyCurrentFilters(false)
}

func (m *phonesTUIModel) cycleTier() {
	if len(m.tierChoices) == 0 {
		return
	}
	m.tierIndex = (m.tierIndex + 1) % len(m.tierChoices)
	m.state.SetTier(m.tierChoices[m.tierIndex])
	m.applyCurrentFilters(false)
}

func (m *phonesTUIModel) applyCurrentFilters(resetCursor bool) {
	currentID := m.selectedID
	filtered := filter.Apply(m.allPhones, m.state)
	m.visiblePhones = len(filtered)

	items := buildPhoneListItems(filtered, m.selection.IsSelected)
	m.list.Title = fmt.Sprintf("Phones • %d visible", m.visiblePhones)
	m.list.SetItems(items)

	target := -1
	if !resetCursor && currentID != "" {
		target = findPhoneIndexByID(items, currentID)
	}
	if target < 0 && len(items) > 0 {
		target = 0
	}
	if target >= 0 {
		m.list.Select(target)
	}

	m.refreshDetail(true)
}

func (m *phonesTUIModel) refreshDetail(resetScroll bool) {
	if m.view == tuiViewCompare {
		return
	}

	var content string
	nextID := ""
	if item, ok := m.list.SelectedItem().(tuiPhoneItem); ok {
		content = renderPhoneDetailContent(item.phone, item.selected, m.detail.Width)
		nextID = item.phone.ID
	}
	if content == "" {
		content = "No phones match the current filters.\n\nPress x to clear filters or r to reset."
	}

	if resetScroll || nextID != m.selectedID {
		m.detail.GotoTop()
	}
	m.selectedID = nextID
	m.detail.SetContent(content)
}

func (m *phonesTUIModel) refreshComparison() {
	items := catalog.Resolve(m.selection.IDs())
	rows := compare.Table(items)
	palette := display.PaletteFor(m.theme.Mode())

	lines := []string{
		tuiSectionStyle.Render("Comparison"),
		tuiMetaStyle.Render(fmt.Sprintf("%d phones • ▲ best • ▼ worst", len(items))),
		"",
		display.ComparisonTable(items, rows, palette),
	}
	m.detail.GotoTop()
	m.detail.SetContent(strings.Join(lines, "\n"))
}

func buildPhoneListItems(phones []catalog.Phone, selected func(string) bool) []list.Item {
	items := make([]list.Item, 0, len(phones))
	for _, p := range phones {
		items = append(items, tuiPhoneItem{phone: p, selected: selected(p.ID)})
	}
	return items
}

func renderPhoneDetailContent(item catalog.Phone, selected bool, width int) string {
	maxWidth := maxInt(24, width)

	lines := []string{
		tuiNameStyle.Render(wrapText(item.Name, maxWidth)),
		tuiMetaStyle.Render(fmt.Sprintf("%s  |  %s  |  %s", item.Brand, item.PriceTier, item.ID)),
	}
	if selected {
		lines = append(lines, tuiPickedStyle.Render("Selected for comparison"))
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("%s %s", tuiMetaStyle.Render("Price:"), tuiValueStyle.Render(catalog.FormatPrice(item.Price))))
	lines = append(lines, "")
	lines = append(lines, tuiSectionStyle.Render("Specifications"))
	for _, attr := range compare.Attributes {
		lines = append(lines, fmt.Sprintf("%s %s", tuiMetaStyle.Render(attr.Label+":"), attr.Value(item.Specs)))
	}

	if item.ImageURL != "" {
		lines = append(lines, "")
		lines = append(lines, tuiMutedStyle.Render("Image URL:"))
		lines = append(lines, tuiMutedStyle.Render(wrapText(item.ImageURL, maxWidth)))
	}

	return strings.Join(lines, "\n")
}

func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	if width < 12 {
		width = 12
	}

	line := words[0]
	lines := make([]string, 0, len(words)/6+1)
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func indexOfBrand(values []catalog.Brand, target catalog.Brand) int {
	for i, value := range values {
		if value == target {
			return i
		}
	}
	return -1
}

func indexOfTier(values []catalog.PriceTier, target catalog.PriceTier) int {
	for i, value := range values {
		if value == target {
			return i
		}
	}
	return -1
}

func findPhoneIndexByID(items []list.Item, id string) int {
	for i, item := range items {
		if p, ok := item.(tuiPhoneItem); ok && p.phone.ID == id {
			return i
		}
	}
	return -1
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
