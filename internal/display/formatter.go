package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tayloree/phonecmp/internal/catalog"
	"github.com/tayloree/phonecmp/internal/compare"
	"github.com/tayloree/phonecmp/internal/filter"
)

// Styles for terminal output.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// PhoneJSON is the JSON output shape for a phone.
type PhoneJSON struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Brand     string        `json:"brand"`
	Price     int           `json:"price"`
	PriceTier string        `json:"priceTier"`
	Specs     catalog.Specs `json:"specs"`
	ImageURL  string        `json:"image"`
	Selected  bool          `json:"selected"`
}

// ListJSON wraps a filtered listing with its filter context.
type ListJSON struct {
	Filters       FiltersJSON `json:"filters"`
	Total         int         `json:"total"`
	Phones        []PhoneJSON `json:"phones"`
	SelectedCount int         `json:"selectedCount"`
}

// FiltersJSON describes the active filter state.
type FiltersJSON struct {
	Query       string `json:"query"`
	Brand       string `json:"brand"`
	PriceTier   string `json:"priceTier"`
	ActiveCount int    `json:"activeCount"`
}

// SelectionJSON is the JSON output shape for the comparison selection.
type SelectionJSON struct {
	IDs        []string    `json:"ids"`
	Phones     []PhoneJSON `json:"phones"`
	Max        int         `json:"max"`
	CanAddMore bool        `json:"canAddMore"`
	CanCompare bool        `json:"canCompare"`
}

// PrintPhones renders a filtered listing. selected marks ids already chosen.
func PrintPhones(w io.Writer, items []catalog.Phone, state filter.State, total int, selected func(string) bool) {
	fmt.Fprintf(w, "\n%s — %s\n",
		headerStyle.Render("Phone Catalog"),
		cyanStyle.Render(fmt.Sprintf("%d of %d phones", len(items), total)),
	)
	if state.HasActive() {
		fmt.Fprintf(w, "%s\n", dimStyle.Render(fmt.Sprintf("filters (%d): %s", state.ActiveCount(), state.Summary())))
	}
	fmt.Fprintln(w)

	for _, item := range items {
		printPhoneLine(w, item, selected != nil && selected(item.ID))
	}
	if len(items) == 0 {
		fmt.Fprintf(w, "  %s\n", dimStyle.Render("No phones match the current filters."))
	}
	fmt.Fprintln(w)
}

// PrintPhonesJSON renders a filtered listing as JSON.
func PrintPhonesJSON(w io.Writer, items []catalog.Phone, state filter.State, total int, selected func(string) bool) error {
	out := ListJSON{
		Filters: FiltersJSON{
			Query:       strings.TrimSpace(state.Query),
			Brand:       string(state.Brand),
			PriceTier:   string(state.Tier),
			ActiveCount: state.ActiveCount(),
		},
		Total:  total,
		Phones: make([]PhoneJSON, 0, len(items)),
	}
	for _, item := range items {
		isSel := selected != nil && selected(item.ID)
		if isSel {
			out.SelectedCount++
		}
		out.Phones = append(out.Phones, ToPhoneJSON(item, isSel))
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintPhoneDetail renders one phone with every spec.
func PrintPhoneDetail(w io.Writer, item catalog.Phone, selected bool) {
	tag := ""
	if selected {
		tag = headerStyle.Render("[selected]") + " "
	}
	fmt.Fprintf(w, "\n  %s%s\n", tag, titleStyle.Render(item.Name))
	fmt.Fprintf(w, "    %s\n", dimStyle.Render(fmt.Sprintf("%s | %s | %s", item.ID, item.Brand, item.PriceTier)))
	fmt.Fprintf(w, "    Price: %s\n", headerStyle.Render(catalog.FormatPrice(item.Price)))
	for _, attr := range compare.Attributes {
		fmt.Fprintf(w, "    %-12s %s\n", attr.Label+":", attr.Value(item.Specs))
	}
	if item.ImageURL != "" {
		fmt.Fprintf(w, "    %s\n", dimStyle.Render(item.ImageURL))
	}
	fmt.Fprintln(w)
}

// PrintPhoneDetailJSON renders one phone as JSON.
func PrintPhoneDetailJSON(w io.Writer, item catalog.Phone, selected bool) error {
	return json.NewEncoder(w).Encode(ToPhoneJSON(item, selected))
}

// PrintFacets renders brand and tier counts.
func PrintFacets(w io.Writer, brands map[catalog.Brand]int, tiers map[catalog.PriceTier]int) {
	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render("Brands:"))
	for _, b := range catalog.Brands {
		fmt.Fprintf(w, "  %s: %d phones\n", cyanStyle.Render(string(b)), brands[b])
	}
	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render("Price tiers:"))
	for _, t := range catalog.Tiers {
		fmt.Fprintf(w, "  %s: %d phones\n", cyanStyle.Render(string(t)), tiers[t])
	}
	fmt.Fprintln(w)
}

// PrintFacetsJSON renders brand and tier counts as JSON.
func PrintFacetsJSON(w io.Writer, brands map[catalog.Brand]int, tiers map[catalog.PriceTier]int) error {
	out := struct {
		Brands map[string]int `json:"brands"`
		Tiers  map[string]int `json:"priceTiers"`
	}{
		Brands: make(map[string]int, len(catalog.Brands)),
		Tiers:  make(map[string]int, len(catalog.Tiers)),
	}
	for _, b := range catalog.Brands {
		out.Brands[string(b)] = brands[b]
	}
	for _, t := range catalog.Tiers {
		out.Tiers[string(t)] = tiers[t]
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintSelection renders the compare bar: "n/3 selected" and the chosen phones.
func PrintSelection(w io.Writer, items []catalog.Phone, canCompare bool) {
	fmt.Fprintf(w, "\n%s\n\n",
		titleStyle.Render(fmt.Sprintf("%d/%d selected", len(items), compare.MaxSelected)),
	)
	for i, item := range items {
		fmt.Fprintf(w, "  %d. %s  %s\n", i+1, titleStyle.Render(item.Name), dimStyle.Render(item.ID))
	}
	switch {
	case len(items) == 0:
		fmt.Fprintf(w, "  %s\n", dimStyle.Render("Nothing selected. Add phones with `phonecmp select ID`."))
	case !canCompare:
		fmt.Fprintf(w, "\n  %s\n", dimStyle.Render(fmt.Sprintf("Select at least %d phones to compare.", compare.MinCompare)))
	default:
		fmt.Fprintf(w, "\n  %s\n", cyanStyle.Render("Ready: run `phonecmp compare`."))
	}
	fmt.Fprintln(w)
}

// PrintSelectionJSON renders the selection as JSON.
func PrintSelectionJSON(w io.Writer, ids []string, items []catalog.Phone, canAddMore, canCompare bool) error {
	out := SelectionJSON{
		IDs:        ids,
		Phones:     make([]PhoneJSON, 0, len(items)),
		Max:        compare.MaxSelected,
		CanAddMore: canAddMore,
		CanCompare: canCompare,
	}
	if out.IDs == nil {
		out.IDs = []string{}
	}
	for _, item := range items {
		out.Phones = append(out.Phones, ToPhoneJSON(item, true))
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintError prints a styled error message.
func PrintError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}

// PrintWarning prints a styled warning message.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warningStyle.Render(msg))
}

// ToPhoneJSON converts a catalog entry to its output shape.
func ToPhoneJSON(item catalog.Phone, selected bool) PhoneJSON {
	return PhoneJSON{
		ID:        item.ID,
		Name:      item.Name,
		Brand:     string(item.Brand),
		Price:     item.Price,
		PriceTier: string(item.PriceTier),
		Specs:     item.Specs,
		ImageURL:  item.ImageURL,
		Selected:  selected,
	}
}

func printPhoneLine(w io.Writer, item catalog.Phone, selected bool) {
	mark := "[ ]"
	if selected {
		mark = headerStyle.Render("[x]")
	}
	fmt.Fprintf(w, "  %s %s  %s\n", mark, titleStyle.Render(item.Name), headerStyle.Render(catalog.FormatPrice(item.Price)))
	fmt.Fprintf(w, "      %s\n", dimStyle.Render(fmt.Sprintf(
		"%s | %s | %s · %s · %s · %s RAM",
		item.ID, item.Brand, item.PriceTier, item.Specs.Battery, item.Specs.Camera, item.Specs.RAM,
	)))
}
