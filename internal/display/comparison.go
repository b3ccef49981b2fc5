package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tayloree/phonecmp/internal/catalog"
	"github.com/tayloree/phonecmp/internal/compare"
	"github.com/tayloree/phonecmp/internal/theme"
	"gopkg.in/yaml.v3"
)

// Palette holds the highlight styles for one theme.
type Palette struct {
	Best   lipgloss.Style
	Worst  lipgloss.Style
	Middle lipgloss.Style
	Plain  lipgloss.Style
	Header lipgloss.Style
	Border lipgloss.Color
}

// PaletteFor returns the highlight palette for mode.
func PaletteFor(mode theme.Mode) Palette {
	if mode == theme.Dark {
		return Palette{
			Best:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ade80")),
			Worst:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171")),
			Middle: lipgloss.NewStyle().Foreground(lipgloss.Color("#facc15")),
			Plain:  lipgloss.NewStyle().Foreground(lipgloss.Color("#e5e5e5")),
			Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a78bfa")),
			Border: lipgloss.Color("#525252"),
		}
	}
	return Palette{
		Best:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#15803d")),
		Worst:  lipgloss.NewStyle().Foreground(lipgloss.Color("#b91c1c")),
		Middle: lipgloss.NewStyle().Foreground(lipgloss.Color("#a16207")),
		Plain:  lipgloss.NewStyle().Foreground(lipgloss.Color("#262626")),
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6d28d9")),
		Border: lipgloss.Color("#a3a3a3"),
	}
}

// Style returns the style for a cell of the given class.
func (p Palette) Style(c compare.Class, highlight bool) lipgloss.Style {
	if !highlight {
		return p.Plain
	}
	switch c {
	case compare.ClassBest:
		return p.Best
	case compare.ClassWorst:
		return p.Worst
	default:
		return p.Middle
	}
}

// CellText decorates a ranked value so best and worst survive without color.
func CellText(cell compare.Cell, highlight bool) string {
	if !highlight {
		return cell.Display
	}
	switch cell.Class {
	case compare.ClassBest:
		return cell.Display + " ▲"
	case compare.ClassWorst:
		return cell.Display + " ▼"
	default:
		return cell.Display
	}
}

// ComparisonTable renders the side-by-side table for items.
func ComparisonTable(items []catalog.Phone, rows []compare.Row, palette Palette) string {
	headers := make([]string, 0, len(items)+1)
	headers = append(headers, "Spec")
	for _, item := range items {
		headers = append(headers, item.Name)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(palette.Border)).
		Headers(headers...)

	for _, row := range rows {
		cells := make([]string, 0, len(row.Cells)+1)
		cells = append(cells, row.Label)
		for _, cell := range row.Cells {
			cells = append(cells, CellText(cell, row.Highlight))
		}
		t.Row(cells...)
	}

	t.StyleFunc(func(r, c int) lipgloss.Style {
		base := lipgloss.NewStyle().Padding(0, 1)
		if r == table.HeaderRow {
			return base.Inherit(palette.Header)
		}
		if r < 0 || r >= len(rows) || c == 0 {
			return base.Inherit(palette.Plain)
		}
		row := rows[r]
		if c-1 >= len(row.Cells) {
			return base
		}
		return base.Inherit(palette.Style(row.Cells[c-1].Class, row.Highlight))
	})

	return t.Render()
}

// PrintComparison renders the comparison table with a legend.
func PrintComparison(w io.Writer, items []catalog.Phone, rows []compare.Row, mode theme.Mode) {
	palette := PaletteFor(mode)
	fmt.Fprintf(w, "\n%s\n%s\n\n",
		headerStyle.Render("Comparison"),
		dimStyle.Render("Side-by-side specifications"),
	)
	fmt.Fprintln(w, ComparisonTable(items, rows, palette))
	fmt.Fprintf(w, "\n%s  %s  %s\n\n",
		palette.Best.Render("▲ best"),
		palette.Middle.Render("middle"),
		palette.Worst.Render("▼ worst"),
	)
}

// ComparisonOutput is the structured comparison shape for JSON and YAML.
type ComparisonOutput struct {
	Phones []ComparedPhone `json:"phones" yaml:"phones"`
	Rows   []ComparedRow   `json:"rows" yaml:"rows"`
}

// ComparedPhone identifies one compared column.
type ComparedPhone struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Brand string `json:"brand" yaml:"brand"`
}

// ComparedRow is one attribute row.
type ComparedRow struct {
	Key       string         `json:"key" yaml:"key"`
	Label     string         `json:"label" yaml:"label"`
	Highlight bool           `json:"highlight" yaml:"highlight"`
	Cells     []ComparedCell `json:"cells" yaml:"cells"`
}

// ComparedCell is one phone's value in a row.
type ComparedCell struct {
	PhoneID string `json:"phoneId" yaml:"phoneId"`
	Value   string `json:"value" yaml:"value"`
	Class   string `json:"class" yaml:"class"`
}

// BuildComparisonOutput converts ranked rows to the structured shape.
func BuildComparisonOutput(items []catalog.Phone, rows []compare.Row) ComparisonOutput {
	out := ComparisonOutput{
		Phones: make([]ComparedPhone, 0, len(items)),
		Rows:   make([]ComparedRow, 0, len(rows)),
	}
	for _, item := range items {
		out.Phones = append(out.Phones, ComparedPhone{ID: item.ID, Name: item.Name, Brand: string(item.Brand)})
	}
	for _, row := range rows {
		r := ComparedRow{
			Key:       string(row.Key),
			Label:     row.Label,
			Highlight: row.Highlight,
			Cells:     make([]ComparedCell, 0, len(row.Cells)),
		}
		for _, cell := range row.Cells {
			r.Cells = append(r.Cells, ComparedCell{PhoneID: cell.PhoneID, Value: cell.Display, Class: string(cell.Class)})
		}
		out.Rows = append(out.Rows, r)
	}
	return out
}

// PrintComparisonJSON renders the comparison as JSON.
func PrintComparisonJSON(w io.Writer, items []catalog.Phone, rows []compare.Row) error {
	return json.NewEncoder(w).Encode(BuildComparisonOutput(items, rows))
}

// PrintComparisonYAML renders the comparison as YAML.
func PrintComparisonYAML(w io.Writer, items []catalog.Phone, rows []compare.Row) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(BuildComparisonOutput(items, rows)); err != nil {
		return err
	}
	return enc.Close()
}
