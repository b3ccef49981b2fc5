package compare

import (
	"slices"

	"github.com/tayloree/phonecmp/internal/catalog"
)

// Cell is one phone's value in a comparison row.
type Cell struct {
	PhoneID string
	Display string
	Class   Class
}

// Row is one attribute across all compared phones. Highlight is false for
// rows that are shown but never ranked.
type Row struct {
	Key       AttributeKey
	Label     string
	Highlight bool
	Cells     []Cell
}

// Table builds the price row followed by every spec row, with cells in the
// order of items. It returns nil for fewer than MinCompare items.
func Table(items []catalog.Phone) []Row {
	if len(items) < MinCompare {
		return nil
	}

	rows := make([]Row, 0, len(Attributes)+1)

	prices := RankPrice(items)
	priceRow := Row{Key: AttrPrice, Label: "Price", Highlight: true}
	for _, item := range items {
		priceRow.Cells = append(priceRow.Cells, Cell{
			PhoneID: item.ID,
			Display: catalog.FormatPrice(item.Price),
			Class:   prices[item.ID],
		})
	}
	rows = append(rows, priceRow)

	for _, attr := range Attributes {
		classes := RankAttribute(attr.Key, items)
		row := Row{Key: attr.Key, Label: attr.Label, Highlight: attr.Comparable}
		for _, item := range items {
			row.Cells = append(row.Cells, Cell{
				PhoneID: item.ID,
				Display: attr.Value(item.Specs),
				Class:   classes[item.ID],
			})
		}
		rows = append(rows, row)
	}
	return rows
}

// SelectRows keeps the rows named by keys, in display order. No keys keeps
// every row.
func SelectRows(rows []Row, keys []AttributeKey) []Row {
	if len(keys) == 0 {
		return rows
	}
	out := make([]Row, 0, len(keys))
	for _, row := range rows {
		if slices.Contains(keys, row.Key) {
			out = append(out, row)
		}
	}
	return out
}
