// Package compare holds the comparison selection and the per-attribute ranking
// used to highlight the best and worst values among selected phones.
package compare

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/tayloree/phonecmp/internal/catalog"
)

// Class is the highlight classification of one cell in the comparison.
type Class string

// Classifications. Middle is also used for cells that are not ranked at all.
const (
	ClassBest   Class = "best"
	ClassWorst  Class = "worst"
	ClassMiddle Class = "middle"
)

// AttributeKey names a comparable row.
type AttributeKey string

// Attribute keys, in display order.
const (
	AttrPrice      AttributeKey = "price"
	AttrBattery    AttributeKey = "battery"
	AttrScreenSize AttributeKey = "screenSize"
	AttrCamera     AttributeKey = "camera"
	AttrStorage    AttributeKey = "storage"
	AttrRAM        AttributeKey = "ram"
	AttrProcessor  AttributeKey = "processor"
)

// Direction says which end of the value range wins.
type Direction int

const (
	HigherIsBetter Direction = iota
	LowerIsBetter
)

// Attribute describes how one spec is extracted, parsed and ordered.
// Direction and Parse are only read for Comparable attributes; RankAttribute
// classifies every other attribute as ClassMiddle without parsing.
type Attribute struct {
	Key        AttributeKey
	Label      string
	Direction  Direction
	Comparable bool
	Value      func(catalog.Specs) string
	Parse      func(string) (float64, bool)
}

// Attributes is the fixed spec table, in display order. Price is ranked
// separately by RankPrice because it is not a spec string.
var Attributes = []Attribute{
	{
		Key: AttrBattery, Label: "Battery", Direction: HigherIsBetter, Comparable: true,
		Value: func(s catalog.Specs) string { return s.Battery },
		Parse: parseDigits,
	},
	{
		Key: AttrScreenSize, Label: "Screen Size", Direction: HigherIsBetter, Comparable: true,
		Value: func(s catalog.Specs) string { return s.ScreenSize },
		Parse: parseInches,
	},
	{
		Key: AttrCamera, Label: "Camera", Direction: HigherIsBetter, Comparable: true,
		Value: func(s catalog.Specs) string { return s.Camera },
		Parse: parseDigits,
	},
	{
		Key: AttrStorage, Label: "Storage", Direction: HigherIsBetter, Comparable: true,
		Value: func(s catalog.Specs) string { return s.Storage },
		Parse: parseDigits,
	},
	{
		Key: AttrRAM, Label: "RAM", Direction: HigherIsBetter, Comparable: true,
		Value: func(s catalog.Specs) string { return s.RAM },
		Parse: parseDigits,
	},
	// Chip names have no numeric order; the row is shown but never ranked.
	{
		Key: AttrProcessor, Label: "Processor", Comparable: false,
		Value: func(s catalog.Specs) string { return s.Processor },
	},
}

// LookupAttribute returns the table entry for key.
func LookupAttribute(key AttributeKey) (Attribute, bool) {
	for _, a := range Attributes {
		if a.Key == key {
			return a, true
		}
	}
	return Attribute{}, false
}

// ParseAttributeKey resolves a user-typed attribute name such as "screen-size".
func ParseAttributeKey(raw string) (AttributeKey, bool) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.TrimSpace(raw)))
	if norm == string(AttrPrice) {
		return AttrPrice, true
	}
	for _, a := range Attributes {
		if strings.ToLower(string(a.Key)) == norm {
			return a.Key, true
		}
	}
	if norm == "screen" {
		return AttrScreenSize, true
	}
	return "", false
}

// RankAttribute classifies every item's value of the given spec. It returns an
// empty map for fewer than MinCompare items. Non-comparable specs and values
// that fail to parse are classified ClassMiddle.
func RankAttribute(key AttributeKey, items []catalog.Phone) map[string]Class {
	if len(items) < MinCompare {
		return map[string]Class{}
	}
	if key == AttrPrice {
		return RankPrice(items)
	}
	attr, ok := LookupAttribute(key)
	if !ok || !attr.Comparable {
		return allMiddle(items)
	}

	values := make([]rankedValue, 0, len(items))
	for _, item := range items {
		v, ok := attr.Parse(attr.Value(item.Specs))
		values = append(values, rankedValue{id: item.ID, value: v, ok: ok})
	}
	return classify(values, attr.Direction)
}

// RankPrice classifies prices across items: cheapest is best, dearest is worst.
func RankPrice(items []catalog.Phone) map[string]Class {
	if len(items) < MinCompare {
		return map[string]Class{}
	}
	values := make([]rankedValue, 0, len(items))
	for _, item := range items {
		values = append(values, rankedValue{id: item.ID, value: float64(item.Price), ok: true})
	}
	return classify(values, LowerIsBetter)
}

type rankedValue struct {
	id    string
	value float64
	ok    bool
}

// classify ranks each value within the sorted distinct values: first is best,
// last is worst when more than one distinct value exists, the rest middle.
func classify(values []rankedValue, dir Direction) map[string]Class {
	distinct := make([]float64, 0, len(values))
	for _, v := range values {
		if v.ok && !slices.Contains(distinct, v.value) {
			distinct = append(distinct, v.value)
		}
	}
	slices.Sort(distinct)
	if dir == HigherIsBetter {
		slices.Reverse(distinct)
	}

	out := make(map[string]Class, len(values))
	for _, v := range values {
		if !v.ok {
			out[v.id] = ClassMiddle
			continue
		}
		rank := slices.Index(distinct, v.value)
		switch {
		case rank == 0:
			out[v.id] = ClassBest
		case rank == len(distinct)-1 && len(distinct) > 1:
			out[v.id] = ClassWorst
		default:
			out[v.id] = ClassMiddle
		}
	}
	return out
}

func allMiddle(items []catalog.Phone) map[string]Class {
	out := make(map[string]Class, len(items))
	for _, item := range items {
		out[item.ID] = ClassMiddle
	}
	return out
}

// parseDigits keeps only the digits of s ("3274 mAh" -> 3274).
func parseDigits(s string) (float64, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return float64(n), true
}

// parseInches reads the leading decimal of a screen size, so `6.1"`,
// "6.1 inches" and "6.1-inch" all give 6.1.
func parseInches(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end, dot := 0, false
	for end < len(s) {
		c := s[end]
		if c == '.' && !dot {
			dot = true
		} else if c < '0' || c > '9' {
			break
		}
		end++
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
