package filter

import (
	"strings"

	"github.com/tayloree/phonecmp/internal/catalog"
)

// State holds the current filter criteria. The zero value has every facet unset.
type State struct {
	Query string
	Brand catalog.Brand     // "" means no brand filter
	Tier  catalog.PriceTier // "" means no tier filter
}

// SetQuery replaces the text query.
func (s *State) SetQuery(q string) { s.Query = q }

// SetBrand sets the brand facet; "" unsets it.
func (s *State) SetBrand(b catalog.Brand) { s.Brand = b }

// SetTier sets the price tier facet; "" unsets it.
func (s *State) SetTier(t catalog.PriceTier) { s.Tier = t }

// Clear resets the query and both facets.
func (s *State) Clear() { *s = State{} }

// HasActive reports whether any criterion is set.
func (s State) HasActive() bool {
	return s.ActiveCount() > 0
}

// ActiveCount returns how many of query, brand and tier are set.
func (s State) ActiveCount() int {
	n := 0
	if s.query() != "" {
		n++
	}
	if s.Brand != "" {
		n++
	}
	if s.Tier != "" {
		n++
	}
	return n
}

// Summary renders the active criteria as short chips, or "none".
func (s State) Summary() string {
	parts := []string{}
	if q := s.query(); q != "" {
		parts = append(parts, "query:"+q)
	}
	if s.Brand != "" {
		parts = append(parts, "brand:"+string(s.Brand))
	}
	if s.Tier != "" {
		parts = append(parts, "tier:"+string(s.Tier))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func (s State) query() string {
	return strings.TrimSpace(s.Query)
}

// Apply returns the phones matching every active criterion, in catalog order.
func Apply(items []catalog.Phone, s State) []catalog.Phone {
	q := strings.ToLower(s.query())
	result := make([]catalog.Phone, 0, len(items))
	for _, item := range items {
		if q != "" && !matchesQuery(item, q) {
			continue
		}
		if s.Brand != "" && item.Brand != s.Brand {
			continue
		}
		if s.Tier != "" && item.PriceTier != s.Tier {
			continue
		}
		result = append(result, item)
	}
	return result
}

func matchesQuery(item catalog.Phone, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(item.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(string(item.Brand)), lowerQuery)
}

// BrandCounts returns how many phones carry each brand.
func BrandCounts(items []catalog.Phone) map[catalog.Brand]int {
	counts := make(map[catalog.Brand]int)
	for _, item := range items {
		counts[item.Brand]++
	}
	return counts
}

// TierCounts returns how many phones fall into each price tier.
func TierCounts(items []catalog.Phone) map[catalog.PriceTier]int {
	counts := make(map[catalog.PriceTier]int)
	for _, item := range items {
		counts[item.PriceTier]++
	}
	return counts
}
