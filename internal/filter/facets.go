package filter

import (
	"fmt"
	"strings"

	"github.com/tayloree/phonecmp/internal/catalog"
)

var brandSynonyms = map[catalog.Brand][]string{
	catalog.BrandApple:   {"iphone", "ios"},
	catalog.BrandSamsung: {"galaxy"},
	catalog.BrandGoogle:  {"pixel"},
	catalog.BrandOnePlus: {"one plus", "1+"},
	catalog.BrandNothing: {"nothing phone"},
}

var tierSynonyms = map[catalog.PriceTier][]string{
	catalog.TierBudget:  {"cheap", "low", "entry"},
	catalog.TierMid:     {"midrange", "mid range", "middle"},
	catalog.TierPremium: {"flagship", "high", "high end"},
}

// ParseBrand resolves a user-typed brand name. Empty input and "all" mean unset.
func ParseBrand(raw string) (catalog.Brand, error) {
	norm := normalizeFacet(raw)
	if norm == "" || norm == "all" {
		return "", nil
	}
	for _, b := range catalog.Brands {
		if normalizeFacet(string(b)) == norm {
			return b, nil
		}
		for _, alias := range brandSynonyms[b] {
			if normalizeFacet(alias) == norm {
				return b, nil
			}
		}
	}
	return "", fmt.Errorf("unknown brand %q", strings.TrimSpace(raw))
}

// ParseTier resolves a user-typed price tier. Empty input and "all" mean unset.
func ParseTier(raw string) (catalog.PriceTier, error) {
	norm := normalizeFacet(raw)
	if norm == "" || norm == "all" {
		return "", nil
	}
	for _, t := range catalog.Tiers {
		if string(t) == norm {
			return t, nil
		}
		for _, alias := range tierSynonyms[t] {
			if normalizeFacet(alias) == norm {
				return t, nil
			}
		}
	}
	return "", fmt.Errorf("unknown price tier %q", strings.TrimSpace(raw))
}

// BrandChoices returns the facet cycle used by interactive pickers: unset first.
func BrandChoices() []catalog.Brand {
	return append([]catalog.Brand{""}, catalog.Brands...)
}

// TierChoices returns the facet cycle used by interactive pickers: unset first.
func TierChoices() []catalog.PriceTier {
	return append([]catalog.PriceTier{""}, catalog.Tiers...)
}

func normalizeFacet(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > 3 && strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss") {
		s = strings.TrimSuffix(s, "s")
	}
	return s
}
