// Package catalog holds the compiled-in phone list and lookups over it.
package catalog

import "strings"

var phones = []Phone{
	{
		ID:       "iphone-15-pro",
		Name:     "iPhone 15 Pro",
		Brand:    BrandApple,
		ImageURL: "https://images.unsplash.com/photo-1695048133142-1a20484d2569?w=400&h=500&fit=crop",
		Price:    999,
		Specs: Specs{
			Battery:    "3274 mAh",
			ScreenSize: `6.1"`,
			Camera:     "48 MP",
			Storage:    "256 GB",
			RAM:        "8 GB",
			Processor:  "A17 Pro",
		},
		PriceTier: TierPremium,
	},
	{
		ID:       "iphone-15",
		Name:     "iPhone 15",
		Brand:    BrandApple,
		ImageURL: "https://images.unsplash.com/photo-1510557880182-3d4d3cba35a5?w=400&h=500&fit=crop",
		Price:    799,
		Specs: Specs{
			Battery:    "3349 mAh",
			ScreenSize: `6.1"`,
			Camera:     "48 MP",
			Storage:    "128 GB",
			RAM:        "6 GB",
			Processor:  "A16 Bionic",
		},
		PriceTier: TierPremium,
	},
	{
		ID:       "galaxy-s24-ultra",
		Name:     "Galaxy S24 Ultra",
		Brand:    BrandSamsung,
		ImageURL: "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=400&h=500&fit=crop",
		Price:    1299,
		Specs: Specs{
			Battery:    "5000 mAh",
			ScreenSize: `6.8"`,
			Camera:     "200 MP",
			Storage:    "256 GB",
			RAM:        "12 GB",
			Processor:  "Snapdragon 8 Gen 3",
		},
		PriceTier: TierPremium,
	},
	{
		ID:       "galaxy-a54",
		Name:     "Galaxy A54",
		Brand:    BrandSamsung,
		ImageURL: "https://images.unsplash.com/photo-1585060544812-6b45742d762f?w=400&h=500&fit=crop",
		Price:    449,
		Specs: Specs{
			Battery:    "5000 mAh",
			ScreenSize: `6.4"`,
			Camera:     "50 MP",
			Storage:    "128 GB",
			RAM:        "8 GB",
			Processor:  "Exynos 1380",
		},
		PriceTier: TierMid,
	},
	{
		ID:       "pixel-8-pro",
		Name:     "Pixel 8 Pro",
		Brand:    BrandGoogle,
		ImageURL: "https://images.unsplash.com/photo-1598327105666-5b89351aff97?w=400&h=500&fit=crop",
		Price:    999,
		Specs: Specs{
			Battery:    "5050 mAh",
			ScreenSize: `6.7"`,
			Camera:     "50 MP",
			Storage:    "128 GB",
			RAM:        "12 GB",
			Processor:  "Tensor G3",
		},
		PriceTier: TierPremium,
	},
	{
		ID:       "pixel-8a",
		Name:     "Pixel 8a",
		Brand:    BrandGoogle,
		ImageURL: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=500&fit=crop",
		Price:    499,
		Specs: Specs{
			Battery:    "4492 mAh",
			ScreenSize: `6.1"`,
			Camera:     "64 MP",
			Storage:    "128 GB",
			RAM:        "8 GB",
			Processor:  "Tensor G3",
		},
		PriceTier: TierMid,
	},
	{
		ID:       "oneplus-12",
		Name:     "OnePlus 12",
		Brand:    BrandOnePlus,
		ImageURL: "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400&h=500&fit=crop",
		Price:    799,
		Specs: Specs{
			Battery:    "5400 mAh",
			ScreenSize: `6.82"`,
			Camera:     "50 MP",
			Storage:    "256 GB",
			RAM:        "12 GB",
			Processor:  "Snapdragon 8 Gen 3",
		},
		PriceTier: TierPremium,
	},
	{
		ID:       "nothing-phone-2",
		Name:     "Nothing Phone (2)",
		Brand:    BrandNothing,
		ImageURL: "https://images.unsplash.com/photo-1565849904461-04a58ad377e0?w=400&h=500&fit=crop",
		Price:    599,
		Specs: Specs{
			Battery:    "4700 mAh",
			ScreenSize: `6.7"`,
			Camera:     "50 MP",
			Storage:    "128 GB",
			RAM:        "8 GB",
			Processor:  "Snapdragon 8+ Gen 1",
		},
		PriceTier: TierMid,
	},
}

var byID = indexPhones(phones)

func indexPhones(items []Phone) map[string]int {
	idx := make(map[string]int, len(items))
	for i, p := range items {
		idx[p.ID] = i
	}
	return idx
}

// Phones returns a copy of the catalog in its seeded order.
func Phones() []Phone {
	out := make([]Phone, len(phones))
	copy(out, phones)
	return out
}

// Lookup returns the phone with the given id.
func Lookup(id string) (Phone, bool) {
	i, ok := byID[strings.TrimSpace(id)]
	if !ok {
		return Phone{}, false
	}
	return phones[i], true
}

// Known reports whether id belongs to the catalog.
func Known(id string) bool {
	_, ok := byID[id]
	return ok
}

// Resolve maps ids to phones, keeping the order of ids and skipping unknown ones.
func Resolve(ids []string) []Phone {
	out := make([]Phone, 0, len(ids))
	for _, id := range ids {
		if p, ok := Lookup(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// IDs returns every catalog id in seeded order.
func IDs() []string {
	out := make([]string, 0, len(phones))
	for _, p := range phones {
		out = append(out, p.ID)
	}
	return out
}
