package catalog

import (
	"strconv"
	"strings"
)

// Brand is the manufacturer facet of a phone.
type Brand string

// Known brands.
const (
	BrandApple   Brand = "Apple"
	BrandSamsung Brand = "Samsung"
	BrandGoogle  Brand = "Google"
	BrandOnePlus Brand = "OnePlus"
	BrandNothing Brand = "Nothing"
)

// Brands lists every brand in display order.
var Brands = []Brand{BrandApple, BrandSamsung, BrandGoogle, BrandOnePlus, BrandNothing}

// PriceTier is the coarse price bucket of a phone.
type PriceTier string

// Known price tiers.
const (
	TierBudget  PriceTier = "budget"
	TierMid     PriceTier = "mid"
	TierPremium PriceTier = "premium"
)

// Tiers lists every price tier from cheapest to most expensive.
var Tiers = []PriceTier{TierBudget, TierMid, TierPremium}

// Specs holds the display strings of the comparable attributes.
type Specs struct {
	Battery    string `json:"battery"`
	ScreenSize string `json:"screenSize"`
	Camera     string `json:"camera"`
	Storage    string `json:"storage"`
	RAM        string `json:"ram"`
	Processor  string `json:"processor"`
}

// Phone is a single catalog entry.
type Phone struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     Brand     `json:"brand"`
	ImageURL  string    `json:"image"`
	Price     int       `json:"price"`
	Specs     Specs     `json:"specs"`
	PriceTier PriceTier `json:"priceCategory"`
}

// FormatPrice renders a whole-unit price with thousands separators ("$1,299").
func FormatPrice(price int) string {
	sign := ""
	if price < 0 {
		sign = "-"
		price = -price
	}
	digits := strconv.Itoa(price)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String()
}
