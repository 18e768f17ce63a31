// Package pricing converts an expected purchase count into a bar tab.
package pricing

import (
	"fmt"
	"math"
)

// Menu pricing for the d20 cocktail list.
const (
	DefaultUnitPrice = 16.00
	DefaultTaxRate   = 0.0625
	DefaultTipRate   = 0.20
)

// Rates holds the pricing parameters for a cost estimate.
type Rates struct {
	UnitPrice float64 `json:"unitPrice"`
	TaxRate   float64 `json:"taxRate"`
	TipRate   float64 `json:"tipRate"`
}

// DefaultRates returns the menu's list price with local tax and a standard tip.
func DefaultRates() Rates {
	return Rates{
		UnitPrice: DefaultUnitPrice,
		TaxRate:   DefaultTaxRate,
		TipRate:   DefaultTipRate,
	}
}

// Receipt itemizes the expected cost of completing a collection.
type Receipt struct {
	Drinks   int     `json:"drinks"` // expected purchases, rounded up to whole drinks
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Tip      float64 `json:"tip"`
	Total    float64 `json:"total"`
}

// Estimate prices an expected purchase count. The mean is rounded up: the
// bar does not sell fractional drinks. Tax and tip are both applied to the
// pre-tax subtotal, so the default rates combine to a 1.2625 multiplier.
func Estimate(meanPurchases float64, r Rates) Receipt {
	drinks := int(math.Ceil(meanPurchases))
	subtotal := float64(drinks) * r.UnitPrice

	return Receipt{
		Drinks:   drinks,
		Subtotal: subtotal,
		Tax:      subtotal * r.TaxRate,
		Tip:      subtotal * r.TipRate,
		Total:    subtotal * (1 + r.TaxRate + r.TipRate),
	}
}

// Format renders an amount as a currency string with two decimals.
func Format(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// Format renders the receipt total as a currency string.
func (r Receipt) Format() string {
	return Format(r.Total)
}
