package pricing

import (
	"math"
	"testing"
)

func TestEstimateD20Menu(t *testing.T) {
	r := Estimate(33.9, DefaultRates())

	if r.Drinks != 34 {
		t.Errorf("Expected 34 drinks, got %d", r.Drinks)
	}
	// ceil(33.9) * 16 * 1.2625 = 686.80 exactly.
	if math.Abs(r.Total-686.80) > 0.005 {
		t.Errorf("Expected total $686.80, got %f", r.Total)
	}
	if r.Format() != "$686.80" {
		t.Errorf("Expected formatted total $686.80, got %s", r.Format())
	}
}

func TestEstimateBreakdown(t *testing.T) {
	r := Estimate(10, Rates{UnitPrice: 10, TaxRate: 0.10, TipRate: 0.20})

	if r.Subtotal != 100 {
		t.Errorf("Expected subtotal 100, got %f", r.Subtotal)
	}
	if math.Abs(r.Tax-10) > 1e-9 {
		t.Errorf("Expected tax 10, got %f", r.Tax)
	}
	if math.Abs(r.Tip-20) > 1e-9 {
		t.Errorf("Expected tip 20 (on the pre-tax subtotal), got %f", r.Tip)
	}
	if math.Abs(r.Total-130) > 1e-9 {
		t.Errorf("Expected total 130, got %f", r.Total)
	}
}

func TestEstimateRoundsUp(t *testing.T) {
	r := Estimate(20.01, DefaultRates())
	if r.Drinks != 21 {
		t.Errorf("Expected fractional mean to round up to 21 drinks, got %d", r.Drinks)
	}

	r = Estimate(20.0, DefaultRates())
	if r.Drinks != 20 {
		t.Errorf("Expected whole mean to stay at 20 drinks, got %d", r.Drinks)
	}
}

func TestFormat(t *testing.T) {
	if got := Format(5); got != "$5.00" {
		t.Errorf("Expected $5.00, got %s", got)
	}
	if got := Format(1234.567); got != "$1234.57" {
		t.Errorf("Expected $1234.57, got %s", got)
	}
}
