package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dicebar-xyz/go-dicebar/collector"
	"github.com/dicebar-xyz/go-dicebar/exact"
	"github.com/dicebar-xyz/go-dicebar/pricing"
)

func cost(args []string) error {
	fs := flag.NewFlagSet("cost", flag.ExitOnError)
	mean := fs.Float64("mean", 0, "Expected purchase count (0 = compute from faces/retries)")
	faces := fs.Int("faces", collector.DefaultFaces, "Number of die faces")
	retries := fs.Int("retries", collector.DefaultRetries, "Rolls allowed per purchase")
	price := fs.Float64("price", pricing.DefaultUnitPrice, "Price per drink")
	tax := fs.Float64("tax", pricing.DefaultTaxRate, "Sales tax rate")
	tip := fs.Float64("tip", pricing.DefaultTipRate, "Tip rate")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: dicebar cost [options]

Price an expected purchase count: drinks are rounded up to whole units,
with tax and tip both applied to the pre-tax subtotal.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Cost of the closed-form expectation for the d20 menu
  dicebar cost

  # Cost of a known mean
  dicebar cost --mean 33.9

  # Happy-hour pricing
  dicebar cost --price 12 --tip 0.18
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	m := *mean
	if m == 0 {
		var err error
		m, err = exact.ExpectedPurchases(collector.Params{Faces: *faces, Retries: *retries})
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Using exact expectation %.4f for d%d with %d rolls\n", m, *faces, *retries)
	}
	if m < 0 {
		return fmt.Errorf("%w: mean must be non-negative, got %f", collector.ErrInvalidParam, m)
	}

	r := pricing.Estimate(m, pricing.Rates{UnitPrice: *price, TaxRate: *tax, TipRate: *tip})

	fmt.Printf("Drinks:   %d\n", r.Drinks)
	fmt.Printf("Subtotal: %s\n", pricing.Format(r.Subtotal))
	fmt.Printf("Tax:      %s\n", pricing.Format(r.Tax))
	fmt.Printf("Tip:      %s\n", pricing.Format(r.Tip))
	fmt.Printf("Total:    %s\n", r.Format())

	return nil
}
