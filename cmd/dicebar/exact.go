package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dicebar-xyz/go-dicebar/collector"
	"github.com/dicebar-xyz/go-dicebar/exact"
)

func exactCmd(args []string) error {
	fs := flag.NewFlagSet("exact", flag.ExitOnError)
	faces := fs.Int("faces", collector.DefaultFaces, "Number of die faces")
	retries := fs.Int("retries", collector.DefaultRetries, "Rolls allowed per purchase")
	stages := fs.Bool("stages", false, "Print the per-stage expectation table")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: dicebar exact [options]

Compute the closed-form expected purchase count, no simulation.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  dicebar exact
  dicebar exact --retries 5 --stages
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	p := collector.Params{Faces: *faces, Retries: *retries}

	mean, err := exact.ExpectedPurchases(p)
	if err != nil {
		return err
	}
	std, err := exact.PurchaseStdDev(p)
	if err != nil {
		return err
	}

	fmt.Printf("Expected purchases: %.4f\n", mean)
	fmt.Printf("Std dev: %.4f\n", std)

	if *stages {
		fmt.Println("\nPer-stage expectations (purchases to gain one more face):")
		for i, e := range exact.StageExpectations(p) {
			fmt.Printf("  %2d -> %2d faces: p=%.4f, expected %.3f purchases\n",
				i, i+1, exact.ProbNew(p, i), e)
		}
	}

	return nil
}
