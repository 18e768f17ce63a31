package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dicebar-xyz/go-dicebar/results"
)

func compare(args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: dicebar compare <baseline.json> <variant.json>

Compare two simulation results and show differences.

Examples:
  dicebar compare baseline.json variant.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("two results files required")
	}

	baseline, err := results.ReadJSON(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("read baseline: %w", err)
	}

	variant, err := results.ReadJSON(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("read variant: %w", err)
	}

	fmt.Println("=== Comparison ===")
	fmt.Printf("Baseline: %s (%d trials, seed %d)\n", baseline.Game.Name, baseline.Simulation.Trials, baseline.Simulation.Seed)
	fmt.Printf("Variant:  %s (%d trials, seed %d)\n\n", variant.Game.Name, variant.Simulation.Trials, variant.Simulation.Seed)

	if baseline.Game.Faces != variant.Game.Faces || baseline.Game.Retries != variant.Game.Retries {
		fmt.Println("Game:")
		fmt.Printf("  Faces:   %d -> %d\n", baseline.Game.Faces, variant.Game.Faces)
		fmt.Printf("  Retries: %d -> %d\n\n", baseline.Game.Retries, variant.Game.Retries)
	}

	fmt.Println("Purchases per customer:")
	compareStat("Mean", baseline.Results.Summary.Mean, variant.Results.Summary.Mean)
	compareStat("Std", baseline.Results.Summary.Std, variant.Results.Summary.Std)
	compareStat("Median", baseline.Results.Summary.Median, variant.Results.Summary.Median)
	compareStat("P99", baseline.Results.Summary.P99, variant.Results.Summary.P99)

	if baseline.Analysis != nil && variant.Analysis != nil {
		fmt.Println("\nExact expectation:")
		compareStat("Mean", baseline.Analysis.ExactMean, variant.Analysis.ExactMean)

		if baseline.Analysis.Cost != nil && variant.Analysis.Cost != nil {
			fmt.Println("\nExpected cost:")
			compareStat("Total", baseline.Analysis.Cost.Total, variant.Analysis.Cost.Total)
		}
	}

	return nil
}

func compareStat(name string, base, variant float64) {
	diff := variant - base
	if base != 0 {
		pct := (diff / base) * 100
		fmt.Printf("  %-7s %.2f -> %.2f (%+.2f, %+.1f%%)\n", name+":", base, variant, diff, pct)
		return
	}
	fmt.Printf("  %-7s %.2f -> %.2f (%+.2f)\n", name+":", base, variant, diff)
}
