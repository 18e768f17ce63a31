package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dicebar-xyz/go-dicebar/results"
)

func summary(args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: dicebar summary <results.json>

Display quick summary of simulation results.

Examples:
  dicebar summary results.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("results file required")
	}

	resultsFile := fs.Arg(0)

	res, err := results.ReadJSON(resultsFile)
	if err != nil {
		return fmt.Errorf("read results: %w", err)
	}

	fmt.Printf("Game: %s (%d faces, %d rolls per purchase)\n", res.Game.Name, res.Game.Faces, res.Game.Retries)
	fmt.Printf("Run: %s\n", res.Metadata.RunID)
	fmt.Printf("Status: %s\n", res.Metadata.Status)

	if res.Metadata.Error != "" {
		fmt.Printf("Error: %s\n", res.Metadata.Error)
		return nil
	}

	fmt.Printf("Trials: %d (seed %d, %.3fs)\n", res.Simulation.Trials, res.Simulation.Seed, res.Metadata.ComputeTime)

	s := res.Results.Summary
	fmt.Println("\nPurchases per customer:")
	fmt.Printf("  Mean:   %.2f\n", s.Mean)
	fmt.Printf("  Std:    %.2f\n", s.Std)
	fmt.Printf("  Median: %.1f\n", s.Median)
	fmt.Printf("  Range:  %d to %d\n", s.Min, s.Max)
	fmt.Printf("  P90:    %.1f\n", s.P90)
	fmt.Printf("  P99:    %.1f\n", s.P99)

	if res.Simulation.Trials > 0 {
		fmt.Printf("\nForced duplicates: %.2f per customer\n",
			float64(res.Results.ForcedPurchases)/float64(res.Simulation.Trials))
	}

	if res.Analysis != nil {
		fmt.Printf("\nExact expectation: %.2f\n", res.Analysis.ExactMean)
		fmt.Printf("Relative error: %.3f%%\n", res.Analysis.RelError*100)
		if res.Analysis.Converged {
			fmt.Println("Converged within 1% of the exact value")
		} else {
			fmt.Println("Not converged; consider more trials")
		}
		if res.Analysis.Cost != nil {
			fmt.Printf("Expected cost: %s\n", res.Analysis.Cost.Format())
		}
	}

	return nil
}
