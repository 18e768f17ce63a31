package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dicebar-xyz/go-dicebar/collector"
	"github.com/dicebar-xyz/go-dicebar/exact"
	"github.com/dicebar-xyz/go-dicebar/montecarlo"
	"github.com/dicebar-xyz/go-dicebar/plotter"
	"github.com/dicebar-xyz/go-dicebar/pricing"
	"github.com/dicebar-xyz/go-dicebar/results"
	"github.com/dicebar-xyz/go-dicebar/store"
)

func run(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	faces := fs.Int("faces", collector.DefaultFaces, "Number of die faces (cocktails on the menu)")
	retries := fs.Int("retries", collector.DefaultRetries, "Rolls allowed per purchase before a duplicate is forced")
	trials := fs.Int("trials", 100000, "Number of simulated customers")
	seed := fs.Uint64("seed", 1, "Random seed")
	workers := fs.Int("workers", 0, "Parallel workers (0 = sequential)")
	bins := fs.Int("bins", results.DefaultBins, "Histogram bin count")
	price := fs.Float64("price", pricing.DefaultUnitPrice, "Price per drink")
	tax := fs.Float64("tax", pricing.DefaultTaxRate, "Sales tax rate")
	tip := fs.Float64("tip", pricing.DefaultTipRate, "Tip rate")
	plotFile := fs.String("plot", "", "Write histogram SVG to this file")
	output := fs.String("output", "", "Write results JSON to this file")
	dbPath := fs.String("db", "", "Save the run to this SQLite history database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: dicebar run [options]

Run the full analysis: closed-form expectation, Monte Carlo batch, outcome
histogram, and the expected bar tab.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Reference run (d20, 3 rolls, 100k customers)
  dicebar run

  # Keep the artifacts
  dicebar run --plot outcomes.svg --output results.json --db runs.db

  # Parallel batch
  dicebar run --trials 1000000 --workers 8
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	p := collector.Params{Faces: *faces, Retries: *retries}
	rates := pricing.Rates{UnitPrice: *price, TaxRate: *tax, TipRate: *tip}

	exactMean, err := exact.ExpectedPurchases(p)
	if err != nil {
		return err
	}

	start := time.Now()
	var batch *montecarlo.Batch
	if *workers > 0 {
		batch, err = montecarlo.RunParallel(p, *trials, *seed, *workers)
	} else {
		batch, err = montecarlo.Run(p, *trials, *seed)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start).Seconds()

	builder := results.NewBuilder()
	builder.WithGame(p, rates, fmt.Sprintf("d%d menu", p.Faces))
	builder.WithSimulation(*trials, *seed, *workers, *bins)
	builder.WithBatch(batch, elapsed)

	res := builder.Build()
	res.Analysis = results.NewAnalyzer(res).ComputeAll()

	// The three headline numbers
	fmt.Printf("Expected purchases (exact): %.1f\n", exactMean)
	fmt.Printf("Simulated mean (%d trials): %.1f\n", *trials, res.Results.Summary.Mean)
	fmt.Printf("Expected cost: %s\n", res.Analysis.Cost.Format())

	fmt.Fprintf(os.Stderr, "\n  Std dev: %.1f (exact %.1f)\n", res.Results.Summary.Std, res.Analysis.ExactStd)
	fmt.Fprintf(os.Stderr, "  Range: %d to %d purchases\n", res.Results.Summary.Min, res.Results.Summary.Max)
	fmt.Fprintf(os.Stderr, "  Forced duplicates: %.2f per customer\n",
		float64(res.Results.ForcedPurchases)/float64(*trials))
	fmt.Fprintf(os.Stderr, "  Compute time: %.3fs\n", elapsed)

	if *plotFile != "" {
		title := fmt.Sprintf("Purchases to Complete the d%d Menu", p.Faces)
		svg, _ := plotter.PlotHistogram(res.Results.Histogram, 800, 600, title, "Purchases", "Customers")
		if err := os.WriteFile(*plotFile, []byte(svg), 0644); err != nil {
			return fmt.Errorf("write SVG: %w", err)
		}
		fmt.Fprintf(os.Stderr, "  Plot: %s\n", *plotFile)
	}

	if *output != "" {
		if err := results.WriteJSON(res, *output); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		fmt.Fprintf(os.Stderr, "  Results: %s\n", *output)
	}

	if *dbPath != "" {
		s, err := store.New(*dbPath)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer s.Close()
		if err := s.Save(res); err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		fmt.Fprintf(os.Stderr, "  Saved run %s to %s\n", res.Metadata.RunID, *dbPath)
	}

	return nil
}
