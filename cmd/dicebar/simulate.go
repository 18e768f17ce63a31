package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dicebar-xyz/go-dicebar/collector"
	"github.com/dicebar-xyz/go-dicebar/eventlog"
	"github.com/dicebar-xyz/go-dicebar/montecarlo"
	"github.com/dicebar-xyz/go-dicebar/pricing"
	"github.com/dicebar-xyz/go-dicebar/results"
	"github.com/dicebar-xyz/go-dicebar/store"
)

func simulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	faces := fs.Int("faces", collector.DefaultFaces, "Number of die faces")
	retries := fs.Int("retries", collector.DefaultRetries, "Rolls allowed per purchase")
	trials := fs.Int("trials", 100000, "Number of simulated customers")
	seed := fs.Uint64("seed", 1, "Random seed")
	workers := fs.Int("workers", 0, "Parallel workers (0 = sequential)")
	bins := fs.Int("bins", results.DefaultBins, "Histogram bin count")
	output := fs.String("output", "", "Output file for results (required)")
	analyze := fs.Bool("analyze", true, "Compute exact comparison and cost analysis")
	outcomes := fs.Bool("outcomes", false, "Include raw per-trial outcomes in the results JSON")
	csvFile := fs.String("csv", "", "Also export per-trial records as CSV")
	jsonlFile := fs.String("jsonl", "", "Also export per-trial records as JSONL")
	dbPath := fs.String("db", "", "Save the run to this SQLite history database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: dicebar simulate [options]

Run a Monte Carlo batch of collection trials and write results JSON.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Reference batch
  dicebar simulate --trials 100000 --seed 42 --output results.json

  # Parallel with trial-level export
  dicebar simulate --trials 1000000 --workers 8 --output results.json --csv trials.csv

  # Skip analysis for faster output
  dicebar simulate --analyze=false --output results.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *output == "" {
		fs.Usage()
		return fmt.Errorf("--output required")
	}

	p := collector.Params{Faces: *faces, Retries: *retries}

	start := time.Now()
	var batch *montecarlo.Batch
	var err error
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
	builder.WithGame(p, pricing.DefaultRates(), fmt.Sprintf("d%d menu", p.Faces))
	builder.WithSimulation(*trials, *seed, *workers, *bins)
	builder.WithBatch(batch, elapsed)
	if *outcomes {
		builder.WithOutcomes(batch)
	}

	res := builder.Build()
	if *analyze {
		res.Analysis = results.NewAnalyzer(res).ComputeAll()
	}

	if err := results.WriteJSON(res, *output); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	if *csvFile != "" {
		if err := eventlog.WriteCSV(*csvFile, eventlog.FromBatch(batch)); err != nil {
			return fmt.Errorf("write CSV: %w", err)
		}
	}
	if *jsonlFile != "" {
		if err := eventlog.WriteJSONL(*jsonlFile, eventlog.FromBatch(batch)); err != nil {
			return fmt.Errorf("write JSONL: %w", err)
		}
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
	}

	// Print summary to stderr so it doesn't interfere with piping
	fmt.Fprintf(os.Stderr, "Simulation complete\n")
	fmt.Fprintf(os.Stderr, "  Game: d%d, %d rolls per purchase\n", p.Faces, p.Retries)
	fmt.Fprintf(os.Stderr, "  Trials: %d\n", *trials)
	fmt.Fprintf(os.Stderr, "  Mean: %.1f purchases\n", res.Results.Summary.Mean)
	fmt.Fprintf(os.Stderr, "  Compute time: %.3fs\n", elapsed)
	fmt.Fprintf(os.Stderr, "  Output: %s\n", *output)

	return nil
}
