package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dicebar-xyz/go-dicebar/collector"
	"github.com/dicebar-xyz/go-dicebar/montecarlo"
	"github.com/dicebar-xyz/go-dicebar/pricing"
	"github.com/dicebar-xyz/go-dicebar/results"
)

func sweep(args []string) error {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	facesSweep := fs.String("faces", "", "Sweep face counts: 'min:max'")
	retriesSweep := fs.String("retries", "", "Sweep retry budgets: 'min:max'")
	trials := fs.Int("trials", 20000, "Trials per variant")
	seed := fs.Uint64("seed", 1, "Random seed")
	objective := fs.String("objective", "minimize_cost", "Optimization objective")
	parallel := fs.Int("parallel", 4, "Number of variants simulated concurrently")
	output := fs.String("output", "sweep_results.json", "Output file for sweep results")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: dicebar sweep [options]

Sweep game parameters and rank the variants by an objective.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Objectives:
  minimize_mean    Fewest expected purchases
  minimize_cost    Cheapest expected bar tab
  minimize_tail    Best worst-case customer (99th percentile)
  minimize_forced  Fewest forced duplicate drinks per customer
  minimize_error   Closest Monte Carlo convergence

Examples:
  # How much do extra re-rolls help?
  dicebar sweep --retries 1:6 --objective minimize_cost

  # Menu size and retry budget together
  dicebar sweep --faces 10:30 --retries 1:5 --trials 50000
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *facesSweep == "" && *retriesSweep == "" {
		fs.Usage()
		return fmt.Errorf("at least one parameter sweep required (--faces or --retries)")
	}

	objectiveFunc, ok := results.Objectives[*objective]
	if !ok {
		return fmt.Errorf("unknown objective: %s", *objective)
	}

	facesValues, err := parseRange(*facesSweep, collector.DefaultFaces)
	if err != nil {
		return fmt.Errorf("parse faces: %w", err)
	}
	retriesValues, err := parseRange(*retriesSweep, collector.DefaultRetries)
	if err != nil {
		return fmt.Errorf("parse retries: %w", err)
	}

	type variantSpec struct {
		id     int
		params collector.Params
	}
	var specs []variantSpec
	for _, f := range facesValues {
		for _, r := range retriesValues {
			specs = append(specs, variantSpec{id: len(specs), params: collector.Params{Faces: f, Retries: r}})
		}
	}

	fmt.Fprintf(os.Stderr, "Parameter sweep: %d variants\n", len(specs))
	fmt.Fprintf(os.Stderr, "Objective: %s\n", *objective)
	fmt.Fprintf(os.Stderr, "Running simulations...\n")

	if *parallel <= 0 {
		*parallel = 1
	}

	variants := make([]results.VariantResult, len(specs))
	errs := make([]error, len(specs))
	sem := make(chan struct{}, *parallel)
	var wg sync.WaitGroup

	for _, spec := range specs {
		wg.Add(1)
		go func(spec variantSpec) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			start := time.Now()
			batch, err := montecarlo.Run(spec.params, *trials, *seed)
			if err != nil {
				errs[spec.id] = err
				return
			}

			builder := results.NewBuilder()
			builder.WithGame(spec.params, pricing.DefaultRates(), fmt.Sprintf("d%d menu", spec.params.Faces))
			builder.WithSimulation(*trials, *seed, 0, results.DefaultBins)
			builder.WithBatch(batch, time.Since(start).Seconds())
			res := builder.Build()
			res.Analysis = results.NewAnalyzer(res).ComputeAll()

			score, err := objectiveFunc(res)
			if err != nil {
				errs[spec.id] = err
				return
			}

			variants[spec.id] = results.VariantResult{
				ID: spec.id,
				Parameters: map[string]int{
					"faces":   spec.params.Faces,
					"retries": spec.params.Retries,
				},
				Metrics: results.ExtractMetrics(res),
				Score:   score,
			}
		}(spec)
	}
	wg.Wait()

	var succeeded []results.VariantResult
	failures := 0
	for i, err := range errs {
		if err != nil {
			fmt.Fprintf(os.Stderr, "  variant %d failed: %v\n", i, err)
			failures++
			continue
		}
		succeeded = append(succeeded, variants[i])
	}
	if len(succeeded) == 0 {
		return fmt.Errorf("all %d variants failed", len(specs))
	}

	results.RankVariants(succeeded)

	sweepRes := &results.SweepResults{
		Version:   results.SchemaVersion,
		Objective: *objective,
		Variants:  succeeded,
		Best:      &succeeded[0],
		Worst:     &succeeded[len(succeeded)-1],
		Summary: results.SweepSummary{
			TotalVariants: len(specs),
			SuccessCount:  len(succeeded),
			FailureCount:  failures,
			BestScore:     succeeded[0].Score,
			WorstScore:    succeeded[len(succeeded)-1].Score,
			ScoreRange:    succeeded[len(succeeded)-1].Score - succeeded[0].Score,
		},
	}
	if *facesSweep != "" {
		sweepRes.Parameters = append(sweepRes.Parameters, results.ParameterSweep{
			Name: "faces", Values: facesValues, Min: facesValues[0], Max: facesValues[len(facesValues)-1],
		})
	}
	if *retriesSweep != "" {
		sweepRes.Parameters = append(sweepRes.Parameters, results.ParameterSweep{
			Name: "retries", Values: retriesValues, Min: retriesValues[0], Max: retriesValues[len(retriesValues)-1],
		})
	}
	sweepRes.Recommended = results.GenerateRecommendations(sweepRes)

	if err := writeSweepJSON(sweepRes, *output); err != nil {
		return fmt.Errorf("write sweep results: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\nTop variants:\n")
	top := len(succeeded)
	if top > 5 {
		top = 5
	}
	for _, v := range succeeded[:top] {
		fmt.Fprintf(os.Stderr, "  #%d faces=%d retries=%d: mean %.1f, cost $%.2f (score %.3f)\n",
			v.Rank, v.Parameters["faces"], v.Parameters["retries"],
			v.Metrics.SimulatedMean, v.Metrics.ExpectedCost, v.Score)
	}
	fmt.Fprintf(os.Stderr, "Output: %s\n", *output)

	return nil
}

func writeSweepJSON(sweep *results.SweepResults, filename string) error {
	data, err := json.MarshalIndent(sweep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sweep: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}

// parseRange parses "min:max" into the inclusive integer range. An empty
// spec yields just the fallback value.
func parseRange(s string, fallback int) ([]int, error) {
	if s == "" {
		return []int{fallback}, nil
	}

	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid range: %s (expected min:max)", s)
	}

	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid min: %s", parts[0])
	}
	max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid max: %s", parts[1])
	}
	if min > max {
		return nil, fmt.Errorf("min %d exceeds max %d", min, max)
	}

	values := make([]int, 0, max-min+1)
	for v := min; v <= max; v++ {
		values = append(values, v)
	}
	return values, nil
}
