package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dicebar-xyz/go-dicebar/plotter"
	"github.com/dicebar-xyz/go-dicebar/results"
)

func plot(args []string) error {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)
	output := fs.String("output", "", "Output SVG file (required)")
	width := fs.Int("width", 800, "Plot width in pixels")
	height := fs.Int("height", 600, "Plot height in pixels")
	title := fs.String("title", "", "Plot title (default: game name)")
	xlabel := fs.String("xlabel", "Purchases", "X-axis label")
	ylabel := fs.String("ylabel", "Customers", "Y-axis label")
	mean := fs.Bool("mean", false, "Overlay the exact expected value as a vertical marker")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: dicebar plot <results.json> [options]

Generate an outcome histogram SVG from simulation results.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Basic histogram
  dicebar plot results.json --output outcomes.svg

  # Custom size with the exact mean marked
  dicebar plot results.json --output outcomes.svg --width 1200 --height 800 --mean
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("results file required")
	}

	if *output == "" {
		fs.Usage()
		return fmt.Errorf("--output required")
	}

	resultsFile := fs.Arg(0)

	res, err := results.ReadJSON(resultsFile)
	if err != nil {
		return fmt.Errorf("read results: %w", err)
	}

	if len(res.Results.Histogram.Counts) == 0 {
		return fmt.Errorf("results contain no histogram")
	}

	plotTitle := *title
	if plotTitle == "" {
		plotTitle = res.Game.Name
	}

	p := plotter.NewSVGPlotter(float64(*width), float64(*height))
	p.SetTitle(plotTitle)
	p.SetXLabel(*xlabel)
	p.SetYLabel(*ylabel)
	p.AddBars(res.Results.Histogram, "simulated", "")

	if *mean && res.Analysis != nil {
		// Vertical marker at the exact expectation
		top := float64(res.Results.Histogram.MaxCount())
		x := res.Analysis.ExactMean
		p.AddSeries([]float64{x, x}, []float64{0, top}, "exact mean", "#dc2626")
	}

	svg := p.Render()
	if err := os.WriteFile(*output, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write SVG: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Plot saved to %s\n", *output)
	return nil
}
