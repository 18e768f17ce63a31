package results

import (
	"time"

	"github.com/google/uuid"

	"github.com/dicebar-xyz/go-dicebar/collector"
	"github.com/dicebar-xyz/go-dicebar/montecarlo"
	"github.com/dicebar-xyz/go-dicebar/pricing"
	"github.com/dicebar-xyz/go-dicebar/stats"
)

// DefaultBins is the histogram resolution used when none is requested.
const DefaultBins = 20

// Builder helps construct Results from simulation output
type Builder struct {
	results Results
}

// NewBuilder creates a new results builder
func NewBuilder() *Builder {
	return &Builder{
		results: Results{
			Version: SchemaVersion,
			Metadata: Metadata{
				RunID:     uuid.New().String(),
				Timestamp: time.Now(),
			},
		},
	}
}

// WithGame sets the game configuration
func (b *Builder) WithGame(p collector.Params, rates pricing.Rates, name string) *Builder {
	b.results.Game = Game{
		Name:    name,
		Faces:   p.Faces,
		Retries: p.Retries,
		Pricing: rates,
	}
	return b
}

// WithSimulation sets batch parameters
func (b *Builder) WithSimulation(trials int, seed uint64, workers, bins int) *Builder {
	if bins <= 0 {
		bins = DefaultBins
	}
	b.results.Simulation = Simulation{
		Trials:  trials,
		Seed:    seed,
		Workers: workers,
		Bins:    bins,
	}
	return b
}

// WithBatch processes batch output: summary statistics and the histogram
func (b *Builder) WithBatch(batch *montecarlo.Batch, computeTime float64) *Builder {
	b.results.Metadata.Status = "success"
	b.results.Metadata.ComputeTime = computeTime

	bins := b.results.Simulation.Bins
	if bins <= 0 {
		bins = DefaultBins
	}

	purchases := batch.Purchases()
	b.results.Results = Data{
		Summary:         stats.Describe(purchases),
		Histogram:       stats.NewHistogram(purchases, bins),
		ForcedPurchases: batch.TotalForced(),
	}
	return b
}

// WithOutcomes includes the raw per-trial purchase counts in the output.
// Off by default: 100k integers dominate the file size.
func (b *Builder) WithOutcomes(batch *montecarlo.Batch) *Builder {
	b.results.Results.Outcomes = batch.Purchases()
	return b
}

// WithError sets error status
func (b *Builder) WithError(err error) *Builder {
	b.results.Metadata.Status = "error"
	b.results.Metadata.Error = err.Error()
	return b
}

// Build returns the constructed Results
func (b *Builder) Build() *Results {
	return &b.results
}
