package results

import (
	"math"

	"github.com/dicebar-xyz/go-dicebar/exact"
	"github.com/dicebar-xyz/go-dicebar/pricing"
)

// ConvergenceTolerance is the relative error under which a simulated mean is
// considered converged to the closed-form expectation.
const ConvergenceTolerance = 0.01

// Analyzer computes insights from simulation results
type Analyzer struct {
	results *Results
}

// NewAnalyzer creates an analyzer for results
func NewAnalyzer(r *Results) *Analyzer {
	return &Analyzer{results: r}
}

// ComputeAll compares the simulated mean against the closed-form
// expectation and prices the expected tab off the simulated mean.
func (a *Analyzer) ComputeAll() *Analysis {
	p := a.results.Game.Params()

	exactMean, err := exact.ExpectedPurchases(p)
	if err != nil {
		return nil
	}
	exactStd, _ := exact.PurchaseStdDev(p)

	simMean := a.results.Results.Summary.Mean
	absErr := math.Abs(simMean - exactMean)
	relErr := absErr / exactMean

	receipt := pricing.Estimate(simMean, a.results.Game.Pricing)

	return &Analysis{
		ExactMean:     exactMean,
		ExactStd:      exactStd,
		SimulatedMean: simMean,
		AbsError:      absErr,
		RelError:      relErr,
		Converged:     relErr <= ConvergenceTolerance,
		Cost:          &receipt,
	}
}
