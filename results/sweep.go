package results

import (
	"fmt"
	"sort"
)

// SweepResults contains results from a parameter sweep over game variants
type SweepResults struct {
	Version     string            `json:"version"`
	Objective   string            `json:"objective"`
	Parameters  []ParameterSweep  `json:"parameters"`
	Variants    []VariantResult   `json:"variants"`
	Best        *VariantResult    `json:"best"`
	Worst       *VariantResult    `json:"worst"`
	Summary     SweepSummary      `json:"summary"`
	Recommended map[string]string `json:"recommended,omitempty"`
}

// ParameterSweep describes a swept parameter
type ParameterSweep struct {
	Name   string `json:"name"` // "faces" or "retries"
	Values []int  `json:"values"`
	Min    int    `json:"min"`
	Max    int    `json:"max"`
}

// VariantResult contains results for one parameter combination
type VariantResult struct {
	ID         int            `json:"id"`
	Parameters map[string]int `json:"parameters"`
	Metrics    Metrics        `json:"metrics"`
	Score      float64        `json:"score"`
	Rank       int            `json:"rank"`
}

// Metrics contains key metrics extracted from one variant run
type Metrics struct {
	ExactMean       float64 `json:"exactMean"`
	SimulatedMean   float64 `json:"simulatedMean"`
	Std             float64 `json:"std"`
	P99             float64 `json:"p99"`
	ForcedPurchases int     `json:"forcedPurchases"`
	ExpectedCost    float64 `json:"expectedCost"`
	ComputeTime     float64 `json:"computeTime"`
}

// SweepSummary provides overview of sweep
type SweepSummary struct {
	TotalVariants int     `json:"totalVariants"`
	SuccessCount  int     `json:"successCount"`
	FailureCount  int     `json:"failureCount"`
	BestScore     float64 `json:"bestScore"`
	WorstScore    float64 `json:"worstScore"`
	ScoreRange    float64 `json:"scoreRange"`
}

// ObjectiveFunc evaluates how good a variant is (lower is better)
type ObjectiveFunc func(*Results) (float64, error)

// Objectives maps objective names to evaluation functions
var Objectives = map[string]ObjectiveFunc{
	"minimize_mean": func(r *Results) (float64, error) {
		if r.Results.Summary.Count == 0 {
			return 0, fmt.Errorf("no outcomes")
		}
		return r.Results.Summary.Mean, nil
	},

	"minimize_cost": func(r *Results) (float64, error) {
		if r.Analysis == nil || r.Analysis.Cost == nil {
			return 0, fmt.Errorf("no cost analysis")
		}
		return r.Analysis.Cost.Total, nil
	},

	"minimize_tail": func(r *Results) (float64, error) {
		// Worst-case customer: 99th percentile purchases
		if r.Results.Summary.Count == 0 {
			return 0, fmt.Errorf("no outcomes")
		}
		return r.Results.Summary.P99, nil
	},

	"minimize_forced": func(r *Results) (float64, error) {
		// Forced duplicate purchases per trial
		if r.Simulation.Trials == 0 {
			return 0, fmt.Errorf("no trials")
		}
		return float64(r.Results.ForcedPurchases) / float64(r.Simulation.Trials), nil
	},

	"minimize_error": func(r *Results) (float64, error) {
		if r.Analysis == nil {
			return 0, fmt.Errorf("no analysis")
		}
		return r.Analysis.RelError, nil
	},
}

// ExtractMetrics extracts key metrics from variant results
func ExtractMetrics(r *Results) Metrics {
	m := Metrics{
		SimulatedMean:   r.Results.Summary.Mean,
		Std:             r.Results.Summary.Std,
		P99:             r.Results.Summary.P99,
		ForcedPurchases: r.Results.ForcedPurchases,
		ComputeTime:     r.Metadata.ComputeTime,
	}

	if r.Analysis != nil {
		m.ExactMean = r.Analysis.ExactMean
		if r.Analysis.Cost != nil {
			m.ExpectedCost = r.Analysis.Cost.Total
		}
	}

	return m
}

// RankVariants sorts variants by score and assigns ranks
func RankVariants(variants []VariantResult) {
	// Sort by score (ascending - lower is better)
	sort.Slice(variants, func(i, j int) bool {
		return variants[i].Score < variants[j].Score
	})

	// Assign ranks
	for i := range variants {
		variants[i].Rank = i + 1
	}
}

// GenerateRecommendations creates human-readable recommendations
func GenerateRecommendations(sweep *SweepResults) map[string]string {
	rec := make(map[string]string)

	if sweep.Best == nil {
		return rec
	}

	if sweep.Worst != nil {
		for param, bestVal := range sweep.Best.Parameters {
			worstVal := sweep.Worst.Parameters[param]
			if bestVal != worstVal {
				var direction string
				if bestVal > worstVal {
					direction = "increase"
				} else {
					direction = "decrease"
				}
				rec[param] = fmt.Sprintf("%s (%d → %d)", direction, worstVal, bestVal)
			}
		}

		bestCost := sweep.Best.Metrics.ExpectedCost
		worstCost := sweep.Worst.Metrics.ExpectedCost
		if worstCost > 0 {
			improvement := ((worstCost - bestCost) / worstCost) * 100
			rec["improvement"] = fmt.Sprintf("%.1f%% lower expected cost ($%.2f → $%.2f)",
				improvement, worstCost, bestCost)
		}
	}

	return rec
}
