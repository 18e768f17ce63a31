// Package results defines the structured output format for simulation runs
package results

import (
	"time"

	"github.com/dicebar-xyz/go-dicebar/collector"
	"github.com/dicebar-xyz/go-dicebar/pricing"
	"github.com/dicebar-xyz/go-dicebar/stats"
)

const SchemaVersion = "1.0.0"

// Results contains complete output for one simulation run
type Results struct {
	Version    string     `json:"version"`
	Metadata   Metadata   `json:"metadata"`
	Game       Game       `json:"game"`
	Simulation Simulation `json:"simulation"`
	Results    Data       `json:"results"`
	Analysis   *Analysis  `json:"analysis,omitempty"`
}

// Metadata contains run execution information
type Metadata struct {
	RunID       string    `json:"runId"`
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"` // success, error
	Error       string    `json:"error,omitempty"`
	ComputeTime float64   `json:"computeTime"` // seconds
}

// Game records the collection game being analyzed
type Game struct {
	Name    string        `json:"name,omitempty"`
	Faces   int           `json:"faces"`
	Retries int           `json:"retries"`
	Pricing pricing.Rates `json:"pricing"`
}

// Params reconstructs the collector parameters for this run
func (g Game) Params() collector.Params {
	return collector.Params{Faces: g.Faces, Retries: g.Retries}
}

// Simulation contains batch parameters used
type Simulation struct {
	Trials  int    `json:"trials"`
	Seed    uint64 `json:"seed"`
	Workers int    `json:"workers"` // 0 for sequential runs
	Bins    int    `json:"bins"`
}

// Data contains the simulation results
type Data struct {
	Summary         stats.Summary   `json:"summary"`
	Histogram       stats.Histogram `json:"histogram"`
	ForcedPurchases int             `json:"forcedPurchases"`
	Outcomes        []int           `json:"outcomes,omitempty"`
}

// Analysis contains computed insights: the closed-form expectation, how far
// the simulated mean landed from it, and the expected bar tab
type Analysis struct {
	ExactMean     float64          `json:"exactMean"`
	ExactStd      float64          `json:"exactStd"`
	SimulatedMean float64          `json:"simulatedMean"`
	AbsError      float64          `json:"absError"`
	RelError      float64          `json:"relError"`
	Converged     bool             `json:"converged"` // within 1% of exact
	Cost          *pricing.Receipt `json:"cost,omitempty"`
}
