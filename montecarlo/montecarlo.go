// Package montecarlo runs batches of independent collection trials and
// gathers their outcomes. Batches are deterministic: sequential runs are a
// pure function of (params, trials, seed), parallel runs of the same plus
// the worker count.
package montecarlo

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/dicebar-xyz/go-dicebar/collector"
)

// Batch holds the outcomes of one simulation run.
type Batch struct {
	Params   collector.Params
	Seed     uint64
	Outcomes []collector.Outcome
}

// Purchases extracts the purchase count of every trial, in trial order.
func (b *Batch) Purchases() []int {
	xs := make([]int, len(b.Outcomes))
	for i, o := range b.Outcomes {
		xs[i] = o.Purchases
	}
	return xs
}

// TotalForced sums the forced duplicate purchases across the batch.
func (b *Batch) TotalForced() int {
	total := 0
	for _, o := range b.Outcomes {
		total += o.ForcedPurchases
	}
	return total
}

// Run simulates trials customers sequentially on a single seeded roller.
func Run(p collector.Params, trials int, seed uint64) (*Batch, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%w: trials must be positive, got %d", collector.ErrInvalidParam, trials)
	}

	roller := collector.NewRoller(seed)
	outcomes := make([]collector.Outcome, trials)
	for i := range outcomes {
		outcomes[i] = collector.NewTrial(p).Run(roller)
	}

	return &Batch{Params: p, Seed: seed, Outcomes: outcomes}, nil
}

// RunParallel fans the batch out over workers goroutines. Each worker rolls
// on its own PCG stream derived from the base seed, so outcomes are
// reproducible for a fixed (seed, workers) pair regardless of scheduling.
// workers <= 0 selects one worker per CPU.
func RunParallel(p collector.Params, trials int, seed uint64, workers int) (*Batch, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%w: trials must be positive, got %d", collector.ErrInvalidParam, trials)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > trials {
		workers = trials
	}

	outcomes := make([]collector.Outcome, trials)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			roller := collector.NewRollerStream(seed, uint64(w)+1)
			// Worker w owns trial indices w, w+workers, w+2*workers, ...
			for i := w; i < trials; i += workers {
				outcomes[i] = collector.NewTrial(p).Run(roller)
			}
		}(w)
	}

	wg.Wait()
	return &Batch{Params: p, Seed: seed, Outcomes: outcomes}, nil
}
