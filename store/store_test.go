package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/dicebar-xyz/go-dicebar/collector"
	"github.com/dicebar-xyz/go-dicebar/montecarlo"
	"github.com/dicebar-xyz/go-dicebar/pricing"
	"github.com/dicebar-xyz/go-dicebar/results"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRun(t *testing.T, p collector.Params, seed uint64) *results.Results {
	t.Helper()

	batch, err := montecarlo.Run(p, 500, seed)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	builder := results.NewBuilder()
	builder.WithGame(p, pricing.DefaultRates(), "test")
	builder.WithSimulation(500, seed, 0, 20)
	builder.WithBatch(batch, 0.1)
	res := builder.Build()
	res.Analysis = results.NewAnalyzer(res).ComputeAll()
	return res
}

func TestSaveAndGet(t *testing.T) {
	s := testStore(t)
	res := testRun(t, collector.DefaultParams(), 42)

	if err := s.Save(res); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	run, err := s.Get(res.Metadata.RunID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if run.Faces != 20 || run.Retries != 3 {
		t.Errorf("Expected d20 game, got %d/%d", run.Faces, run.Retries)
	}
	if run.Trials != 500 {
		t.Errorf("Expected 500 trials, got %d", run.Trials)
	}
	if run.Mean != res.Results.Summary.Mean {
		t.Errorf("Expected mean %f, got %f", res.Results.Summary.Mean, run.Mean)
	}
	if run.ExpectedCost <= 0 {
		t.Errorf("Expected positive cost, got %f", run.ExpectedCost)
	}

	doc, err := run.Results()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if doc.Metadata.RunID != res.Metadata.RunID {
		t.Errorf("Expected run ID %s in document, got %s", res.Metadata.RunID, doc.Metadata.RunID)
	}
}

func TestGetMissing(t *testing.T) {
	s := testStore(t)

	_, err := s.Get("no-such-run")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	s := testStore(t)

	for i := 0; i < 3; i++ {
		res := testRun(t, collector.DefaultParams(), uint64(i))
		res.Metadata.Timestamp = time.Date(2026, 8, 1+i, 12, 0, 0, 0, time.UTC)
		if err := s.Save(res); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	runs, err := s.List(10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	// Newest first
	for i := 1; i < len(runs); i++ {
		if runs[i].CreatedAt.After(runs[i-1].CreatedAt) {
			t.Errorf("Expected descending timestamps, got %v before %v", runs[i-1].CreatedAt, runs[i].CreatedAt)
		}
	}

	runs, err = s.List(2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("Expected limit of 2 runs, got %d", len(runs))
	}
}

func TestBest(t *testing.T) {
	s := testStore(t)

	p := collector.DefaultParams()
	var lowest float64
	for i := 0; i < 3; i++ {
		res := testRun(t, p, uint64(100+i))
		if err := s.Save(res); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if i == 0 || res.Results.Summary.Mean < lowest {
			lowest = res.Results.Summary.Mean
		}
	}

	best, err := s.Best(p.Faces, p.Retries)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if best.Mean != lowest {
		t.Errorf("Expected best mean %f, got %f", lowest, best.Mean)
	}

	_, err = s.Best(99, 1)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unseen game, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := testStore(t)
	res := testRun(t, collector.DefaultParams(), 7)

	if err := s.Save(res); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := s.Delete(res.Metadata.RunID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	_, err := s.Get(res.Metadata.RunID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	if err := s.Delete(res.Metadata.RunID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for double delete, got %v", err)
	}
}
