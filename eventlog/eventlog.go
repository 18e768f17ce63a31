// Package eventlog reads and writes per-trial outcome logs in CSV and JSONL
// formats, so batches can be inspected or re-analyzed with external tools.
package eventlog

import (
	"github.com/dicebar-xyz/go-dicebar/collector"
	"github.com/dicebar-xyz/go-dicebar/montecarlo"
)

// Record is one trial outcome as it appears in a log file.
type Record struct {
	Trial           int    `json:"trial"`
	Purchases       int    `json:"purchases"`
	ForcedPurchases int    `json:"forcedPurchases"`
	Rolls           int    `json:"rolls"`
	Seed            uint64 `json:"seed"`
}

// FromBatch converts a batch into log records, one per trial in trial order.
func FromBatch(batch *montecarlo.Batch) []Record {
	records := make([]Record, len(batch.Outcomes))
	for i, o := range batch.Outcomes {
		records[i] = Record{
			Trial:           i,
			Purchases:       o.Purchases,
			ForcedPurchases: o.ForcedPurchases,
			Rolls:           o.Rolls,
			Seed:            batch.Seed,
		}
	}
	return records
}

// Outcomes converts log records back into trial outcomes.
func Outcomes(records []Record) []collector.Outcome {
	outcomes := make([]collector.Outcome, len(records))
	for i, r := range records {
		outcomes[i] = collector.Outcome{
			Purchases:       r.Purchases,
			ForcedPurchases: r.ForcedPurchases,
			Rolls:           r.Rolls,
		}
	}
	return outcomes
}
