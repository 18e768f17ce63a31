package eventlog

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dicebar-xyz/go-dicebar/collector"
	"github.com/dicebar-xyz/go-dicebar/montecarlo"
)

func testRecords(t *testing.T) []Record {
	t.Helper()

	batch, err := montecarlo.Run(collector.Params{Faces: 6, Retries: 3}, 50, 9)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return FromBatch(batch)
}

func TestFromBatch(t *testing.T) {
	records := testRecords(t)

	if len(records) != 50 {
		t.Fatalf("Expected 50 records, got %d", len(records))
	}
	for i, r := range records {
		if r.Trial != i {
			t.Errorf("Record %d has trial index %d", i, r.Trial)
		}
		if r.Seed != 9 {
			t.Errorf("Record %d has seed %d, want 9", i, r.Seed)
		}
		if r.Purchases < 6 {
			t.Errorf("Record %d has %d purchases, below face count", i, r.Purchases)
		}
	}
}

func TestOutcomesRoundTrip(t *testing.T) {
	records := testRecords(t)
	outcomes := Outcomes(records)

	if len(outcomes) != len(records) {
		t.Fatalf("Expected %d outcomes, got %d", len(records), len(outcomes))
	}
	for i := range records {
		if outcomes[i].Purchases != records[i].Purchases {
			t.Errorf("Outcome %d purchases mismatch", i)
		}
		if outcomes[i].Rolls != records[i].Rolls {
			t.Errorf("Outcome %d rolls mismatch", i)
		}
	}
}

func TestCSVRoundTrip(t *testing.T) {
	records := testRecords(t)
	path := filepath.Join(t.TempDir(), "trials.csv")

	if err := WriteCSV(path, records); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	loaded, err := ParseCSV(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(loaded) != len(records) {
		t.Fatalf("Expected %d records, got %d", len(records), len(loaded))
	}
	for i := range records {
		if loaded[i] != records[i] {
			t.Errorf("Record %d mismatch: %+v vs %+v", i, loaded[i], records[i])
		}
	}
}

func TestParseCSVRejectsBadHeader(t *testing.T) {
	r := strings.NewReader("foo,bar\n1,2\n")
	_, err := ParseCSVReader(r)
	if err == nil {
		t.Error("Expected error for unknown header")
	}
}

func TestParseCSVRejectsBadValue(t *testing.T) {
	r := strings.NewReader("trial,purchases,forced_purchases,rolls,seed\n0,abc,0,5,1\n")
	_, err := ParseCSVReader(r)
	if err == nil {
		t.Error("Expected error for non-numeric purchases")
	}
}

func TestJSONLRoundTrip(t *testing.T) {
	records := testRecords(t)
	path := filepath.Join(t.TempDir(), "trials.jsonl")

	if err := WriteJSONL(path, records); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	loaded, err := ParseJSONL(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(loaded) != len(records) {
		t.Fatalf("Expected %d records, got %d", len(records), len(loaded))
	}
	for i := range records {
		if loaded[i] != records[i] {
			t.Errorf("Record %d mismatch: %+v vs %+v", i, loaded[i], records[i])
		}
	}
}

func TestParseJSONLSkipsBlankLines(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(`{"trial":0,"purchases":21,"forcedPurchases":1,"rolls":30,"seed":5}` + "\n\n")
	buf.WriteString(`{"trial":1,"purchases":20,"forcedPurchases":0,"rolls":28,"seed":5}` + "\n")

	records, err := ParseJSONLReader(&buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[1].Purchases != 20 {
		t.Errorf("Expected 20 purchases in second record, got %d", records[1].Purchases)
	}
}

func TestParseJSONLRejectsGarbage(t *testing.T) {
	_, err := ParseJSONLReader(strings.NewReader("not json\n"))
	if err == nil {
		t.Error("Expected error for malformed line")
	}
}
