package eventlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

var csvHeader = []string{"trial", "purchases", "forced_purchases", "rolls", "seed"}

// WriteCSV writes trial records to a CSV file with a header row.
func WriteCSV(filename string, records []Record) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := WriteCSVWriter(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteCSVWriter writes trial records as CSV to w.
func WriteCSVWriter(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Trial),
			strconv.Itoa(r.Purchases),
			strconv.Itoa(r.ForcedPurchases),
			strconv.Itoa(r.Rolls),
			strconv.FormatUint(r.Seed, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing record %d: %w", r.Trial, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ParseCSV parses trial records from a CSV file.
func ParseCSV(filename string) ([]Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return ParseCSVReader(f)
}

// ParseCSVReader parses trial records from a CSV reader. The first row must
// be the header produced by WriteCSV.
func ParseCSVReader(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("unexpected header width: got %d columns, want %d", len(header), len(csvHeader))
	}
	for i, col := range csvHeader {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected column %d: got %q, want %q", i, header[i], col)
		}
	}

	var records []Record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}
		line++

		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(row []string) (Record, error) {
	var rec Record
	var err error

	if rec.Trial, err = strconv.Atoi(row[0]); err != nil {
		return rec, fmt.Errorf("trial: %w", err)
	}
	if rec.Purchases, err = strconv.Atoi(row[1]); err != nil {
		return rec, fmt.Errorf("purchases: %w", err)
	}
	if rec.ForcedPurchases, err = strconv.Atoi(row[2]); err != nil {
		return rec, fmt.Errorf("forced_purchases: %w", err)
	}
	if rec.Rolls, err = strconv.Atoi(row[3]); err != nil {
		return rec, fmt.Errorf("rolls: %w", err)
	}
	if rec.Seed, err = strconv.ParseUint(row[4], 10, 64); err != nil {
		return rec, fmt.Errorf("seed: %w", err)
	}

	return rec, nil
}
