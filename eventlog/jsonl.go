package eventlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteJSONL writes trial records to a JSONL file, one JSON object per line.
func WriteJSONL(filename string, records []Record) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := WriteJSONLWriter(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteJSONLWriter writes trial records as JSONL to w.
func WriteJSONLWriter(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)

	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding record %d: %w", r.Trial, err)
		}
	}

	return bw.Flush()
}

// ParseJSONL parses trial records from a JSONL file.
func ParseJSONL(filename string) ([]Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return ParseJSONLReader(f)
}

// ParseJSONLReader parses trial records from a JSONL reader. Blank lines
// are skipped.
func ParseJSONLReader(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning: %w", err)
	}

	return records, nil
}
