// Package auditlog keeps an append-only CSV trail of every processed
// transaction: what was inferred, with what confidence, and which
// judgment calls were made along the way.
package auditlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one row in the audit log.
type Entry struct {
	Timestamp   time.Time
	EntryID     string
	Description string
	Type        string
	Amount      string
	Confidence  string
	Assumptions string // semicolon-separated
	Questions   string // semicolon-separated
}

// Header is the CSV header for audit.csv.
const Header = "timestamp,entry_id,description,type,amount,confidence,assumptions,questions"

const (
	numFields      = 8
	colTimestamp   = 0
	colEntryID     = 1
	colDescription = 2
	colType        = 3
	colAmount      = 4
	colConfidence  = 5
	colAssumptions = 6
	colQuestions   = 7
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colEntryID] = e.EntryID
	row[colDescription] = e.Description
	row[colType] = e.Type
	row[colAmount] = e.Amount
	row[colConfidence] = e.Confidence
	row[colAssumptions] = e.Assumptions
	row[colQuestions] = e.Questions
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp:   ts,
		EntryID:     record[colEntryID],
		Description: record[colDescription],
		Type:        record[colType],
		Amount:      record[colAmount],
		Confidence:  record[colConfidence],
		Assumptions: record[colAssumptions],
		Questions:   record[colQuestions],
	}, nil
}

// Append writes entries to the audit log file, creating the directory,
// file, and header if needed.
func Append(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating audit log dir: %w", err)
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from the audit log file. Returns an empty
// slice if the file does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading audit log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
