// Package sourcefeed reads tabular source exports into domain records.
package sourcefeed

import (
	"encoding/csv"
	"fmt"
	"os"

	"contact_sync_backend/internal/contacts/domain"
	"contact_sync_backend/platform/apperr"
)

// Feed holds a fully loaded source export: one header row plus data rows,
// already bound into ordered records.
type Feed struct {
	records []domain.SourceRecord
}

// Load reads the file at path as comma-separated values. The first row is
// the header; every following row becomes one record. Rows with a field
// count different from the header are rejected by the reader.
func Load(path string) (*Feed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Config(fmt.Sprintf("cannot open source file %s", path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperr.Config(fmt.Sprintf("cannot parse source file %s", path), err)
	}
	if len(rows) == 0 {
		return nil, apperr.Config(fmt.Sprintf("source file %s is empty", path), nil)
	}

	header := rows[0]
	records := make([]domain.SourceRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, domain.NewSourceRecord(header, row))
	}
	return &Feed{records: records}, nil
}

// Len returns the number of data records in the feed.
func (f *Feed) Len() int {
	return len(f.records)
}

// Slice selects count records starting at the 1-based record number start.
// A count of zero means everything from start to the end of the feed.
func (f *Feed) Slice(start, count int) ([]domain.SourceRecord, error) {
	if start < 1 {
		return nil, apperr.Config("start record must be at least 1", nil)
	}
	if count < 0 {
		return nil, apperr.Config("record count cannot be negative", nil)
	}
	if start > len(f.records) {
		return nil, apperr.Config(fmt.Sprintf("start record %d is past the last record %d", start, len(f.records)), nil)
	}

	end := len(f.records)
	if count > 0 && start-1+count < end {
		end = start - 1 + count
	}
	return f.records[start-1 : end], nil
}
