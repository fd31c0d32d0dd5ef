// Package domain contains the core reconciliation types shared by the
// contacts services: source records, candidate sets, and update plans.
package domain

// SourceRecord is one row of the source feed: an ordered, immutable mapping
// from field name to string value.
type SourceRecord struct {
	fields []string
	values map[string]string
}

// NewSourceRecord builds a record from parallel header and value slices.
// Extra values without a header column are dropped; missing values are blank.
func NewSourceRecord(header, row []string) SourceRecord {
	values := make(map[string]string, len(header))
	fields := make([]string, 0, len(header))
	for i, name := range header {
		if name == "" {
			continue
		}
		fields = append(fields, name)
		if i < len(row) {
			values[name] = row[i]
		} else {
			values[name] = ""
		}
	}
	return SourceRecord{fields: fields, values: values}
}

// RecordFromMap builds a record from a plain map. Field order follows no
// particular sequence; intended for tests and ad-hoc construction.
func RecordFromMap(values map[string]string) SourceRecord {
	fields := make([]string, 0, len(values))
	copied := make(map[string]string, len(values))
	for k, v := range values {
		fields = append(fields, k)
		copied[k] = v
	}
	return SourceRecord{fields: fields, values: copied}
}

// Get returns the value for a field, blank when absent.
func (r SourceRecord) Get(field string) string {
	return r.values[field]
}

// Has reports whether the field exists in the record, even if blank.
func (r SourceRecord) Has(field string) bool {
	_, ok := r.values[field]
	return ok
}

// Fields returns the field names in source column order.
func (r SourceRecord) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Len returns the number of fields.
func (r SourceRecord) Len() int {
	return len(r.fields)
}
