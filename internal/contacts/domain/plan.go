package domain

// UpdatePlan is the property-level delta to apply to a directory entry.
// The reconciliation engine guarantees a key is only present when the new
// value differs from the entry's current value.
type UpdatePlan map[string]string

// IsEmpty reports whether there is nothing to apply.
func (p UpdatePlan) IsEmpty() bool {
	return len(p) == 0
}

// Properties returns the plan as a plain map for the directory client.
func (p UpdatePlan) Properties() map[string]string {
	return map[string]string(p)
}
