package service

import (
	"context"

	"contact_sync_backend/internal/contacts/domain"
	"contact_sync_backend/internal/contacts/ports"
	"contact_sync_backend/platform/apperr"
	"contact_sync_backend/platform/config"
	"contact_sync_backend/platform/logger"
)

// ErrNoCandidates signals an empty candidate set; the caller creates a new
// directory entry instead of consolidating.
var ErrNoCandidates = apperr.NotFound("no candidate directory entries")

// Consolidator collapses a candidate set into one canonical directory entry
// through a cascade of pairwise merges. Which side of a merge survives is a
// policy choice: by default the numerically highest ID is kept as primary, on
// the assumption that higher-numbered entries are more recently touched.
type Consolidator struct {
	dir    ports.Directory
	log    *logger.Logger
	policy string
}

// NewConsolidator creates a consolidator with the given primary-selection
// policy (config.MergePreferHighestID or config.MergePreferLowestID).
func NewConsolidator(dir ports.Directory, policy string, log *logger.Logger) *Consolidator {
	if policy == "" {
		policy = config.MergePreferHighestID
	}
	return &Consolidator{dir: dir, log: log, policy: policy}
}

// Consolidate returns the canonical ID for the candidate set. With zero
// candidates it returns ErrNoCandidates; with one it returns that member
// without any directory calls. With more, candidates merge pairwise into a
// running canonical ID, closest-to-canonical first. Every merge may report a
// fresh ID, which becomes the canonical for the rest of the cascade. A failed
// merge stops the cascade and the last known canonical ID is surfaced as
// best-effort; the record is not failed.
func (c *Consolidator) Consolidate(ctx context.Context, candidates *domain.CandidateSet) (string, error) {
	switch candidates.Len() {
	case 0:
		return "", ErrNoCandidates
	case 1:
		return candidates.IDs()[0], nil
	}

	sorted := candidates.SortedNumeric()
	canonical, remaining := c.splitByPolicy(sorted)

	c.log.Info("consolidating duplicate entries",
		"count", len(sorted), "canonical", canonical, "policy", c.policy)

	for _, id := range remaining {
		resultID, err := c.dir.Merge(ctx, id, canonical)
		if err != nil {
			c.log.Error("merge failed, stopping cascade",
				"toMerge", id, "primary", canonical, "error", err)
			return canonical, nil
		}
		if resultID != "" && resultID != canonical {
			c.log.Info("merge assigned new canonical entry",
				"previous", canonical, "canonical", resultID)
			canonical = resultID
		}
	}

	return canonical, nil
}

// splitByPolicy picks the starting canonical ID and orders the remaining
// candidates so the one closest in value to the canonical merges first.
func (c *Consolidator) splitByPolicy(sorted []string) (string, []string) {
	if c.policy == config.MergePreferLowestID {
		return sorted[0], sorted[1:]
	}
	canonical := sorted[len(sorted)-1]
	remaining := make([]string, 0, len(sorted)-1)
	for i := len(sorted) - 2; i >= 0; i-- {
		remaining = append(remaining, sorted[i])
	}
	return canonical, remaining
}
