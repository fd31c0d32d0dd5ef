// Package service implements the contact reconciliation core: candidate
// resolution, merge consolidation, field reconciliation, and secondary email
// assignment, orchestrated per source record.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"contact_sync_backend/internal/contacts/domain"
	"contact_sync_backend/internal/contacts/ports"
	"contact_sync_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

const (
	fieldExternalID = "id"
	fieldHashID     = "hash_id"
	fieldPublicID   = "public_id_2"

	maxIndexedOrganizations = 10
	corroborationFanOut     = 4
)

// Resolver maps one source record to the set of directory entries that
// plausibly represent the same person. Identity strategies (email, external
// ID) always run and accumulate; the name strategy only runs when they both
// come up empty.
type Resolver struct {
	dir ports.Directory
	log *logger.Logger
}

// NewResolver creates a resolver against the given directory.
func NewResolver(dir ports.Directory, log *logger.Logger) *Resolver {
	return &Resolver{dir: dir, log: log}
}

// Resolve runs all match strategies for the record. The emails argument is
// the pre-extracted address list, shared with the later email-merge pass so
// extraction happens once per record. Transient lookup failures degrade to an
// empty result for that lookup; the remaining strategies still run.
func (r *Resolver) Resolve(ctx context.Context, record domain.SourceRecord, emails []string) *domain.CandidateSet {
	candidates := domain.NewCandidateSet()

	r.resolveByEmail(ctx, emails, candidates)
	r.resolveByExternalIDs(ctx, record, candidates)

	if candidates.Len() == 0 {
		r.resolveByName(ctx, record, candidates)
	}

	return candidates
}

func (r *Resolver) resolveByEmail(ctx context.Context, emails []string, candidates *domain.CandidateSet) {
	seen := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		normalized := domain.NormalizeEmail(email)
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}

		ids, err := r.dir.SearchByEmail(ctx, normalized)
		if err != nil {
			r.log.DirectoryError("search_by_email", err)
			continue
		}
		if len(ids) > 0 {
			r.log.MatchEvent("email", normalized, ids)
			candidates.AddAll(ids)
		}
	}
}

func (r *Resolver) resolveByExternalIDs(ctx context.Context, record domain.SourceRecord, candidates *domain.CandidateSet) {
	// Each identifier field is queried unconditionally when present; a hit on
	// the primary identifier never short-circuits the hash or public lookups.
	for _, field := range []string{fieldExternalID, fieldHashID, fieldPublicID} {
		value := strings.TrimSpace(record.Get(field))
		if value == "" {
			continue
		}
		ids, err := r.dir.SearchByExternalID(ctx, value)
		if err != nil {
			r.log.DirectoryError("search_by_external_id", err)
			continue
		}
		if len(ids) > 1 {
			// Data-quality warning, not an error: the denormalized URL
			// property points at more than one entry. All are kept.
			r.log.Warn("multiple entries for external identifier",
				"field", field, "value", value, "ids", ids)
		}
		if len(ids) > 0 {
			r.log.MatchEvent("external_id", fmt.Sprintf("%s=%s", field, value), ids)
			candidates.AddAll(ids)
		}
	}
}

func (r *Resolver) resolveByName(ctx context.Context, record domain.SourceRecord, candidates *domain.CandidateSet) {
	first := firstNonBlank(record.Get("first_name"), record.Get("firstname"))
	last := firstNonBlank(record.Get("last_name"), record.Get("lastname"))
	if first == "" || last == "" {
		return
	}

	ids, err := r.dir.SearchByName(ctx, first, last)
	if err != nil {
		r.log.DirectoryError("search_by_name", err)
		return
	}
	if len(ids) == 0 {
		return
	}
	if len(ids) == 1 {
		r.log.MatchEvent("name", first+" "+last, ids)
		candidates.AddAll(ids)
		return
	}

	orgNames := recordOrganizations(record)
	if len(orgNames) == 0 {
		r.log.MatchEvent("name", first+" "+last, ids)
		candidates.AddAll(ids)
		return
	}

	corroborated := r.corroborate(ctx, ids, orgNames)
	if len(corroborated) == 0 {
		// Ambiguity is preferred over false negatives: keep every name match
		// when no candidate's companies intersect the record's organizations.
		r.log.Info("no candidates corroborated by organization, keeping all name matches",
			"name", first+" "+last, "candidates", len(ids))
		candidates.AddAll(ids)
		return
	}
	r.log.MatchEvent("name_corroborated", first+" "+last, corroborated)
	candidates.AddAll(corroborated)
}

// corroborate keeps only the candidates whose associated company names
// intersect the record's organization names. Company lookups fan out; a
// failed lookup drops that candidate from corroboration but the all-matches
// fallback above still protects against a wholesale miss.
func (r *Resolver) corroborate(ctx context.Context, ids []string, orgNames map[string]struct{}) []string {
	var mu sync.Mutex
	kept := make([]string, 0, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(corroborationFanOut)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			companies, err := r.dir.GetAssociatedCompanyNames(gctx, id)
			if err != nil {
				r.log.DirectoryError("get_associated_company_names", err)
				return nil
			}
			for name := range companies {
				if _, ok := orgNames[name]; ok {
					mu.Lock()
					kept = append(kept, id)
					mu.Unlock()
					return nil
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	return kept
}

// recordOrganizations collects the record's indexed organization names,
// trimmed and case-folded.
func recordOrganizations(record domain.SourceRecord) map[string]struct{} {
	names := make(map[string]struct{})
	for i := 1; i <= maxIndexedOrganizations; i++ {
		org := strings.ToLower(strings.TrimSpace(record.Get(fmt.Sprintf("organization_%d", i))))
		if org != "" {
			names[org] = struct{}{}
		}
	}
	return names
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
