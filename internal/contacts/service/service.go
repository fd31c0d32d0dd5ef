package service

import (
	"context"
	"errors"
	"fmt"

	"contact_sync_backend/internal/contacts/domain"
	"contact_sync_backend/internal/contacts/faillog"
	"contact_sync_backend/internal/contacts/ports"
	"contact_sync_backend/platform/apperr"
	"contact_sync_backend/platform/logger"
)

// Service orchestrates the per-record pipeline: resolve candidates,
// consolidate duplicates, reconcile fields, apply the update, and register
// secondary emails. One record is fully processed before the next begins; a
// record's failure is logged to the failure artifact and never aborts the run.
type Service struct {
	dir          ports.Directory
	resolver     *Resolver
	consolidator *Consolidator
	emails       *EmailAssigner
	failures     *faillog.Log
	log          *logger.Logger
}

// New wires the pipeline service. mergePolicy selects which merge argument
// survives a consolidation cascade.
func New(dir ports.Directory, mergePolicy string, failures *faillog.Log, log *logger.Logger) *Service {
	return &Service{
		dir:          dir,
		resolver:     NewResolver(dir, log),
		consolidator: NewConsolidator(dir, mergePolicy, log),
		emails:       NewEmailAssigner(dir, log),
		failures:     failures,
		log:          log,
	}
}

// ProcessRecord runs the full pipeline for one source record. The returned
// error means the record was abandoned; the caller proceeds to the next one.
func (s *Service) ProcessRecord(ctx context.Context, record domain.SourceRecord) error {
	emails := domain.ExtractEmails(record)

	candidates := s.resolver.Resolve(ctx, record, emails)

	canonicalID, err := s.consolidator.Consolidate(ctx, candidates)
	if err != nil {
		if !apperr.IsNotFound(err) {
			return err
		}
		canonicalID, err = s.createEntry(ctx, record)
		if err != nil {
			s.recordFailure("", "create failed", err)
			return err
		}
		if canonicalID == "" {
			// Nothing to create from this record either; not a failure.
			return nil
		}
	}

	current, err := s.dir.Fetch(ctx, canonicalID)
	if err != nil {
		s.recordFailure(canonicalID, "fetch failed", err)
		return err
	}

	plan := Reconcile(current, record)
	s.mergeDiscoveredEmails(plan, current, emails)

	if plan.IsEmpty() {
		s.log.Info("no properties to update", "directory_id", canonicalID)
		return nil
	}

	pending := s.emails.Prepare(ctx, canonicalID, plan)

	if _, err := s.dir.Update(ctx, canonicalID, plan.Properties()); err != nil {
		s.recordFailure(canonicalID, "update rejected", err)
		return err
	}

	if err := s.emails.Assign(ctx, canonicalID, pending); err != nil {
		s.recordFailure(canonicalID, "email assignment failed", err)
		return err
	}

	s.log.Info("entry updated", "directory_id", canonicalID, "properties", len(plan))
	return nil
}

// createEntry registers a new directory entry from the record. Returns a
// blank ID without error when the record yields no properties at all.
func (s *Service) createEntry(ctx context.Context, record domain.SourceRecord) (string, error) {
	plan := Reconcile(map[string]string{}, record)
	if plan.IsEmpty() {
		s.log.Info("no properties to set for new entry, skipping record")
		return "", nil
	}

	id, err := s.dir.Create(ctx, plan.Properties())
	if err != nil {
		return "", err
	}
	s.log.Info("created new directory entry", "directory_id", id)
	return id, nil
}

// mergeDiscoveredEmails folds resolver-discovered addresses into the plan's
// email value, re-validating, de-duplicating, and re-sorting the final set.
// The merged value is suppressed when it matches the entry's current email.
func (s *Service) mergeDiscoveredEmails(plan domain.UpdatePlan, current map[string]string, emails []string) {
	planValue, hasPlanValue := plan["email"]
	if !hasPlanValue && len(emails) == 0 {
		return
	}

	merged := domain.MergeEmailValue(planValue, emails)
	if merged == "" || merged == current["email"] {
		delete(plan, "email")
		return
	}
	plan["email"] = merged
}

func (s *Service) recordFailure(directoryID, reason string, err error) {
	s.log.RecordFailure(directoryID, reason, err)

	response := ""
	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Details != nil {
		response = fmt.Sprintf("%v", appErr.Details)
	}
	if logErr := s.failures.Append(directoryID, reason+": "+errString(err), response); logErr != nil {
		s.log.Error("failed to write failure artifact", "error", logErr)
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
