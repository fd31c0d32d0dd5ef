package service

import (
	"context"
	"errors"
	"strings"

	"contact_sync_backend/internal/contacts/domain"
	"contact_sync_backend/internal/contacts/ports"
	"contact_sync_backend/platform/apperr"
	"contact_sync_backend/platform/logger"
)

// EmailAssigner splits a multi-address email plan into one primary plus N
// secondary registrations. Secondary registration has a documented fallback:
// when the directory refuses an address as secondary it is retried as the
// entry's primary via a separate endpoint.
type EmailAssigner struct {
	dir ports.Directory
	log *logger.Logger
}

// NewEmailAssigner creates an assigner against the given directory.
func NewEmailAssigner(dir ports.Directory, log *logger.Logger) *EmailAssigner {
	return &EmailAssigner{dir: dir, log: log}
}

// Prepare rewrites a comma-separated email plan value to its first address
// (the primary, applied in the same update call) and returns the remaining
// candidates not already registered on the entry. The existing-email check is
// case-insensitive; when it cannot be fetched every candidate stays pending
// rather than being dropped.
func (a *EmailAssigner) Prepare(ctx context.Context, id string, plan domain.UpdatePlan) []string {
	value, ok := plan["email"]
	if !ok || !strings.Contains(value, ",") {
		return nil
	}

	tokens := make([]string, 0, 4)
	for _, token := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	plan["email"] = tokens[0]

	existing, err := a.dir.ListEmails(ctx, id)
	if err != nil {
		a.log.Warn("could not fetch existing emails, attempting all candidates",
			"directory_id", id, "error", err)
		existing = nil
	}

	pending := make([]string, 0, len(tokens)-1)
	for _, token := range tokens[1:] {
		if _, registered := existing[strings.ToLower(token)]; registered {
			continue
		}
		pending = append(pending, token)
	}
	return pending
}

// Assign registers each pending address as a secondary email, falling back to
// the primary-email endpoint when the directory reports the address cannot be
// a secondary. An address that fails both ways fails the record; it is never
// silently dropped.
func (a *EmailAssigner) Assign(ctx context.Context, id string, pending []string) error {
	for _, email := range pending {
		err := a.dir.AddSecondaryEmail(ctx, id, email)
		if err == nil {
			a.log.Info("secondary email registered", "directory_id", id, "email", email)
			continue
		}
		if !errors.Is(err, ports.ErrSecondaryRejected) {
			return apperr.Rejected("secondary email registration failed", err).WithOp("assign_email")
		}

		a.log.Info("secondary rejected, retrying as primary", "directory_id", id, "email", email)
		if err := a.dir.SetPrimaryEmail(ctx, id, email); err != nil {
			return apperr.EmailConflict(
				"email could be set neither as secondary nor as primary: " + email,
			).WithOp("assign_email")
		}
		a.log.Info("email promoted to primary", "directory_id", id, "email", email)
	}
	return nil
}
