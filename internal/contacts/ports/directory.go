// Package ports defines the interfaces that the contacts domain requires from
// external systems. The directory service implementation is provided by the
// composition root; the contacts domain never imports the client directly.
package ports

import (
	"context"
	"errors"
)

// ErrSecondaryRejected is returned by AddSecondaryEmail when the directory
// refuses the address as a secondary identity (typically because it is
// already a primary email elsewhere). Callers retry via SetPrimaryEmail.
var ErrSecondaryRejected = errors.New("secondary email rejected by directory")

// Directory is the remote contact directory the reconciliation core runs
// against. All searches return directory entry IDs. Read operations that fail
// transiently should surface a typed error so the caller can degrade the
// lookup to "no result" and continue with remaining strategies.
type Directory interface {
	// SearchByEmail finds at most one entry indexed by this address, primary
	// or secondary. The address is normalized before the lookup.
	SearchByEmail(ctx context.Context, email string) ([]string, error)

	// SearchByExternalID finds entries whose denormalized profile-URL
	// property matches the identifier. The implementation queries every
	// canonical URL form and unions the results.
	SearchByExternalID(ctx context.Context, idValue string) ([]string, error)

	// SearchByName finds entries with an exact first/last name match.
	SearchByName(ctx context.Context, firstName, lastName string) ([]string, error)

	// GetAssociatedCompanyNames returns the trimmed, lower-cased names of
	// companies associated with the entry.
	GetAssociatedCompanyNames(ctx context.Context, id string) (map[string]struct{}, error)

	// Fetch returns the entry's current property values.
	Fetch(ctx context.Context, id string) (map[string]string, error)

	// Create registers a new entry and returns its assigned ID.
	Create(ctx context.Context, properties map[string]string) (string, error)

	// Update applies a property delta and returns the applied properties.
	Update(ctx context.Context, id string, properties map[string]string) (map[string]string, error)

	// Merge collapses toMergeID into primaryID and returns the resulting
	// canonical ID, which the service may assign fresh.
	Merge(ctx context.Context, toMergeID, primaryID string) (string, error)

	// ListEmails returns every address registered on the entry (primary and
	// all secondary identities), lower-cased.
	ListEmails(ctx context.Context, id string) (map[string]struct{}, error)

	// AddSecondaryEmail registers an alternate address on the entry.
	// Returns ErrSecondaryRejected when the address cannot be a secondary.
	AddSecondaryEmail(ctx context.Context, id, email string) error

	// SetPrimaryEmail replaces the entry's primary address.
	SetPrimaryEmail(ctx context.Context, id, email string) error
}
