package service

import (
	"context"
	"sync"

	"contact_sync_backend/internal/contacts/ports"
)

// fakeDirectory is an in-memory ports.Directory for service tests. Behaviors
// are overridable per test through the function fields; unset fields use a
// benign default.
type fakeDirectory struct {
	mu sync.Mutex

	emailResults map[string][]string
	externalIDs  map[string][]string
	nameResults  []string
	companies    map[string]map[string]struct{}
	entries      map[string]map[string]string
	emails       map[string]map[string]struct{}

	mergeFn          func(toMergeID, primaryID string) (string, error)
	createFn         func(properties map[string]string) (string, error)
	updateFn         func(id string, properties map[string]string) (map[string]string, error)
	addSecondaryFn   func(id, email string) error
	setPrimaryFn     func(id, email string) error
	listEmailsErr    error
	searchByEmailErr error

	merges         [][2]string
	updates        []map[string]string
	secondaryCalls []string
	primaryCalls   []string
}

var _ ports.Directory = (*fakeDirectory)(nil)

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		emailResults: map[string][]string{},
		externalIDs:  map[string][]string{},
		companies:    map[string]map[string]struct{}{},
		entries:      map[string]map[string]string{},
		emails:       map[string]map[string]struct{}{},
	}
}

func (f *fakeDirectory) SearchByEmail(_ context.Context, email string) ([]string, error) {
	if f.searchByEmailErr != nil {
		return nil, f.searchByEmailErr
	}
	return f.emailResults[email], nil
}

func (f *fakeDirectory) SearchByExternalID(_ context.Context, idValue string) ([]string, error) {
	return f.externalIDs[idValue], nil
}

func (f *fakeDirectory) SearchByName(_ context.Context, _, _ string) ([]string, error) {
	return f.nameResults, nil
}

func (f *fakeDirectory) GetAssociatedCompanyNames(_ context.Context, id string) (map[string]struct{}, error) {
	return f.companies[id], nil
}

func (f *fakeDirectory) Fetch(_ context.Context, id string) (map[string]string, error) {
	if props, ok := f.entries[id]; ok {
		return props, nil
	}
	return map[string]string{}, nil
}

func (f *fakeDirectory) Create(_ context.Context, properties map[string]string) (string, error) {
	if f.createFn != nil {
		return f.createFn(properties)
	}
	return "1", nil
}

func (f *fakeDirectory) Update(_ context.Context, id string, properties map[string]string) (map[string]string, error) {
	f.mu.Lock()
	f.updates = append(f.updates, properties)
	f.mu.Unlock()
	if f.updateFn != nil {
		return f.updateFn(id, properties)
	}
	return properties, nil
}

func (f *fakeDirectory) Merge(_ context.Context, toMergeID, primaryID string) (string, error) {
	f.mu.Lock()
	f.merges = append(f.merges, [2]string{toMergeID, primaryID})
	f.mu.Unlock()
	if f.mergeFn != nil {
		return f.mergeFn(toMergeID, primaryID)
	}
	return primaryID, nil
}

func (f *fakeDirectory) ListEmails(_ context.Context, id string) (map[string]struct{}, error) {
	if f.listEmailsErr != nil {
		return nil, f.listEmailsErr
	}
	return f.emails[id], nil
}

func (f *fakeDirectory) AddSecondaryEmail(_ context.Context, id, email string) error {
	f.mu.Lock()
	f.secondaryCalls = append(f.secondaryCalls, email)
	f.mu.Unlock()
	if f.addSecondaryFn != nil {
		return f.addSecondaryFn(id, email)
	}
	return nil
}

func (f *fakeDirectory) SetPrimaryEmail(_ context.Context, id, email string) error {
	f.mu.Lock()
	f.primaryCalls = append(f.primaryCalls, email)
	f.mu.Unlock()
	if f.setPrimaryFn != nil {
		return f.setPrimaryFn(id, email)
	}
	return nil
}
