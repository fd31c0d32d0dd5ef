package service

import (
	"context"
	"testing"

	"contact_sync_backend/internal/contacts/domain"
)

func TestResolve_EmailStrategyNormalizesAndDedupes(t *testing.T) {
	dir := newFakeDirectory()
	dir.emailResults["a@x.io"] = []string{"7"}
	r := NewResolver(dir, testLogger())

	record := domain.RecordFromMap(map[string]string{})
	got := r.Resolve(context.Background(), record, []string{"A@X.IO.", "a@x.io"})

	if got.Len() != 1 || !got.Contains("7") {
		t.Fatalf("expected single candidate 7, got %v", got.IDs())
	}
}

func TestResolve_ExternalIDStrategiesAllRun(t *testing.T) {
	dir := newFakeDirectory()
	dir.externalIDs["primary-id"] = []string{"3"}
	dir.externalIDs["hash-id"] = []string{"4"}
	dir.externalIDs["public-id-2"] = []string{"5"}
	r := NewResolver(dir, testLogger())

	record := domain.RecordFromMap(map[string]string{
		"id":          "primary-id",
		"hash_id":     "hash-id",
		"public_id_2": "public-id-2",
	})
	got := r.Resolve(context.Background(), record, nil)

	if got.Len() != 3 {
		t.Fatalf("expected candidates from all three identifier fields, got %v", got.IDs())
	}
}

func TestResolve_NameStrategySkippedWhenIdentityMatched(t *testing.T) {
	dir := newFakeDirectory()
	dir.emailResults["a@x.io"] = []string{"7"}
	dir.nameResults = []string{"99"}
	r := NewResolver(dir, testLogger())

	record := domain.RecordFromMap(map[string]string{
		"first_name": "Ada",
		"last_name":  "Lovelace",
	})
	got := r.Resolve(context.Background(), record, []string{"a@x.io"})

	if got.Contains("99") {
		t.Fatalf("name strategy must not run when identity strategies matched: %v", got.IDs())
	}
}

func TestResolve_NameStrategySingleMatchAccepted(t *testing.T) {
	dir := newFakeDirectory()
	dir.nameResults = []string{"42"}
	r := NewResolver(dir, testLogger())

	record := domain.RecordFromMap(map[string]string{
		"first_name": "Ada",
		"last_name":  "Lovelace",
	})
	got := r.Resolve(context.Background(), record, nil)

	if got.Len() != 1 || !got.Contains("42") {
		t.Fatalf("expected single name match accepted, got %v", got.IDs())
	}
}

func TestResolve_NameStrategyCorroboratesByOrganization(t *testing.T) {
	dir := newFakeDirectory()
	dir.nameResults = []string{"1", "2", "3"}
	dir.companies["1"] = map[string]struct{}{"acme corp": {}}
	dir.companies["2"] = map[string]struct{}{"other inc": {}}
	dir.companies["3"] = map[string]struct{}{"acme corp": {}, "side llc": {}}
	r := NewResolver(dir, testLogger())

	record := domain.RecordFromMap(map[string]string{
		"first_name":     "Ada",
		"last_name":      "Lovelace",
		"organization_1": " Acme Corp ",
	})
	got := r.Resolve(context.Background(), record, nil)

	if got.Len() != 2 || !got.Contains("1") || !got.Contains("3") {
		t.Fatalf("expected corroborated candidates 1 and 3, got %v", got.IDs())
	}
}

func TestResolve_NameStrategyKeepsAllWhenNothingCorroborates(t *testing.T) {
	dir := newFakeDirectory()
	dir.nameResults = []string{"1", "2"}
	dir.companies["1"] = map[string]struct{}{"other inc": {}}
	dir.companies["2"] = map[string]struct{}{"another gmbh": {}}
	r := NewResolver(dir, testLogger())

	record := domain.RecordFromMap(map[string]string{
		"first_name":     "Ada",
		"last_name":      "Lovelace",
		"organization_1": "acme corp",
	})
	got := r.Resolve(context.Background(), record, nil)

	if got.Len() != 2 {
		t.Fatalf("expected all name matches kept on zero corroboration, got %v", got.IDs())
	}
}

func TestResolve_TransientEmailFailureDegradesToEmpty(t *testing.T) {
	dir := newFakeDirectory()
	dir.searchByEmailErr = context.DeadlineExceeded
	dir.externalIDs["ext"] = []string{"8"}
	r := NewResolver(dir, testLogger())

	record := domain.RecordFromMap(map[string]string{"id": "ext"})
	got := r.Resolve(context.Background(), record, []string{"a@x.io"})

	if got.Len() != 1 || !got.Contains("8") {
		t.Fatalf("expected remaining strategies to still run, got %v", got.IDs())
	}
}

func TestResolve_NameStrategyNeedsBothNames(t *testing.T) {
	dir := newFakeDirectory()
	dir.nameResults = []string{"42"}
	r := NewResolver(dir, testLogger())

	record := domain.RecordFromMap(map[string]string{"first_name": "Ada"})
	got := r.Resolve(context.Background(), record, nil)

	if got.Len() != 0 {
		t.Fatalf("expected no candidates without a last name, got %v", got.IDs())
	}
}
