package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"contact_sync_backend/internal/contacts/domain"
	"contact_sync_backend/internal/contacts/faillog"
	"contact_sync_backend/platform/apperr"
	"contact_sync_backend/platform/config"
)

func newTestService(t *testing.T, dir *fakeDirectory) (*Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "failed_records.log")
	failures := faillog.New(path, "test-run")
	return New(dir, config.MergePreferHighestID, failures, testLogger()), path
}

func TestProcessRecord_NoCandidatesCreatesEntry(t *testing.T) {
	dir := newFakeDirectory()
	created := map[string]string{}
	dir.createFn = func(properties map[string]string) (string, error) {
		for k, v := range properties {
			created[k] = v
		}
		return "77", nil
	}
	svc, _ := newTestService(t, dir)

	record := domain.RecordFromMap(map[string]string{
		"first_name": "Ada",
		"last_name":  "Lovelace",
	})

	if err := svc.ProcessRecord(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created["firstname"] != "Ada" || created["lastname"] != "Lovelace" {
		t.Fatalf("unexpected created properties: %v", created)
	}
}

func TestProcessRecord_EmptyRecordSkippedWithoutCreate(t *testing.T) {
	dir := newFakeDirectory()
	var createCalled bool
	dir.createFn = func(map[string]string) (string, error) {
		createCalled = true
		return "1", nil
	}
	svc, _ := newTestService(t, dir)

	record := domain.RecordFromMap(map[string]string{"notes": "   "})

	if err := svc.ProcessRecord(context.Background(), record); err != nil {
		t.Fatalf("expected skip without error, got %v", err)
	}
	if createCalled {
		t.Fatal("empty record must not create an entry")
	}
}

func TestProcessRecord_ExistingEntryUpdated(t *testing.T) {
	dir := newFakeDirectory()
	dir.emailResults["a@x.io"] = []string{"5"}
	dir.entries["5"] = map[string]string{"firstname": "Ada"}
	svc, _ := newTestService(t, dir)

	record := domain.RecordFromMap(map[string]string{
		"email":     "a@x.io",
		"last_name": "Lovelace",
	})

	if err := svc.ProcessRecord(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dir.updates) != 1 {
		t.Fatalf("expected one update, got %d", len(dir.updates))
	}
	if dir.updates[0]["lastname"] != "Lovelace" {
		t.Fatalf("unexpected update delta: %v", dir.updates[0])
	}
	if _, ok := dir.updates[0]["firstname"]; ok {
		t.Fatalf("unchanged property must not be in the delta: %v", dir.updates[0])
	}
}

func TestProcessRecord_DuplicatesConsolidatedBeforeUpdate(t *testing.T) {
	dir := newFakeDirectory()
	dir.emailResults["a@x.io"] = []string{"5"}
	dir.emailResults["b@y.org"] = []string{"12"}
	dir.entries["12"] = map[string]string{}
	svc, _ := newTestService(t, dir)

	record := domain.RecordFromMap(map[string]string{
		"email":               "a@x.io",
		"third_party_email_1": "b@y.org",
		"last_name":           "Lovelace",
	})

	if err := svc.ProcessRecord(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dir.merges) != 1 || dir.merges[0] != [2]string{"5", "12"} {
		t.Fatalf("expected 5 merged into 12, got %v", dir.merges)
	}
}

func TestProcessRecord_DiscoveredEmailsMergedIntoPlan(t *testing.T) {
	dir := newFakeDirectory()
	dir.emailResults["a@x.io"] = []string{"5"}
	dir.entries["5"] = map[string]string{}
	svc, _ := newTestService(t, dir)

	record := domain.RecordFromMap(map[string]string{
		"email": "a@x.io",
		"notes": "also b@y.org",
	})

	if err := svc.ProcessRecord(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dir.updates) != 1 {
		t.Fatalf("expected one update, got %d", len(dir.updates))
	}
	if dir.updates[0]["email"] != "a@x.io" {
		t.Fatalf("expected first address as primary in delta, got %q", dir.updates[0]["email"])
	}
	if len(dir.secondaryCalls) != 1 || dir.secondaryCalls[0] != "b@y.org" {
		t.Fatalf("expected discovered address registered as secondary, got %v", dir.secondaryCalls)
	}
}

func TestProcessRecord_NoChangesSkipsUpdate(t *testing.T) {
	dir := newFakeDirectory()
	dir.emailResults["a@x.io"] = []string{"5"}
	dir.entries["5"] = map[string]string{
		"firstname": "Ada",
		"email":     "a@x.io",
	}
	svc, _ := newTestService(t, dir)

	record := domain.RecordFromMap(map[string]string{
		"first_name": "Ada",
		"email":      "a@x.io",
	})

	if err := svc.ProcessRecord(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dir.updates) != 0 {
		t.Fatalf("expected no update call, got %v", dir.updates)
	}
}

func TestProcessRecord_RejectedUpdateWritesFailureArtifact(t *testing.T) {
	dir := newFakeDirectory()
	dir.emailResults["a@x.io"] = []string{"5"}
	dir.entries["5"] = map[string]string{}
	dir.updateFn = func(string, map[string]string) (map[string]string, error) {
		return nil, apperr.Rejected("update rejected", nil).WithDetails(`{"status":"error"}`)
	}
	svc, path := newTestService(t, dir)

	record := domain.RecordFromMap(map[string]string{
		"email":     "a@x.io",
		"last_name": "Lovelace",
	})

	err := svc.ProcessRecord(context.Background(), record)
	if err == nil {
		t.Fatal("expected record failure")
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("failure artifact missing: %v", readErr)
	}
	content := string(data)
	if !strings.Contains(content, "test-run") || !strings.Contains(content, "update rejected") {
		t.Fatalf("unexpected artifact content: %q", content)
	}
	if !strings.Contains(content, `Response: {"status":"error"}`) {
		t.Fatalf("raw response missing from artifact: %q", content)
	}
}

func TestProcessRecord_CreateFailureAbandonsRecord(t *testing.T) {
	dir := newFakeDirectory()
	dir.createFn = func(map[string]string) (string, error) {
		return "", errors.New("service down")
	}
	svc, _ := newTestService(t, dir)

	record := domain.RecordFromMap(map[string]string{"last_name": "Lovelace"})

	if err := svc.ProcessRecord(context.Background(), record); err == nil {
		t.Fatal("expected error when create fails")
	}
}
