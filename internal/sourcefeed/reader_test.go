package sourcefeed

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad_HeaderBindsRows(t *testing.T) {
	path := writeFeed(t, "first_name,last_name,email\nAda,Lovelace,a@x.io\nAlan,Turing,b@y.org\n")

	feed, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if feed.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", feed.Len())
	}

	records, err := feed.Slice(1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records[0].Get("first_name") != "Ada" || records[1].Get("email") != "b@y.org" {
		t.Fatal("header binding incorrect")
	}
}

func TestSlice_StartAndCount(t *testing.T) {
	path := writeFeed(t, "name\na\nb\nc\nd\n")

	feed, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := feed.Slice(2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 || records[0].Get("name") != "b" || records[1].Get("name") != "c" {
		t.Fatalf("unexpected slice: %d records", len(records))
	}

	records, err = feed.Slice(3, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 || records[0].Get("name") != "c" {
		t.Fatalf("unexpected open-ended slice: %d records", len(records))
	}
}

func TestSlice_InvalidSelections(t *testing.T) {
	path := writeFeed(t, "name\na\n")

	feed, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := feed.Slice(0, 1); err == nil {
		t.Fatal("expected error for start below 1")
	}
	if _, err := feed.Slice(2, 0); err == nil {
		t.Fatal("expected error for start past the last record")
	}
	if _, err := feed.Slice(1, -1); err == nil {
		t.Fatal("expected error for negative count")
	}
}

func TestLoad_EmptyFileFails(t *testing.T) {
	path := writeFeed(t, "")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty feed")
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
