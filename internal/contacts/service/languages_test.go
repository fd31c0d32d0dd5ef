package service

import "testing"

func TestLanguageCode_LookupByLabel(t *testing.T) {
	code, ok := languageCode("German - Germany")
	if !ok || code != "de-de" {
		t.Fatalf("expected de-de, got %q (%v)", code, ok)
	}
}

func TestLanguageCode_LookupIsCaseInsensitive(t *testing.T) {
	code, ok := languageCode("  dutch ")
	if !ok || code != "nl" {
		t.Fatalf("expected nl, got %q (%v)", code, ok)
	}
}

func TestLanguageCode_LookupByCode(t *testing.T) {
	code, ok := languageCode("EN-US")
	if !ok || code != "en-us" {
		t.Fatalf("expected en-us, got %q (%v)", code, ok)
	}
}

func TestLanguageCode_UnknownLabel(t *testing.T) {
	if _, ok := languageCode("Klingon"); ok {
		t.Fatal("expected unknown label to miss")
	}
}
