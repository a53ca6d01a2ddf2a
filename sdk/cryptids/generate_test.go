package cryptids

import (
	"strings"
	"testing"
)

func TestGenerateID_InvalidInput(t *testing.T) {
	if _, err := generateID("a", 4); err == nil {
		t.Error("expected error for single character alphabet")
	}
	if _, err := generateID("ab", 0); err == nil {
		t.Error("expected error for zero size")
	}
}

func TestGenerateID_Binary(t *testing.T) {
	id, err := generateID("01", 64)
	if err != nil {
		t.Fatalf("generateID: %v", err)
	}
	if strings.Trim(id, "01") != "" || len(id) != 64 {
		t.Fatalf("unexpected id %q", id)
	}
}
