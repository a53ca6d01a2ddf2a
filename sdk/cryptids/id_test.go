package cryptids_test

import (
	"strings"
	"testing"

	"github.com/jrazmi/taskd/sdk/cryptids"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]struct{})
	for range 200 {
		id, err := cryptids.GenerateID()
		if err != nil {
			t.Fatalf("GenerateID: %v", err)
		}
		if len(id) != cryptids.IDLength {
			t.Fatalf("len(%q) = %d, want %d", id, len(id), cryptids.IDLength)
		}
		for _, r := range id {
			if !strings.ContainsRune(cryptids.IDAlphabet, r) {
				t.Fatalf("id %q contains %q outside the alphabet", id, r)
			}
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}
