package rediscache

import (
	"strings"
	"testing"

	"github.com/lifeboard/backend/repository"
)

func TestKeyDistinguishesPagination(t *testing.T) {
	c := &NoteCache{}

	base := repository.NoteFilter{Category: "home", Search: "crib", Limit: 10, Offset: 0}
	other := repository.NoteFilter{Category: "home", Search: "crib", Limit: 100, Offset: 50}

	if c.key(base) == c.key(other) {
		t.Fatalf("filters differing only in pagination share key %q", c.key(base))
	}
	if c.key(base) != c.key(base) {
		t.Fatal("identical filters must map to the same key")
	}
}

func TestKeyNormalizesText(t *testing.T) {
	c := &NoteCache{}

	a := repository.NoteFilter{Category: " Home ", Search: "Crib", Limit: 10}
	b := repository.NoteFilter{Category: "home", Search: "crib", Limit: 10}

	if c.key(a) != c.key(b) {
		t.Fatalf("case/whitespace variants diverge: %q vs %q", c.key(a), c.key(b))
	}
	if !strings.HasPrefix(c.key(a), notePrefix) {
		t.Fatalf("key %q missing listing prefix", c.key(a))
	}
}
