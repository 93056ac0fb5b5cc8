package idgen

import (
	"strings"
	"testing"
)

func TestUUIDv7_UniqueAndSortable(t *testing.T) {
	gen := UUIDv7()
	a, b := gen(), gen()
	if a == b {
		t.Fatal("two UUIDv7 values collided")
	}
	if len(a) != 36 {
		t.Errorf("len = %d, want 36", len(a))
	}
	if a[14] != '7' || b[14] != '7' {
		t.Errorf("version nibble = %c/%c, want 7", a[14], b[14])
	}
}

func TestNanoID_LengthAndAlphabet(t *testing.T) {
	gen := NanoID(12)
	id := gen()
	if len(id) != 12 {
		t.Fatalf("len = %d, want 12", len(id))
	}
	for _, r := range id {
		if !strings.ContainsRune("0123456789abcdefghijklmnopqrstuvwxyz", r) {
			t.Fatalf("unexpected rune %q in %s", r, id)
		}
	}
}

func TestPrefixed(t *testing.T) {
	gen := Prefixed("ana_", func() string { return "fixed" })
	if got := gen(); got != "ana_fixed" {
		t.Errorf("got %q", got)
	}
}
