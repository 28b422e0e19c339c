package strx

import "testing"

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "fallback"); got != "fallback" {
		t.Fatalf("Coalesce = %q", got)
	}
	if got := Coalesce("value", "fallback"); got != "value" {
		t.Fatalf("Coalesce = %q", got)
	}
}

func TestHasPrefix(t *testing.T) {
	if !HasPrefix("OK+V4.0", "OK") {
		t.Fatal("HasPrefix(OK+V4.0, OK)")
	}
	if HasPrefix("O", "OK") {
		t.Fatal("HasPrefix on shorter string")
	}
	if !HasPrefix("anything", "") {
		t.Fatal("empty prefix matches everything")
	}
}
