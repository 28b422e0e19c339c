package mathx

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 1, 10); got != 5 {
		t.Fatalf("Clamp(5,1,10) = %d", got)
	}
	if got := Clamp(-3, 1, 10); got != 1 {
		t.Fatalf("Clamp(-3,1,10) = %d", got)
	}
	if got := Clamp(42, 1, 10); got != 10 {
		t.Fatalf("Clamp(42,1,10) = %d", got)
	}
	// Swapped bounds behave the same.
	if got := Clamp(42, 10, 1); got != 10 {
		t.Fatalf("Clamp(42,10,1) = %d", got)
	}
	if got := Clamp(2.5, 0.0, 1.0); got != 1.0 {
		t.Fatalf("Clamp(2.5,0,1) = %v", got)
	}
}

func TestBetween(t *testing.T) {
	if !Between(5, 1, 10) || !Between(1, 1, 10) || !Between(10, 1, 10) {
		t.Fatal("Between bounds should be inclusive")
	}
	if Between(0, 1, 10) || Between(11, 1, 10) {
		t.Fatal("Between outside bounds")
	}
	if !Between(5, 10, 1) {
		t.Fatal("Between with swapped bounds")
	}
}
