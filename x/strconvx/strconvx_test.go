package strconvx

import "testing"

func TestAtoiRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, 2, -1, 42, -42, 9600, 1 << 30} {
		got, err := Atoi(Itoa(v))
		if err != nil {
			t.Fatalf("Atoi(Itoa(%d)) error: %v", v, err)
		}
		if got != v {
			t.Fatalf("round trip %d -> %d", v, got)
		}
	}
}

func TestAtoiRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "x", "1x", "2 ", "--2", "+", "99999999999999999999"} {
		if _, err := Atoi(s); err == nil {
			t.Errorf("Atoi(%q): expected error", s)
		}
	}
}

func TestParseUintBounds(t *testing.T) {
	if v, err := ParseUint("255", 10, 8); err != nil || v != 255 {
		t.Fatalf("ParseUint(255,10,8) = %d, %v", v, err)
	}
	if _, err := ParseUint("256", 10, 8); err == nil {
		t.Fatal("ParseUint(256,10,8): expected range error")
	}
}

func TestFormatIntBases(t *testing.T) {
	if s := FormatInt(-255, 16); s != "-ff" {
		t.Fatalf("FormatInt(-255,16) = %q", s)
	}
	if s := FormatUint(9600, 10); s != "9600" {
		t.Fatalf("FormatUint(9600,10) = %q", s)
	}
}
