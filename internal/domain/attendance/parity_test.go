package attendance

import "testing"

func TestTypeForCountAlternates(t *testing.T) {
	want := []string{TypeIn, TypeOut, TypeIn, TypeOut, TypeIn, TypeOut}
	for count, expected := range want {
		if got := TypeForCount(count); got != expected {
			t.Fatalf("count %d: expected %s, got %s", count, expected, got)
		}
	}
}

func TestTypeForCountDayReset(t *testing.T) {
	// A fresh day starts at count 0 regardless of how yesterday ended.
	if got := TypeForCount(0); got != TypeIn {
		t.Fatalf("expected day to open with Entrada, got %s", got)
	}
}
