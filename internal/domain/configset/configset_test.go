package configset

import "testing"

func TestNormalize(t *testing.T) {
	name, err := Normalize("  Logística  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Logística" {
		t.Fatalf("expected trimmed name, got %q", name)
	}

	if _, err := Normalize("   "); err != ErrEmptyName {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestContainsFoldsCase(t *testing.T) {
	names := []string{"Logística", "TI"}

	if !Contains(names, " logística ") {
		t.Fatal("expected case-insensitive match")
	}
	if Contains(names, "RH") {
		t.Fatal("unexpected match")
	}
}

func TestValidList(t *testing.T) {
	for _, list := range []string{ListSectors, ListSupervisors, ListCompanies} {
		if !ValidList(list) {
			t.Fatalf("expected %q to be valid", list)
		}
	}
	if ValidList("colors") {
		t.Fatal("unknown list accepted")
	}
}
