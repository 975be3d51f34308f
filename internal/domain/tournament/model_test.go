package tournament

import "testing"

func TestTournament_GroupCount(t *testing.T) {
	t.Parallel()

	if got := (Tournament{}).GroupCount(); got != DefaultNumberOfGroups {
		t.Fatalf("expected default group count, got %d", got)
	}
	groups := 6
	if got := (Tournament{NumberOfGroups: &groups}).GroupCount(); got != 6 {
		t.Fatalf("unexpected group count: %d", got)
	}
}

func TestTournament_Validate(t *testing.T) {
	t.Parallel()

	if err := (Tournament{Name: "Cup"}).Validate(); err == nil {
		t.Fatalf("expected error for missing id")
	}
	if err := (Tournament{ID: "cup"}).Validate(); err == nil {
		t.Fatalf("expected error for missing name")
	}
	negative := -1
	if err := (Tournament{ID: "cup", Name: "Cup", NumberOfGroups: &negative}).Validate(); err == nil {
		t.Fatalf("expected error for negative group count")
	}
	if err := (Tournament{ID: "cup", Name: "Cup"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
