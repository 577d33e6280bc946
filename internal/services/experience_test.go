package services

import "testing"

func TestNormalizeEndDate(t *testing.T) {
	if got := NormalizeEndDate(true, "2024-05"); got != nil {
		t.Errorf("ongoing position kept an end date: %q", *got)
	}
	if got := NormalizeEndDate(true, ""); got != nil {
		t.Errorf("ongoing position kept an end date: %q", *got)
	}
	if got := NormalizeEndDate(false, "2024-05"); got == nil || *got != "2024-05" {
		t.Errorf("NormalizeEndDate(false, %q) = %v, want the value back", "2024-05", got)
	}
	if got := NormalizeEndDate(false, "  "); got != nil {
		t.Errorf("blank end date should be nil, got %q", *got)
	}
}
