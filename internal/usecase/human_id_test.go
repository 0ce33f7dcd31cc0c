package usecase

import (
	"regexp"
	"testing"

	"hospital-admin-backend/internal/domain/entity"
)

func TestFormatHumanID(t *testing.T) {
	tests := []struct {
		prefix string
		year   int
		seq    int
		want   string
	}{
		{entity.HumanIDPrefixAppointment, 2025, 3, "APT-2025-003"},
		{entity.HumanIDPrefixAppointment, 2025, 42, "APT-2025-042"},
		{entity.HumanIDPrefixAppointment, 2025, 999, "APT-2025-999"},
		// Padding stops at three digits; the counter keeps growing.
		{entity.HumanIDPrefixAppointment, 2025, 1000, "APT-2025-1000"},
		{entity.HumanIDPrefixAppointment, 2025, 1234, "APT-2025-1234"},
		{entity.HumanIDPrefixAppointment, 2026, 1, "APT-2026-001"},
		{entity.HumanIDPrefixPatient, 2026, 7, "P-2026-007"},
		{entity.HumanIDPrefixMedicalRecord, 2026, 150, "MR-2026-150"},
	}

	for _, tt := range tests {
		if got := formatHumanID(tt.prefix, tt.year, tt.seq); got != tt.want {
			t.Errorf("formatHumanID(%q, %d, %d) = %q, want %q",
				tt.prefix, tt.year, tt.seq, got, tt.want)
		}
	}
}

func TestFormatHumanIDShape(t *testing.T) {
	pattern := regexp.MustCompile(`^APT-\d{4}-\d{3,}$`)
	for _, seq := range []int{1, 99, 999, 1000, 100000} {
		id := formatHumanID(entity.HumanIDPrefixAppointment, 2025, seq)
		if !pattern.MatchString(id) {
			t.Errorf("formatHumanID seq %d produced %q, want match for %s", seq, id, pattern)
		}
	}
}
