package converter

import (
	"testing"

	"hospital-admin-backend/internal/domain/entity"
)

func TestWindowsToWeekResponsesEmpty(t *testing.T) {
	week := WindowsToWeekResponses(nil)

	if len(week) != 7 {
		t.Fatalf("got %d rows, want 7", len(week))
	}
	for day, row := range week {
		if row.DayOfWeek != day {
			t.Errorf("row %d has DayOfWeek %d", day, row.DayOfWeek)
		}
		if row.IsEnabled {
			t.Errorf("day %d enabled by default", day)
		}
		if row.StartTime != defaultWindowStart || row.EndTime != defaultWindowEnd {
			t.Errorf("day %d defaults = %s-%s, want %s-%s",
				day, row.StartTime, row.EndTime, defaultWindowStart, defaultWindowEnd)
		}
	}
}

func TestWindowsToWeekResponsesOverlay(t *testing.T) {
	windows := []entity.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "08:00", EndTime: "12:00", IsEnabled: true},
		{DayOfWeek: 5, StartTime: "13:00", EndTime: "17:30", IsEnabled: true},
		{DayOfWeek: 6, StartTime: "10:00", EndTime: "14:00", IsEnabled: false},
	}

	week := WindowsToWeekResponses(windows)
	if len(week) != 7 {
		t.Fatalf("got %d rows, want 7", len(week))
	}

	if !week[1].IsEnabled || week[1].StartTime != "08:00" || week[1].EndTime != "12:00" {
		t.Errorf("Monday not overlaid: %+v", week[1])
	}
	if !week[5].IsEnabled || week[5].StartTime != "13:00" {
		t.Errorf("Friday not overlaid: %+v", week[5])
	}
	if week[6].IsEnabled || week[6].StartTime != "10:00" {
		t.Errorf("Saturday should keep stored disabled window: %+v", week[6])
	}

	// Untouched days stay disabled defaults.
	for _, day := range []int{0, 2, 3, 4} {
		if week[day].IsEnabled {
			t.Errorf("day %d unexpectedly enabled", day)
		}
		if week[day].StartTime != defaultWindowStart {
			t.Errorf("day %d start = %s, want default", day, week[day].StartTime)
		}
	}
}

func TestWindowsToWeekResponsesIgnoresOutOfRangeDays(t *testing.T) {
	windows := []entity.AvailabilityWindow{
		{DayOfWeek: -1, StartTime: "08:00", EndTime: "12:00", IsEnabled: true},
		{DayOfWeek: 7, StartTime: "08:00", EndTime: "12:00", IsEnabled: true},
	}

	week := WindowsToWeekResponses(windows)
	for day, row := range week {
		if row.IsEnabled {
			t.Errorf("day %d enabled by out-of-range window", day)
		}
	}
}
