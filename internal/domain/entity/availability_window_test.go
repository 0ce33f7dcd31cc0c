package entity

import (
	"reflect"
	"testing"
)

func TestSlots(t *testing.T) {
	tests := []struct {
		name        string
		start       string
		end         string
		slotMinutes int
		want        []string
	}{
		{
			name:        "standard working day yields 16 slots",
			start:       "09:00",
			end:         "17:00",
			slotMinutes: 30,
			want: []string{
				"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
				"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
				"15:00", "15:30", "16:00", "16:30",
			},
		},
		{
			name:        "morning block",
			start:       "09:00",
			end:         "12:00",
			slotMinutes: 30,
			want:        []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		},
		{
			name:        "trailing partial slot is dropped",
			start:       "10:00",
			end:         "11:45",
			slotMinutes: 30,
			want:        []string{"10:00", "10:30", "11:00"},
		},
		{
			name:        "window shorter than one slot",
			start:       "09:00",
			end:         "09:15",
			slotMinutes: 30,
			want:        nil,
		},
		{
			name:        "empty window",
			start:       "09:00",
			end:         "09:00",
			slotMinutes: 30,
			want:        nil,
		},
		{
			name:        "inverted window yields nothing",
			start:       "17:00",
			end:         "09:00",
			slotMinutes: 30,
			want:        nil,
		},
		{
			name:        "hour granularity",
			start:       "08:00",
			end:         "12:00",
			slotMinutes: 60,
			want:        []string{"08:00", "09:00", "10:00", "11:00"},
		},
		{
			name:        "non-positive granularity falls back to default",
			start:       "09:00",
			end:         "10:00",
			slotMinutes: 0,
			want:        []string{"09:00", "09:30"},
		},
		{
			name:        "end boundary is exclusive",
			start:       "16:30",
			end:         "17:00",
			slotMinutes: 30,
			want:        []string{"16:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := AvailabilityWindow{StartTime: tt.start, EndTime: tt.end}
			got := w.Slots(tt.slotMinutes)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Slots() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlotsDeterministic(t *testing.T) {
	w := AvailabilityWindow{StartTime: "09:00", EndTime: "17:00"}
	first := w.Slots(30)
	second := w.Slots(30)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls disagree: %v vs %v", first, second)
	}
}

func TestSubtractBooked(t *testing.T) {
	slots := []string{"09:00", "09:30", "10:00", "10:30"}

	tests := []struct {
		name         string
		appointments []Appointment
		want         []string
	}{
		{
			name:         "no appointments keeps all slots",
			appointments: nil,
			want:         []string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name: "scheduled appointment blocks its slot",
			appointments: []Appointment{
				{Time: "09:30", Status: AppointmentStatusScheduled},
			},
			want: []string{"09:00", "10:00", "10:30"},
		},
		{
			name: "cancelled appointment frees its slot",
			appointments: []Appointment{
				{Time: "09:30", Status: AppointmentStatusCancelled},
			},
			want: []string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name: "every non-cancelled status occupies",
			appointments: []Appointment{
				{Time: "09:00", Status: AppointmentStatusConfirmed},
				{Time: "09:30", Status: AppointmentStatusCompleted},
				{Time: "10:00", Status: AppointmentStatusNoShow},
			},
			want: []string{"10:30"},
		},
		{
			name: "appointment outside the window is ignored",
			appointments: []Appointment{
				{Time: "14:00", Status: AppointmentStatusScheduled},
			},
			want: []string{"09:00", "09:30", "10:00", "10:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubtractBooked(slots, tt.appointments)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SubtractBooked() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		window  AvailabilityWindow
		wantErr error
	}{
		{
			name:    "valid enabled window",
			window:  AvailabilityWindow{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsEnabled: true},
			wantErr: nil,
		},
		{
			name:    "day of week too large",
			window:  AvailabilityWindow{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"},
			wantErr: ErrInvalidDayOfWeek,
		},
		{
			name:    "negative day of week",
			window:  AvailabilityWindow{DayOfWeek: -1, StartTime: "09:00", EndTime: "17:00"},
			wantErr: ErrInvalidDayOfWeek,
		},
		{
			name:    "malformed start time",
			window:  AvailabilityWindow{DayOfWeek: 1, StartTime: "9am", EndTime: "17:00"},
			wantErr: ErrInvalidClock,
		},
		{
			name:    "enabled window with inverted range",
			window:  AvailabilityWindow{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00", IsEnabled: true},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "disabled window with inverted range is tolerated",
			window:  AvailabilityWindow{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00", IsEnabled: false},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.window.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"13:45", 825, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9:00am", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClock(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{825, "13:45"},
		{1439, "23:59"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.minutes); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
