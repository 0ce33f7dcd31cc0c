package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultSlotMinutes is the booking granularity used when no explicit slot
// length is configured.
const DefaultSlotMinutes = 30

var (
	ErrInvalidDayOfWeek = errors.New("day of week must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidClock     = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
)

// AvailabilityWindow is a doctor's declared open hours for one day of week,
// or for one specific date when DateOverride is set. An override fully
// replaces the recurring entry for that date.
type AvailabilityWindow struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DayOfWeek    int        `gorm:"not null" json:"day_of_week"`
	StartTime    string     `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime      string     `gorm:"type:varchar(5);not null" json:"end_time"`
	IsEnabled    bool       `gorm:"not null;default:false" json:"is_enabled"`
	DateOverride *time.Time `gorm:"type:date" json:"date_override,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AvailabilityWindow) TableName() string {
	return "availability_windows"
}

// Validate checks the window invariants. Disabled windows may carry any
// times; enabled ones must form a non-empty range.
func (w *AvailabilityWindow) Validate() error {
	if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
		return ErrInvalidDayOfWeek
	}
	start, err := ParseClock(w.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(w.EndTime)
	if err != nil {
		return err
	}
	if w.IsEnabled && start >= end {
		return ErrInvalidTimeRange
	}
	return nil
}

// Slots enumerates the bookable start times inside the half-open window
// [StartTime, EndTime) at the given granularity. A slot is emitted only when
// it fits entirely before EndTime; a trailing partial slot is dropped. An
// inverted or empty window yields no slots, not an error.
func (w *AvailabilityWindow) Slots(slotMinutes int) []string {
	if slotMinutes <= 0 {
		slotMinutes = DefaultSlotMinutes
	}
	start, err := ParseClock(w.StartTime)
	if err != nil {
		return nil
	}
	end, err := ParseClock(w.EndTime)
	if err != nil {
		return nil
	}
	var slots []string
	for m := start; m+slotMinutes <= end; m += slotMinutes {
		slots = append(slots, FormatClock(m))
	}
	return slots
}

// SubtractBooked removes from slots every start time occupied by a
// non-cancelled appointment. Occupancy is exact start-time equality;
// appointment durations do not range-block neighbouring slots.
func SubtractBooked(slots []string, appointments []Appointment) []string {
	occupied := make(map[string]struct{}, len(appointments))
	for _, a := range appointments {
		if a.Status == AppointmentStatusCancelled {
			continue
		}
		occupied[a.Time] = struct{}{}
	}
	free := make([]string, 0, len(slots))
	for _, s := range slots {
		if _, taken := occupied[s]; taken {
			continue
		}
		free = append(free, s)
	}
	return free
}

// ParseClock parses a 24-hour HH:MM string into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidClock
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as HH:MM.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
