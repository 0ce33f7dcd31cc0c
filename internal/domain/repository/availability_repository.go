package repository

import (
	"time"

	"hospital-admin-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	// FindRecurringByDoctor returns the doctor's weekly matrix (rows without a
	// date override), ordered by day of week.
	FindRecurringByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]entity.AvailabilityWindow, error)
	// FindRecurringByDoctorAndDay returns the recurring window for one weekday,
	// or nil when the doctor has none.
	FindRecurringByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) (*entity.AvailabilityWindow, error)
	// FindOverrideForDate returns the date-specific window superseding the
	// recurring entry, or nil when there is no override.
	FindOverrideForDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) (*entity.AvailabilityWindow, error)
	// DeleteRecurringByDoctor removes the doctor's whole weekly matrix.
	// Overrides are left untouched.
	DeleteRecurringByDoctor(db *gorm.DB, doctorID uuid.UUID) error
	CreateBatch(db *gorm.DB, windows []entity.AvailabilityWindow) error
}
