package repository

import (
	"time"

	"hospital-admin-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindActiveByDoctorAndDate returns the doctor's non-cancelled
	// appointments for one calendar date.
	FindActiveByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	// CountActiveAt counts non-cancelled appointments at the exact
	// doctor/date/time. Used for double-booking detection.
	CountActiveAt(db *gorm.DB, doctorID uuid.UUID, date time.Time, clock string) (int64, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
}
