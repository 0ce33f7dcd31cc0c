package repository

import (
	"errors"
	"time"

	"hospital-admin-backend/internal/domain/entity"
	domainRepo "hospital-admin-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type availabilityRepository struct{}

func NewAvailabilityRepository() domainRepo.AvailabilityRepository {
	return &availabilityRepository{}
}

func (r *availabilityRepository) FindRecurringByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]entity.AvailabilityWindow, error) {
	var windows []entity.AvailabilityWindow
	err := db.Where("doctor_id = ? AND date_override IS NULL", doctorID).
		Order("day_of_week ASC").
		Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *availabilityRepository) FindRecurringByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) (*entity.AvailabilityWindow, error) {
	var window entity.AvailabilityWindow
	err := db.Where("doctor_id = ? AND day_of_week = ? AND date_override IS NULL", doctorID, dayOfWeek).
		First(&window).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &window, nil
}

func (r *availabilityRepository) FindOverrideForDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) (*entity.AvailabilityWindow, error) {
	var window entity.AvailabilityWindow
	err := db.Where("doctor_id = ? AND date_override = ?", doctorID, date.Format("2006-01-02")).
		First(&window).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &window, nil
}

func (r *availabilityRepository) DeleteRecurringByDoctor(db *gorm.DB, doctorID uuid.UUID) error {
	return db.Where("doctor_id = ? AND date_override IS NULL", doctorID).
		Delete(&entity.AvailabilityWindow{}).Error
}

func (r *availabilityRepository) CreateBatch(db *gorm.DB, windows []entity.AvailabilityWindow) error {
	if len(windows) == 0 {
		return nil
	}
	return db.Create(&windows).Error
}
