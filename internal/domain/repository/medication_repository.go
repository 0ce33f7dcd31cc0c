package repository

import (
	"hospital-admin-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicationRepository interface {
	Create(db *gorm.DB, medication *entity.Medication) error
	FindByID(db *gorm.DB, id int64) (*entity.Medication, error)
	FindAll(db *gorm.DB, search string, activeOnly bool) ([]entity.Medication, error)
	Update(db *gorm.DB, medication *entity.Medication) error
}
