package repository

import (
	"hospital-admin-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error)
	FindAll(db *gorm.DB, filter *entity.MedicalRecordFilter) ([]entity.MedicalRecord, error)
	CreatePrescription(db *gorm.DB, prescription *entity.Prescription) error
	FindPrescriptionsByRecord(db *gorm.DB, recordID uuid.UUID) ([]entity.Prescription, error)
	CreateLabResult(db *gorm.DB, result *entity.LabResult) error
	FindLabResultsByRecord(db *gorm.DB, recordID uuid.UUID) ([]entity.LabResult, error)
}
