package repository

import (
	"errors"

	"hospital-admin-backend/internal/domain/entity"
	domainRepo "hospital-admin-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalRecordRepository struct{}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{}
}

func (r *medicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Create(record).Error
}

func (r *medicalRecordRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := db.Preload("Patient").Preload("Doctor").
		Preload("Prescriptions").Preload("LabResults").
		Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindAll(db *gorm.DB, filter *entity.MedicalRecordFilter) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	query := db

	if filter != nil {
		if filter.PatientID != uuid.Nil {
			query = query.Where("patient_id = ?", filter.PatientID)
		}
		if filter.DoctorID != uuid.Nil {
			query = query.Where("doctor_id = ?", filter.DoctorID)
		}
	}

	err := query.Preload("Patient").Preload("Doctor").
		Order("visit_date DESC, version DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) CreatePrescription(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Create(prescription).Error
}

func (r *medicalRecordRepository) FindPrescriptionsByRecord(db *gorm.DB, recordID uuid.UUID) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Where("medical_record_id = ?", recordID).
		Order("prescribed_at ASC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *medicalRecordRepository) CreateLabResult(db *gorm.DB, result *entity.LabResult) error {
	return db.Create(result).Error
}

func (r *medicalRecordRepository) FindLabResultsByRecord(db *gorm.DB, recordID uuid.UUID) ([]entity.LabResult, error) {
	var results []entity.LabResult
	err := db.Where("medical_record_id = ?", recordID).
		Order("uploaded_at ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
