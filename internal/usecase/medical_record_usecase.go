package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-admin-backend/internal/converter"
	"hospital-admin-backend/internal/delivery/dto"
	"hospital-admin-backend/internal/domain/entity"
	"hospital-admin-backend/internal/domain/repository"
	"hospital-admin-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("medical record not found")

type MedicalRecordUsecase interface {
	CreateRecord(ctx context.Context, actorID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetRecord(ctx context.Context, id uuid.UUID) (*dto.MedicalRecordResponse, error)
	ListRecords(ctx context.Context, filter *entity.MedicalRecordFilter) (*dto.MedicalRecordListResponse, error)
	UpdateRecord(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	AddPrescription(ctx context.Context, actorID, recordID uuid.UUID, req *dto.AddPrescriptionRequest) (*dto.PrescriptionResponse, error)
	ListPrescriptions(ctx context.Context, recordID uuid.UUID) ([]dto.PrescriptionResponse, error)
	AddLabResult(ctx context.Context, actorID, recordID uuid.UUID, req *dto.AddLabResultRequest) (*dto.LabResultResponse, error)
	ListLabResults(ctx context.Context, recordID uuid.UUID) ([]dto.LabResultResponse, error)
}

type medicalRecordUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	recordRepo   repository.MedicalRecordRepository
	patientRepo  repository.PatientRepository
	userRepo     repository.UserRepository
	sequenceRepo repository.SequenceRepository
	auditService service.AuditService
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	sequenceRepo repository.SequenceRepository,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:           db,
		log:          log,
		recordRepo:   recordRepo,
		patientRepo:  patientRepo,
		userRepo:     userRepo,
		sequenceRepo: sequenceRepo,
		auditService: auditService,
	}
}

func (u *medicalRecordUsecase) CreateRecord(ctx context.Context, actorID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	visitDate, err := time.Parse("2006-01-02", req.VisitDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.userRepo.FindActiveDoctor(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	seq, err := u.sequenceRepo.Next(tx, entity.SequenceScopeMedicalRecord, visitDate.Year())
	if err != nil {
		u.log.Warnf("Failed to advance medical record sequence: %+v", err)
		return nil, err
	}

	record := &entity.MedicalRecord{
		HumanID:        formatHumanID(entity.HumanIDPrefixMedicalRecord, visitDate.Year(), seq),
		PatientID:      req.PatientID,
		DoctorID:       req.DoctorID,
		VisitDate:      visitDate,
		VisitType:      req.VisitType,
		ChiefComplaint: req.ChiefComplaint,
		Diagnosis:      req.Diagnosis,
		TreatmentPlan:  req.TreatmentPlan,
		Notes:          req.Notes,
		VitalSigns:     entity.JSON(req.VitalSigns),
		Version:        1,
		CreatedBy:      actorID,
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionRecordCreate,
		"medical_record", record.HumanID, record); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Medical record created: id=%s, human_id=%s, version=%d", record.ID, record.HumanID, record.Version)
	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) GetRecord(ctx context.Context, id uuid.UUID) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medical record %s: %+v", id, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) ListRecords(ctx context.Context, filter *entity.MedicalRecordFilter) (*dto.MedicalRecordListResponse, error) {
	records, err := u.recordRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		Records: converter.MedicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

// UpdateRecord writes a new version row instead of mutating the existing one,
// so every revision of a record stays readable.
func (u *medicalRecordUsecase) UpdateRecord(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	current, err := u.recordRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medical record %s: %+v", id, err)
		return nil, err
	}
	if current == nil {
		return nil, ErrRecordNotFound
	}

	next := &entity.MedicalRecord{
		HumanID:           current.HumanID,
		PatientID:         current.PatientID,
		DoctorID:          current.DoctorID,
		VisitDate:         current.VisitDate,
		VisitType:         current.VisitType,
		ChiefComplaint:    current.ChiefComplaint,
		Diagnosis:         current.Diagnosis,
		TreatmentPlan:     current.TreatmentPlan,
		Notes:             current.Notes,
		VitalSigns:        current.VitalSigns,
		Version:           current.Version + 1,
		PreviousVersionID: &current.ID,
		CreatedBy:         actorID,
	}

	if req.VisitType != "" {
		next.VisitType = req.VisitType
	}
	if req.ChiefComplaint != nil {
		next.ChiefComplaint = *req.ChiefComplaint
	}
	if req.Diagnosis != nil {
		next.Diagnosis = *req.Diagnosis
	}
	if req.TreatmentPlan != nil {
		next.TreatmentPlan = *req.TreatmentPlan
	}
	if req.Notes != nil {
		next.Notes = *req.Notes
	}
	if req.VitalSigns != nil {
		next.VitalSigns = entity.JSON(req.VitalSigns)
	}

	if err := u.recordRepo.Create(tx, next); err != nil {
		u.log.Warnf("Failed to create medical record version: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionRecordUpdate,
		"medical_record", next.HumanID, current, next); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Medical record versioned: human_id=%s, version=%d", next.HumanID, next.Version)
	return converter.MedicalRecordToResponse(next), nil
}

func (u *medicalRecordUsecase) AddPrescription(ctx context.Context, actorID, recordID uuid.UUID, req *dto.AddPrescriptionRequest) (*dto.PrescriptionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.recordRepo.FindByID(tx, recordID)
	if err != nil {
		u.log.Warnf("Failed to find medical record %s: %+v", recordID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	prescription := &entity.Prescription{
		MedicalRecordID: recordID,
		MedicationName:  req.MedicationName,
		Dosage:          req.Dosage,
		Frequency:       req.Frequency,
		Duration:        req.Duration,
		Instructions:    req.Instructions,
		PrescribedBy:    actorID,
	}

	if err := u.recordRepo.CreatePrescription(tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionRecordUpdate,
		"medical_record", record.HumanID, nil, prescription); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *medicalRecordUsecase) ListPrescriptions(ctx context.Context, recordID uuid.UUID) ([]dto.PrescriptionResponse, error) {
	prescriptions, err := u.recordRepo.FindPrescriptionsByRecord(u.db.WithContext(ctx), recordID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions for record %s: %+v", recordID, err)
		return nil, err
	}
	return converter.PrescriptionsToResponses(prescriptions), nil
}

func (u *medicalRecordUsecase) AddLabResult(ctx context.Context, actorID, recordID uuid.UUID, req *dto.AddLabResultRequest) (*dto.LabResultResponse, error) {
	testDate, err := time.Parse("2006-01-02", req.TestDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.recordRepo.FindByID(tx, recordID)
	if err != nil {
		u.log.Warnf("Failed to find medical record %s: %+v", recordID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	result := &entity.LabResult{
		MedicalRecordID: recordID,
		TestName:        req.TestName,
		TestResult:      req.TestResult,
		TestDate:        testDate,
		LabName:         req.LabName,
		FilePath:        req.FilePath,
	}

	if err := u.recordRepo.CreateLabResult(tx, result); err != nil {
		u.log.Warnf("Failed to create lab result: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionRecordUpdate,
		"medical_record", record.HumanID, nil, result); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.LabResultToResponse(result), nil
}

func (u *medicalRecordUsecase) ListLabResults(ctx context.Context, recordID uuid.UUID) ([]dto.LabResultResponse, error) {
	results, err := u.recordRepo.FindLabResultsByRecord(u.db.WithContext(ctx), recordID)
	if err != nil {
		u.log.Warnf("Failed to list lab results for record %s: %+v", recordID, err)
		return nil, err
	}
	return converter.LabResultsToResponses(results), nil
}
