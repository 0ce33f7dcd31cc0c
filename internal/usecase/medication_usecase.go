package usecase

import (
	"context"
	"errors"

	"hospital-admin-backend/internal/converter"
	"hospital-admin-backend/internal/delivery/dto"
	"hospital-admin-backend/internal/domain/entity"
	"hospital-admin-backend/internal/domain/repository"
	"hospital-admin-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrMedicationNotFound = errors.New("medication not found")

type MedicationUsecase interface {
	CreateMedication(ctx context.Context, actorID uuid.UUID, req *dto.CreateMedicationRequest) (*dto.MedicationResponse, error)
	GetMedication(ctx context.Context, id int64) (*dto.MedicationResponse, error)
	ListMedications(ctx context.Context, search string, activeOnly bool) (*dto.MedicationListResponse, error)
	UpdateMedication(ctx context.Context, actorID uuid.UUID, id int64, req *dto.UpdateMedicationRequest) (*dto.MedicationResponse, error)
}

type medicationUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	medicationRepo repository.MedicationRepository
	auditService   service.AuditService
}

func NewMedicationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	medicationRepo repository.MedicationRepository,
	auditService service.AuditService,
) MedicationUsecase {
	return &medicationUsecase{
		db:             db,
		log:            log,
		medicationRepo: medicationRepo,
		auditService:   auditService,
	}
}

func (u *medicationUsecase) CreateMedication(ctx context.Context, actorID uuid.UUID, req *dto.CreateMedicationRequest) (*dto.MedicationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medication := &entity.Medication{
		Name:         req.Name,
		Form:         req.Form,
		Strength:     req.Strength,
		Manufacturer: req.Manufacturer,
		IsActive:     true,
	}

	if err := u.medicationRepo.Create(tx, medication); err != nil {
		u.log.Warnf("Failed to create medication: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionMedicationCreate,
		"medication", medication.Name, medication); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicationToResponse(medication), nil
}

func (u *medicationUsecase) GetMedication(ctx context.Context, id int64) (*dto.MedicationResponse, error) {
	medication, err := u.medicationRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medication %d: %+v", id, err)
		return nil, err
	}
	if medication == nil {
		return nil, ErrMedicationNotFound
	}
	return converter.MedicationToResponse(medication), nil
}

func (u *medicationUsecase) ListMedications(ctx context.Context, search string, activeOnly bool) (*dto.MedicationListResponse, error) {
	medications, err := u.medicationRepo.FindAll(u.db.WithContext(ctx), search, activeOnly)
	if err != nil {
		u.log.Warnf("Failed to list medications: %+v", err)
		return nil, err
	}

	return &dto.MedicationListResponse{
		Medications: converter.MedicationsToResponses(medications),
		Total:       len(medications),
	}, nil
}

func (u *medicationUsecase) UpdateMedication(ctx context.Context, actorID uuid.UUID, id int64, req *dto.UpdateMedicationRequest) (*dto.MedicationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medication, err := u.medicationRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medication %d: %+v", id, err)
		return nil, err
	}
	if medication == nil {
		return nil, ErrMedicationNotFound
	}

	previous := *medication

	if req.Name != "" {
		medication.Name = req.Name
	}
	if req.Form != "" {
		medication.Form = req.Form
	}
	if req.Strength != nil {
		medication.Strength = *req.Strength
	}
	if req.Manufacturer != nil {
		medication.Manufacturer = *req.Manufacturer
	}
	if req.IsActive != nil {
		medication.IsActive = *req.IsActive
	}

	if err := u.medicationRepo.Update(tx, medication); err != nil {
		u.log.Warnf("Failed to update medication %d: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionMedicationUpdate,
		"medication", medication.Name, previous, medication); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicationToResponse(medication), nil
}
