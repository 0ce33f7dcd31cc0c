package usecase

import (
	"context"
	"errors"
	"fmt"
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

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrPatientInactive     = errors.New("patient is not active")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotTaken           = errors.New("time slot is already booked")
	ErrDatePast            = errors.New("appointment date must be today or later")
	ErrInvalidTime         = errors.New("invalid time format, use HH:MM")
	ErrInvalidStatus       = errors.New("unknown appointment status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
)

type AppointmentUsecase interface {
	// CreateAppointment validates and commits a booking: patient and doctor
	// must exist and be active, the date must not be in the past, and the
	// exact slot must not already carry a non-cancelled appointment.
	CreateAppointment(ctx context.Context, actorID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	// UpdateAppointmentStatus applies the forward-only state machine;
	// transitions out of a terminal state are rejected.
	UpdateAppointmentStatus(ctx context.Context, actorID, id uuid.UUID, status entity.AppointmentStatus) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	patientRepo  repository.PatientRepository
	apptRepo     repository.AppointmentRepository
	sequenceRepo repository.SequenceRepository
	auditService service.AuditService
	slotCache    *service.SlotCacheService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	apptRepo repository.AppointmentRepository,
	sequenceRepo repository.SequenceRepository,
	auditService service.AuditService,
	slotCache *service.SlotCacheService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		patientRepo:  patientRepo,
		apptRepo:     apptRepo,
		sequenceRepo: sequenceRepo,
		auditService: auditService,
		slotCache:    slotCache,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, actorID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := entity.ParseClock(req.Time); err != nil {
		return nil, ErrInvalidTime
	}
	if req.Date < time.Now().Format("2006-01-02") {
		return nil, ErrDatePast
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = entity.DefaultSlotMinutes
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
	if !patient.IsActive() {
		return nil, ErrPatientInactive
	}

	doctor, err := u.userRepo.FindActiveDoctor(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Double-booking check inside the transaction; the partial unique index
	// on (doctor_id, date, time) backs this up under concurrency.
	taken, err := u.apptRepo.CountActiveAt(tx, req.DoctorID, date, req.Time)
	if err != nil {
		u.log.Warnf("Failed to check slot occupancy: %+v", err)
		return nil, err
	}
	if taken > 0 {
		return nil, ErrSlotTaken
	}

	seq, err := u.sequenceRepo.Next(tx, entity.SequenceScopeAppointment, date.Year())
	if err != nil {
		u.log.Warnf("Failed to advance appointment sequence: %+v", err)
		return nil, err
	}

	appointment := &entity.Appointment{
		HumanID:         formatHumanID(entity.HumanIDPrefixAppointment, date.Year(), seq),
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		Date:            date,
		Time:            req.Time,
		DurationMinutes: duration,
		Status:          entity.AppointmentStatusScheduled,
		Type:            req.Type,
		Reason:          req.Reason,
		Notes:           req.Notes,
	}

	if err := u.apptRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "appointments_doctor_slot") {
			return nil, ErrSlotTaken
		}
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionAppointmentCreate,
		"appointment", appointment.HumanID, appointment); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.slotCache.Invalidate(ctx, req.DoctorID, req.Date)

	appointment.Patient = *patient
	appointment.Doctor = *doctor

	u.log.Infof("Appointment created: id=%s, human_id=%s, doctor=%s, date=%s %s",
		appointment.ID, appointment.HumanID, req.DoctorID, req.Date, req.Time)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.apptRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	if filter != nil && filter.Status != "" && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	appointments, err := u.apptRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, actorID, id uuid.UUID, status entity.AppointmentStatus) (*dto.AppointmentResponse, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.apptRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !appointment.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	previous := appointment.Status
	appointment.Status = status

	if err := u.apptRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionAppointmentStatus,
		"appointment", appointment.HumanID, string(previous), string(status)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Cancelling frees the slot, so the cached availability is stale.
	u.slotCache.Invalidate(ctx, appointment.DoctorID, appointment.Date.Format("2006-01-02"))

	u.log.Infof("Appointment %s status: %s -> %s", appointment.HumanID, previous, status)
	return converter.AppointmentToResponse(appointment), nil
}

// formatHumanID renders a display identifier such as APT-2025-003. The
// sequence keeps at least three digits and grows past 999 without wrapping.
func formatHumanID(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, seq)
}
