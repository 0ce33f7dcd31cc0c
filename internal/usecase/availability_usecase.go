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

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidDate    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrDuplicateDay   = errors.New("more than one window for the same day of week")
)

type AvailabilityUsecase interface {
	// GetAvailableSlots resolves the bookable slot start times for one doctor
	// and calendar date. A doctor with no window, or a disabled one, yields an
	// empty list, not an error. The call never mutates state.
	GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error)
	// GetWeeklyAvailability returns exactly seven windows, one per day of
	// week, synthesizing disabled defaults for missing days.
	GetWeeklyAvailability(ctx context.Context, doctorID uuid.UUID) (*dto.WeeklyAvailabilityResponse, error)
	// ReplaceWeeklyAvailability atomically discards the doctor's recurring
	// matrix and inserts the submitted one.
	ReplaceWeeklyAvailability(ctx context.Context, actorID, doctorID uuid.UUID, req *dto.ReplaceWeeklyAvailabilityRequest) (*dto.WeeklyAvailabilityResponse, error)
}

type availabilityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	availabilityRepo repository.AvailabilityRepository
	appointmentRepo  repository.AppointmentRepository
	auditService     service.AuditService
	slotCache        *service.SlotCacheService
	slotMinutes      int
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	availabilityRepo repository.AvailabilityRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	slotCache *service.SlotCacheService,
	slotMinutes int,
) AvailabilityUsecase {
	if slotMinutes <= 0 {
		slotMinutes = entity.DefaultSlotMinutes
	}
	return &availabilityUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		auditService:     auditService,
		slotCache:        slotCache,
		slotMinutes:      slotMinutes,
	}
}

func (u *availabilityUsecase) GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	doctor, err := u.userRepo.FindActiveDoctor(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if cached, ok := u.slotCache.Get(ctx, doctorID, date); ok {
		return u.slotsResponse(doctorID, date, cached), nil
	}

	slots, err := u.resolveSlots(ctx, doctorID, day)
	if err != nil {
		return nil, err
	}

	u.slotCache.Set(ctx, doctorID, date, slots)

	return u.slotsResponse(doctorID, date, slots), nil
}

// resolveSlots runs the resolver pipeline: pick the window (override wins
// over recurring), enumerate candidates, subtract booked start times.
func (u *availabilityUsecase) resolveSlots(ctx context.Context, doctorID uuid.UUID, day time.Time) ([]string, error) {
	db := u.db.WithContext(ctx)

	window, err := u.availabilityRepo.FindOverrideForDate(db, doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to find override window for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if window == nil {
		window, err = u.availabilityRepo.FindRecurringByDoctorAndDay(db, doctorID, int(day.Weekday()))
		if err != nil {
			u.log.Warnf("Failed to find recurring window for doctor %s: %+v", doctorID, err)
			return nil, err
		}
	}
	if window == nil || !window.IsEnabled {
		return []string{}, nil
	}

	candidates := window.Slots(u.slotMinutes)

	appointments, err := u.appointmentRepo.FindActiveByDoctorAndDate(db, doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to list appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return entity.SubtractBooked(candidates, appointments), nil
}

func (u *availabilityUsecase) slotsResponse(doctorID uuid.UUID, date string, slots []string) *dto.AvailableSlotsResponse {
	if slots == nil {
		slots = []string{}
	}
	return &dto.AvailableSlotsResponse{
		DoctorID:    doctorID,
		Date:        date,
		SlotMinutes: u.slotMinutes,
		Slots:       slots,
		Total:       len(slots),
	}
}

func (u *availabilityUsecase) GetWeeklyAvailability(ctx context.Context, doctorID uuid.UUID) (*dto.WeeklyAvailabilityResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.userRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil || doctor.Role != entity.RoleDoctor {
		return nil, ErrDoctorNotFound
	}

	windows, err := u.availabilityRepo.FindRecurringByDoctor(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list windows for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.WeeklyAvailabilityResponse{
		DoctorID: doctorID,
		Windows:  converter.WindowsToWeekResponses(windows),
	}, nil
}

func (u *availabilityUsecase) ReplaceWeeklyAvailability(ctx context.Context, actorID, doctorID uuid.UUID, req *dto.ReplaceWeeklyAvailabilityRequest) (*dto.WeeklyAvailabilityResponse, error) {
	doctor, err := u.userRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil || doctor.Role != entity.RoleDoctor {
		return nil, ErrDoctorNotFound
	}

	windows := make([]entity.AvailabilityWindow, 0, len(req.Windows))
	seen := make(map[int]bool, 7)
	for _, w := range req.Windows {
		window := entity.AvailabilityWindow{
			DoctorID:  doctorID,
			DayOfWeek: w.DayOfWeek,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
			IsEnabled: w.IsEnabled,
		}
		if err := window.Validate(); err != nil {
			return nil, err
		}
		if seen[w.DayOfWeek] {
			return nil, ErrDuplicateDay
		}
		seen[w.DayOfWeek] = true
		windows = append(windows, window)
	}

	// Delete and insert in one transaction so there is no moment where the
	// doctor briefly has zero availability.
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.availabilityRepo.DeleteRecurringByDoctor(tx, doctorID); err != nil {
		u.log.Warnf("Failed to delete windows for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	if err := u.availabilityRepo.CreateBatch(tx, windows); err != nil {
		u.log.Warnf("Failed to insert windows for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionAvailabilityReplace,
		"availability_window", doctorID.String(), nil, req.Windows); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.slotCache.InvalidateDoctor(ctx, doctorID)

	return &dto.WeeklyAvailabilityResponse{
		DoctorID: doctorID,
		Windows:  converter.WindowsToWeekResponses(windows),
	}, nil
}
