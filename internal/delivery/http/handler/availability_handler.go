package handler

import (
	"encoding/json"
	"net/http"

	"hospital-admin-backend/internal/delivery/dto"
	"hospital-admin-backend/internal/delivery/http/middleware"
	"hospital-admin-backend/internal/domain/entity"
	"hospital-admin-backend/internal/usecase"
	"hospital-admin-backend/pkg/response"
	"hospital-admin-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

func (h *AvailabilityHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required")
		return
	}

	slots, err := h.availabilityUsecase.GetAvailableSlots(r.Context(), doctorID, date)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate:
			response.BadRequest(w, "Invalid date, use YYYY-MM-DD")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get available slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}

func (h *AvailabilityHandler) GetWeeklyAvailability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	availability, err := h.availabilityUsecase.GetWeeklyAvailability(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get weekly availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Weekly availability retrieved successfully", availability)
}

func (h *AvailabilityHandler) ReplaceWeeklyAvailability(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	// Doctors may only edit their own matrix; admins may edit anyone's.
	role, _ := middleware.GetUserRoleFromContext(r.Context())
	if role == entity.RoleDoctor && actorID != doctorID {
		response.Forbidden(w, "Doctors can only manage their own availability")
		return
	}

	var req dto.ReplaceWeeklyAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	availability, err := h.availabilityUsecase.ReplaceWeeklyAvailability(r.Context(), actorID, doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrDuplicateDay:
			response.BadRequest(w, "More than one window for the same day of week")
		case entity.ErrInvalidDayOfWeek:
			response.BadRequest(w, "day_of_week must be between 0 and 6")
		case entity.ErrInvalidClock:
			response.BadRequest(w, "Times must use HH:MM")
		case entity.ErrInvalidTimeRange:
			response.BadRequest(w, "start_time must be before end_time")
		default:
			response.InternalServerError(w, "Failed to replace weekly availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Weekly availability replaced successfully", availability)
}
