package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	Date            string    `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time            string    `json:"time" validate:"required"` // Format: HH:MM
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,min=5,max=240"`
	Type            string    `json:"type" validate:"required"`
	Reason          string    `json:"reason" validate:"omitempty"`
	Notes           string    `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled confirmed completed cancelled no_show"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID        `json:"id"`
	HumanID         string           `json:"human_id"`
	PatientID       uuid.UUID        `json:"patient_id"`
	Patient         *PatientResponse `json:"patient,omitempty"`
	DoctorID        uuid.UUID        `json:"doctor_id"`
	Doctor          *UserResponse    `json:"doctor,omitempty"`
	Date            string           `json:"date"`
	Time            string           `json:"time"`
	DurationMinutes int              `json:"duration_minutes"`
	Status          string           `json:"status"`
	Type            string           `json:"type"`
	Reason          string           `json:"reason,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
