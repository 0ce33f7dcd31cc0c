package dto

import "github.com/google/uuid"

// Request DTOs

type AvailabilityWindowRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime   string `json:"end_time" validate:"required"`   // Format: HH:MM
	IsEnabled bool   `json:"is_enabled"`
}

type ReplaceWeeklyAvailabilityRequest struct {
	Windows []AvailabilityWindowRequest `json:"windows" validate:"required,max=7,dive"`
}

// Response DTOs

type AvailabilityWindowResponse struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsEnabled bool   `json:"is_enabled"`
}

type WeeklyAvailabilityResponse struct {
	DoctorID uuid.UUID                    `json:"doctor_id"`
	Windows  []AvailabilityWindowResponse `json:"windows"`
}

type AvailableSlotsResponse struct {
	DoctorID    uuid.UUID `json:"doctor_id"`
	Date        string    `json:"date"`
	SlotMinutes int       `json:"slot_minutes"`
	Slots       []string  `json:"slots"`
	Total       int       `json:"total"`
}
