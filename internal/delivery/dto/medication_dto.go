package dto

import "time"

// Request DTOs

type CreateMedicationRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	Form         string `json:"form" validate:"required"`
	Strength     string `json:"strength" validate:"omitempty"`
	Manufacturer string `json:"manufacturer" validate:"omitempty"`
}

type UpdateMedicationRequest struct {
	Name         string  `json:"name" validate:"omitempty,min=2"`
	Form         string  `json:"form" validate:"omitempty"`
	Strength     *string `json:"strength" validate:"omitempty"`
	Manufacturer *string `json:"manufacturer" validate:"omitempty"`
	IsActive     *bool   `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type MedicationResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Form         string    `json:"form"`
	Strength     string    `json:"strength,omitempty"`
	Manufacturer string    `json:"manufacturer,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MedicationListResponse struct {
	Medications []MedicationResponse `json:"medications"`
	Total       int                  `json:"total"`
}
