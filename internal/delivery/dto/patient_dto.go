package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPatientRequest struct {
	FirstName             string `json:"first_name" validate:"required,min=2"`
	LastName              string `json:"last_name" validate:"required,min=2"`
	DateOfBirth           string `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	Gender                string `json:"gender" validate:"required,oneof=male female other"`
	Email                 string `json:"email" validate:"omitempty,email"`
	Phone                 string `json:"phone" validate:"omitempty,min=7,max=20"`
	Address               string `json:"address" validate:"omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name" validate:"omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone" validate:"omitempty,min=7,max=20"`
	BloodGroup            string `json:"blood_group" validate:"omitempty"`
	Allergies             string `json:"allergies" validate:"omitempty"`
	MedicalHistory        string `json:"medical_history" validate:"omitempty"`
	InsuranceProvider     string `json:"insurance_provider" validate:"omitempty"`
	InsuranceNumber       string `json:"insurance_number" validate:"omitempty"`
}

type UpdatePatientRequest struct {
	FirstName             string  `json:"first_name" validate:"omitempty,min=2"`
	LastName              string  `json:"last_name" validate:"omitempty,min=2"`
	DateOfBirth           string  `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender                string  `json:"gender" validate:"omitempty,oneof=male female other"`
	Email                 *string `json:"email" validate:"omitempty"`
	Phone                 *string `json:"phone" validate:"omitempty"`
	Address               *string `json:"address" validate:"omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name" validate:"omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone" validate:"omitempty"`
	BloodGroup            *string `json:"blood_group" validate:"omitempty"`
	Allergies             *string `json:"allergies" validate:"omitempty"`
	MedicalHistory        *string `json:"medical_history" validate:"omitempty"`
	InsuranceProvider     *string `json:"insurance_provider" validate:"omitempty"`
	InsuranceNumber       *string `json:"insurance_number" validate:"omitempty"`
	Status                string  `json:"status" validate:"omitempty,oneof=active discharged deceased"`
}

// Response DTOs

type PatientResponse struct {
	ID                    uuid.UUID `json:"id"`
	HumanID               string    `json:"human_id"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	DateOfBirth           string    `json:"date_of_birth"`
	Gender                string    `json:"gender"`
	Email                 string    `json:"email,omitempty"`
	Phone                 string    `json:"phone,omitempty"`
	Address               string    `json:"address,omitempty"`
	EmergencyContactName  string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `json:"emergency_contact_phone,omitempty"`
	BloodGroup            string    `json:"blood_group,omitempty"`
	Allergies             string    `json:"allergies,omitempty"`
	MedicalHistory        string    `json:"medical_history,omitempty"`
	InsuranceProvider     string    `json:"insurance_provider,omitempty"`
	InsuranceNumber       string    `json:"insurance_number,omitempty"`
	Status                string    `json:"status"`
	RegisteredAt          string    `json:"registered_at"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
