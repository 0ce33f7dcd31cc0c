package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMedicalRecordRequest struct {
	PatientID      uuid.UUID              `json:"patient_id" validate:"required"`
	DoctorID       uuid.UUID              `json:"doctor_id" validate:"required"`
	VisitDate      string                 `json:"visit_date" validate:"required"` // Format: YYYY-MM-DD
	VisitType      string                 `json:"visit_type" validate:"required"`
	ChiefComplaint string                 `json:"chief_complaint" validate:"omitempty"`
	Diagnosis      string                 `json:"diagnosis" validate:"omitempty"`
	TreatmentPlan  string                 `json:"treatment_plan" validate:"omitempty"`
	Notes          string                 `json:"notes" validate:"omitempty"`
	VitalSigns     map[string]interface{} `json:"vital_signs" validate:"omitempty"`
}

type UpdateMedicalRecordRequest struct {
	VisitType      string                 `json:"visit_type" validate:"omitempty"`
	ChiefComplaint *string                `json:"chief_complaint" validate:"omitempty"`
	Diagnosis      *string                `json:"diagnosis" validate:"omitempty"`
	TreatmentPlan  *string                `json:"treatment_plan" validate:"omitempty"`
	Notes          *string                `json:"notes" validate:"omitempty"`
	VitalSigns     map[string]interface{} `json:"vital_signs" validate:"omitempty"`
}

type AddPrescriptionRequest struct {
	MedicationName string `json:"medication_name" validate:"required"`
	Dosage         string `json:"dosage" validate:"required"`
	Frequency      string `json:"frequency" validate:"required"`
	Duration       string `json:"duration" validate:"omitempty"`
	Instructions   string `json:"instructions" validate:"omitempty"`
}

type AddLabResultRequest struct {
	TestName   string `json:"test_name" validate:"required"`
	TestResult string `json:"test_result" validate:"required"`
	TestDate   string `json:"test_date" validate:"required"` // Format: YYYY-MM-DD
	LabName    string `json:"lab_name" validate:"omitempty"`
	FilePath   string `json:"file_path" validate:"omitempty"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID                uuid.UUID              `json:"id"`
	HumanID           string                 `json:"human_id"`
	PatientID         uuid.UUID              `json:"patient_id"`
	Patient           *PatientResponse       `json:"patient,omitempty"`
	DoctorID          uuid.UUID              `json:"doctor_id"`
	Doctor            *UserResponse          `json:"doctor,omitempty"`
	VisitDate         string                 `json:"visit_date"`
	VisitType         string                 `json:"visit_type"`
	ChiefComplaint    string                 `json:"chief_complaint,omitempty"`
	Diagnosis         string                 `json:"diagnosis,omitempty"`
	TreatmentPlan     string                 `json:"treatment_plan,omitempty"`
	Notes             string                 `json:"notes,omitempty"`
	VitalSigns        map[string]interface{} `json:"vital_signs,omitempty"`
	Version           int                    `json:"version"`
	PreviousVersionID *uuid.UUID             `json:"previous_version_id,omitempty"`
	CreatedBy         uuid.UUID              `json:"created_by"`
	Prescriptions     []PrescriptionResponse `json:"prescriptions,omitempty"`
	LabResults        []LabResultResponse    `json:"lab_results,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}

type PrescriptionResponse struct {
	ID             int64     `json:"id"`
	MedicationName string    `json:"medication_name"`
	Dosage         string    `json:"dosage"`
	Frequency      string    `json:"frequency"`
	Duration       string    `json:"duration,omitempty"`
	Instructions   string    `json:"instructions,omitempty"`
	PrescribedBy   uuid.UUID `json:"prescribed_by"`
	PrescribedAt   time.Time `json:"prescribed_at"`
}

type LabResultResponse struct {
	ID         int64     `json:"id"`
	TestName   string    `json:"test_name"`
	TestResult string    `json:"test_result"`
	TestDate   string    `json:"test_date"`
	LabName    string    `json:"lab_name,omitempty"`
	FilePath   string    `json:"file_path,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}
