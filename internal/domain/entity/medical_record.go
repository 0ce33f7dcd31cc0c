package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord is one versioned visit note. Updates never mutate in place:
// a new row is written with Version+1 and PreviousVersionID chaining back.
type MedicalRecord struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HumanID           string     `gorm:"type:varchar(20);index;not null" json:"human_id"`
	PatientID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	VisitDate         time.Time  `gorm:"type:date;not null;index" json:"visit_date"`
	VisitType         string     `gorm:"type:varchar(50);not null" json:"visit_type"`
	ChiefComplaint    string     `gorm:"type:text" json:"chief_complaint,omitempty"`
	Diagnosis         string     `gorm:"type:text" json:"diagnosis,omitempty"`
	TreatmentPlan     string     `gorm:"type:text" json:"treatment_plan,omitempty"`
	Notes             string     `gorm:"type:text" json:"notes,omitempty"`
	VitalSigns        JSON       `gorm:"type:jsonb" json:"vital_signs,omitempty"`
	Version           int        `gorm:"not null;default:1" json:"version"`
	PreviousVersionID *uuid.UUID `gorm:"type:uuid" json:"previous_version_id,omitempty"`
	CreatedBy         uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient       Patient        `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor        User           `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Prescriptions []Prescription `gorm:"foreignKey:MedicalRecordID" json:"prescriptions,omitempty"`
	LabResults    []LabResult    `gorm:"foreignKey:MedicalRecordID" json:"lab_results,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

// MedicalRecordFilter is a domain-level filter for querying records.
type MedicalRecordFilter struct {
	PatientID uuid.UUID
	DoctorID  uuid.UUID
}

// Prescription is a medication order attached to a medical record.
type Prescription struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MedicalRecordID uuid.UUID `gorm:"type:uuid;not null;index" json:"medical_record_id"`
	MedicationName  string    `gorm:"type:varchar(200);not null" json:"medication_name"`
	Dosage          string    `gorm:"type:varchar(100);not null" json:"dosage"`
	Frequency       string    `gorm:"type:varchar(100);not null" json:"frequency"`
	Duration        string    `gorm:"type:varchar(100)" json:"duration,omitempty"`
	Instructions    string    `gorm:"type:text" json:"instructions,omitempty"`
	PrescribedBy    uuid.UUID `gorm:"type:uuid;not null" json:"prescribed_by"`
	PrescribedAt    time.Time `gorm:"autoCreateTime" json:"prescribed_at"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// LabResult is a laboratory finding attached to a medical record.
type LabResult struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MedicalRecordID uuid.UUID `gorm:"type:uuid;not null;index" json:"medical_record_id"`
	TestName        string    `gorm:"type:varchar(200);not null" json:"test_name"`
	TestResult      string    `gorm:"type:text;not null" json:"test_result"`
	TestDate        time.Time `gorm:"type:date;not null" json:"test_date"`
	LabName         string    `gorm:"type:varchar(200)" json:"lab_name,omitempty"`
	FilePath        string    `gorm:"type:text" json:"file_path,omitempty"`
	UploadedAt      time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (LabResult) TableName() string {
	return "lab_results"
}
