package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientStatus represents the lifecycle state of a patient record
type PatientStatus string

const (
	PatientStatusActive     PatientStatus = "active"
	PatientStatusDischarged PatientStatus = "discharged"
	PatientStatusDeceased   PatientStatus = "deceased"
)

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Patient represents a registered patient. HumanID is the display identifier
// (P-<year>-<seq>), distinct from the internal uuid.
type Patient struct {
	ID                    uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HumanID               string        `gorm:"type:varchar(20);uniqueIndex;not null" json:"human_id"`
	FirstName             string        `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName              string        `gorm:"type:varchar(100);not null" json:"last_name"`
	DateOfBirth           time.Time     `gorm:"type:date;not null" json:"date_of_birth"`
	Gender                string        `gorm:"type:varchar(10);not null" json:"gender"`
	Email                 string        `gorm:"type:varchar(255);index" json:"email,omitempty"`
	Phone                 string        `gorm:"type:varchar(20);index" json:"phone,omitempty"`
	Address               string        `gorm:"type:text" json:"address,omitempty"`
	EmergencyContactName  string        `gorm:"type:varchar(200)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string        `gorm:"type:varchar(20)" json:"emergency_contact_phone,omitempty"`
	BloodGroup            string        `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	Allergies             string        `gorm:"type:text" json:"allergies,omitempty"`
	MedicalHistory        string        `gorm:"type:text" json:"medical_history,omitempty"`
	InsuranceProvider     string        `gorm:"type:varchar(100)" json:"insurance_provider,omitempty"`
	InsuranceNumber       string        `gorm:"type:varchar(50)" json:"insurance_number,omitempty"`
	Status                PatientStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	RegisteredAt          time.Time     `gorm:"type:date;not null" json:"registered_at"`
	CreatedAt             time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// IsActive reports whether the patient can be booked.
func (p *Patient) IsActive() bool {
	return p.Status == PatientStatusActive
}

// PatientFilter is a domain-level filter for querying patients.
type PatientFilter struct {
	Search string // matches name, human id, phone or email
	Status PatientStatus
}
