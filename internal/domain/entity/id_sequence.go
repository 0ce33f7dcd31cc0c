package entity

// Human-id scopes. Each scope counts independently per calendar year.
const (
	SequenceScopeAppointment   = "appointment"
	SequenceScopePatient       = "patient"
	SequenceScopeMedicalRecord = "medical_record"
)

// Human-id prefixes, rendered as <prefix>-<year>-<zero-padded seq>.
const (
	HumanIDPrefixAppointment   = "APT"
	HumanIDPrefixPatient       = "P"
	HumanIDPrefixMedicalRecord = "MR"
)

// IDSequence backs the sequential human-readable identifiers. The value is
// advanced with an atomic upsert inside the same transaction that inserts
// the row carrying the id.
type IDSequence struct {
	Scope string `gorm:"type:varchar(30);primaryKey" json:"scope"`
	Year  int    `gorm:"primaryKey" json:"year"`
	Value int    `gorm:"not null" json:"value"`
}

func (IDSequence) TableName() string {
	return "id_sequences"
}
