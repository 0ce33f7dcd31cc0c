package entity

import "time"

// Medication is a catalog entry consulted when prescribing.
type Medication struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(200);not null;index" json:"name"`
	Form         string    `gorm:"type:varchar(50);not null" json:"form"`
	Strength     string    `gorm:"type:varchar(50)" json:"strength,omitempty"`
	Manufacturer string    `gorm:"type:varchar(200)" json:"manufacturer,omitempty"`
	IsActive     bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Medication) TableName() string {
	return "medications"
}
