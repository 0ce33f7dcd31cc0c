package repository

import (
	domainRepo "hospital-admin-backend/internal/domain/repository"

	"gorm.io/gorm"
)

// nextSequenceQuery advances the (scope, year) counter atomically. The upsert
// contends on the row lock, so two transactions can never read the same value.
const nextSequenceQuery = `
INSERT INTO id_sequences (scope, year, value)
VALUES (?, ?, 1)
ON CONFLICT (scope, year)
DO UPDATE SET value = id_sequences.value + 1
RETURNING value`

type sequenceRepository struct{}

func NewSequenceRepository() domainRepo.SequenceRepository {
	return &sequenceRepository{}
}

func (r *sequenceRepository) Next(db *gorm.DB, scope string, year int) (int, error) {
	var value int
	err := db.Raw(nextSequenceQuery, scope, year).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}
