package repository

import "gorm.io/gorm"

type SequenceRepository interface {
	// Next atomically advances and returns the counter for (scope, year).
	// Call it inside the transaction that inserts the row carrying the id so
	// a failed insert does not burn a number on commit.
	Next(db *gorm.DB, scope string, year int) (int, error)
}
