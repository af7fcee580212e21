package repository

import (
	"fmt"

	"hearingheroes/internal/database"
)

// MaintenanceRepository handles bulk-clear operations across collections
type MaintenanceRepository struct {
	db *database.DB
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *database.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// ClearPracticeData deletes all results and sessions, leaving preferences
// untouched. Both collections are cleared in one transaction.
func (r *MaintenanceRepository) ClearPracticeData() error {
	return r.clearTables("practice_results", "practice_sessions")
}

// ClearAll deletes everything including preferences
func (r *MaintenanceRepository) ClearAll() error {
	return r.clearTables("practice_results", "practice_sessions", "preferences")
}

func (r *MaintenanceRepository) clearTables(tables ...string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, table := range tables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	return tx.Commit()
}
