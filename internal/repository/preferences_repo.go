package repository

import (
	"database/sql"

	"hearingheroes/internal/database"
	"hearingheroes/internal/models"
)

// preferencesColumns is the canonical column order for preferences
var preferencesColumns = []string{
	"id", "child_name", "is_audio_enabled", "is_music_enabled",
	"music_volume", "current_level", "max_session_minutes",
	"difficulty_multiplier", "enable_animations", "show_level_selection",
	"require_parent_auth", "parent_pin_hash", "last_updated",
}

const selectPreferences = `
	SELECT id, child_name, is_audio_enabled, is_music_enabled,
	       music_volume, current_level, max_session_minutes,
	       difficulty_multiplier, enable_animations, show_level_selection,
	       require_parent_auth, parent_pin_hash, last_updated
	FROM preferences
`

// PreferencesRepository is the preferences collection of the record store
type PreferencesRepository struct {
	db *database.DB
}

// NewPreferencesRepository creates a new preferences repository
func NewPreferencesRepository(db *database.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// Save inserts or overwrites a preferences record by its id
func (r *PreferencesRepository) Save(prefs *models.Preferences) error {
	return r.db.Upsert("preferences", preferencesColumns, "id",
		prefs.ID,
		prefs.ChildName,
		prefs.IsAudioEnabled,
		prefs.IsMusicEnabled,
		prefs.MusicVolume,
		prefs.CurrentLevel,
		prefs.MaxSessionMinutes,
		prefs.DifficultyMultiplier,
		prefs.EnableAnimations,
		prefs.ShowLevelSelection,
		prefs.RequireParentAuth,
		prefs.ParentPINHash,
		prefs.LastUpdated,
	)
}

// GetByID retrieves a preferences record by id, returning (nil, nil) when absent
func (r *PreferencesRepository) GetByID(id string) (*models.Preferences, error) {
	prefs := &models.Preferences{}
	err := r.db.QueryRow(selectPreferences+" WHERE id = ?", id).Scan(
		&prefs.ID,
		&prefs.ChildName,
		&prefs.IsAudioEnabled,
		&prefs.IsMusicEnabled,
		&prefs.MusicVolume,
		&prefs.CurrentLevel,
		&prefs.MaxSessionMinutes,
		&prefs.DifficultyMultiplier,
		&prefs.EnableAnimations,
		&prefs.ShowLevelSelection,
		&prefs.RequireParentAuth,
		&prefs.ParentPINHash,
		&prefs.LastUpdated,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return prefs, nil
}

// GetAll retrieves every stored preferences record
func (r *PreferencesRepository) GetAll() ([]models.Preferences, error) {
	rows, err := r.db.Query(selectPreferences)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Preferences
	for rows.Next() {
		prefs := models.Preferences{}
		err := rows.Scan(
			&prefs.ID,
			&prefs.ChildName,
			&prefs.IsAudioEnabled,
			&prefs.IsMusicEnabled,
			&prefs.MusicVolume,
			&prefs.CurrentLevel,
			&prefs.MaxSessionMinutes,
			&prefs.DifficultyMultiplier,
			&prefs.EnableAnimations,
			&prefs.ShowLevelSelection,
			&prefs.RequireParentAuth,
			&prefs.ParentPINHash,
			&prefs.LastUpdated,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, prefs)
	}

	return records, rows.Err()
}

// DeleteAll removes every stored preferences record
func (r *PreferencesRepository) DeleteAll() error {
	_, err := r.db.Exec("DELETE FROM preferences")
	return err
}
