package service

import (
	"errors"
	"fmt"
	"time"

	"hearingheroes/internal/models"
	"hearingheroes/internal/security"
)

// ErrInvalidPIN is returned when a parent PIN check fails.
var ErrInvalidPIN = errors.New("invalid parent PIN")

// PreferencesStore is the persistence surface the preferences service needs.
type PreferencesStore interface {
	Save(prefs *models.Preferences) error
	GetByID(id string) (*models.Preferences, error)
}

// MaintenanceStore clears stored practice data.
type MaintenanceStore interface {
	ClearPracticeData() error
	ClearAll() error
}

// PreferencesService loads and saves child profile preferences. A missing
// profile is always replaced with defaults so callers never see nil.
type PreferencesService struct {
	store       PreferencesStore
	maintenance MaintenanceStore
}

// NewPreferencesService creates a new preferences service.
func NewPreferencesService(store PreferencesStore, maintenance MaintenanceStore) *PreferencesService {
	return &PreferencesService{
		store:       store,
		maintenance: maintenance,
	}
}

// Load returns the preferences for a profile, falling back to defaults when
// none are stored yet. The defaults are persisted on first load.
func (s *PreferencesService) Load(profileID string) (*models.Preferences, error) {
	prefs, err := s.store.GetByID(profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	if prefs != nil {
		return prefs, nil
	}

	prefs = models.DefaultPreferences(profileID)
	if err := s.store.Save(prefs); err != nil {
		return nil, fmt.Errorf("failed to save default preferences: %w", err)
	}
	return prefs, nil
}

// Save persists preferences, stamping LastUpdated. The PIN hash is preserved
// from the stored record so a settings update cannot clear parent auth.
func (s *PreferencesService) Save(prefs *models.Preferences) error {
	existing, err := s.store.GetByID(prefs.ID)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	if existing != nil {
		prefs.ParentPINHash = existing.ParentPINHash
	}

	prefs.LastUpdated = time.Now()
	if err := s.store.Save(prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// Reset restores a profile to default preferences, keeping the parent PIN.
func (s *PreferencesService) Reset(profileID string) (*models.Preferences, error) {
	existing, err := s.store.GetByID(profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	prefs := models.DefaultPreferences(profileID)
	if existing != nil {
		prefs.ParentPINHash = existing.ParentPINHash
	}
	if err := s.store.Save(prefs); err != nil {
		return nil, fmt.Errorf("failed to reset preferences: %w", err)
	}
	return prefs, nil
}

// SetParentPIN hashes and stores a new parent PIN for the profile.
func (s *PreferencesService) SetParentPIN(profileID, pin string) error {
	prefs, err := s.Load(profileID)
	if err != nil {
		return err
	}

	hash, err := security.HashParentPIN(pin)
	if err != nil {
		return err
	}

	prefs.ParentPINHash = hash
	prefs.LastUpdated = time.Now()
	if err := s.store.Save(prefs); err != nil {
		return fmt.Errorf("failed to save parent PIN: %w", err)
	}
	return nil
}

// VerifyParentPIN checks a PIN against the stored hash. When no PIN has been
// set the check passes, matching the first-run experience before setup.
func (s *PreferencesService) VerifyParentPIN(profileID, pin string) error {
	prefs, err := s.Load(profileID)
	if err != nil {
		return err
	}
	if prefs.ParentPINHash == "" {
		return nil
	}
	if !security.CheckParentPIN(prefs.ParentPINHash, pin) {
		return ErrInvalidPIN
	}
	return nil
}

// ClearPracticeData removes all practice results and sessions while keeping
// preferences intact.
func (s *PreferencesService) ClearPracticeData() error {
	if err := s.maintenance.ClearPracticeData(); err != nil {
		return fmt.Errorf("failed to clear practice data: %w", err)
	}
	return nil
}

// ResetAllData wipes results, sessions and preferences.
func (s *PreferencesService) ResetAllData() error {
	if err := s.maintenance.ClearAll(); err != nil {
		return fmt.Errorf("failed to reset data: %w", err)
	}
	return nil
}
