package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"hearingheroes/internal/models"
	"hearingheroes/internal/repository"
)

// BackupData is the complete backup structure written to disk
type BackupData struct {
	Version     string                   `json:"version"`
	ExportedAt  time.Time                `json:"exported_at"`
	Results     []models.PracticeResult  `json:"results"`
	Sessions    []models.PracticeSession `json:"sessions"`
	Preferences []models.Preferences     `json:"preferences"`
}

// BackupService exports and restores all stored data as JSON
type BackupService struct {
	results     *repository.ResultRepository
	sessions    *repository.SessionRepository
	preferences *repository.PreferencesRepository
}

// NewBackupService creates a new backup service
func NewBackupService(results *repository.ResultRepository, sessions *repository.SessionRepository, preferences *repository.PreferencesRepository) *BackupService {
	return &BackupService{
		results:     results,
		sessions:    sessions,
		preferences: preferences,
	}
}

// Export writes a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting data export...")

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return err
	}

	log.Printf("Data exported successfully to %s", outputPath)
	return nil
}

// ExportToWriter exports all data as indented JSON to an io.Writer
func (s *BackupService) ExportToWriter(w io.Writer) error {
	backup, err := s.collect()
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Exported: %d results, %d sessions, %d preference profiles",
		len(backup.Results), len(backup.Sessions), len(backup.Preferences))
	return nil
}

// Import restores data from a backup file. Records are upserted, so an
// import over existing data overwrites matching ids.
func (s *BackupService) Import(inputPath string) error {
	log.Printf("Starting data import from %s...", inputPath)

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores data from a backup reader (for file uploads)
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	var backup BackupData
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	log.Printf("Importing %d sessions...", len(backup.Sessions))
	for i := range backup.Sessions {
		if err := s.sessions.Save(&backup.Sessions[i]); err != nil {
			return fmt.Errorf("failed to import session %s: %w", backup.Sessions[i].ID, err)
		}
	}

	log.Printf("Importing %d results...", len(backup.Results))
	for i := range backup.Results {
		if err := s.results.Save(&backup.Results[i]); err != nil {
			return fmt.Errorf("failed to import result %s: %w", backup.Results[i].ID, err)
		}
	}

	log.Printf("Importing %d preference profiles...", len(backup.Preferences))
	for i := range backup.Preferences {
		if err := s.preferences.Save(&backup.Preferences[i]); err != nil {
			return fmt.Errorf("failed to import preferences %s: %w", backup.Preferences[i].ID, err)
		}
	}

	log.Println("Data import completed successfully")
	return nil
}

func (s *BackupService) collect() (*BackupData, error) {
	backup := &BackupData{
		Version:    "1.0",
		ExportedAt: time.Now(),
	}

	results, err := s.results.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to export results: %w", err)
	}
	backup.Results = results

	sessions, err := s.sessions.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to export sessions: %w", err)
	}
	backup.Sessions = sessions

	preferences, err := s.preferences.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to export preferences: %w", err)
	}
	backup.Preferences = preferences

	return backup, nil
}
