package repository

import (
	"database/sql"
	"strings"

	"hearingheroes/internal/database"
	"hearingheroes/internal/models"
)

// sessionColumns is the canonical column order for practice_sessions
var sessionColumns = []string{
	"id", "start_time", "end_time", "difficulty_level", "total_practices",
	"correct_practices", "average_response_time_ms", "contrast_types",
}

const selectSessions = `
	SELECT id, start_time, end_time, difficulty_level, total_practices,
	       correct_practices, average_response_time_ms, contrast_types
	FROM practice_sessions
`

// SessionRepository is the practice-sessions collection of the record store
type SessionRepository struct {
	db *database.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Save inserts or overwrites a session by its id
func (r *SessionRepository) Save(session *models.PracticeSession) error {
	var endTime interface{}
	if session.EndTime != nil {
		endTime = *session.EndTime
	}

	return r.db.Upsert("practice_sessions", sessionColumns, "id",
		session.ID,
		session.StartTime,
		endTime,
		session.DifficultyLevel,
		session.TotalPractices,
		session.CorrectPractices,
		session.AverageResponseTimeMs,
		joinContrastTypes(session.ContrastTypes),
	)
}

// GetByID retrieves a session by id, returning (nil, nil) when absent
func (r *SessionRepository) GetByID(id string) (*models.PracticeSession, error) {
	row := r.db.QueryRow(selectSessions+" WHERE id = ?", id)

	session, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// GetAll retrieves every stored session, in no particular order
func (r *SessionRepository) GetAll() ([]models.PracticeSession, error) {
	rows, err := r.db.Query(selectSessions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

// GetByLevel retrieves sessions at one difficulty level via its index
func (r *SessionRepository) GetByLevel(level int) ([]models.PracticeSession, error) {
	rows, err := r.db.Query(selectSessions+" WHERE difficulty_level = ?", level)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

// DeleteAll removes every stored session
func (r *SessionRepository) DeleteAll() error {
	_, err := r.db.Exec("DELETE FROM practice_sessions")
	return err
}

func scanSession(row rowScanner) (*models.PracticeSession, error) {
	session := &models.PracticeSession{}
	var endTime sql.NullTime
	var contrastTypes string

	err := row.Scan(
		&session.ID,
		&session.StartTime,
		&endTime,
		&session.DifficultyLevel,
		&session.TotalPractices,
		&session.CorrectPractices,
		&session.AverageResponseTimeMs,
		&contrastTypes,
	)
	if err != nil {
		return nil, err
	}

	if endTime.Valid {
		session.EndTime = &endTime.Time
	}
	session.ContrastTypes = splitContrastTypes(contrastTypes)

	return session, nil
}

func scanSessions(rows *sql.Rows) ([]models.PracticeSession, error) {
	var sessions []models.PracticeSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}
	return sessions, rows.Err()
}

// joinContrastTypes packs the session's contrast set into one column
func joinContrastTypes(types []models.ContrastType) string {
	if len(types) == 0 {
		return ""
	}
	values := make([]string, len(types))
	for i, ct := range types {
		values[i] = string(ct)
	}
	return strings.Join(values, ",")
}

// splitContrastTypes unpacks the contrast_types column
func splitContrastTypes(value string) []models.ContrastType {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	types := make([]models.ContrastType, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			types = append(types, models.ContrastType(part))
		}
	}
	return types
}
