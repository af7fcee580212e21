package repository

import (
	"database/sql"
	"sort"

	"hearingheroes/internal/database"
	"hearingheroes/internal/models"
)

// resultColumns is the canonical column order for practice_results
var resultColumns = []string{
	"id", "session_id", "word_pair_id", "target_word", "selected_word",
	"is_correct", "response_time_ms", "timestamp", "contrast_type",
	"difficulty_level",
}

const selectResults = `
	SELECT id, session_id, word_pair_id, target_word, selected_word,
	       is_correct, response_time_ms, timestamp, contrast_type,
	       difficulty_level
	FROM practice_results
`

// ResultRepository is the practice-results collection of the record store
type ResultRepository struct {
	db *database.DB
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *database.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Save inserts or overwrites a result by its id. No referential check is
// made on SessionID; storage errors propagate verbatim.
func (r *ResultRepository) Save(result *models.PracticeResult) error {
	return r.db.Upsert("practice_results", resultColumns, "id",
		result.ID,
		result.SessionID,
		result.WordPairID,
		result.TargetWord,
		result.SelectedWord,
		result.IsCorrect,
		result.ResponseTimeMs,
		result.Timestamp,
		result.ContrastType,
		result.DifficultyLevel,
	)
}

// GetByID retrieves a result by id, returning (nil, nil) when absent
func (r *ResultRepository) GetByID(id string) (*models.PracticeResult, error) {
	row := r.db.QueryRow(selectResults+" WHERE id = ?", id)

	result, err := scanResult(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetAll retrieves every stored result, in no particular order
func (r *ResultRepository) GetAll() ([]models.PracticeResult, error) {
	rows, err := r.db.Query(selectResults)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanResults(rows)
}

// Query retrieves results matching the filter. Exactly one indexed column
// is consulted, chosen by precedence sessionId > contrastType >
// difficultyLevel > none; date bounds are then applied in memory (inclusive),
// results sorted newest first, and offset/limit applied in that order.
func (r *ResultRepository) Query(q models.ResultQuery) ([]models.PracticeResult, error) {
	query := selectResults
	var args []interface{}

	switch {
	case q.SessionID != "":
		query += " WHERE session_id = ?"
		args = append(args, q.SessionID)
	case q.ContrastType != "":
		query += " WHERE contrast_type = ?"
		args = append(args, q.ContrastType)
	case q.DifficultyLevel != 0:
		query += " WHERE difficulty_level = ?"
		args = append(args, q.DifficultyLevel)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results, err := scanResults(rows)
	if err != nil {
		return nil, err
	}

	// Date bounds the index can't answer
	if q.StartDate != nil || q.EndDate != nil {
		filtered := results[:0]
		for _, result := range results {
			if q.StartDate != nil && result.Timestamp.Before(*q.StartDate) {
				continue
			}
			if q.EndDate != nil && result.Timestamp.After(*q.EndDate) {
				continue
			}
			filtered = append(filtered, result)
		}
		results = filtered
	}

	// Newest first
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Timestamp.After(results[j].Timestamp)
	})

	if q.Offset > 0 {
		if q.Offset >= len(results) {
			results = nil
		} else {
			results = results[q.Offset:]
		}
	}
	if q.Limit > 0 && len(results) > q.Limit {
		results = results[:q.Limit]
	}

	return results, nil
}

// DeleteAll removes every stored result
func (r *ResultRepository) DeleteAll() error {
	_, err := r.db.Exec("DELETE FROM practice_results")
	return err
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanResult(row rowScanner) (*models.PracticeResult, error) {
	result := &models.PracticeResult{}
	err := row.Scan(
		&result.ID,
		&result.SessionID,
		&result.WordPairID,
		&result.TargetWord,
		&result.SelectedWord,
		&result.IsCorrect,
		&result.ResponseTimeMs,
		&result.Timestamp,
		&result.ContrastType,
		&result.DifficultyLevel,
	)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func scanResults(rows *sql.Rows) ([]models.PracticeResult, error) {
	var results []models.PracticeResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, rows.Err()
}
