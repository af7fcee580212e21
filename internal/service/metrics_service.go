package service

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"hearingheroes/internal/models"
)

// ErrNoActiveSession is returned by RecordPractice when no session has been
// started. It always indicates a caller bug, never a transient condition.
var ErrNoActiveSession = errors.New("no active session: call StartSession first")

// ResultStore is the slice of the record store the aggregator reads and
// writes practice results through
type ResultStore interface {
	Save(result *models.PracticeResult) error
	GetAll() ([]models.PracticeResult, error)
	Query(q models.ResultQuery) ([]models.PracticeResult, error)
}

// SessionStore is the slice of the record store the aggregator reads and
// writes practice sessions through
type SessionStore interface {
	Save(session *models.PracticeSession) error
	GetByID(id string) (*models.PracticeSession, error)
	GetAll() ([]models.PracticeSession, error)
	GetByLevel(level int) ([]models.PracticeSession, error)
}

// PracticeInput is one discrimination attempt as reported by the game UI.
// The word pair may arrive incomplete; missing fields are filled with
// placeholders rather than rejecting the attempt.
type PracticeInput struct {
	WordPair       models.WordPair
	SelectedWord   string
	TargetWord     string
	ResponseTimeMs int
}

// MetricsService owns the session lifecycle and all statistic computation.
// It holds at most one current session; construct one per game instance and
// inject it, there is no shared default.
type MetricsService struct {
	mu       sync.Mutex
	current  *models.PracticeSession
	results  ResultStore
	sessions SessionStore
}

// NewMetricsService creates a metrics service with no current session
func NewMetricsService(results ResultStore, sessions SessionStore) *MetricsService {
	return &MetricsService{
		results:  results,
		sessions: sessions,
	}
}

// StartSession creates and persists a new session at the given difficulty
// level and makes it current, replacing any prior in-memory handle. A prior
// session that was never ended keeps its nil end time in the store; ending
// it remains the caller's responsibility. Returns the new session id.
func (s *MetricsService) StartSession(difficultyLevel int) (string, error) {
	session := &models.PracticeSession{
		ID:              uuid.New().String(),
		StartTime:       time.Now(),
		EndTime:         nil,
		DifficultyLevel: difficultyLevel,
	}

	if err := s.sessions.Save(session); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	return session.ID, nil
}

// EndSession stamps the current session's end time, persists it and clears
// the current slot, returning a copy of the finalized session. With no
// current session it returns (nil, nil), so calling it twice is safe.
// The current slot is cleared even when the persist fails, so a write error
// cannot leave a zombie in-memory session behind.
func (s *MetricsService) EndSession() (*models.PracticeSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, nil
	}

	now := time.Now()
	s.current.EndTime = &now

	err := s.sessions.Save(s.current)
	completed := copySession(s.current)
	s.current = nil

	if err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return completed, nil
}

// RecordPractice records one attempt against the current session. The
// result is persisted first, then the session's rolling counters are
// updated in memory and persisted; the two writes are not atomic, so a
// failed session write leaves the result durably stored and the in-memory
// counters already advanced (no rollback). In that case both the created
// result and the error are returned.
func (s *MetricsService) RecordPractice(input PracticeInput) (*models.PracticeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoActiveSession
	}

	pair := NormalizeWordPair(input.WordPair, s.current.DifficultyLevel)

	// Correctness is derived from the raw words before placeholder
	// substitution
	isCorrect := input.SelectedWord == input.TargetWord

	targetWord := input.TargetWord
	if targetWord == "" {
		targetWord = "unknown_target"
	}
	selectedWord := input.SelectedWord
	if selectedWord == "" {
		selectedWord = "unknown_selected"
	}
	responseTime := input.ResponseTimeMs
	if responseTime < 0 {
		responseTime = 0
	}

	result := &models.PracticeResult{
		ID:              uuid.New().String(),
		SessionID:       s.current.ID,
		WordPairID:      pair.ID,
		TargetWord:      targetWord,
		SelectedWord:    selectedWord,
		IsCorrect:       isCorrect,
		ResponseTimeMs:  responseTime,
		Timestamp:       time.Now(),
		ContrastType:    pair.ContrastType,
		DifficultyLevel: pair.DifficultyLevel,
	}

	if err := s.results.Save(result); err != nil {
		return nil, fmt.Errorf("failed to save practice result: %w", err)
	}

	s.current.TotalPractices++
	if isCorrect {
		s.current.CorrectPractices++
	}
	n := float64(s.current.TotalPractices)
	s.current.AverageResponseTimeMs = (s.current.AverageResponseTimeMs*(n-1) + float64(responseTime)) / n
	s.current.AddContrastType(pair.ContrastType)

	if err := s.sessions.Save(s.current); err != nil {
		return result, fmt.Errorf("failed to save session counters: %w", err)
	}

	return result, nil
}

// GetCurrentSession returns a copy of the current session, nil if none
func (s *MetricsService) GetCurrentSession() *models.PracticeSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	return copySession(s.current)
}

// RestoreSession returns the current session id if one exists, otherwise
// starts a new session at the given level
func (s *MetricsService) RestoreSession(difficultyLevel int) (string, error) {
	s.mu.Lock()
	if s.current != nil {
		id := s.current.ID
		s.mu.Unlock()
		return id, nil
	}
	s.mu.Unlock()

	return s.StartSession(difficultyLevel)
}

// GetOverallStatistics recomputes the full aggregate view from the stored
// session and result sets. Nothing is cached; repeated calls without
// intervening writes return identical results.
func (s *MetricsService) GetOverallStatistics() (*models.OverallStatistics, error) {
	sessions, err := s.sessions.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	results, err := s.results.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}

	return buildOverallStatistics(sessions, results), nil
}

// GetPracticeResults retrieves results matching the filter
func (s *MetricsService) GetPracticeResults(q models.ResultQuery) ([]models.PracticeResult, error) {
	return s.results.Query(q)
}

// GetAllSessions retrieves every stored session
func (s *MetricsService) GetAllSessions() ([]models.PracticeSession, error) {
	return s.sessions.GetAll()
}

// GetSession retrieves one session by id, (nil, nil) when absent
func (s *MetricsService) GetSession(id string) (*models.PracticeSession, error) {
	return s.sessions.GetByID(id)
}

// GetSessionsByLevel retrieves sessions at one difficulty level
func (s *MetricsService) GetSessionsByLevel(level int) ([]models.PracticeSession, error) {
	return s.sessions.GetByLevel(level)
}

// GetContrastAccuracy returns the correct percentage across all results of
// one contrast type, 0 if there are none
func (s *MetricsService) GetContrastAccuracy(contrastType models.ContrastType) (float64, error) {
	results, err := s.results.Query(models.ResultQuery{ContrastType: contrastType})
	if err != nil {
		return 0, err
	}

	if len(results) == 0 {
		return 0, nil
	}

	correct := 0
	for _, result := range results {
		if result.IsCorrect {
			correct++
		}
	}
	return float64(correct) / float64(len(results)) * 100, nil
}

// GetRecentSessions returns up to limit completed sessions, newest first.
// Sessions that were never properly ended are excluded.
func (s *MetricsService) GetRecentSessions(limit int) ([]models.PracticeSession, error) {
	sessions, err := s.sessions.GetAll()
	if err != nil {
		return nil, err
	}

	completed := make([]models.PracticeSession, 0, len(sessions))
	for _, session := range sessions {
		if session.Completed() {
			completed = append(completed, session)
		}
	}

	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].EndTime.After(*completed[j].EndTime)
	})

	if limit > 0 && len(completed) > limit {
		completed = completed[:limit]
	}
	return completed, nil
}

// copySession returns a deep copy so callers never share the mutable
// current-session object
func copySession(session *models.PracticeSession) *models.PracticeSession {
	copied := *session
	if session.EndTime != nil {
		endTime := *session.EndTime
		copied.EndTime = &endTime
	}
	copied.ContrastTypes = append([]models.ContrastType(nil), session.ContrastTypes...)
	return &copied
}
