package models

import "time"

// PracticeResult is one discrimination attempt. Results are immutable once
// written; they are only ever bulk-cleared, never updated or deleted one at
// a time.
type PracticeResult struct {
	ID              string       `json:"id"`
	SessionID       string       `json:"sessionId"`
	WordPairID      string       `json:"wordPairId"`
	TargetWord      string       `json:"targetWord"`
	SelectedWord    string       `json:"selectedWord"`
	IsCorrect       bool         `json:"isCorrect"`
	ResponseTimeMs  int          `json:"responseTimeMs"`
	Timestamp       time.Time    `json:"timestamp"`
	ContrastType    ContrastType `json:"contrastType"`
	DifficultyLevel int          `json:"difficultyLevel"`
}

// PracticeSession is one play session at a fixed difficulty level.
// EndTime is nil while the session is active and set exactly once when it
// ends; a session whose EndTime never gets set (page closed mid-session) is
// an expected artifact, not corrected automatically.
type PracticeSession struct {
	ID                    string         `json:"id"`
	StartTime             time.Time      `json:"startTime"`
	EndTime               *time.Time     `json:"endTime"`
	DifficultyLevel       int            `json:"difficultyLevel"`
	TotalPractices        int            `json:"totalPractices"`
	CorrectPractices      int            `json:"correctPractices"`
	AverageResponseTimeMs float64        `json:"averageResponseTimeMs"`
	ContrastTypes         []ContrastType `json:"contrastTypes"`
}

// Completed reports whether the session has been properly ended
func (s *PracticeSession) Completed() bool {
	return s.EndTime != nil
}

// Accuracy returns the session's correct percentage, 0 if nothing practiced
func (s *PracticeSession) Accuracy() float64 {
	if s.TotalPractices == 0 {
		return 0
	}
	return float64(s.CorrectPractices) / float64(s.TotalPractices) * 100
}

// AddContrastType records a contrast category for the session, skipping
// duplicates
func (s *PracticeSession) AddContrastType(ct ContrastType) {
	for _, existing := range s.ContrastTypes {
		if existing == ct {
			return
		}
	}
	s.ContrastTypes = append(s.ContrastTypes, ct)
}

// ResultQuery filters practice results. At most one of SessionID,
// ContrastType and DifficultyLevel is resolved through an index, in that
// order of precedence; date bounds are applied afterwards in memory.
// A zero DifficultyLevel means "not filtered"; a zero Limit means no limit.
type ResultQuery struct {
	SessionID       string
	ContrastType    ContrastType
	DifficultyLevel int
	StartDate       *time.Time
	EndDate         *time.Time
	Limit           int
	Offset          int
}

// ContrastStatistics summarizes results for one contrast category
type ContrastStatistics struct {
	ContrastType          ContrastType `json:"contrastType"`
	TotalPractices        int          `json:"totalPractices"`
	CorrectPractices      int          `json:"correctPractices"`
	AccuracyPercentage    float64      `json:"accuracyPercentage"`
	AverageResponseTimeMs float64      `json:"averageResponseTimeMs"`
}

// LevelProgress is accuracy at one difficulty level
type LevelProgress struct {
	Level    int     `json:"level"`
	Accuracy float64 `json:"accuracy"`
}

// OverallStatistics is the dashboard's aggregate view across all stored
// sessions and results. TotalSessions counts only completed sessions;
// practice counts include results from sessions that were never ended,
// since those are real user actions.
type OverallStatistics struct {
	TotalSessions         int                  `json:"totalSessions"`
	TotalPractices        int                  `json:"totalPractices"`
	CorrectPractices      int                  `json:"correctPractices"`
	AccuracyPercentage    float64              `json:"accuracyPercentage"`
	AverageResponseTimeMs float64              `json:"averageResponseTimeMs"`
	ContrastStatistics    []ContrastStatistics `json:"contrastStatistics"`
	ProgressByLevel       []LevelProgress      `json:"progressByLevel"`
	LastSessionTimestamp  *time.Time           `json:"lastSessionTimestamp"`
}
