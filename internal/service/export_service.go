package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"hearingheroes/internal/models"
)

// ExportService writes practice data as CSV for parents and audiologists.
type ExportService struct {
	metrics *MetricsService
}

// NewExportService creates a new export service.
func NewExportService(metrics *MetricsService) *ExportService {
	return &ExportService{metrics: metrics}
}

// WriteSessionReport writes a single session as CSV: a summary block followed
// by one row per practice result.
func (s *ExportService) WriteSessionReport(w io.Writer, sessionID string) error {
	session, err := s.metrics.GetSession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return fmt.Errorf("session %s not found", sessionID)
	}

	results, err := s.metrics.GetPracticeResults(models.ResultQuery{SessionID: sessionID})
	if err != nil {
		return fmt.Errorf("failed to load session results: %w", err)
	}

	cw := csv.NewWriter(w)

	summary := [][]string{
		{"Session Report"},
		{"Session ID", session.ID},
		{"Start Time", session.StartTime.Format(time.RFC3339)},
		{"End Time", formatEndTime(session.EndTime)},
		{"Difficulty Level", strconv.Itoa(session.DifficultyLevel)},
		{"Total Practices", strconv.Itoa(session.TotalPractices)},
		{"Correct Practices", strconv.Itoa(session.CorrectPractices)},
		{"Accuracy", fmt.Sprintf("%.1f%%", session.Accuracy())},
		{"Average Response Time (ms)", fmt.Sprintf("%.0f", session.AverageResponseTimeMs)},
		{},
	}
	for _, row := range summary {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	header := []string{"Timestamp", "Target Word", "Selected Word", "Correct", "Response Time (ms)", "Contrast Type", "Level"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Timestamp.Format(time.RFC3339),
			r.TargetWord,
			r.SelectedWord,
			strconv.FormatBool(r.IsCorrect),
			strconv.Itoa(r.ResponseTimeMs),
			r.ContrastType.DisplayName(),
			strconv.Itoa(r.DifficultyLevel),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write result row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteProgressReport writes overall statistics as CSV: totals, then accuracy
// per contrast type, then progress per level.
func (s *ExportService) WriteProgressReport(w io.Writer) error {
	stats, err := s.metrics.GetOverallStatistics()
	if err != nil {
		return fmt.Errorf("failed to load statistics: %w", err)
	}

	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Progress Report"},
		{"Generated", time.Now().Format(time.RFC3339)},
		{"Total Sessions", strconv.Itoa(stats.TotalSessions)},
		{"Total Practices", strconv.Itoa(stats.TotalPractices)},
		{"Correct Practices", strconv.Itoa(stats.CorrectPractices)},
		{"Overall Accuracy", fmt.Sprintf("%.1f%%", stats.AccuracyPercentage)},
		{"Average Response Time (ms)", fmt.Sprintf("%.0f", stats.AverageResponseTimeMs)},
		{},
		{"Contrast Type", "Practices", "Correct", "Accuracy", "Avg Response Time (ms)"},
	}
	for _, ct := range stats.ContrastStatistics {
		rows = append(rows, []string{
			ct.ContrastType.DisplayName(),
			strconv.Itoa(ct.TotalPractices),
			strconv.Itoa(ct.CorrectPractices),
			fmt.Sprintf("%.1f%%", ct.AccuracyPercentage),
			fmt.Sprintf("%.0f", ct.AverageResponseTimeMs),
		})
	}

	rows = append(rows, []string{}, []string{"Level", "Accuracy"})
	for _, lvl := range stats.ProgressByLevel {
		rows = append(rows, []string{
			strconv.Itoa(lvl.Level),
			fmt.Sprintf("%.1f%%", lvl.Accuracy),
		})
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatEndTime(t *time.Time) string {
	if t == nil {
		return "in progress"
	}
	return t.Format(time.RFC3339)
}
