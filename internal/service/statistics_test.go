package service

import (
	"testing"
	"time"

	"hearingheroes/internal/models"
)

func result(ct models.ContrastType, level int, correct bool, rt int) models.PracticeResult {
	return models.PracticeResult{
		ContrastType:    ct,
		DifficultyLevel: level,
		IsCorrect:       correct,
		ResponseTimeMs:  rt,
	}
}

func TestBuildOverallStatisticsEmpty(t *testing.T) {
	stats := buildOverallStatistics(nil, nil)

	if stats.TotalSessions != 0 || stats.TotalPractices != 0 {
		t.Errorf("empty input should yield zero totals: %+v", stats)
	}
	if stats.AccuracyPercentage != 0 || stats.AverageResponseTimeMs != 0 {
		t.Error("empty input should not divide by zero")
	}
	if stats.LastSessionTimestamp != nil {
		t.Error("LastSessionTimestamp should be nil with no sessions")
	}
	if len(stats.ContrastStatistics) != 0 || len(stats.ProgressByLevel) != 0 {
		t.Error("empty input should yield empty groupings")
	}
}

func TestBuildOverallStatistics(t *testing.T) {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	early := base.Add(1 * time.Hour)
	late := base.Add(5 * time.Hour)

	sessions := []models.PracticeSession{
		{ID: "s1", StartTime: base, EndTime: &early},
		{ID: "zombie", StartTime: base}, // never ended
		{ID: "s2", StartTime: base, EndTime: &late},
	}
	results := []models.PracticeResult{
		result(models.ContrastLateralRhotic, 1, true, 1000),
		result(models.ContrastLateralRhotic, 1, false, 2000),
		result(models.ContrastPlosiveVoicedUnvoiced, 2, true, 3000),
	}

	stats := buildOverallStatistics(sessions, results)

	if stats.TotalSessions != 2 {
		t.Errorf("TotalSessions = %d, want 2 (zombie excluded)", stats.TotalSessions)
	}
	if stats.TotalPractices != 3 || stats.CorrectPractices != 2 {
		t.Errorf("practices = %d/%d, want 2/3", stats.CorrectPractices, stats.TotalPractices)
	}
	wantAccuracy := 200.0 / 3.0
	if diff := stats.AccuracyPercentage - wantAccuracy; diff < -0.001 || diff > 0.001 {
		t.Errorf("AccuracyPercentage = %f, want %f", stats.AccuracyPercentage, wantAccuracy)
	}
	if stats.AverageResponseTimeMs != 2000 {
		t.Errorf("AverageResponseTimeMs = %f, want 2000", stats.AverageResponseTimeMs)
	}
	if stats.LastSessionTimestamp == nil || !stats.LastSessionTimestamp.Equal(late) {
		t.Errorf("LastSessionTimestamp = %v, want %v", stats.LastSessionTimestamp, late)
	}
}

func TestBuildContrastStatisticsOrder(t *testing.T) {
	results := []models.PracticeResult{
		result(models.ContrastLateralRhotic, 1, true, 500),
		result(models.ContrastPlosiveVoicedUnvoiced, 1, false, 700),
		result(models.ContrastLateralRhotic, 1, false, 900),
	}

	groups := buildContrastStatistics(results)
	if len(groups) != 2 {
		t.Fatalf("len = %d, want 2", len(groups))
	}
	// First-encountered contrast comes first
	if groups[0].ContrastType != models.ContrastLateralRhotic {
		t.Errorf("groups[0] = %q, want lateral-rhotic", groups[0].ContrastType)
	}
	if groups[0].TotalPractices != 2 || groups[0].CorrectPractices != 1 {
		t.Errorf("lateral-rhotic counts = %d/%d", groups[0].CorrectPractices, groups[0].TotalPractices)
	}
	if groups[0].AccuracyPercentage != 50 {
		t.Errorf("AccuracyPercentage = %f, want 50", groups[0].AccuracyPercentage)
	}
	if groups[0].AverageResponseTimeMs != 700 {
		t.Errorf("AverageResponseTimeMs = %f, want 700", groups[0].AverageResponseTimeMs)
	}
}

func TestBuildLevelProgressAscending(t *testing.T) {
	results := []models.PracticeResult{
		result(models.ContrastLateralRhotic, 3, true, 100),
		result(models.ContrastLateralRhotic, 1, false, 100),
		result(models.ContrastLateralRhotic, 2, true, 100),
		result(models.ContrastLateralRhotic, 1, true, 100),
	}

	progress := buildLevelProgress(results)
	if len(progress) != 3 {
		t.Fatalf("len = %d, want 3", len(progress))
	}
	for i, want := range []int{1, 2, 3} {
		if progress[i].Level != want {
			t.Errorf("progress[%d].Level = %d, want %d", i, progress[i].Level, want)
		}
	}
	if progress[0].Accuracy != 50 {
		t.Errorf("level 1 accuracy = %f, want 50", progress[0].Accuracy)
	}
	if progress[1].Accuracy != 100 {
		t.Errorf("level 2 accuracy = %f, want 100", progress[1].Accuracy)
	}
}
