package service

import (
	"sort"

	"hearingheroes/internal/models"
)

// buildOverallStatistics computes the aggregate dashboard view from full
// session and result sets. Pure: no store access, no caching.
//
// TotalSessions counts completed sessions only; practice counts cover every
// stored result, including those from sessions that were never ended, since
// each result is a real user action.
func buildOverallStatistics(sessions []models.PracticeSession, results []models.PracticeResult) *models.OverallStatistics {
	stats := &models.OverallStatistics{
		TotalPractices: len(results),
	}

	for _, session := range sessions {
		if !session.Completed() {
			continue
		}
		stats.TotalSessions++
		if stats.LastSessionTimestamp == nil || session.EndTime.After(*stats.LastSessionTimestamp) {
			endTime := *session.EndTime
			stats.LastSessionTimestamp = &endTime
		}
	}

	totalResponseTime := 0
	for _, result := range results {
		if result.IsCorrect {
			stats.CorrectPractices++
		}
		totalResponseTime += result.ResponseTimeMs
	}
	if stats.TotalPractices > 0 {
		stats.AccuracyPercentage = float64(stats.CorrectPractices) / float64(stats.TotalPractices) * 100
		stats.AverageResponseTimeMs = float64(totalResponseTime) / float64(stats.TotalPractices)
	}

	stats.ContrastStatistics = buildContrastStatistics(results)
	stats.ProgressByLevel = buildLevelProgress(results)

	return stats
}

// buildContrastStatistics groups results by contrast type, keeping the
// order each type was first encountered
func buildContrastStatistics(results []models.PracticeResult) []models.ContrastStatistics {
	type contrastAgg struct {
		total             int
		correct           int
		totalResponseTime int
	}

	groups := make(map[models.ContrastType]*contrastAgg)
	var order []models.ContrastType

	for _, result := range results {
		agg, ok := groups[result.ContrastType]
		if !ok {
			agg = &contrastAgg{}
			groups[result.ContrastType] = agg
			order = append(order, result.ContrastType)
		}
		agg.total++
		if result.IsCorrect {
			agg.correct++
		}
		agg.totalResponseTime += result.ResponseTimeMs
	}

	contrastStats := make([]models.ContrastStatistics, 0, len(order))
	for _, ct := range order {
		agg := groups[ct]
		contrastStats = append(contrastStats, models.ContrastStatistics{
			ContrastType:          ct,
			TotalPractices:        agg.total,
			CorrectPractices:      agg.correct,
			AccuracyPercentage:    float64(agg.correct) / float64(agg.total) * 100,
			AverageResponseTimeMs: float64(agg.totalResponseTime) / float64(agg.total),
		})
	}
	return contrastStats
}

// buildLevelProgress groups results by difficulty level, ascending
func buildLevelProgress(results []models.PracticeResult) []models.LevelProgress {
	type levelAgg struct {
		total   int
		correct int
	}

	groups := make(map[int]*levelAgg)
	for _, result := range results {
		agg, ok := groups[result.DifficultyLevel]
		if !ok {
			agg = &levelAgg{}
			groups[result.DifficultyLevel] = agg
		}
		agg.total++
		if result.IsCorrect {
			agg.correct++
		}
	}

	progress := make([]models.LevelProgress, 0, len(groups))
	for level, agg := range groups {
		progress = append(progress, models.LevelProgress{
			Level:    level,
			Accuracy: float64(agg.correct) / float64(agg.total) * 100,
		})
	}

	sort.Slice(progress, func(i, j int) bool {
		return progress[i].Level < progress[j].Level
	})
	return progress
}
