package repository

import (
	"path/filepath"
	"testing"
	"time"

	"hearingheroes/internal/database"
	"hearingheroes/internal/models"
)

// setupTestDB creates a migrated sqlite database in a temp directory
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func testResult(id, sessionID string, ts time.Time) *models.PracticeResult {
	return &models.PracticeResult{
		ID:              id,
		SessionID:       sessionID,
		WordPairID:      "pear-bear",
		TargetWord:      "pear",
		SelectedWord:    "bear",
		IsCorrect:       false,
		ResponseTimeMs:  1200,
		Timestamp:       ts,
		ContrastType:    models.ContrastPlosiveVoicedUnvoiced,
		DifficultyLevel: 2,
	}
}

func TestResultSaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResultRepository(db)

	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	result := testResult("r1", "s1", ts)
	if err := repo.Save(result); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.GetByID("r1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("stored result not found")
	}
	if got.SessionID != "s1" || got.TargetWord != "pear" || got.IsCorrect {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
	if !got.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, ts)
	}
}

func TestResultGetByIDAbsent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResultRepository(db)

	got, err := repo.GetByID("nope")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != nil {
		t.Error("absent id should return nil result and nil error")
	}
}

func TestResultSaveOverwrites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResultRepository(db)

	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	result := testResult("r1", "s1", ts)
	if err := repo.Save(result); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	result.SelectedWord = "pear"
	result.IsCorrect = true
	if err := repo.Save(result); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	all, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len = %d, want 1 (same id overwrites)", len(all))
	}
	if !all[0].IsCorrect {
		t.Error("overwrite did not take effect")
	}
}

func TestResultQuery(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResultRepository(db)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	seed := []*models.PracticeResult{
		testResult("r1", "s1", base),
		testResult("r2", "s1", base.Add(2*time.Hour)),
		testResult("r3", "s1", base.Add(1*time.Hour)),
		testResult("r4", "s2", base.Add(3*time.Hour)),
	}
	seed[3].ContrastType = models.ContrastLateralRhotic
	seed[3].DifficultyLevel = 4
	for _, r := range seed {
		if err := repo.Save(r); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	t.Run("by session newest first", func(t *testing.T) {
		got, err := repo.Query(models.ResultQuery{SessionID: "s1"})
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		wantOrder := []string{"r2", "r3", "r1"}
		if len(got) != len(wantOrder) {
			t.Fatalf("len = %d, want %d", len(got), len(wantOrder))
		}
		for i, id := range wantOrder {
			if got[i].ID != id {
				t.Errorf("got[%d] = %s, want %s", i, got[i].ID, id)
			}
		}
	})

	t.Run("session wins over other filters", func(t *testing.T) {
		// The extra filters select r4, but only the session filter is used
		got, err := repo.Query(models.ResultQuery{
			SessionID:       "s1",
			ContrastType:    models.ContrastLateralRhotic,
			DifficultyLevel: 4,
		})
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if len(got) != 3 {
			t.Errorf("len = %d, want 3 (sessionId is the only index used)", len(got))
		}
	})

	t.Run("by contrast", func(t *testing.T) {
		got, err := repo.Query(models.ResultQuery{ContrastType: models.ContrastLateralRhotic})
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "r4" {
			t.Errorf("got %+v, want r4 only", got)
		}
	})

	t.Run("by level", func(t *testing.T) {
		got, err := repo.Query(models.ResultQuery{DifficultyLevel: 2})
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if len(got) != 3 {
			t.Errorf("len = %d, want 3", len(got))
		}
	})

	t.Run("inclusive date bounds", func(t *testing.T) {
		start := base.Add(1 * time.Hour)
		end := base.Add(2 * time.Hour)
		got, err := repo.Query(models.ResultQuery{StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		// Boundary timestamps are included
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].ID != "r2" || got[1].ID != "r3" {
			t.Errorf("got %s,%s, want r2,r3", got[0].ID, got[1].ID)
		}
	})

	t.Run("offset then limit", func(t *testing.T) {
		got, err := repo.Query(models.ResultQuery{SessionID: "s1", Offset: 1, Limit: 1})
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "r3" {
			t.Errorf("got %+v, want r3", got)
		}
	})

	t.Run("offset past the end", func(t *testing.T) {
		got, err := repo.Query(models.ResultQuery{SessionID: "s1", Offset: 10})
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})
}

func TestSessionSaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	session := &models.PracticeSession{
		ID:                    "s1",
		StartTime:             start,
		DifficultyLevel:       2,
		TotalPractices:        5,
		CorrectPractices:      4,
		AverageResponseTimeMs: 1375.5,
		ContrastTypes: []models.ContrastType{
			models.ContrastPlosiveVoicedUnvoiced,
			models.ContrastLateralRhotic,
		},
	}
	if err := repo.Save(session); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.GetByID("s1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("stored session not found")
	}
	if got.EndTime != nil {
		t.Error("active session should come back with nil EndTime")
	}
	if got.AverageResponseTimeMs != 1375.5 {
		t.Errorf("AverageResponseTimeMs = %f", got.AverageResponseTimeMs)
	}
	if len(got.ContrastTypes) != 2 || got.ContrastTypes[1] != models.ContrastLateralRhotic {
		t.Errorf("ContrastTypes = %v", got.ContrastTypes)
	}

	// End it and save again: same row, now with EndTime
	end := start.Add(10 * time.Minute)
	session.EndTime = &end
	if err := repo.Save(session); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err = repo.GetByID("s1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.EndTime == nil || !got.EndTime.Equal(end) {
		t.Errorf("EndTime = %v, want %v", got.EndTime, end)
	}

	all, _ := repo.GetAll()
	if len(all) != 1 {
		t.Errorf("len = %d, want 1", len(all))
	}
}

func TestSessionGetByLevel(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for _, s := range []*models.PracticeSession{
		{ID: "a", StartTime: start, DifficultyLevel: 1},
		{ID: "b", StartTime: start, DifficultyLevel: 2},
		{ID: "c", StartTime: start, DifficultyLevel: 2},
	} {
		if err := repo.Save(s); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	got, err := repo.GetByLevel(2)
	if err != nil {
		t.Fatalf("GetByLevel failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestPreferencesRoundtrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPreferencesRepository(db)

	got, err := repo.GetByID("default")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != nil {
		t.Fatal("absent preferences should be nil")
	}

	prefs := models.DefaultPreferences("default")
	prefs.ParentPINHash = "hash"
	prefs.LastUpdated = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	if err := repo.Save(prefs); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err = repo.GetByID("default")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("stored preferences not found")
	}
	if got.ChildName != prefs.ChildName || got.MusicVolume != prefs.MusicVolume {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
	if got.ParentPINHash != "hash" {
		t.Errorf("ParentPINHash = %q", got.ParentPINHash)
	}

	// Overwrite by id
	prefs.ChildName = "Alex"
	if err := repo.Save(prefs); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	all, _ := repo.GetAll()
	if len(all) != 1 || all[0].ChildName != "Alex" {
		t.Errorf("overwrite failed: %+v", all)
	}
}

func TestMaintenanceClears(t *testing.T) {
	db := setupTestDB(t)
	results := NewResultRepository(db)
	sessions := NewSessionRepository(db)
	preferences := NewPreferencesRepository(db)
	maintenance := NewMaintenanceRepository(db)

	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	results.Save(testResult("r1", "s1", ts))
	sessions.Save(&models.PracticeSession{ID: "s1", StartTime: ts, DifficultyLevel: 1})
	prefs := models.DefaultPreferences("default")
	prefs.LastUpdated = ts
	preferences.Save(prefs)

	if err := maintenance.ClearPracticeData(); err != nil {
		t.Fatalf("ClearPracticeData failed: %v", err)
	}
	if rs, _ := results.GetAll(); len(rs) != 0 {
		t.Error("results not cleared")
	}
	if ss, _ := sessions.GetAll(); len(ss) != 0 {
		t.Error("sessions not cleared")
	}
	if p, _ := preferences.GetByID("default"); p == nil {
		t.Error("preferences must survive ClearPracticeData")
	}

	if err := maintenance.ClearAll(); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}
	if p, _ := preferences.GetByID("default"); p != nil {
		t.Error("preferences not cleared by ClearAll")
	}
}
