package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("shooter", 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("shooter")
	if err != nil || high != 42 {
		t.Errorf("Expected high score 42 after reopen, got %d (%v)", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("shooter", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("shooter_daily", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("shooter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("Expected score #%d to be %d, got %d", i+1, w, scores[i].Score)
		}
	}

	daily, err := store.TopScores("shooter_daily", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(daily) != 1 {
		t.Errorf("Expected 1 daily score, got %d", len(daily))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("shooter", (i+1)*100)
	}

	scores, err := store.TopScores("shooter", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("shooter", 100)
	store.SaveScore("shooter", 300)
	store.SaveScore("shooter", 200)

	high, err = store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("shooter", 100)
	store.SaveScore("shooter", 200)
	store.SaveScore("shooter_daily", 300)
	store.SaveRun("shooter", core.RunSummary{Seed: 1, Stage: 2, Score: 100})

	if err := store.ClearScores("shooter"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("shooter", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	runs, _ := store.RecentRuns("shooter", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	daily, _ := store.TopScores("shooter_daily", 10)
	if len(daily) != 1 {
		t.Errorf("Daily scores should not be affected by clearing shooter")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("shooter", i*10)
	}

	scores, err := store.AllScores("shooter")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	sum := core.RunSummary{Seed: 20261015, Stage: 7, Score: 412, Kills: 180, Duration: 95.5}
	id, err := store.SaveRun("shooter_daily", sum)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("Expected a UUID run ID, got %q", id)
	}

	r, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("Expected stored run")
	}
	if r.GameID != "shooter_daily" || r.Seed != sum.Seed || r.Stage != 7 || r.Score != 412 || r.Kills != 180 {
		t.Errorf("Unexpected run record %+v", r)
	}
	if r.Duration != 95500*time.Millisecond {
		t.Errorf("Expected duration 95.5s, got %v", r.Duration)
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("Expected nil for unknown run, got %+v (%v)", missing, err)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for i := 1; i <= 5; i++ {
		id, err := store.SaveRun("shooter", core.RunSummary{Seed: int64(i), Stage: i, Score: i * 10})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		ids = append(ids, id)
	}
	store.SaveRun("shooter_daily", core.RunSummary{Seed: 99})

	runs, err := store.RecentRuns("shooter", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	// Same-second inserts fall back to insertion order, newest first.
	if runs[0].ID != ids[4] || runs[2].ID != ids[2] {
		t.Errorf("Runs not newest first: %v", []string{runs[0].ID, runs[1].ID, runs[2].ID})
	}
	for _, r := range runs {
		if r.GameID != "shooter" {
			t.Errorf("Run from another game leaked: %+v", r)
		}
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("shooter", 100)
	store.SaveScore("shooter", 300)
	store.SaveRun("shooter", core.RunSummary{Stage: 4, Kills: 90})
	store.SaveRun("shooter", core.RunSummary{Stage: 9, Kills: 310})

	stats, err := store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("Unexpected score stats %+v", stats)
	}
	if stats.BestStage != 9 || stats.TotalKills != 400 {
		t.Errorf("Unexpected run stats %+v", stats)
	}

	empty, err := store.GetGameStats("shooter_daily")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}
}
