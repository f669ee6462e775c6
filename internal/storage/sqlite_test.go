package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file was not created: %v", err)
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	first, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	first.SaveScore("flappy", 17)
	first.RecordBest("flappy", 17)
	first.Close()

	// Reopening must not re-run applied migrations.
	second, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	runs, err := second.TopScores("flappy", 0)
	if err != nil || len(runs) != 1 || runs[0].Score != 17 {
		t.Errorf("TopScores() after reopen = %v, %v", runs, err)
	}
	if best, _ := second.BestScore("flappy"); best != 17 {
		t.Errorf("best after reopen = %d, expected 17", best)
	}
}

func TestStoreRunTimestamps(t *testing.T) {
	store := openTestStore(t)
	played := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	store.now = func() time.Time { return played }

	if _, err := store.SaveScore("flappy", 3); err != nil {
		t.Fatal(err)
	}
	runs, err := store.TopScores("flappy", 1)
	if err != nil || len(runs) != 1 {
		t.Fatalf("TopScores() = %v, %v", runs, err)
	}
	if !runs[0].PlayedAt.Equal(played) || runs[0].GameID != "flappy" {
		t.Errorf("run = %+v, expected flappy played at %v", runs[0], played)
	}
	stats, _ := store.Stats("flappy")
	if !stats.LastPlayed.Equal(played) {
		t.Errorf("LastPlayed = %v, expected %v", stats.LastPlayed, played)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("flappy", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("flappy_classic", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	for i, expected := range []int{200, 100, 50} {
		if scores[i].Score != expected {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, expected)
		}
	}
	if scores[0].PlayedAt.IsZero() {
		t.Error("PlayedAt should be set")
	}

	classic, err := store.TopScores("flappy_classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classic))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("flappy", (i+1)*10)
	}

	scores, err := store.TopScores("flappy", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("flappy")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for an unplayed game, got %d", best)
	}

	steps := []struct {
		record   int
		expected int
	}{
		{12, 12},
		{7, 12},
		{30, 30},
		{30, 30},
	}
	for _, step := range steps {
		if err := store.RecordBest("flappy", step.record); err != nil {
			t.Fatalf("RecordBest(%d) failed: %v", step.record, err)
		}
		best, err := store.BestScore("flappy")
		if err != nil {
			t.Fatalf("BestScore() failed: %v", err)
		}
		if best != step.expected {
			t.Errorf("after RecordBest(%d) best = %d, expected %d", step.record, best, step.expected)
		}
	}

	if other, _ := store.BestScore("flappy_classic"); other != 0 {
		t.Errorf("best scores must be per game, got %d", other)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("flappy", 100)
	store.SaveScore("flappy", 200)
	store.RecordBest("flappy", 200)
	store.SaveScore("flappy_classic", 300)

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("flappy", 10); len(scores) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(scores))
	}
	if best, _ := store.BestScore("flappy"); best != 200 {
		t.Errorf("best should survive a clear, got %d", best)
	}
	if stats, _ := store.Stats("flappy"); stats.Runs != 0 || stats.Best != 200 {
		t.Errorf("stats after clear = %+v, expected no runs and best 200", stats)
	}
	if scores, _ := store.TopScores("flappy_classic", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing flappy")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.Best != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	store.SaveScore("flappy", 4)
	store.SaveScore("flappy", 8)
	store.RecordBest("flappy", 15)

	stats, err := store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", stats.Runs)
	}
	if stats.Average != 6 {
		t.Errorf("Average = %v, expected 6", stats.Average)
	}
	if stats.Best != 15 {
		t.Errorf("Best = %d, expected the stored best 15", stats.Best)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestBestForStore(t *testing.T) {
	store := openTestStore(t)
	flappy := BestFor(store, "flappy")
	classic := BestFor(store, "flappy_classic")

	if err := flappy.WriteBest(9); err != nil {
		t.Fatalf("WriteBest() failed: %v", err)
	}
	if err := flappy.WriteBest(3); err != nil {
		t.Fatalf("WriteBest() failed: %v", err)
	}

	if best, err := flappy.ReadBest(); err != nil || best != 9 {
		t.Errorf("ReadBest() = %d, %v; expected 9", best, err)
	}
	if best, err := classic.ReadBest(); err != nil || best != 0 {
		t.Errorf("classic ReadBest() = %d, %v; expected 0", best, err)
	}
}
