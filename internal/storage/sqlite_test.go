package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreHighScoreDefaultsToZero(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(GameID)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}
}

func TestStoreSaveHighScoreOnlyRaises(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		save int
		want int
	}{
		{1500, 1500},
		{900, 1500},
		{1500, 1500},
		{2750, 2750},
		{0, 2750},
	}

	for _, tc := range tests {
		got, err := store.SaveHighScore(GameID, tc.save)
		if err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", tc.save, err)
		}
		if got != tc.want {
			t.Errorf("SaveHighScore(%d) = %d, expected %d", tc.save, got, tc.want)
		}
	}

	high, err := store.HighScore(GameID)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 2750 {
		t.Errorf("Expected persisted high score 2750, got %d", high)
	}
}

func TestStoreHighScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveHighScore(GameID, 4200); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("re-Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore(GameID)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 4200 {
		t.Errorf("Expected 4200 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []ScoreEntry{
		{Difficulty: "easy", Score: 100, Level: 1},
		{Difficulty: "easy", Score: 50, Level: 1},
		{Difficulty: "hard", Score: 900, Level: 3},
		{Difficulty: "easy", Score: 200, Level: 2},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different game
	if _, err := store.SaveScore(ScoreEntry{GameID: "other", Score: 5000}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	all, err := store.TopScores(GameID, "", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(all))
	}
	if all[0].Score != 900 || all[0].Difficulty != "hard" || all[0].Level != 3 {
		t.Errorf("Expected hard run 900 at level 3 first, got %+v", all[0])
	}

	easy, err := store.TopScores(GameID, "easy", 10)
	if err != nil {
		t.Fatalf("TopScores(easy) failed: %v", err)
	}
	if len(easy) != 3 {
		t.Fatalf("Expected 3 easy scores, got %d", len(easy))
	}

	// Should be sorted descending
	if easy[0].Score != 200 || easy[1].Score != 100 || easy[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", easy)
	}
	if easy[0].GameID != GameID {
		t.Errorf("Expected default game ID %q, got %q", GameID, easy[0].GameID)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := range 5 {
		store.SaveScore(ScoreEntry{Difficulty: "easy", Score: (i + 1) * 100})
	}

	// Request only top 3
	scores, err := store.TopScores(GameID, "", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreSaveScoreNormalizesLevel(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(ScoreEntry{Score: 10}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	scores, err := store.TopScores(GameID, "", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Level != 1 {
		t.Errorf("Expected level to default to 1, got %+v", scores)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{Score: 100})
	store.SaveScore(ScoreEntry{Score: 200})
	store.SaveScore(ScoreEntry{GameID: "other", Score: 300})
	store.SaveHighScore(GameID, 200)

	if err := store.ClearScores(GameID); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(GameID, "", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if high, _ := store.HighScore(GameID); high != 0 {
		t.Errorf("Expected high score reset to 0, got %d", high)
	}

	otherScores, _ := store.TopScores("other", "", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other game scores should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats(GameID)
	if err != nil {
		t.Fatalf("GetGameStats() on empty store failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveScore(ScoreEntry{Difficulty: "easy", Score: 100, Level: 1})
	store.SaveScore(ScoreEntry{Difficulty: "hard", Score: 300, Level: 4})
	// Quit mid-game can leave a high score above every finished run
	store.SaveHighScore(GameID, 450)

	stats, err := store.GetGameStats(GameID)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 450 {
		t.Errorf("HighScore = %d, expected 450", stats.HighScore)
	}
	if stats.BestLevel != 4 {
		t.Errorf("BestLevel = %d, expected 4", stats.BestLevel)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, expected 400", stats.TotalScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
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
