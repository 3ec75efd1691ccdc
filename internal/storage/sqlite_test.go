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

func run(gameID string, score, size int) ScoreEntry {
	return ScoreEntry{GameID: gameID, Score: score, BoardW: size, BoardH: size, Placed: score / 10, Cleared: score / 20}
}

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []ScoreEntry{
		run("spiralfill", 100, 9),
		run("spiralfill", 50, 9),
		run("spiralfill", 200, 15),
		run("spiralfill_open", 500, 9),
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("spiralfill", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
	}
	if scores[0].BoardSize() != "15x15" {
		t.Errorf("BoardSize() = %q, expected 15x15", scores[0].BoardSize())
	}
	if scores[0].Placed != 20 || scores[0].Cleared != 10 {
		t.Errorf("placed/cleared = %d/%d, expected 20/10", scores[0].Placed, scores[0].Cleared)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	open, err := store.TopScores("spiralfill_open", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(open) != 1 || open[0].Score != 500 {
		t.Errorf("open scores = %+v, expected one score of 500", open)
	}
}

func TestStoreSaveRequiresGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(ScoreEntry{Score: 10}); err == nil {
		t.Error("SaveScore without a game id should fail")
	}
}

func TestStoreTopScoresLimitAndSize(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 12; i++ {
		size := 9
		if i%3 == 0 {
			size = 5
		}
		store.SaveScore(run("spiralfill", i*10, size))
	}

	top, err := store.TopScores("spiralfill", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("len(TopScores(5)) = %d, expected 5", len(top))
	}

	small, err := store.TopScoresBySize("spiralfill", 5, 10)
	if err != nil {
		t.Fatalf("TopScoresBySize() failed: %v", err)
	}
	if len(small) != 4 {
		t.Fatalf("len(TopScoresBySize(5)) = %d, expected 4", len(small))
	}
	if small[0].Score != 90 {
		t.Errorf("best 5x5 score = %d, expected 90", small[0].Score)
	}

	all, err := store.AllScores("spiralfill")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 12 {
		t.Errorf("len(AllScores) = %d, expected 12", len(all))
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("spiralfill")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty store = %d, expected 0", high)
	}

	store.SaveScore(run("spiralfill", 70, 9))
	store.SaveScore(run("spiralfill", 300, 9))
	if high, _ = store.HighScore("spiralfill"); high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}

	if err := store.ClearScores("spiralfill"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	scores, _ := store.TopScores("spiralfill", 10)
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("spiralfill")
	if err != nil {
		t.Fatalf("GetGameStats() on empty store failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore(run("spiralfill", 100, 9))
	store.SaveScore(run("spiralfill", 300, 25))
	store.SaveScore(run("spiralfill_open", 40, 5))

	stats, err := store.GetGameStats("spiralfill")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalCleared != 20 {
		t.Errorf("TotalCleared = %d, expected 20", stats.TotalCleared)
	}
	if stats.LargestBoard != 25 {
		t.Errorf("LargestBoard = %d, expected 25", stats.LargestBoard)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("len(GetAllGamesStats) = %d, expected 2", len(all))
	}
	if all["spiralfill_open"] == nil || all["spiralfill_open"].HighScore != 40 {
		t.Errorf("open stats = %+v", all["spiralfill_open"])
	}
}
