package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

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

	for _, r := range []struct {
		score   int
		outcome string
	}{
		{10, OutcomeLost},
		{18, OutcomeCleared},
		{4, OutcomeLost},
	} {
		if _, err := store.SaveRound("invaders", r.score, r.outcome, 500); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.TopRounds("invaders", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}

	// Sorted by score descending.
	if rounds[0].Score != 18 || rounds[1].Score != 10 || rounds[2].Score != 4 {
		t.Errorf("Rounds not in expected order: %v", rounds)
	}
	if rounds[0].Outcome != OutcomeCleared {
		t.Errorf("Best round outcome = %q, expected cleared", rounds[0].Outcome)
	}
	if rounds[0].Ticks != 500 {
		t.Errorf("Ticks = %d, expected 500", rounds[0].Ticks)
	}
}

func TestStoreTopRoundsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRound("invaders", (i+1)*2, OutcomeLost, 100)
	}

	rounds, err := store.TopRounds("invaders", 3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds with limit, got %d", len(rounds))
	}
	if rounds[0].Score != 10 || rounds[1].Score != 8 || rounds[2].Score != 6 {
		t.Errorf("Rounds not in expected order: %v", rounds)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRound("invaders", 6, OutcomeLost, 100)
	store.SaveRound("invaders", 18, OutcomeCleared, 900)
	store.SaveRound("invaders", 12, OutcomeLost, 400)

	high, err = store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 18 {
		t.Errorf("Expected high score of 18, got %d", high)
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound("invaders", 10, OutcomeLost, 100)
	store.SaveRound("invaders", 12, OutcomeLost, 100)
	store.SaveRound("other", 99, OutcomeCleared, 100)

	if err := store.ClearRounds("invaders"); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	rounds, _ := store.TopRounds("invaders", 10)
	if len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}

	other, _ := store.TopRounds("other", 10)
	if len(other) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("invaders")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 0 || stats.HighScore != 0 {
		t.Errorf("Empty stats = %+v", stats)
	}

	store.SaveRound("invaders", 10, OutcomeLost, 100)
	store.SaveRound("invaders", 18, OutcomeCleared, 800)
	store.SaveRound("invaders", 2, OutcomeLost, 50)

	stats, err = store.Stats("invaders")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 3 {
		t.Errorf("Rounds = %d, expected 3", stats.Rounds)
	}
	if stats.Cleared != 1 {
		t.Errorf("Cleared = %d, expected 1", stats.Cleared)
	}
	if stats.HighScore != 18 {
		t.Errorf("HighScore = %d, expected 18", stats.HighScore)
	}
	if stats.AvgScore != 10 {
		t.Errorf("AvgScore = %f, expected 10", stats.AvgScore)
	}
}

func TestStoreAllRounds(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveRound("invaders", i*2, OutcomeLost, 100)
	}

	rounds, err := store.AllRounds("invaders")
	if err != nil {
		t.Fatalf("AllRounds() failed: %v", err)
	}
	if len(rounds) != 20 {
		t.Errorf("Expected 20 rounds, got %d", len(rounds))
	}
}
