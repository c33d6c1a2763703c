package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		score    float64
		cleared  int
		duration int
	}{
		{1200.5, 12, 40},
		{300, 2, 11},
		{2200.25, 20, 75},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.score, r.cleared, r.duration); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("TopRuns(2) returned %d entries", len(top))
	}
	if top[0].Score != 2200.25 || top[1].Score != 1200.5 {
		t.Errorf("TopRuns order wrong: %v, %v", top[0].Score, top[1].Score)
	}
	if top[0].Cleared != 20 || top[0].Duration != 75 {
		t.Errorf("run fields not persisted: %+v", top[0])
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("empty store HighScore = %v, want 0", hs)
	}

	store.SaveRun(500, 5, 20)
	store.SaveRun(1500.5, 14, 50)
	store.SaveRun(900, 8, 30)

	hs, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 1500.5 {
		t.Errorf("HighScore = %v, want 1500.5", hs)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(100, 1, 5)
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("runs remain after clear: %d", len(top))
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
