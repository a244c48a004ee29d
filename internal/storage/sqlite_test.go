package storage

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/vovakirdan/neon-rush/internal/progression"
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

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	snap := progression.Snapshot{
		Levels: map[int]progression.LevelBest{
			1: {BestDistance: 100, BestStars: 3, BestShards: 12, TimesPlayed: 4, FirstClearPaid: true},
			5: {BestDistance: 350, BestStars: 1, BestShards: 2, TimesPlayed: 1, FirstClearPaid: true},
		},
		Balance:            420,
		UnlockedZones:      []string{"vault", "spire"},
		UnlockedConstructs: []string{"prism"},
		Settings:           progression.Settings{SoundOn: false, HapticsOn: true},
	}

	if err := store.Save(snap); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.Balance != 420 {
		t.Errorf("Balance = %d, want 420", loaded.Balance)
	}
	if len(loaded.Levels) != 2 {
		t.Fatalf("Expected 2 level rows, got %d", len(loaded.Levels))
	}
	if loaded.Levels[1] != snap.Levels[1] {
		t.Errorf("Level 1 mismatch: %+v", loaded.Levels[1])
	}
	if loaded.Levels[5] != snap.Levels[5] {
		t.Errorf("Level 5 mismatch: %+v", loaded.Levels[5])
	}

	sort.Strings(loaded.UnlockedZones)
	if len(loaded.UnlockedZones) != 2 || loaded.UnlockedZones[0] != "spire" || loaded.UnlockedZones[1] != "vault" {
		t.Errorf("Zones mismatch: %v", loaded.UnlockedZones)
	}
	if len(loaded.UnlockedConstructs) != 1 || loaded.UnlockedConstructs[0] != "prism" {
		t.Errorf("Constructs mismatch: %v", loaded.UnlockedConstructs)
	}
	if loaded.Settings != snap.Settings {
		t.Errorf("Settings mismatch: %+v", loaded.Settings)
	}
}

func TestStoreSaveIdempotent(t *testing.T) {
	store := openTestStore(t)

	snap := progression.Snapshot{
		Levels: map[int]progression.LevelBest{
			3: {BestDistance: 300, BestStars: 2, TimesPlayed: 2},
		},
		Balance:       99,
		UnlockedZones: []string{"vault"},
		Settings:      progression.Settings{SoundOn: true, HapticsOn: true},
	}

	if err := store.Save(snap); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := store.Save(snap); err != nil {
		t.Fatalf("Second Save() failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(loaded.UnlockedZones) != 1 {
		t.Errorf("Expected 1 zone after double save, got %d", len(loaded.UnlockedZones))
	}
	if loaded.Balance != 99 {
		t.Errorf("Balance = %d, want 99", loaded.Balance)
	}
}

func TestStoreLoadEmpty(t *testing.T) {
	store := openTestStore(t)

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if snap.Balance != 0 || len(snap.Levels) != 0 || len(snap.UnlockedZones) != 0 {
		t.Errorf("Fresh database should load empty: %+v", snap)
	}
	// Sound and haptics default on
	if !snap.Settings.SoundOn || !snap.Settings.HapticsOn {
		t.Errorf("Default settings should be on: %+v", snap.Settings)
	}
}

func TestStoreRunHistory(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		level, score int
		distance     float64
		stars        int
		completed    bool
	}{
		{1, 100, 100, 1, true},
		{1, 250, 100, 3, true},
		{2, 80, 55, 0, false},
	}
	for _, r := range runs {
		if _, err := store.RecordRun(r.level, r.score, r.distance, r.stars, r.completed); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	entries, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(entries))
	}

	// Newest first
	if entries[0].Level != 2 || entries[0].Completed {
		t.Errorf("Newest run mismatch: %+v", entries[0])
	}

	best, err := store.BestScore(1)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 250 {
		t.Errorf("Best score = %d, want 250", best)
	}

	// Level never played
	best, err = store.BestScore(50)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for unplayed level, got %d", best)
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.RecordRun(1, (i+1)*100, 100, 1, true)
	}

	entries, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(entries))
	}
	if entries[0].Score != 500 {
		t.Errorf("Expected newest score 500, got %d", entries[0].Score)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Nested directories are created on open
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
