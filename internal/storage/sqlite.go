// Package storage provides SQLite-based persistence for progression.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/neon-rush/internal/progression"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is one recorded run, kept for the history view.
type RunEntry struct {
	ID        int64
	Level     int
	Score     int
	Distance  float64
	Stars     int
	Completed bool
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS level_progress (
			level_id INTEGER PRIMARY KEY,
			best_distance REAL NOT NULL DEFAULT 0,
			best_stars INTEGER NOT NULL DEFAULT 0,
			best_shards INTEGER NOT NULL DEFAULT 0,
			times_played INTEGER NOT NULL DEFAULT 0,
			first_clear_paid INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS wallet (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			balance INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS unlocks (
			kind TEXT NOT NULL,
			item_id TEXT NOT NULL,
			PRIMARY KEY (kind, item_id)
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS run_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id INTEGER NOT NULL,
			score INTEGER NOT NULL,
			distance REAL NOT NULL,
			stars INTEGER NOT NULL,
			completed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_run_history_level ON run_history(level_id);
		CREATE INDEX IF NOT EXISTS idx_run_history_top ON run_history(level_id, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save writes the full progression snapshot. The write is transactional
// and idempotent: saving the same snapshot twice leaves identical rows.
func (s *Store) Save(snap progression.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin save: %w", err)
	}
	defer tx.Rollback()

	for id, lb := range snap.Levels {
		if _, err := tx.Exec(
			`INSERT INTO level_progress
			 (level_id, best_distance, best_stars, best_shards, times_played, first_clear_paid)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT(level_id) DO UPDATE SET
			 best_distance = excluded.best_distance,
			 best_stars = excluded.best_stars,
			 best_shards = excluded.best_shards,
			 times_played = excluded.times_played,
			 first_clear_paid = excluded.first_clear_paid`,
			id, lb.BestDistance, lb.BestStars, lb.BestShards, lb.TimesPlayed, boolToInt(lb.FirstClearPaid),
		); err != nil {
			return fmt.Errorf("storage: cannot save level %d: %w", id, err)
		}
	}

	if _, err := tx.Exec(
		`INSERT INTO wallet (id, balance) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET balance = excluded.balance`,
		snap.Balance,
	); err != nil {
		return fmt.Errorf("storage: cannot save wallet: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM unlocks"); err != nil {
		return fmt.Errorf("storage: cannot reset unlocks: %w", err)
	}
	for _, id := range snap.UnlockedZones {
		if _, err := tx.Exec("INSERT INTO unlocks (kind, item_id) VALUES ('zone', ?)", id); err != nil {
			return fmt.Errorf("storage: cannot save zone unlock: %w", err)
		}
	}
	for _, id := range snap.UnlockedConstructs {
		if _, err := tx.Exec("INSERT INTO unlocks (kind, item_id) VALUES ('construct', ?)", id); err != nil {
			return fmt.Errorf("storage: cannot save construct unlock: %w", err)
		}
	}

	for key, on := range map[string]bool{
		"sound":   snap.Settings.SoundOn,
		"haptics": snap.Settings.HapticsOn,
	} {
		if _, err := tx.Exec(
			`INSERT INTO settings (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, boolToInt(on),
		); err != nil {
			return fmt.Errorf("storage: cannot save setting %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit save: %w", err)
	}
	return nil
}

// Load reads the stored progression snapshot. A fresh database yields
// an empty snapshot with default settings.
func (s *Store) Load() (progression.Snapshot, error) {
	snap := progression.Snapshot{
		Levels:   make(map[int]progression.LevelBest),
		Settings: progression.Settings{SoundOn: true, HapticsOn: true},
	}

	rows, err := s.db.Query(
		`SELECT level_id, best_distance, best_stars, best_shards, times_played, first_clear_paid
		 FROM level_progress`,
	)
	if err != nil {
		return snap, fmt.Errorf("storage: cannot query level progress: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, firstClear int
		var lb progression.LevelBest
		if err := rows.Scan(&id, &lb.BestDistance, &lb.BestStars, &lb.BestShards, &lb.TimesPlayed, &firstClear); err != nil {
			return snap, fmt.Errorf("storage: cannot scan level row: %w", err)
		}
		lb.FirstClearPaid = firstClear != 0
		snap.Levels[id] = lb
	}
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("storage: row iteration error: %w", err)
	}

	var balance sql.NullInt64
	err = s.db.QueryRow("SELECT balance FROM wallet WHERE id = 1").Scan(&balance)
	if err != nil && err != sql.ErrNoRows {
		return snap, fmt.Errorf("storage: cannot query wallet: %w", err)
	}
	if balance.Valid {
		snap.Balance = int(balance.Int64)
	}

	unlockRows, err := s.db.Query("SELECT kind, item_id FROM unlocks")
	if err != nil {
		return snap, fmt.Errorf("storage: cannot query unlocks: %w", err)
	}
	defer unlockRows.Close()

	for unlockRows.Next() {
		var kind, id string
		if err := unlockRows.Scan(&kind, &id); err != nil {
			return snap, fmt.Errorf("storage: cannot scan unlock row: %w", err)
		}
		switch kind {
		case "zone":
			snap.UnlockedZones = append(snap.UnlockedZones, id)
		case "construct":
			snap.UnlockedConstructs = append(snap.UnlockedConstructs, id)
		}
	}
	if err := unlockRows.Err(); err != nil {
		return snap, fmt.Errorf("storage: row iteration error: %w", err)
	}

	settingRows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return snap, fmt.Errorf("storage: cannot query settings: %w", err)
	}
	defer settingRows.Close()

	for settingRows.Next() {
		var key string
		var value int
		if err := settingRows.Scan(&key, &value); err != nil {
			return snap, fmt.Errorf("storage: cannot scan setting row: %w", err)
		}
		switch key {
		case "sound":
			snap.Settings.SoundOn = value != 0
		case "haptics":
			snap.Settings.HapticsOn = value != 0
		}
	}
	if err := settingRows.Err(); err != nil {
		return snap, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return snap, nil
}

// RecordRun appends one finished run to the history.
// Returns the ID of the inserted record.
func (s *Store) RecordRun(level, score int, distance float64, stars int, completed bool) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO run_history (level_id, score, distance, stars, completed) VALUES (?, ?, ?, ?, ?)",
		level, score, distance, stars, boolToInt(completed),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, score, distance, stars, completed, created_at
		 FROM run_history
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var completed int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Level, &e.Score, &e.Distance, &e.Stars, &completed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Completed = completed != 0

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the highest recorded score for the given level.
// Returns 0 if no runs exist.
func (s *Store) BestScore(level int) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM run_history WHERE level_id = ?",
		level,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
