// Package storage provides SQLite-based persistence for simulation
// episode results. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/snake-autopilot/internal/sim"
)

// Store manages the SQLite database connection for episode persistence.
type Store struct {
	db *sql.DB
}

// EpisodeRecord represents a single stored episode result.
type EpisodeRecord struct {
	ID        int64
	PlannerID string
	GridSize  int
	Seed      int64
	Score     int
	Ticks     int64
	Replans   int
	Outcome   string
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS episodes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			planner_id TEXT NOT NULL,
			grid_size INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			replans INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_episodes_planner ON episodes(planner_id);
		CREATE INDEX IF NOT EXISTS idx_episodes_top ON episodes(planner_id, score DESC);
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

// SaveEpisode records a finished episode.
// Returns the ID of the inserted record.
func (s *Store) SaveEpisode(rec EpisodeRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO episodes (planner_id, grid_size, seed, score, ticks, replans, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.PlannerID, rec.GridSize, rec.Seed, rec.Score, rec.Ticks, rec.Replans, rec.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save episode: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopEpisodes retrieves the N best-scoring episodes for a planner,
// ordered by score descending.
func (s *Store) TopEpisodes(plannerID string, limit int) ([]EpisodeRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, planner_id, grid_size, seed, score, ticks, replans, outcome, created_at
		 FROM episodes
		 WHERE planner_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		plannerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episodes: %w", err)
	}
	defer rows.Close()

	var entries []EpisodeRecord
	for rows.Next() {
		rec, err := scanEpisode(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

func scanEpisode(rows *sql.Rows) (EpisodeRecord, error) {
	var rec EpisodeRecord
	var createdAt any
	if err := rows.Scan(
		&rec.ID, &rec.PlannerID, &rec.GridSize, &rec.Seed,
		&rec.Score, &rec.Ticks, &rec.Replans, &rec.Outcome, &createdAt,
	); err != nil {
		return rec, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		rec.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			rec.CreatedAt = parsed
		}
	}
	return rec, nil
}

// BestScore returns the highest episode score for the given planner.
// Returns 0 if no episodes exist.
func (s *Store) BestScore(plannerID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM episodes WHERE planner_id = ?",
		plannerID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearEpisodes deletes all episodes for the given planner.
func (s *Store) ClearEpisodes(plannerID string) error {
	_, err := s.db.Exec("DELETE FROM episodes WHERE planner_id = ?", plannerID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear episodes: %w", err)
	}
	return nil
}

// PlannerStats contains aggregated statistics for one planner.
type PlannerStats struct {
	PlannerID string
	Episodes  int
	BestScore int
	AvgScore  float64
	AvgTicks  float64
	Filled    int // Episodes that covered the whole board
	LastRun   time.Time
}

// GetPlannerStats retrieves aggregated statistics for one planner.
func (s *Store) GetPlannerStats(plannerID string) (*PlannerStats, error) {
	stats := &PlannerStats{PlannerID: plannerID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(AVG(ticks), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'filled' THEN 1 ELSE 0 END), 0)
		 FROM episodes WHERE planner_id = ?`,
		plannerID,
	).Scan(&stats.Episodes, &stats.BestScore, &stats.AvgScore, &stats.AvgTicks, &stats.Filled)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get planner stats: %w", err)
	}

	// Get last run time
	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM episodes WHERE planner_id = ? ORDER BY created_at DESC LIMIT 1`,
		plannerID,
	).Scan(&lastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		switch v := lastRun.(type) {
		case time.Time:
			stats.LastRun = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				stats.LastRun = parsed
			}
		}
	}

	return stats, nil
}

// GetAllPlannerStats retrieves statistics for every planner that has
// recorded episodes.
func (s *Store) GetAllPlannerStats() (map[string]*PlannerStats, error) {
	rows, err := s.db.Query(
		`SELECT planner_id, COUNT(*), MAX(score), AVG(score), AVG(ticks),
		        SUM(CASE WHEN outcome = 'filled' THEN 1 ELSE 0 END), MAX(created_at)
		 FROM episodes
		 GROUP BY planner_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all planner stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PlannerStats)
	for rows.Next() {
		var st PlannerStats
		var lastRun any
		if err := rows.Scan(&st.PlannerID, &st.Episodes, &st.BestScore, &st.AvgScore, &st.AvgTicks, &st.Filled, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}

		switch v := lastRun.(type) {
		case time.Time:
			st.LastRun = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				st.LastRun = parsed
			}
		}

		stats[st.PlannerID] = &st
	}

	return stats, nil
}

// SaveResult implements sim.ResultSaver.
// This adapter allows the runner's callers to save results without the
// sim package depending on storage.
func (s *Store) SaveResult(r sim.Result) error {
	rec := EpisodeRecord{
		PlannerID: r.Planner,
		GridSize:  r.GridSize,
		Seed:      r.Seed,
		Score:     r.Score,
		Ticks:     int64(r.Ticks),
		Replans:   r.Replans,
		Outcome:   string(r.Outcome),
	}
	_, err := s.SaveEpisode(rec)
	return err
}

// Ensure Store implements ResultSaver
var _ sim.ResultSaver = (*Store)(nil)
