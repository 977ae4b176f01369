// Package storage keeps a log of finished runs in an in-memory SQLite
// database, using the pure-Go modernc.org/sqlite driver to avoid CGO.
// Nothing is written to disk: the log lives exactly as long as the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Run outcomes.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// Store manages the in-memory database.
type Store struct {
	db *sql.DB
}

// Run is one finished game.
type Run struct {
	ID             string
	Player         string
	Outcome        string // OutcomeWon or OutcomeLost
	TrashCleaned   int
	HazardsOnFloor int
	Moves          int
	Seed           int64
	Duration       time.Duration
	EndedAt        time.Time
}

// Tally aggregates a player's runs.
type Tally struct {
	Player    string
	Won       int
	Lost      int
	BestMoves int // Fewest moves in a won run, 0 if none
}

// Played returns the number of finished runs.
func (t Tally) Played() int {
	return t.Won + t.Lost
}

// Open creates an empty in-memory database and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so keep exactly one
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			outcome TEXT NOT NULL CHECK (outcome IN ('won', 'lost')),
			trash_cleaned INTEGER NOT NULL DEFAULT 0,
			hazards INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
		CREATE INDEX IF NOT EXISTS idx_runs_ended ON runs(ended_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database, discarding the log.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun stores a finished run and returns its ID.
// A missing ID or end time is filled in.
func (s *Store) RecordRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, player, outcome, trash_cleaned, hazards, moves, seed, duration_ms, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Player, r.Outcome, r.TrashCleaned, r.HazardsOnFloor, r.Moves, r.Seed,
		r.Duration.Milliseconds(), r.EndedAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record run: %w", err)
	}
	return r.ID, nil
}

// RecentRuns returns the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, outcome, trash_cleaned, hazards, moves, seed, duration_ms, ended_at
		 FROM runs
		 ORDER BY ended_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS, endedMS int64
		if err := rows.Scan(&r.ID, &r.Player, &r.Outcome, &r.TrashCleaned, &r.HazardsOnFloor,
			&r.Moves, &r.Seed, &durationMS, &endedMS); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.EndedAt = time.UnixMilli(endedMS)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Tally returns the aggregate for one player. Unknown players get a zero tally.
func (s *Store) Tally(player string) (Tally, error) {
	t := Tally{Player: player}
	var best sql.NullInt64

	err := s.db.QueryRow(
		`SELECT
		   COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0),
		   MIN(CASE WHEN outcome = 'won' THEN moves END)
		 FROM runs WHERE player = ?`,
		player,
	).Scan(&t.Won, &t.Lost, &best)
	if err != nil {
		return t, fmt.Errorf("storage: cannot query tally: %w", err)
	}

	if best.Valid {
		t.BestMoves = int(best.Int64)
	}
	return t, nil
}

// Leaderboard returns player tallies ordered by wins, then fewest losses.
func (s *Store) Leaderboard(limit int) ([]Tally, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT player,
		   SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END) AS won,
		   SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END) AS lost,
		   MIN(CASE WHEN outcome = 'won' THEN moves END)
		 FROM runs
		 GROUP BY player
		 ORDER BY won DESC, lost ASC, player ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var board []Tally
	for rows.Next() {
		var t Tally
		var best sql.NullInt64
		if err := rows.Scan(&t.Player, &t.Won, &t.Lost, &best); err != nil {
			return nil, fmt.Errorf("storage: cannot scan tally row: %w", err)
		}
		if best.Valid {
			t.BestMoves = int(best.Int64)
		}
		board = append(board, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return board, nil
}
