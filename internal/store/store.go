// Package store persists generation runs and their evaluation metrics in a
// sqlite database so repeated runs can be compared by seed and parameters.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DB wraps the sqlite handle.
type DB struct {
	*sql.DB
}

// Open opens (or creates) the sqlite database at path. Run MigrateUp before
// first use to create the schema.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return &DB{db}, nil
}

// Run records one dataset generation run. TrainAccuracy and TestAccuracy
// are negative when the run skipped evaluation.
type Run struct {
	RunID         string
	Seed          uint64
	Trees         int
	Hikers        int
	Dogs          int
	OutputPath    string
	TrainAccuracy float64
	TestAccuracy  float64
	CreatedAt     int64
}

// InsertRun persists a run. If RunID is empty a UUID is generated; if
// CreatedAt is zero the current time is used.
func (db *DB) InsertRun(run *Run) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt == 0 {
		run.CreatedAt = time.Now().UnixNano()
	}
	_, err := db.Exec(`
		INSERT INTO runs (
			run_id, seed, n_trees, n_hikers, n_dogs,
			output_path, train_accuracy, test_accuracy, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, int64(run.Seed), run.Trees, run.Hikers, run.Dogs,
		run.OutputPath, run.TrainAccuracy, run.TestAccuracy, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.RunID, err)
	}
	return nil
}

// GetRun fetches one run by id.
func (db *DB) GetRun(runID string) (*Run, error) {
	row := db.QueryRow(`
		SELECT run_id, seed, n_trees, n_hikers, n_dogs,
		       output_path, train_accuracy, test_accuracy, created_at
		FROM runs WHERE run_id = ?`, runID)
	run, err := scanRun(row)
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", runID, err)
	}
	return run, nil
}

// ListRuns returns all runs, newest first.
func (db *DB) ListRuns() ([]*Run, error) {
	rows, err := db.Query(`
		SELECT run_id, seed, n_trees, n_hikers, n_dogs,
		       output_path, train_accuracy, test_accuracy, created_at
		FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	var run Run
	var seed int64
	err := s.Scan(&run.RunID, &seed, &run.Trees, &run.Hikers, &run.Dogs,
		&run.OutputPath, &run.TrainAccuracy, &run.TestAccuracy, &run.CreatedAt)
	if err != nil {
		return nil, err
	}
	run.Seed = uint64(seed)
	return &run, nil
}
