package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// migrationsDir points at the repo's schema migrations relative to this
// package.
const migrationsDir = "../../migrations"

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp(migrationsDir))
	return db
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.MigrateUp(migrationsDir))

	version, dirty, err := db.SchemaVersion(migrationsDir)
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.Equal(t, uint(1), version)
}

func TestInsertAndGetRun(t *testing.T) {
	db := openTestDB(t)

	run := &Run{
		Seed:          1234567,
		Trees:         4000,
		Hikers:        400,
		Dogs:          200,
		OutputPath:    "Data/snow_objects.csv",
		TrainAccuracy: 0.99,
		TestAccuracy:  0.91,
	}
	require.NoError(t, db.InsertRun(run))
	assert.NotEmpty(t, run.RunID, "InsertRun should assign a run id")
	assert.NotZero(t, run.CreatedAt)

	got, err := db.GetRun(run.RunID)
	require.NoError(t, err)
	assert.Equal(t, run, got)
}

func TestListRunsNewestFirst(t *testing.T) {
	db := openTestDB(t)

	first := &Run{Seed: 1, OutputPath: "a.csv", TrainAccuracy: -1, TestAccuracy: -1, CreatedAt: 100}
	second := &Run{Seed: 2, OutputPath: "b.csv", TrainAccuracy: -1, TestAccuracy: -1, CreatedAt: 200}
	require.NoError(t, db.InsertRun(first))
	require.NoError(t, db.InsertRun(second))

	runs, err := db.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.RunID, runs[0].RunID)
	assert.Equal(t, first.RunID, runs[1].RunID)
}

func TestGetMissingRun(t *testing.T) {
	db := openTestDB(t)
	_, err := db.GetRun("no-such-run")
	assert.Error(t, err)
}
