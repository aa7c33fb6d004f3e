package database_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gistmaker/internal/database"
)

func newTestDB(t *testing.T, dbPath string) *database.Database {
	t.Helper()

	db, err := database.New(context.Background(), dbPath, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestDatabaseSummaryRoundTrip(t *testing.T) {
	db := newTestDB(t, ":memory:")
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	_, ok, err := db.GetSummary(ctx, "key", now)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.PutSummary(ctx, "key", "value", now.Add(time.Hour), now))

	summary, ok, err := db.GetSummary(ctx, "key", now)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "value", summary)

	require.NoError(t, db.PutSummary(ctx, "key", "updated", now.Add(time.Hour), now))

	summary, ok, err = db.GetSummary(ctx, "key", now)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "updated", summary)
}

func TestDatabaseSummaryExpires(t *testing.T) {
	db := newTestDB(t, ":memory:")
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, db.PutSummary(ctx, "old", "stale", now.Add(time.Minute), now))

	_, ok, err := db.GetSummary(ctx, "old", now.Add(2*time.Minute))
	require.NoError(t, err)
	assert.False(t, ok)

	later := now.Add(2 * time.Minute)
	require.NoError(t, db.PutSummary(ctx, "new", "fresh", later.Add(time.Hour), later))

	count, err := db.CountSummaries(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "expired entry should be purged on write")
}

func TestDatabasePutSummaryRejectsInvalidInput(t *testing.T) {
	db := newTestDB(t, ":memory:")
	ctx := context.Background()
	now := time.Now()

	require.Error(t, db.PutSummary(ctx, " ", "value", now.Add(time.Hour), now))
	require.Error(t, db.PutSummary(ctx, "key", "", now.Add(time.Hour), now))

	require.NoError(t, db.PutSummary(ctx, "key", "value", now, now))
	count, err := db.CountSummaries(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDatabaseReopenKeepsSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "summaries.sqlite")
	ctx := context.Background()
	now := time.Now()

	first, err := database.New(ctx, dbPath, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, first.PutSummary(ctx, "key", "value", now.Add(time.Hour), now))
	require.NoError(t, first.Close())

	second := newTestDB(t, dbPath)
	summary, ok, err := second.GetSummary(ctx, "key", now)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "value", summary)
}

func TestNewFailsForMissingDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing", "cache.sqlite")

	db, err := database.New(context.Background(), dbPath, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	assert.Nil(t, db)
}
