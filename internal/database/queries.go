package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// GetSummary returns a cached summary that has not expired at now.
func (d *Database) GetSummary(ctx context.Context, key string, now time.Time) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, nil
	}

	query := "select summary from summaries where cache_key = ? and expires_at > ?"

	var summary string
	err := d.db.QueryRowContext(ctx, query, key, now.Unix()).Scan(&summary)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to execute query: %w", err)
	}

	return summary, true, nil
}

// PutSummary upserts a summary and purges entries already expired at now.
func (d *Database) PutSummary(
	ctx context.Context,
	key string,
	summary string,
	expiresAt time.Time,
	now time.Time,
) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("cache key is empty")
	}

	if summary == "" {
		return errors.New("summary is empty")
	}

	if !expiresAt.After(now) {
		return nil
	}

	query := `insert into summaries (cache_key, summary, expires_at, created_at)
	values (?, ?, ?, ?)
	on conflict (cache_key) do update
	set summary = excluded.summary,
	expires_at = excluded.expires_at`

	if _, err := d.db.ExecContext(ctx, query, key, summary, expiresAt.Unix(), now.Unix()); err != nil {
		return fmt.Errorf("failed to upsert summary: %w", err)
	}

	res, err := d.db.ExecContext(ctx, "delete from summaries where expires_at <= ?", now.Unix())
	if err != nil {
		return fmt.Errorf("failed to purge expired summaries: %w", err)
	}

	if purged, rowsErr := res.RowsAffected(); rowsErr == nil && purged > 0 {
		d.log.DebugContext(ctx, "Expired summaries are purged",
			"count", purged,
			"dbPath", d.dbPath)
	}

	return nil
}

func (d *Database) CountSummaries(ctx context.Context) (int64, error) {
	var n int64
	if err := d.db.QueryRowContext(ctx, "select count(*) from summaries").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	return n, nil
}
