// Package storage persists run history in a local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/harshvardhanraju/video-content-creator/internal/domain"
	"github.com/harshvardhanraju/video-content-creator/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id          TEXT PRIMARY KEY,
    topic       TEXT NOT NULL,
    category    TEXT NOT NULL DEFAULT '',
    scene_count INTEGER NOT NULL DEFAULT 0,
    duration    REAL NOT NULL DEFAULT 0,
    status      TEXT NOT NULL,
    script_json TEXT NOT NULL DEFAULT '',
    video_path  TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs (created_at DESC);
`

// SQLiteRepository persists run snapshots into SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

var _ ports.ScriptRepository = (*SQLiteRepository)(nil)

// Open connects to the database file at path and ensures the schema exists.
func Open(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepository wires an existing sql.DB implementation.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Close releases the underlying database handle.
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// SaveRun upserts the run snapshot.
func (r *SQLiteRepository) SaveRun(ctx context.Context, run domain.RunRecord) error {
	if r.db == nil {
		return nil
	}

	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query, args, err := sq.Insert("runs").
		Columns("id", "topic", "category", "scene_count", "duration", "status", "script_json", "video_path", "created_at").
		Values(run.ID, run.Topic, run.Category, run.SceneCount, run.Duration, run.Status, run.ScriptJSON, run.VideoPath, createdAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
            status = excluded.status,
            scene_count = excluded.scene_count,
            duration = excluded.duration,
            script_json = excluded.script_json,
            video_path = excluded.video_path`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (r *SQLiteRepository) ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if r.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	query, args, err := sq.Select("id", "topic", "category", "scene_count", "duration", "status", "script_json", "video_path", "created_at").
		From("runs").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunRecord
	for rows.Next() {
		var run domain.RunRecord
		if err := rows.Scan(
			&run.ID,
			&run.Topic,
			&run.Category,
			&run.SceneCount,
			&run.Duration,
			&run.Status,
			&run.ScriptJSON,
			&run.VideoPath,
			&run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return runs, nil
}
