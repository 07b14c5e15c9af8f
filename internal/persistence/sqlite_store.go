// Package persistence keeps the history of processed subtitle files in a
// local SQLite database so watch-mode scans never reprocess an input.
package persistence

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("db path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &SQLiteStore{db: db}
	if err := store.init(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA journal_mode = WAL;"); err != nil {
		return fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		return fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		version := migrationVersion(entry.Name())
		if version <= 0 {
			continue
		}
		var exists int
		if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, version).Scan(&exists); err != nil {
			return fmt.Errorf("check migration %s: %w", entry.Name(), err)
		}
		if exists > 0 {
			continue
		}
		content, err := migrationFiles.ReadFile(filepath.Join("migrations", entry.Name()))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		if _, err := s.db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", entry.Name(), err)
		}
		if _, err := s.db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
			return fmt.Errorf("record migration %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// migrationVersion extracts the leading integer from a migration filename (e.g. "001_init.sql" → 1).
func migrationVersion(name string) int {
	for i, c := range name {
		if c < '0' || c > '9' {
			if i == 0 {
				return 0
			}
			n, _ := strconv.Atoi(name[:i])
			return n
		}
	}
	n, _ := strconv.Atoi(name)
	return n
}

// Record upserts the history row for rec.InputPath. Reprocessing the same
// input overwrites the previous outcome.
func (s *SQLiteStore) Record(ctx context.Context, rec Record) error {
	if rec.ProcessedAt.IsZero() {
		rec.ProcessedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO processed_files (input_path, output_path, script_path, status, filled, run_id, processed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(input_path) DO UPDATE SET
			output_path = excluded.output_path,
			script_path = excluded.script_path,
			status = excluded.status,
			filled = excluded.filled,
			run_id = excluded.run_id,
			processed_at = excluded.processed_at`,
		rec.InputPath, rec.OutputPath, rec.ScriptPath, rec.Status, rec.Filled, rec.RunID, rec.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("record %s: %w", rec.InputPath, err)
	}
	return nil
}

// Lookup returns the history row for inputPath, reporting whether one exists.
func (s *SQLiteStore) Lookup(ctx context.Context, inputPath string) (Record, bool, error) {
	var rec Record
	err := s.db.QueryRowContext(
		ctx,
		`SELECT input_path, output_path, script_path, status, filled, run_id, processed_at
		 FROM processed_files WHERE input_path = ?`,
		inputPath,
	).Scan(&rec.InputPath, &rec.OutputPath, &rec.ScriptPath, &rec.Status, &rec.Filled, &rec.RunID, &rec.ProcessedAt)
	if err == sql.ErrNoRows {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("lookup %s: %w", inputPath, err)
	}
	return rec, true, nil
}

// List returns the most recent history rows, newest first. A limit of 0
// or less returns everything.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Record, error) {
	query := `SELECT input_path, output_path, script_path, status, filled, run_id, processed_at
		 FROM processed_files ORDER BY processed_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	ret := make([]Record, 0)
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.InputPath, &rec.OutputPath, &rec.ScriptPath, &rec.Status, &rec.Filled, &rec.RunID, &rec.ProcessedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		ret = append(ret, rec)
	}
	return ret, rows.Err()
}
