package state

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"substation/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; existing databases must be deleted after a bump.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version does not match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Export describes one recorded subtitle export.
type Export struct {
	Episode    string
	Language   string
	SourceHash string
	OutputPath string
	RunID      string
	ExportedAt time.Time
}

// Store manages export bookkeeping backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the state database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.StatePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record upserts the export row for an episode and language pair.
func (s *Store) Record(ctx context.Context, export Export) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO exports (episode, language, source_hash, output_path, run_id, exported_at)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT(episode, language) DO UPDATE SET
             source_hash = excluded.source_hash,
             output_path = excluded.output_path,
             run_id = excluded.run_id,
             exported_at = excluded.exported_at`,
		export.Episode,
		export.Language,
		export.SourceHash,
		export.OutputPath,
		export.RunID,
		export.ExportedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record export: %w", err)
	}
	return nil
}

// Lookup returns the recorded export for an episode and language pair, or
// nil when none exists.
func (s *Store) Lookup(ctx context.Context, episode, language string) (*Export, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT episode, language, source_hash, output_path, run_id, exported_at
         FROM exports WHERE episode = ? AND language = ?`,
		episode, language,
	)
	export, err := scanExport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup export: %w", err)
	}
	return export, nil
}

// Unchanged reports whether the recorded export for the pair carries the
// given source hash.
func (s *Store) Unchanged(ctx context.Context, episode, language, sourceHash string) (bool, error) {
	export, err := s.Lookup(ctx, episode, language)
	if err != nil || export == nil {
		return false, err
	}
	return export.SourceHash == sourceHash, nil
}

// List returns every recorded export ordered by episode then language.
func (s *Store) List(ctx context.Context) ([]Export, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT episode, language, source_hash, output_path, run_id, exported_at
         FROM exports ORDER BY episode, language`,
	)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	defer rows.Close()

	var exports []Export
	for rows.Next() {
		export, err := scanExport(rows)
		if err != nil {
			return nil, fmt.Errorf("list exports: %w", err)
		}
		exports = append(exports, *export)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	return exports, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExport(row rowScanner) (*Export, error) {
	var export Export
	var exportedAt string
	if err := row.Scan(
		&export.Episode,
		&export.Language,
		&export.SourceHash,
		&export.OutputPath,
		&export.RunID,
		&exportedAt,
	); err != nil {
		return nil, err
	}
	if ts, err := time.Parse(time.RFC3339Nano, exportedAt); err == nil {
		export.ExportedAt = ts
	}
	return &export, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}
