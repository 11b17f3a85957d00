package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"reelfeed/internal/config"
	"reelfeed/internal/media"
)

// ErrNoIndex indicates the cache database holds no snapshot yet.
var ErrNoIndex = errors.New("library: no cached index")

// Store persists index snapshots in SQLite so restarts skip a full rescan.
type Store struct {
	db   *sql.DB
	path string
}

// OpenStore initializes or connects to the index cache database and applies
// migrations.
func OpenStore(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.IndexDBPath()
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
	if err := store.applyMigrations(context.Background()); err != nil {
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

// Save replaces the cached snapshot with the provided index.
func (s *Store) Save(ctx context.Context, idx *Index) error {
	if idx == nil {
		return errors.New("library: nil index")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM items"); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO index_meta (id, root, built_at) VALUES (1, ?, ?)
         ON CONFLICT (id) DO UPDATE SET root = excluded.root, built_at = excluded.built_at`,
		idx.Root, idx.BuiltAt.UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("write index meta: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO items (id, rel_path, filename, folder, mtime_ns, size) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare item insert: %w", err)
	}
	defer stmt.Close()

	for _, it := range idx.Items {
		if _, err := stmt.ExecContext(ctx, it.ID, it.RelPath, it.Filename, it.Folder, it.ModTime.UnixNano(), it.Size); err != nil {
			return fmt.Errorf("insert item %q: %w", it.RelPath, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save tx: %w", err)
	}
	return nil
}

// Load reads the cached snapshot. ErrNoIndex is returned when the cache has
// never been populated.
func (s *Store) Load(ctx context.Context) (*Index, error) {
	var root, builtAt string
	err := s.db.QueryRowContext(ctx, "SELECT root, built_at FROM index_meta WHERE id = 1").Scan(&root, &builtAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoIndex
	}
	if err != nil {
		return nil, fmt.Errorf("read index meta: %w", err)
	}

	built, err := time.Parse(time.RFC3339Nano, builtAt)
	if err != nil {
		return nil, fmt.Errorf("parse built_at %q: %w", builtAt, err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, rel_path, filename, folder, mtime_ns, size FROM items ORDER BY mtime_ns DESC, rel_path ASC")
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	idx := &Index{Root: root, BuiltAt: built}
	for rows.Next() {
		var it media.Item
		var mtimeNS int64
		if err := rows.Scan(&it.ID, &it.RelPath, &it.Filename, &it.Folder, &mtimeNS, &it.Size); err != nil {
			return nil, fmt.Errorf("scan item row: %w", err)
		}
		it.ModTime = time.Unix(0, mtimeNS)
		idx.Items = append(idx.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	idx.finalize()
	return idx, nil
}
