// Package catalog persists the songbook assembly state: which songs
// have been compiled into which files, how many pages they take, the
// manual ordering from the sorter UI and whether a song is finalized.
// Finalized songs are skipped on re-runs so curation work is never
// overwritten.
//
// The state lives in a single SQLite file next to the generated
// output, using the pure-Go driver so the tool cross-compiles without
// CGO.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNotFound marks a song id the catalog does not know.
var ErrNotFound = errors.New("song not in catalog")

// schemaVersion tracks the catalog schema. Bump on breaking changes
// and add a migration to ensureSchema.
const schemaVersion = 1

// unordered sorts behind every explicitly placed song.
const unordered = 1 << 30

// Entry is one song's assembly state.
type Entry struct {
	ID        string
	Title     string
	File      string
	PageCount int
	Position  int
	Finalized bool
}

// Store is an open catalog database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the catalog at path and ensures the schema
// exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create catalog dir: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	// Embedded usage: one writer is plenty.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS songs (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	file       TEXT NOT NULL DEFAULT '',
	page_count INTEGER NOT NULL DEFAULT 0,
	position   INTEGER NOT NULL DEFAULT 1073741824,
	finalized  INTEGER NOT NULL DEFAULT 0
);`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure catalog schema: %w", err)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO meta(key, value) VALUES('schema_version', ?)
		 ON CONFLICT(key) DO NOTHING`, fmt.Sprint(schemaVersion))
	if err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}
	return nil
}

// Upsert registers a song, updating its title and output file while
// keeping position, page count and finalized state intact.
func (s *Store) Upsert(ctx context.Context, id, title, file string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO songs(id, title, file) VALUES(?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET title = excluded.title, file = excluded.file`,
		id, title, file)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", id, err)
	}
	return nil
}

// SetPageCount records how many pages a compiled song takes.
func (s *Store) SetPageCount(ctx context.Context, id string, pages int) error {
	return s.update(ctx, id, `UPDATE songs SET page_count = ? WHERE id = ?`, pages)
}

// SetFinalized flips the finalized flag.
func (s *Store) SetFinalized(ctx context.Context, id string, done bool) error {
	v := 0
	if done {
		v = 1
	}
	return s.update(ctx, id, `UPDATE songs SET finalized = ? WHERE id = ?`, v)
}

func (s *Store) update(ctx context.Context, id, query string, arg any) error {
	res, err := s.db.ExecContext(ctx, query, arg, id)
	if err != nil {
		return fmt.Errorf("update %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// SetOrder stores the manual ordering: position follows the slice
// index. Songs not listed keep their old position and sort after the
// ordered ones.
func (s *Store) SetOrder(ctx context.Context, ids []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin order update: %w", err)
	}
	defer tx.Rollback()

	for i, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`UPDATE songs SET position = ? WHERE id = ?`, i, id); err != nil {
			return fmt.Errorf("order %s: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit order update: %w", err)
	}
	return nil
}

// Get returns one entry.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, file, page_count, position, finalized
		 FROM songs WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, err
}

// All returns every entry in book order.
func (s *Store) All(ctx context.Context) ([]Entry, error) {
	return s.query(ctx,
		`SELECT id, title, file, page_count, position, finalized
		 FROM songs ORDER BY position, title`)
}

// Unfinished returns the songs still needing curation, in book order.
func (s *Store) Unfinished(ctx context.Context) ([]Entry, error) {
	return s.query(ctx,
		`SELECT id, title, file, page_count, position, finalized
		 FROM songs WHERE finalized = 0 ORDER BY position, title`)
}

func (s *Store) query(ctx context.Context, query string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var e Entry
	var finalized int
	if err := row.Scan(&e.ID, &e.Title, &e.File, &e.PageCount, &e.Position, &finalized); err != nil {
		return Entry{}, err
	}
	e.Finalized = finalized != 0
	return e, nil
}
