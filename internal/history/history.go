// Package history records what was copied to the clipboard.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const currentSchemaVersion = 2

// timeLayout sorts lexically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

var ErrEmptyPayload = errors.New("empty payload")

// Kind is what was copied.
type Kind string

const (
	KindURL    Kind = "url"
	KindMarkup Kind = "markup"
	KindBulk   Kind = "bulk"
)

// Record is one clipboard copy.
type Record struct {
	ID       string
	Code     string // empty for bulk copies
	Name     string
	Kind     Kind
	Format   string
	Payload  string
	CopiedAt time.Time
}

// NewRecordParams holds parameters for creating a new Record.
type NewRecordParams struct {
	Code    string
	Name    string
	Kind    Kind
	Format  string
	Payload string
}

// NewRecord creates a Record with a fresh ID, copied now.
func NewRecord(params NewRecordParams) Record {
	return Record{
		ID:       uuid.New().String(),
		Code:     params.Code,
		Name:     params.Name,
		Kind:     params.Kind,
		Format:   params.Format,
		Payload:  params.Payload,
		CopiedAt: time.Now().UTC(),
	}
}

// Recorder accepts copy records.
type Recorder interface {
	Add(rec Record) error
}

// Store is the SQLite-backed copy history.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SchemaVersion returns the migrated schema version.
func (s *Store) SchemaVersion() (int, error) {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	return version, err
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	if version < 2 {
		if err := s.migrateV2(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (s *Store) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS copies (
			id TEXT PRIMARY KEY NOT NULL,
			code TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL DEFAULT '',
			kind TEXT NOT NULL,
			payload TEXT NOT NULL,
			copied_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_copies_copied_at ON copies(copied_at);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// migrateV2 records the asset format each copy was made with.
func (s *Store) migrateV2() error {
	migration := `
		ALTER TABLE copies ADD COLUMN format TEXT NOT NULL DEFAULT '';
		UPDATE schema_version SET version = 2;
	`
	_, err := s.db.Exec(migration)
	return err
}

// Add stores rec. A missing ID or timestamp is filled in.
func (s *Store) Add(rec Record) error {
	if rec.Payload == "" {
		return ErrEmptyPayload
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CopiedAt.IsZero() {
		rec.CopiedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO copies (id, code, name, kind, format, payload, copied_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Code, rec.Name, string(rec.Kind), rec.Format, rec.Payload,
		rec.CopiedAt.UTC().Format(timeLayout))
	return err
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	if limit <= 0 {
		return []Record{}, nil
	}

	rows, err := s.db.Query(`
		SELECT id, code, name, kind, format, payload, copied_at
		FROM copies
		ORDER BY copied_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var r Record
		var kind, copiedAt string
		if err := rows.Scan(&r.ID, &r.Code, &r.Name, &kind, &r.Format, &r.Payload, &copiedAt); err != nil {
			return nil, err
		}
		r.Kind = Kind(kind)
		r.CopiedAt, err = time.Parse(timeLayout, copiedAt)
		if err != nil {
			return nil, fmt.Errorf("record %s: copied_at: %w", r.ID, err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Clear deletes all records.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM copies")
	return err
}

// DefaultPath returns the default database path: ~/.config/emj/history.db
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "emj", "history.db"), nil
}
