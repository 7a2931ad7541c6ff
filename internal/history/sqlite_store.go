package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore opens (or creates) the history database at dbPath. The
// parent directory and the submissions table are created if missing.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS submissions (
		id TEXT PRIMARY KEY,
		filename TEXT NOT NULL,
		file_type TEXT NOT NULL,
		loading_method TEXT NOT NULL,
		parsing_option TEXT NOT NULL,
		total_pages INTEGER NOT NULL DEFAULT 0,
		outcome TEXT NOT NULL,
		message TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Save persists a record. Saving an existing ID overwrites the row.
func (s *SQLiteStore) Save(record *Record) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}
	if record.ID == "" {
		return ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
	INSERT INTO submissions (id, filename, file_type, loading_method, parsing_option, total_pages, outcome, message, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		total_pages = excluded.total_pages,
		outcome = excluded.outcome,
		message = excluded.message
	`

	_, err := s.db.Exec(query,
		record.ID,
		record.Filename,
		record.FileType,
		record.LoadingMethod,
		record.ParsingOption,
		record.TotalPages,
		record.Outcome,
		record.Message,
		record.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}

	return nil
}

// Load retrieves a record by ID.
func (s *SQLiteStore) Load(id string) (*Record, error) {
	if id == "" {
		return nil, ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
	SELECT id, filename, file_type, loading_method, parsing_option, total_pages, outcome, message, created_at
	FROM submissions
	WHERE id = ?
	`

	var record Record
	var createdAt string

	err := s.db.QueryRow(query, id).Scan(
		&record.ID,
		&record.Filename,
		&record.FileType,
		&record.LoadingMethod,
		&record.ParsingOption,
		&record.TotalPages,
		&record.Outcome,
		&record.Message,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("load record: %w", err)
	}

	record.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	return &record, nil
}

// List returns records sorted newest first. A limit of 0 returns all.
func (s *SQLiteStore) List(limit int) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
	SELECT id, filename, file_type, loading_method, parsing_option, total_pages, outcome, message, created_at
	FROM submissions
	ORDER BY created_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var record Record
		var createdAt string

		err := rows.Scan(
			&record.ID,
			&record.Filename,
			&record.FileType,
			&record.LoadingMethod,
			&record.ParsingOption,
			&record.TotalPages,
			&record.Outcome,
			&record.Message,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}

		record.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}

// Delete removes a record.
func (s *SQLiteStore) Delete(id string) error {
	if id == "" {
		return ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.Exec("DELETE FROM submissions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
