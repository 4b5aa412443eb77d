package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Bucket names for the persisted collections and singletons.
const (
	BucketFaculties   = "faculties"
	BucketDepartments = "departments"
	BucketTeachers    = "teachers"
	BucketSemesters   = "semesters"
	BucketBooks       = "books"
	BucketProfile     = "admin-profile"
	BucketTheme       = "theme"
)

// Store persists named buckets as whole JSON payloads in a single SQLite
// table. There is no partial update: a save overwrites the full payload
// for its bucket, last writer wins.
type Store struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// Open creates or opens a store at the given file path. ":memory:" gives
// an ephemeral store, which tests rely on for isolation.
func Open(path string) (*Store, error) {
	if path == "" {
		path = "uniadmin.db"
	}
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
				return nil, fmt.Errorf("create store dirs: %w", err)
			}
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Load returns the raw payload stored for a bucket, or nil if the bucket
// has never been written.
func (s *Store) Load(ctx context.Context, bucket string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE bucket = ?`, bucket).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load bucket %s: %w", bucket, err)
	}
	return payload, nil
}

// Save overwrites the payload for a bucket. The write is durable once
// Save returns; change notifications must only fire after that.
func (s *Store) Save(ctx context.Context, bucket string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO state(bucket, payload) VALUES(?, ?)
		 ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`,
		bucket, payload); err != nil {
		return fmt.Errorf("save bucket %s: %w", bucket, err)
	}
	return nil
}

// Delete removes a bucket entirely. Missing buckets are not an error.
func (s *Store) Delete(ctx context.Context, bucket string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.ExecContext(ctx, `DELETE FROM state WHERE bucket = ?`, bucket); err != nil {
		return fmt.Errorf("delete bucket %s: %w", bucket, err)
	}
	return nil
}

// Path returns the file path backing the store.
func (s *Store) Path() string {
	return s.path
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
