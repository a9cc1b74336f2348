package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	_ "modernc.org/sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS records (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		collection TEXT NOT NULL,
		key        TEXT NOT NULL,
		body       BLOB NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS records_collection_key ON records (collection, key)`,
}

// DB is a SQLite database holding every collection in one table.
type DB struct {
	db *sql.DB
}

// OpenSQLite creates or opens the database at path and applies the schema.
func OpenSQLite(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	// One writer at a time.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

// SQLite is a Repository over one collection of a DB. Records are stored as
// JSON bodies in insertion order.
type SQLite[T any] struct {
	db         *DB
	collection string
	key        KeyFunc[T]
}

func NewSQLite[T any](db *DB, collection string, key KeyFunc[T]) *SQLite[T] {
	return &SQLite[T]{db: db, collection: collection, key: key}
}

func (s *SQLite[T]) Get(ctx context.Context) ([]T, error) {
	rows, err := s.db.db.QueryContext(ctx,
		`SELECT body FROM records WHERE collection = ? ORDER BY seq`, s.collection)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.collection, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.collection, err)
		}
		var item T
		if err := json.Unmarshal(body, &item); err != nil {
			return nil, fmt.Errorf("decode %s: %w", s.collection, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query %s: %w", s.collection, err)
	}
	return items, nil
}

func (s *SQLite[T]) Append(ctx context.Context, item T) error {
	body, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.collection, err)
	}
	_, err = s.db.db.ExecContext(ctx,
		`INSERT INTO records (collection, key, body) VALUES (?, ?, ?)`,
		s.collection, s.key(item), body)
	if err != nil {
		return fmt.Errorf("insert %s: %w", s.collection, err)
	}
	return nil
}

func (s *SQLite[T]) FindByKey(ctx context.Context, key string) (T, bool, error) {
	var zero T
	var body []byte
	err := s.db.db.QueryRowContext(ctx,
		`SELECT body FROM records WHERE collection = ? AND key = ? ORDER BY seq LIMIT 1`,
		s.collection, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("lookup %s: %w", s.collection, err)
	}
	var item T
	if err := json.Unmarshal(body, &item); err != nil {
		return zero, false, fmt.Errorf("decode %s: %w", s.collection, err)
	}
	return item, true, nil
}
