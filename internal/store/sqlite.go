// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS kv (
    storage_key TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS kv (
    storage_key TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    updated_at BIGINT NOT NULL
);
`

// SQLStore is a KV backed by a single SQL table. Both drivers accept
// $N placeholders.
type SQLStore struct {
	db *sql.DB
}

// Open opens a DB for the given driver and ensures the schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*SQLStore, error) {
	var drvName, schema string
	switch driver {
	case DriverSQLite, "":
		drvName = "sqlite" // modernc driver
		schema = schemaSQLite
		if dsn == "" {
			dsn = "file:quizbank.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		schema = schemaPostgres
		if dsn == "" {
			dsn = "postgres://localhost:5432/quizbank?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// NewSQLite opens a sqlite-backed store at dbPath.
func NewSQLite(dbPath string) (*SQLStore, error) {
	return Open(context.Background(), DriverSQLite, dbPath)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, "SELECT payload FROM kv WHERE storage_key = $1", key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (storage_key, payload, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (storage_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, key, string(value), time.Now().UnixMilli())
	return err
}

func (s *SQLStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE storage_key = $1", key)
	return err
}

func (s *SQLStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT storage_key FROM kv ORDER BY storage_key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		// Prefix matched in Go: LIKE treats '_' as a wildcard and every key
		// family here contains one.
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, rows.Err()
}
