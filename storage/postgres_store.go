package storage

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

//go:embed sql/postgres_setup.sql
var postgresSetupSQL string

// PostgresStore keeps the blob as one JSONB row.
type PostgresStore struct {
	conn *pgx.Conn
	key  string
}

// ConnectPostgres connects to databaseURL and creates the table when missing.
func ConnectPostgres(ctx context.Context, databaseURL, key string) (*PostgresStore, error) {
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if _, err := conn.Exec(ctx, postgresSetupSQL); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}

	return NewPostgresStore(conn, key), nil
}

func NewPostgresStore(conn *pgx.Conn, key string) *PostgresStore {
	return &PostgresStore{conn: conn, key: key}
}

func (s *PostgresStore) Get(ctx context.Context) ([]byte, error) {
	sql := `
			SELECT value::text
			FROM coaching.kv_store
			WHERE key=$1;
		`

	var raw string
	err := s.conn.QueryRow(ctx, sql, s.key).Scan(&raw)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to fetch %v: %w", s.key, err)
	}

	return []byte(raw), nil
}

func (s *PostgresStore) Put(ctx context.Context, blob []byte) error {
	sql := `
			INSERT INTO coaching.kv_store (key, value, updated_at)
			VALUES ($1, $2::jsonb, now())
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at;
		`

	_, err := s.conn.Exec(ctx, sql, s.key, string(blob))

	if err != nil {
		return fmt.Errorf("failed to store %v: %w", s.key, err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	return s.conn.Close(context.Background())
}
