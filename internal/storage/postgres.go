package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

// PostgresConfig holds connection settings for the Postgres backend
type PostgresConfig struct {
	Host               string
	Port               int
	User               string
	Password           string
	DBName             string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	ConnMaxIdleTimeMin int
	QuotaBytes         int
}

// PostgresStore persists each collection as a single jsonb row. The
// whole-blob write model is kept on purpose: one row per collection,
// rewritten in full, no row-level versioning.
type PostgresStore struct {
	db         *sql.DB
	quotaBytes int
}

func NewPostgresStore(cfg PostgresConfig) (*PostgresStore, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMin) * time.Minute)
	db.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTimeMin) * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	quota := cfg.QuotaBytes
	if quota <= 0 {
		quota = DefaultQuotaBytes
	}

	store := &PostgresStore{db: db, quotaBytes: quota}
	if err := store.ensureSchema(); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	slog.Info("Connected to database",
		"host", cfg.Host, "port", cfg.Port, "dbname", cfg.DBName,
		"max_open_conns", cfg.MaxOpenConns, "quota_bytes", quota)

	return store, nil
}

func (s *PostgresStore) ensureSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS collections (
			name       TEXT PRIMARY KEY,
			body       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`

	_, err := s.db.Exec(query)
	return err
}

func (s *PostgresStore) Load(ctx context.Context, collection string) ([]byte, error) {
	var blob []byte
	query := `SELECT body FROM collections WHERE name = $1`

	err := s.db.QueryRowContext(ctx, query, collection).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %s: %w", collection, err)
	}
	return blob, nil
}

func (s *PostgresStore) Save(ctx context.Context, collection string, blob []byte) error {
	if len(blob) > s.quotaBytes {
		return ErrCapacityExceeded
	}

	query := `
		INSERT INTO collections (name, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = now()`

	if _, err := s.db.ExecContext(ctx, query, collection, blob); err != nil {
		return fmt.Errorf("failed to save collection %s: %w", collection, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection string) error {
	query := `DELETE FROM collections WHERE name = $1`
	if _, err := s.db.ExecContext(ctx, query, collection); err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", collection, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
