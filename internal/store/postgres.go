package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS wheel_options (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			weight INTEGER NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) LoadOptions(ctx context.Context) ([]wheel.Option, error) {
	rows, err := s.pool.Query(ctx, `SELECT name, weight FROM wheel_options ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query options: %w", err)
	}
	defer rows.Close()

	options := []wheel.Option{}
	for rows.Next() {
		var o wheel.Option
		if err := rows.Scan(&o.Name, &o.Weight); err != nil {
			return nil, fmt.Errorf("scan option: %w", err)
		}
		options = append(options, o)
	}
	return options, rows.Err()
}

func (s *PostgresStore) SaveOptions(ctx context.Context, options []wheel.Option) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM wheel_options`); err != nil {
		return fmt.Errorf("clear options: %w", err)
	}

	batch := &pgx.Batch{}
	for i, o := range options {
		batch.Queue(`INSERT INTO wheel_options (position, name, weight) VALUES ($1, $2, $3)`, i, o.Name, o.Weight)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert options: %w", err)
		}
	}
	return tx.Commit(ctx)
}
