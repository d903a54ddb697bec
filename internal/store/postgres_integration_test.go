//go:build integration

package store

import (
	"context"
	"os"
	"testing"

	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

func setupTestDB(t *testing.T) *PostgresStore {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	s, err := NewPostgresStore(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	_, _ = s.pool.Exec(ctx, "TRUNCATE wheel_options")
	t.Cleanup(func() {
		_, _ = s.pool.Exec(ctx, "TRUNCATE wheel_options")
		s.Close()
	})

	return s
}

func TestPostgresStore(t *testing.T) {
	s := setupTestDB(t)
	exerciseStore(t, s)
}

func TestPostgresSaveReplacesList(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	if err := s.SaveOptions(ctx, sample); err != nil {
		t.Fatalf("SaveOptions failed: %v", err)
	}
	if err := s.SaveOptions(ctx, []wheel.Option{{Name: "Only", Weight: 1}}); err != nil {
		t.Fatalf("SaveOptions failed: %v", err)
	}

	var n int
	if err := s.pool.QueryRow(ctx, "SELECT count(*) FROM wheel_options").Scan(&n); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 row after replace, got %d", n)
	}
}
