// Package testutil starts the development backend for tests
package testutil

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/trackmaster/trackmaster/internal/database"
	"github.com/trackmaster/trackmaster/internal/server"
)

// SeedTime is the "now" the demo data is seeded against
var SeedTime = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

// QuietLogger discards every record
func QuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Backend is the development server running on httptest over a seeded in-memory database
type Backend struct {
	URL  string
	Repo *database.Repository
	Seed *database.SeedResult
}

// SetupTestRepo opens an in-memory database with full schema and demo data
func SetupTestRepo(t *testing.T) (*database.Repository, *database.SeedResult) {
	t.Helper()
	ctx := context.Background()

	db, err := database.InitDB(ctx, database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := database.NewRepository(db)
	seed, err := database.Seed(ctx, repo, SeedTime)
	if err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}
	return repo, seed
}

// StartBackend serves a seeded database until the test ends
func StartBackend(t *testing.T) *Backend {
	t.Helper()
	repo, seed := SetupTestRepo(t)

	ts := httptest.NewServer(server.New(repo, QuietLogger(), io.Discard))
	t.Cleanup(ts.Close)

	return &Backend{URL: ts.URL, Repo: repo, Seed: seed}
}
