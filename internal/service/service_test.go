package service_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"devdiary/internal/auth"
	"devdiary/internal/journal"
	"devdiary/internal/storage"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testContext() context.Context {
	return context.Background()
}

type testStack struct {
	records *storage.RecordRepo
	gate    *storage.SessionGate
	issuer  *auth.Issuer
}

// newTestStack builds a record store and session gate on a fresh SQLite file.
func newTestStack(t *testing.T) testStack {
	t.Helper()

	db, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("storage.Migrate() error = %v", err)
	}

	kv := storage.NewKVRepo(db)
	records := storage.NewRecordRepo(kv)
	if err := records.Load(testContext()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return testStack{
		records: records,
		gate:    storage.NewSessionGate(kv),
		issuer:  auth.NewIssuer("test-secret", time.Minute, time.Hour),
	}
}

func ptr[T any](v T) *T { return &v }

func session(userID int64) journal.Session {
	return journal.Session{UserID: userID}
}
