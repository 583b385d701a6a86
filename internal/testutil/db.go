package testutil

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/sealion/internal/domain"
	"github.com/footprint-tools/sealion/internal/history"
	"github.com/footprint-tools/sealion/internal/history/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, migrations.Run(db), "failed to run migrations")
	return db
}

// NewHistoryStore returns a history store on a fresh in-memory database.
func NewHistoryStore(t *testing.T) *history.Store {
	t.Helper()
	return history.NewWithDB(NewTestDB(t))
}

// SeedHistory records lines one minute apart starting at start, oldest first.
func SeedHistory(t *testing.T, s domain.HistoryStore, start time.Time, lines ...string) {
	t.Helper()

	for i, line := range lines {
		command, _, _ := strings.Cut(line, " ")
		_, err := s.Record(domain.HistoryEntry{
			Line:      line,
			Command:   command,
			Matched:   true,
			CreatedAt: start.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err, "failed to seed history line %q", line)
	}
}

