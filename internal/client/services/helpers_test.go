package services

import (
	"context"
	"database/sql"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/photokeeper/internal/client/api"
	"github.com/dmitrijs2005/photokeeper/internal/client/models"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// setupDB opens an in-memory cache DB with the schema the services touch.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
CREATE TABLE records (
  id                TEXT PRIMARY KEY,
  seq               INTEGER NOT NULL,
  original_filename TEXT NOT NULL DEFAULT '',
  mime_type         TEXT NOT NULL DEFAULT '',
  storage_key       TEXT NOT NULL DEFAULT '',
  status            TEXT NOT NULL DEFAULT 'pending',
  tags              TEXT NOT NULL DEFAULT '[]',
  phash             TEXT NOT NULL DEFAULT '',
  created_at        TEXT NOT NULL DEFAULT '',
  processed_at      TEXT NOT NULL DEFAULT ''
);
`)
	require.NoError(t, err)
	return db
}

// fakeLibrary counts refreshes so orchestrators can be tested without a DB.
type fakeLibrary struct {
	RefreshCalls atomic.Int32
	RefreshErr   error
}

var _ LibraryService = (*fakeLibrary)(nil)

func (f *fakeLibrary) Refresh(ctx context.Context) error {
	f.RefreshCalls.Add(1)
	return f.RefreshErr
}

func (f *fakeLibrary) List(ctx context.Context) ([]models.MediaRecord, error) { return nil, nil }
func (f *fakeLibrary) PendingCount(ctx context.Context) (int, error)          { return 0, nil }
func (f *fakeLibrary) Search(ctx context.Context, query string) (*api.SearchResult, error) {
	return nil, nil
}
func (f *fakeLibrary) Get(ctx context.Context, id string) (*models.MediaRecord, error) {
	return nil, nil
}
func (f *fakeLibrary) Delete(ctx context.Context, id string) error { return nil }
