package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/photokeeper/internal/client/api"
	"github.com/dmitrijs2005/photokeeper/internal/client/models"
	"github.com/dmitrijs2005/photokeeper/internal/client/repositories/records"
	"github.com/dmitrijs2005/photokeeper/internal/common"
	"github.com/dmitrijs2005/photokeeper/internal/dbx"
	"github.com/dmitrijs2005/photokeeper/internal/logging"
)

// LibraryService owns the shared read cache of media records. Multiple
// components trigger refreshes (the poller, uploads finishing, duplicate
// sweeps) but none mutates the cache incrementally: every refresh replaces
// the snapshot wholesale and a later refresh always wins.
type LibraryService interface {
	// Refresh re-fetches the record list, re-enriches display URLs, and
	// swaps the snapshot. Concurrent calls are coalesced: while one refresh
	// is in flight any further call returns immediately without issuing
	// duplicate requests.
	Refresh(ctx context.Context) error

	// List returns the current snapshot with whatever display URLs the last
	// enrichment produced.
	List(ctx context.Context) ([]models.MediaRecord, error)

	// PendingCount reports how many cached records still await server-side
	// tag extraction.
	PendingCount(ctx context.Context) (int, error)

	// Search queries the server directly; search results are not cached.
	Search(ctx context.Context, query string) (*api.SearchResult, error)

	// Get fetches a single record with full detail.
	Get(ctx context.Context, id string) (*models.MediaRecord, error)

	// Delete removes a record and refreshes the snapshot.
	Delete(ctx context.Context, id string) error
}

type libraryService struct {
	client api.Client
	db     *sql.DB
	log    logging.Logger

	mu         sync.Mutex
	refreshing bool

	// urls maps record id to the last successfully resolved display URL.
	// Kept in memory only: URLs are short-lived by contract and must never
	// be persisted. A failed re-resolution keeps the previous entry.
	urlMu sync.RWMutex
	urls  map[string]string
}

// NewLibraryService constructs a LibraryService over the given API client
// and cache DB.
func NewLibraryService(client api.Client, db *sql.DB, log logging.Logger) LibraryService {
	return &libraryService{
		client: client,
		db:     db,
		log:    log,
		urls:   make(map[string]string),
	}
}

func (s *libraryService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.refreshing {
		// A refresh is already in flight; its result will replace the
		// snapshot anyway, so this call is coalesced instead of duplicated.
		s.mu.Unlock()
		return nil
	}
	s.refreshing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.refreshing = false
		s.mu.Unlock()
	}()

	recs, err := s.client.ListImages(ctx)
	if err != nil {
		return fmt.Errorf("refresh error: %w", err)
	}

	s.enrich(ctx, recs)

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return records.NewSQLiteRepository(tx).ReplaceAll(ctx, recs)
	})
	if err != nil {
		return fmt.Errorf("snapshot saving error: %w", err)
	}
	return nil
}

// enrich resolves a display URL for every record in the batch. Failures are
// isolated: a record whose resolution fails keeps its previous URL (possibly
// none) and never aborts its siblings. Only a dead session stops the fan-out,
// since every remaining call would fail the same way.
func (s *libraryService) enrich(ctx context.Context, recs []models.MediaRecord) {
	for i := range recs {
		rec := &recs[i]

		url, err := s.client.ResolveURL(ctx, rec.ID)
		if err != nil {
			if errors.Is(err, common.ErrUnauthorized) {
				s.log.Warn(ctx, "url enrichment stopped: session expired")
				break
			}
			s.log.Warn(ctx, "url enrichment failed", "record_id", rec.ID, "error", err)
		} else {
			s.urlMu.Lock()
			s.urls[rec.ID] = url
			s.urlMu.Unlock()
		}

		s.urlMu.RLock()
		rec.URL = s.urls[rec.ID]
		s.urlMu.RUnlock()
	}
}

func (s *libraryService) List(ctx context.Context) ([]models.MediaRecord, error) {
	recs, err := records.NewSQLiteRepository(s.db).GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving records: %w", err)
	}

	s.urlMu.RLock()
	for i := range recs {
		recs[i].URL = s.urls[recs[i].ID]
	}
	s.urlMu.RUnlock()

	return recs, nil
}

func (s *libraryService) PendingCount(ctx context.Context) (int, error) {
	return records.NewSQLiteRepository(s.db).CountPending(ctx)
}

func (s *libraryService) Search(ctx context.Context, query string) (*api.SearchResult, error) {
	res, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search error: %w", err)
	}
	return res, nil
}

func (s *libraryService) Get(ctx context.Context, id string) (*models.MediaRecord, error) {
	rec, err := s.client.GetImage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving record: %w", err)
	}

	s.urlMu.RLock()
	rec.URL = s.urls[rec.ID]
	s.urlMu.RUnlock()

	return rec, nil
}

func (s *libraryService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteImage(ctx, id); err != nil {
		return fmt.Errorf("error deleting record: %w", err)
	}

	if err := s.Refresh(ctx); err != nil {
		s.log.Warn(ctx, "refresh after delete failed", "error", err)
	}
	return nil
}
