package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/photokeeper/internal/client/api"
	"github.com/dmitrijs2005/photokeeper/internal/client/models"
	"github.com/dmitrijs2005/photokeeper/internal/common"
	"github.com/dmitrijs2005/photokeeper/internal/filex"
	"github.com/dmitrijs2005/photokeeper/internal/logging"
	"github.com/google/uuid"
)

// ProgressFunc receives the aggregate batch progress in percent. Values are
// monotonically non-decreasing and reach exactly 100 only when the last item
// has been ingested or skipped after a failure.
type ProgressFunc func(percent float64)

// UploadService turns a batch of local files into committed remote records
// through the three-phase protocol: presign, direct store, ingest.
type UploadService interface {
	// Upload processes the files strictly in order, one in flight at a time,
	// so progress stays attributable to a single item. A failing item is
	// terminal for that item only; subsequent files are still attempted.
	// There are no automatic retries and no rollback of stored objects whose
	// ingest failed.
	//
	// The returned slice always has one entry per input path, carrying each
	// item's final state and error. The second return value is non-nil only
	// when the whole batch had to stop (dead session, canceled context).
	Upload(ctx context.Context, paths []string, onProgress ProgressFunc) ([]*models.UploadItem, error)
}

type uploadService struct {
	client  api.Client
	library LibraryService
	log     logging.Logger
}

// NewUploadService constructs an UploadService. The library is refreshed
// once after every batch so newly ingested records become visible.
func NewUploadService(client api.Client, library LibraryService, log logging.Logger) UploadService {
	return &uploadService{client: client, library: library, log: log}
}

func (s *uploadService) Upload(ctx context.Context, paths []string, onProgress ProgressFunc) ([]*models.UploadItem, error) {
	if onProgress == nil {
		onProgress = func(float64) {}
	}

	log := s.log.With("batch_id", uuid.NewString())

	items := make([]*models.UploadItem, len(paths))
	for i, path := range paths {
		items[i] = &models.UploadItem{
			Index:    i,
			Path:     path,
			Filename: filepath.Base(path),
			State:    models.UploadStateQueued,
		}
	}

	total := float64(len(items))
	var batchErr error

	for i, item := range items {
		if batchErr != nil {
			break
		}

		// The store phase owns the first 60% of this item's share of the
		// bar; ingest (slower, server-side registration) owns the rest,
		// so users get feedback before ingest completes.
		afterStore := func() {
			onProgress((float64(i) + 0.6) / total * 100)
		}

		err := s.processItem(ctx, item, afterStore)
		if err != nil {
			item.State = models.UploadStateFailed
			item.Err = err
			log.Warn(ctx, "upload item failed",
				"index", item.Index, "file", item.Filename, "state", string(item.State), "error", err)

			// A dead session or canceled context fails every remaining call
			// identically, so the batch stops; any other failure is isolated
			// to its item.
			if errors.Is(err, common.ErrUnauthorized) || ctx.Err() != nil {
				batchErr = err
			}
		} else {
			log.Info(ctx, "upload item ingested",
				"index", item.Index, "file", item.Filename, "record_id", item.RecordID)
		}

		// The item's share of the bar is consumed whether it succeeded or
		// failed, keeping the aggregate monotonic.
		onProgress(float64(i+1) / total * 100)
	}

	// Success or partial failure alike: invalidate the read cache so the
	// ingested records show up.
	if err := s.library.Refresh(ctx); err != nil {
		log.Warn(ctx, "refresh after upload failed", "error", err)
	}

	return items, batchErr
}

// processItem drives one file through presign → store → ingest, advancing
// the item's state machine at each boundary. afterStore fires once the
// direct store has succeeded.
func (s *uploadService) processItem(ctx context.Context, item *models.UploadItem, afterStore func()) error {
	data, err := os.ReadFile(item.Path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	item.MimeType = filex.DetectMimeType(item.Path, data)

	item.State = models.UploadStatePresigning
	presigned, err := s.client.PresignUpload(ctx, item.Filename, item.MimeType)
	if err != nil {
		return fmt.Errorf("presign: %w", err)
	}
	item.State = models.UploadStatePresigned
	item.StorageKey = presigned.StorageKey

	item.State = models.UploadStateStoring
	if err := s.client.StoreObject(ctx, presigned.URL, item.MimeType, data); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	item.State = models.UploadStateStored
	afterStore()

	item.State = models.UploadStateIngesting
	rec, err := s.client.IngestImage(ctx, item.Filename, item.MimeType, item.StorageKey)
	if err != nil {
		// The stored object stays behind; reconciling orphans is a
		// server-side concern.
		return fmt.Errorf("ingest: %w", err)
	}
	item.State = models.UploadStateIngested
	item.RecordID = rec.ID

	return nil
}
