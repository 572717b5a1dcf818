package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/photokeeper/internal/client/api"
	"github.com/dmitrijs2005/photokeeper/internal/client/models"
	"github.com/dmitrijs2005/photokeeper/internal/common"
	"github.com/dmitrijs2005/photokeeper/internal/logging"
	"github.com/stretchr/testify/require"
)

func writeTempFiles(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(paths[i], []byte("image bytes "+name), 0o600))
	}
	return paths
}

func requireMonotonic(t *testing.T, progress []float64) {
	t.Helper()
	for i := 1; i < len(progress); i++ {
		require.GreaterOrEqual(t, progress[i], progress[i-1],
			"progress went backwards at step %d: %v", i, progress)
	}
}

func TestUpload_SequentialHappyPath(t *testing.T) {
	paths := writeTempFiles(t, "a.jpg", "b.png")
	ctx := context.Background()

	client := &fakeClient{}
	library := &fakeLibrary{}
	svc := NewUploadService(client, library, logging.NewNoopLogger())

	var progress []float64
	items, err := svc.Upload(ctx, paths, func(p float64) { progress = append(progress, p) })
	require.NoError(t, err)
	require.Len(t, items, 2)

	for i, item := range items {
		require.Equal(t, i, item.Index)
		require.Equal(t, models.UploadStateIngested, item.State)
		require.False(t, item.Failed())
		require.NotEmpty(t, item.RecordID)
		require.NotEmpty(t, item.StorageKey)
	}
	require.Equal(t, "image/jpeg", items[0].MimeType)
	require.Equal(t, "image/png", items[1].MimeType)

	// Strictly sequential: every phase of item 0 before any phase of item 1.
	require.Equal(t, []string{"a.jpg", "b.png"}, client.PresignCalls)
	require.Equal(t, []string{"a.jpg", "b.png"}, client.IngestedFiles)

	// Store consumes 60% of each item's share, the end of the item the rest.
	require.Equal(t, []float64{30, 50, 80, 100}, progress)
	requireMonotonic(t, progress)

	require.Equal(t, int32(1), library.RefreshCalls.Load())
}

func TestUpload_ItemFailureIsolated(t *testing.T) {
	paths := writeTempFiles(t, "a.jpg", "b.jpg", "c.jpg")
	ctx := context.Background()

	client := &fakeClient{}
	client.StoreFn = func(url, mime string, data []byte) error {
		if strings.Contains(url, "b.jpg") {
			return &api.APIError{StatusCode: 500, Message: "storage write failed"}
		}
		return nil
	}
	library := &fakeLibrary{}
	svc := NewUploadService(client, library, logging.NewNoopLogger())

	var progress []float64
	items, err := svc.Upload(ctx, paths, func(p float64) { progress = append(progress, p) })
	require.NoError(t, err, "an isolated item failure is not a batch failure")
	require.Len(t, items, 3)

	require.False(t, items[0].Failed())
	require.True(t, items[1].Failed())
	require.ErrorContains(t, items[1].Err, "store")
	require.False(t, items[2].Failed())

	// The failed item was never ingested; its successors still were.
	require.Equal(t, []string{"a.jpg", "c.jpg"}, client.IngestedFiles)

	requireMonotonic(t, progress)
	require.Equal(t, float64(100), progress[len(progress)-1])

	require.Equal(t, int32(1), library.RefreshCalls.Load())
}

func TestUpload_UnauthorizedStopsBatch(t *testing.T) {
	paths := writeTempFiles(t, "a.jpg", "b.jpg", "c.jpg")
	ctx := context.Background()

	client := &fakeClient{}
	client.PresignFn = func(filename, mime string) (*api.PresignedUpload, error) {
		return nil, common.ErrUnauthorized
	}
	library := &fakeLibrary{}
	svc := NewUploadService(client, library, logging.NewNoopLogger())

	items, err := svc.Upload(ctx, paths, nil)
	require.ErrorIs(t, err, common.ErrUnauthorized)

	// The first item failed; the rest were never started.
	require.True(t, items[0].Failed())
	require.Equal(t, 1, len(client.PresignCalls))
	for _, item := range items[1:] {
		require.False(t, item.Failed())
		require.Empty(t, item.MimeType)
	}
}

func TestUpload_CanceledContextStopsBatch(t *testing.T) {
	paths := writeTempFiles(t, "a.jpg", "b.jpg")
	ctx, cancel := context.WithCancel(context.Background())

	client := &fakeClient{}
	client.StoreFn = func(url, mime string, data []byte) error {
		cancel()
		return ctx.Err()
	}
	library := &fakeLibrary{}
	svc := NewUploadService(client, library, logging.NewNoopLogger())

	items, err := svc.Upload(ctx, paths, nil)
	require.Error(t, err)
	require.True(t, items[0].Failed())
	require.Equal(t, 1, len(client.PresignCalls))
}

func TestUpload_UnreadableFileFailsItemOnly(t *testing.T) {
	paths := writeTempFiles(t, "a.jpg")
	paths = append([]string{filepath.Join(t.TempDir(), "missing.jpg")}, paths...)
	ctx := context.Background()

	client := &fakeClient{}
	library := &fakeLibrary{}
	svc := NewUploadService(client, library, logging.NewNoopLogger())

	items, err := svc.Upload(ctx, paths, nil)
	require.NoError(t, err)
	require.True(t, items[0].Failed())
	require.ErrorContains(t, items[0].Err, "reading file")
	require.False(t, items[1].Failed())

	// The unreadable file never reached the server.
	require.Equal(t, []string{"a.jpg"}, client.PresignCalls)
}

func TestUpload_IngestFailureMarksItemFailed(t *testing.T) {
	paths := writeTempFiles(t, "a.jpg")
	ctx := context.Background()

	client := &fakeClient{}
	client.IngestFn = func(filename, mime, key string) (*models.MediaRecord, error) {
		return nil, errors.New("phash worker unavailable")
	}
	library := &fakeLibrary{}
	svc := NewUploadService(client, library, logging.NewNoopLogger())

	items, err := svc.Upload(ctx, paths, nil)
	require.NoError(t, err)
	require.True(t, items[0].Failed())
	require.ErrorContains(t, items[0].Err, "ingest")

	// The object made it to storage before ingest failed; there is no
	// compensating delete, the server reconciles orphans.
	require.Equal(t, 1, len(client.StoredKeys))
	require.Equal(t, int32(1), library.RefreshCalls.Load())
}
