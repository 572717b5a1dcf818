// Package records persists the last fetched media-record snapshot in the
// local cache DB. The snapshot is replaced wholesale on every refresh; no
// field-level merging happens here. Display URLs are deliberately not
// stored: they are short-lived and must be re-resolved after each refresh.
package records

import (
	"context"

	"github.com/dmitrijs2005/photokeeper/internal/client/models"
)

type Repository interface {
	// ReplaceAll swaps the whole snapshot for the given records.
	// Callers wanting atomicity run it inside dbx.WithTx.
	ReplaceAll(ctx context.Context, recs []models.MediaRecord) error

	// GetAll returns the snapshot in insertion order.
	GetAll(ctx context.Context) ([]models.MediaRecord, error)

	// CountPending returns how many records still await server-side
	// processing.
	CountPending(ctx context.Context) (int, error)
}
