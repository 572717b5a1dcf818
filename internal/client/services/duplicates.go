package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/photokeeper/internal/client/api"
	"github.com/dmitrijs2005/photokeeper/internal/client/models"
	"github.com/dmitrijs2005/photokeeper/internal/common"
	"github.com/dmitrijs2005/photokeeper/internal/logging"
)

// DuplicateService consumes server-computed similarity clusters and drives
// the "keep one, delete the rest" workflow.
type DuplicateService interface {
	Groups(ctx context.Context) ([]models.DuplicateGroup, error)

	// Resolve deletes every member of the group except keepID, strictly
	// sequentially and in group order, so a partial failure leaves a
	// deterministic remainder. One deletion failing does not stop the
	// sweep; all failures are aggregated into the returned error so each
	// stays attributable. The read cache is refreshed after the sweep
	// regardless of the outcome.
	Resolve(ctx context.Context, group models.DuplicateGroup, keepID string) error
}

type duplicateService struct {
	client  api.Client
	library LibraryService
	log     logging.Logger
}

func NewDuplicateService(client api.Client, library LibraryService, log logging.Logger) DuplicateService {
	return &duplicateService{client: client, library: library, log: log}
}

func (s *duplicateService) Groups(ctx context.Context) ([]models.DuplicateGroup, error) {
	groups, err := s.client.ListDuplicates(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving duplicate groups: %w", err)
	}
	return groups, nil
}

func (s *duplicateService) Resolve(ctx context.Context, group models.DuplicateGroup, keepID string) error {
	var errs []error

	for _, rec := range group.Images {
		if rec.ID == keepID {
			continue
		}

		if err := s.client.DeleteImage(ctx, rec.ID); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", rec.ID, err))
			s.log.Warn(ctx, "duplicate deletion failed", "record_id", rec.ID, "error", err)

			// Best-effort sweep, except when the session is gone: every
			// remaining deletion would fail identically.
			if errors.Is(err, common.ErrUnauthorized) {
				break
			}
		}
	}

	if err := s.library.Refresh(ctx); err != nil {
		s.log.Warn(ctx, "refresh after duplicate resolve failed", "error", err)
	}

	return errors.Join(errs...)
}
