package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/photokeeper/internal/client/api"
	"github.com/dmitrijs2005/photokeeper/internal/client/models"
)

// AlbumService manages albums and their many-to-many record membership.
type AlbumService interface {
	List(ctx context.Context) ([]models.Album, error)
	Create(ctx context.Context, name, description string) (*models.Album, error)
	Get(ctx context.Context, id string) (*models.Album, error)
	// Update changes name and/or description; empty fields keep their
	// current values.
	Update(ctx context.Context, id, name, description string) (*models.Album, error)
	Delete(ctx context.Context, id string) error
	Images(ctx context.Context, albumID string) ([]models.MediaRecord, error)
	AddImages(ctx context.Context, albumID string, imageIDs []string) error
	RemoveImage(ctx context.Context, albumID, imageID string) error
}

type albumService struct {
	client api.Client
}

func NewAlbumService(client api.Client) AlbumService {
	return &albumService{client: client}
}

func (s *albumService) List(ctx context.Context) ([]models.Album, error) {
	albums, err := s.client.ListAlbums(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving albums: %w", err)
	}
	return albums, nil
}

func (s *albumService) Create(ctx context.Context, name, description string) (*models.Album, error) {
	album, err := s.client.CreateAlbum(ctx, name, description)
	if err != nil {
		return nil, fmt.Errorf("error creating album: %w", err)
	}
	return album, nil
}

func (s *albumService) Get(ctx context.Context, id string) (*models.Album, error) {
	album, err := s.client.GetAlbum(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving album: %w", err)
	}
	return album, nil
}

func (s *albumService) Update(ctx context.Context, id, name, description string) (*models.Album, error) {
	album, err := s.client.UpdateAlbum(ctx, id, name, description)
	if err != nil {
		return nil, fmt.Errorf("error updating album: %w", err)
	}
	return album, nil
}

func (s *albumService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteAlbum(ctx, id); err != nil {
		return fmt.Errorf("error deleting album: %w", err)
	}
	return nil
}

func (s *albumService) Images(ctx context.Context, albumID string) ([]models.MediaRecord, error) {
	recs, err := s.client.ListAlbumImages(ctx, albumID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving album images: %w", err)
	}
	return recs, nil
}

func (s *albumService) AddImages(ctx context.Context, albumID string, imageIDs []string) error {
	if err := s.client.AddAlbumImages(ctx, albumID, imageIDs); err != nil {
		return fmt.Errorf("error adding images to album: %w", err)
	}
	return nil
}

func (s *albumService) RemoveImage(ctx context.Context, albumID, imageID string) error {
	if err := s.client.RemoveAlbumImage(ctx, albumID, imageID); err != nil {
		return fmt.Errorf("error removing image from album: %w", err)
	}
	return nil
}
