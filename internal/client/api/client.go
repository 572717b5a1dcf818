// Package api implements the HTTP client for the photokeeper backend: a
// single outbound gateway that attaches the session credential to every
// request and maps transport failures to a small error taxonomy.
package api

import (
	"context"

	"github.com/dmitrijs2005/photokeeper/internal/client/models"
)

// TokenSource supplies the current bearer token and accepts the clear-out
// that follows an authorization failure. Implemented by session.Session.
type TokenSource interface {
	Token() (string, bool)
	Clear(ctx context.Context) error
}

// PresignedUpload is a short-lived direct-write capability for object
// storage. The server has answered with both "storageKey" and "key" field
// names; decoding accepts either.
type PresignedUpload struct {
	URL        string
	StorageKey string
}

// SearchResult is the response of the keyword search endpoint.
type SearchResult struct {
	Images []models.MediaRecord `json:"images"`
	Total  int                  `json:"total"`
}

// Client is the full backend surface the services consume.
//
// Error contract for every method:
//   - common.ErrUnauthorized: the server returned 401. The session has
//     already been cleared; callers must not retry.
//   - common.ErrUnavailable (wrapped): no response was received.
//   - common.ErrNotFound (wrapped): the server returned 404.
//   - *APIError: any other non-2xx response, message normalized.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, fullName, email, password string) (string, error)
	Me(ctx context.Context) (*models.User, error)

	ListImages(ctx context.Context) ([]models.MediaRecord, error)
	GetImage(ctx context.Context, id string) (*models.MediaRecord, error)
	DeleteImage(ctx context.Context, id string) error
	ResolveURL(ctx context.Context, id string) (string, error)

	PresignUpload(ctx context.Context, filename, mimeType string) (*PresignedUpload, error)
	StoreObject(ctx context.Context, url, mimeType string, data []byte) error
	IngestImage(ctx context.Context, filename, mimeType, storageKey string) (*models.MediaRecord, error)

	Search(ctx context.Context, query string) (*SearchResult, error)
	ListDuplicates(ctx context.Context) ([]models.DuplicateGroup, error)

	ListAlbums(ctx context.Context) ([]models.Album, error)
	CreateAlbum(ctx context.Context, name, description string) (*models.Album, error)
	GetAlbum(ctx context.Context, id string) (*models.Album, error)
	// UpdateAlbum changes name and/or description; an empty field is
	// omitted from the request and keeps its current value.
	UpdateAlbum(ctx context.Context, id, name, description string) (*models.Album, error)
	DeleteAlbum(ctx context.Context, id string) error
	ListAlbumImages(ctx context.Context, albumID string) ([]models.MediaRecord, error)
	AddAlbumImages(ctx context.Context, albumID string, imageIDs []string) error
	RemoveAlbumImage(ctx context.Context, albumID, imageID string) error
}
