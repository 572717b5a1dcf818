package services

import (
	"context"

	"github.com/dmitrijs2005/photokeeper/internal/client/api"
	"github.com/dmitrijs2005/photokeeper/internal/client/models"
)

// fakeClient implements api.Client for unit tests. Behavior is scripted
// through the Fn fields; unset hooks fall back to zero-value success.
// Recorded call arguments let tests assert ordering and wiring.
type fakeClient struct {
	LoginToken string
	LoginErr   error
	LastLogin  [2]string

	RegisterToken string
	RegisterErr   error

	MeRet *models.User
	MeErr error

	ListImagesFn    func(ctx context.Context) ([]models.MediaRecord, error)
	ListImagesCalls int

	GetImageFn func(id string) (*models.MediaRecord, error)

	DeleteFn   func(id string) error
	DeletedIDs []string

	ResolveURLFn func(id string) (string, error)
	ResolvedIDs  []string

	PresignFn     func(filename, mime string) (*api.PresignedUpload, error)
	PresignCalls  []string
	StoreFn       func(url, mime string, data []byte) error
	StoredKeys    []string
	IngestFn      func(filename, mime, key string) (*models.MediaRecord, error)
	IngestedFiles []string

	SearchRet *api.SearchResult
	SearchErr error
	LastQuery string

	DuplicatesRet []models.DuplicateGroup
	DuplicatesErr error

	AlbumsRet      []models.Album
	AlbumsErr      error
	CreateAlbumRet *models.Album
	CreateAlbumErr error
	LastAlbumOp    string
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	f.LastLogin = [2]string{email, password}
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, fullName, email, password string) (string, error) {
	return f.RegisterToken, f.RegisterErr
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) {
	return f.MeRet, f.MeErr
}

func (f *fakeClient) ListImages(ctx context.Context) ([]models.MediaRecord, error) {
	f.ListImagesCalls++
	if f.ListImagesFn != nil {
		return f.ListImagesFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) GetImage(ctx context.Context, id string) (*models.MediaRecord, error) {
	if f.GetImageFn != nil {
		return f.GetImageFn(id)
	}
	return &models.MediaRecord{ID: id}, nil
}

func (f *fakeClient) DeleteImage(ctx context.Context, id string) error {
	f.DeletedIDs = append(f.DeletedIDs, id)
	if f.DeleteFn != nil {
		return f.DeleteFn(id)
	}
	return nil
}

func (f *fakeClient) ResolveURL(ctx context.Context, id string) (string, error) {
	f.ResolvedIDs = append(f.ResolvedIDs, id)
	if f.ResolveURLFn != nil {
		return f.ResolveURLFn(id)
	}
	return "https://store.example.com/" + id, nil
}

func (f *fakeClient) PresignUpload(ctx context.Context, filename, mime string) (*api.PresignedUpload, error) {
	f.PresignCalls = append(f.PresignCalls, filename)
	if f.PresignFn != nil {
		return f.PresignFn(filename, mime)
	}
	return &api.PresignedUpload{URL: "https://store.example.com/put/" + filename, StorageKey: "key/" + filename}, nil
}

func (f *fakeClient) StoreObject(ctx context.Context, url, mime string, data []byte) error {
	f.StoredKeys = append(f.StoredKeys, url)
	if f.StoreFn != nil {
		return f.StoreFn(url, mime, data)
	}
	return nil
}

func (f *fakeClient) IngestImage(ctx context.Context, filename, mime, key string) (*models.MediaRecord, error) {
	f.IngestedFiles = append(f.IngestedFiles, filename)
	if f.IngestFn != nil {
		return f.IngestFn(filename, mime, key)
	}
	return &models.MediaRecord{ID: "rec-" + filename, Status: models.StatusPending}, nil
}

func (f *fakeClient) Search(ctx context.Context, query string) (*api.SearchResult, error) {
	f.LastQuery = query
	return f.SearchRet, f.SearchErr
}

func (f *fakeClient) ListDuplicates(ctx context.Context) ([]models.DuplicateGroup, error) {
	return f.DuplicatesRet, f.DuplicatesErr
}

func (f *fakeClient) ListAlbums(ctx context.Context) ([]models.Album, error) {
	return f.AlbumsRet, f.AlbumsErr
}

func (f *fakeClient) CreateAlbum(ctx context.Context, name, description string) (*models.Album, error) {
	f.LastAlbumOp = "create " + name
	return f.CreateAlbumRet, f.CreateAlbumErr
}

func (f *fakeClient) GetAlbum(ctx context.Context, id string) (*models.Album, error) {
	f.LastAlbumOp = "get " + id
	return &models.Album{ID: id}, nil
}

func (f *fakeClient) UpdateAlbum(ctx context.Context, id, name, description string) (*models.Album, error) {
	f.LastAlbumOp = "update " + id
	return &models.Album{ID: id, Name: name, Description: description}, nil
}

func (f *fakeClient) DeleteAlbum(ctx context.Context, id string) error {
	f.LastAlbumOp = "delete " + id
	return nil
}

func (f *fakeClient) ListAlbumImages(ctx context.Context, albumID string) ([]models.MediaRecord, error) {
	f.LastAlbumOp = "images " + albumID
	return nil, nil
}

func (f *fakeClient) AddAlbumImages(ctx context.Context, albumID string, imageIDs []string) error {
	f.LastAlbumOp = "add " + albumID
	return nil
}

func (f *fakeClient) RemoveAlbumImage(ctx context.Context, albumID, imageID string) error {
	f.LastAlbumOp = "remove " + albumID + "/" + imageID
	return nil
}
