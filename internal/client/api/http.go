package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/photokeeper/internal/client/models"
	"github.com/dmitrijs2005/photokeeper/internal/common"
	"github.com/dmitrijs2005/photokeeper/internal/logging"
)

const defaultRequestTimeout = 30 * time.Second

// HTTPClient is the concrete Client talking JSON over HTTP.
//
// Every call goes through do(): the bearer token is attached when the
// session holds one, and a 401 from any endpoint clears the session before
// the error is returned. That is the single place authorization failure is
// handled; nothing retries or re-authenticates.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	session    TokenSource
	log        logging.Logger
}

func NewHTTPClient(baseURL string, session TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		session:    session,
		log:        log,
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.session.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Hard failure path: the credential is dead. Clear it once, here,
		// so no further protected call goes out with a stale token.
		if clearErr := c.session.Clear(ctx); clearErr != nil {
			c.log.Warn(ctx, "clearing session after 401", "error", clearErr)
		}
		msg := NormalizeErrorMessage(data, "session expired")
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, msg)
	}

	if resp.StatusCode == http.StatusNotFound {
		msg := NormalizeErrorMessage(data, "not found")
		return fmt.Errorf("%w: %s", common.ErrNotFound, msg)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    NormalizeErrorMessage(data, "request failed: "+resp.Status),
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	in := map[string]string{"email": email, "password": password}
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

func (c *HTTPClient) Register(ctx context.Context, fullName, email, password string) (string, error) {
	in := map[string]string{"full_name": fullName, "email": email, "password": password}
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", in, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// recordList accepts both shapes the backend has used for image collections:
// a bare array and an {"images": [...]} wrapper.
type recordList []models.MediaRecord

func (l *recordList) UnmarshalJSON(data []byte) error {
	var records []models.MediaRecord
	if err := json.Unmarshal(data, &records); err == nil {
		*l = records
		return nil
	}

	var wrapper struct {
		Images []models.MediaRecord `json:"images"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf("image list: unexpected shape: %w", err)
	}
	*l = wrapper.Images
	return nil
}

func (c *HTTPClient) ListImages(ctx context.Context) ([]models.MediaRecord, error) {
	var out recordList
	if err := c.do(ctx, http.MethodGet, "/images/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetImage(ctx context.Context, id string) (*models.MediaRecord, error) {
	var out models.MediaRecord
	if err := c.do(ctx, http.MethodGet, "/images/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteImage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/images/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) ResolveURL(ctx context.Context, id string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodGet, "/images/"+url.PathEscape(id)+"/url", nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (p *PresignedUpload) UnmarshalJSON(data []byte) error {
	var raw struct {
		URL        string `json:"url"`
		StorageKey string `json:"storageKey"`
		Key        string `json:"key"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.URL = raw.URL
	p.StorageKey = raw.StorageKey
	if p.StorageKey == "" {
		p.StorageKey = raw.Key
	}
	return nil
}

func (c *HTTPClient) PresignUpload(ctx context.Context, filename, mimeType string) (*PresignedUpload, error) {
	in := map[string]string{"filename": filename, "mime": mimeType}
	var out PresignedUpload
	if err := c.do(ctx, http.MethodPost, "/images/presign", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StoreObject writes the file bytes directly to the presigned target. The
// capability URL is the credential here, so no Authorization header is sent.
func (c *HTTPClient) StoreObject(ctx context.Context, uploadURL, mimeType string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building store request: %w", err)
	}
	req.Header.Set("Content-Type", mimeType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    NormalizeErrorMessage(b, "store failed: "+resp.Status),
		}
	}
	return nil
}

func (c *HTTPClient) IngestImage(ctx context.Context, filename, mimeType, storageKey string) (*models.MediaRecord, error) {
	in := map[string]string{
		"filename":    filename,
		"mime_type":   mimeType,
		"storage_key": storageKey,
	}
	var out models.MediaRecord
	if err := c.do(ctx, http.MethodPost, "/images/ingest", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Search(ctx context.Context, query string) (*SearchResult, error) {
	var out SearchResult
	path := "/search?query=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListDuplicates(ctx context.Context) ([]models.DuplicateGroup, error) {
	var out []models.DuplicateGroup
	if err := c.do(ctx, http.MethodGet, "/search/duplicates", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListAlbums(ctx context.Context) ([]models.Album, error) {
	var out []models.Album
	if err := c.do(ctx, http.MethodGet, "/albums/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateAlbum(ctx context.Context, name, description string) (*models.Album, error) {
	in := map[string]string{"name": name, "description": description}
	var out models.Album
	if err := c.do(ctx, http.MethodPost, "/albums/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetAlbum(ctx context.Context, id string) (*models.Album, error) {
	var out models.Album
	if err := c.do(ctx, http.MethodGet, "/albums/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateAlbum(ctx context.Context, id, name, description string) (*models.Album, error) {
	in := map[string]string{}
	if name != "" {
		in["name"] = name
	}
	if description != "" {
		in["description"] = description
	}

	var out models.Album
	if err := c.do(ctx, http.MethodPut, "/albums/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteAlbum(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/albums/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) ListAlbumImages(ctx context.Context, albumID string) ([]models.MediaRecord, error) {
	var out recordList
	if err := c.do(ctx, http.MethodGet, "/albums/"+url.PathEscape(albumID)+"/images", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) AddAlbumImages(ctx context.Context, albumID string, imageIDs []string) error {
	in := map[string][]string{"image_ids": imageIDs}
	return c.do(ctx, http.MethodPost, "/albums/"+url.PathEscape(albumID)+"/images", in, nil)
}

func (c *HTTPClient) RemoveAlbumImage(ctx context.Context, albumID, imageID string) error {
	path := "/albums/" + url.PathEscape(albumID) + "/images/" + url.PathEscape(imageID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
