// Package models defines the client-side view of server records: images with
// their processing state and tags, duplicate groups, and albums.
package models

import (
	"encoding/json"
	"fmt"
)

// Status is the server-side processing state of a media record. Tag
// extraction runs asynchronously, so a freshly ingested record stays
// StatusPending until a later re-fetch observes the transition.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Processed reports whether the server has finished (successfully or not)
// processing the record. Unknown statuses are treated as processed so that
// the poller does not wait on them forever.
func (s Status) Processed() bool {
	return s != StatusPending && s != StatusProcessing
}

// Tag is a single extracted tag. The server has shipped tags both as bare
// strings and as structured objects over time, so unmarshalling accepts
// either shape and normalizes here, at the boundary.
type Tag struct {
	Name       string  `json:"tag_name"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*t = Tag{Name: name, Confidence: 1}
		return nil
	}

	var obj struct {
		TagName    string  `json:"tag_name"`
		Name       string  `json:"name"`
		Confidence float64 `json:"confidence"`
		Source     string  `json:"source"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("tag: unexpected shape: %w", err)
	}

	t.Name = obj.TagName
	if t.Name == "" {
		t.Name = obj.Name
	}
	t.Confidence = obj.Confidence
	t.Source = obj.Source
	return nil
}

// MediaRecord is a stored image and its processing metadata.
//
// URL is a derived, short-lived display link resolved per record through the
// API; it is never persisted and must be re-resolved after every cache
// refresh.
type MediaRecord struct {
	ID               string `json:"id"`
	OriginalFilename string `json:"original_filename"`
	MimeType         string `json:"mime_type"`
	StorageKey       string `json:"storage_key"`
	Status           Status `json:"status"`
	Tags             []Tag  `json:"tags"`
	PHash            string `json:"phash"`
	CreatedAt        string `json:"created_at"`
	ProcessedAt      string `json:"processed_at"`

	URL string `json:"-"`
}

// TagNames returns the tag names in server order. Duplicate names are kept
// as-is.
func (r *MediaRecord) TagNames() []string {
	names := make([]string, 0, len(r.Tags))
	for _, t := range r.Tags {
		names = append(names, t.Name)
	}
	return names
}

// DuplicateGroup is a server-computed cluster of similar records. The client
// only consumes groups; deleting members invalidates the group on the next
// fetch.
type DuplicateGroup struct {
	Images          []MediaRecord `json:"images"`
	SimilarityScore float64       `json:"similarity_score"`
}
