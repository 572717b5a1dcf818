package models

// UploadState is the per-item position in the three-phase upload protocol.
// Items move strictly forward:
//
//	queued → presigning → presigned → storing → stored → ingesting → ingested
//
// or drop to failed from any non-terminal state.
type UploadState string

const (
	UploadStateQueued     UploadState = "queued"
	UploadStatePresigning UploadState = "presigning"
	UploadStatePresigned  UploadState = "presigned"
	UploadStateStoring    UploadState = "storing"
	UploadStateStored     UploadState = "stored"
	UploadStateIngesting  UploadState = "ingesting"
	UploadStateIngested   UploadState = "ingested"
	UploadStateFailed     UploadState = "failed"
)

// UploadItem is one local file inside an upload batch. It exists only for
// the lifetime of a single Upload call; the batch result slice is how
// per-item failures stay attributable to the user.
type UploadItem struct {
	Index      int
	Path       string
	Filename   string
	MimeType   string
	StorageKey string
	RecordID   string
	State      UploadState
	Err        error
}

// Failed reports whether the item terminated without being ingested.
func (i *UploadItem) Failed() bool {
	return i.State == UploadStateFailed
}
