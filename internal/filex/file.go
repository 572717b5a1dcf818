// Package filex contains small file helpers shared by the client.
package filex

import (
	"mime"
	"net/http"
	"path/filepath"
)

// DetectMimeType returns the MIME type for a local file, preferring the
// extension mapping and falling back to content sniffing of the first bytes.
// Returns "application/octet-stream" when neither method yields anything
// useful.
func DetectMimeType(path string, data []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	if len(data) > 0 {
		// DetectContentType never returns an empty string.
		return http.DetectContentType(data)
	}
	return "application/octet-stream"
}
