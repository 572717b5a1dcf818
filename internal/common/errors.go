// Package common defines shared constants and sentinel errors used across
// the photokeeper client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")

	// ErrNotFound marks a 404: the record, album, or object is gone on
	// the server side.
	ErrNotFound = errors.New("not found")
)
