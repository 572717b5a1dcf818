package api

import (
	"encoding/json"
	"fmt"
)

// APIError is an application-level failure: the server answered, but with a
// non-2xx status. Transport failures (no response at all) are reported as
// common.ErrUnavailable instead, so callers can tell the two apart.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// NormalizeErrorMessage reduces a server error payload to a single
// human-readable string. The backend has emitted several shapes over time:
// a direct "message" field, a structured "errors" list, and FastAPI-style
// "detail" (either a string or a validation list). Precedence follows that
// order, with fallback as the last resort.
//
// The function is pure and never panics, whatever the body contains.
func NormalizeErrorMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
		Errors  []struct {
			Msg string `json:"msg"`
		} `json:"errors"`
		Detail json.RawMessage `json:"detail"`
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}

	if payload.Message != "" {
		return payload.Message
	}

	for _, e := range payload.Errors {
		if e.Msg != "" {
			return e.Msg
		}
	}

	if len(payload.Detail) > 0 {
		var s string
		if err := json.Unmarshal(payload.Detail, &s); err == nil && s != "" {
			return s
		}

		var list []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(payload.Detail, &list); err == nil {
			for _, e := range list {
				if e.Msg != "" {
					return e.Msg
				}
			}
		}
	}

	return fallback
}
