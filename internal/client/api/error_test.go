package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"fastapi detail", `{"detail": "Invalid credentials"}`, "Invalid credentials"},
		{"errors list", `{"errors":[{"msg":"too short"}]}`, "too short"},
		{"direct message", `{"message":"nope"}`, "nope"},
		{"message beats detail", `{"message":"nope","detail":"other"}`, "nope"},
		{"errors beat detail", `{"errors":[{"msg":"bad"}],"detail":"other"}`, "bad"},
		{"detail validation list", `{"detail":[{"msg":"field required","loc":["body","email"]}]}`, "field required"},
		{"empty body", ``, "generic"},
		{"html body", `<html>502</html>`, "generic"},
		{"empty object", `{}`, "generic"},
		{"empty errors", `{"errors":[]}`, "generic"},
		{"detail wrong type", `{"detail": 42}`, "generic"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, NormalizeErrorMessage([]byte(tc.body), "generic"))
		})
	}
}

func TestNormalizeErrorMessage_NeverPanics(t *testing.T) {
	bodies := []string{`null`, `[]`, `"str"`, `{"errors": "oops"}`, `{"detail": {"nested": true}}`}
	for _, b := range bodies {
		require.NotPanics(t, func() {
			NormalizeErrorMessage([]byte(b), "generic")
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 422, Message: "too short"}
	require.Equal(t, "api error (422): too short", err.Error())
}
