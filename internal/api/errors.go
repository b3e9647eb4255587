package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Error is a non-2xx backend response. Status and Body carry the backend's
// answer unchanged so callers can branch on status or surface the payload.
type Error struct {
	Status int
	Body   []byte
}

func (e *Error) Error() string {
	msg := e.Message()
	if msg == "" {
		return fmt.Sprintf("api: backend returned %d", e.Status)
	}
	return fmt.Sprintf("api: backend returned %d: %s", e.Status, msg)
}

// Message extracts a human-readable message from the backend payload.
// The backend answers either {"message": "..."} or a field-keyed error map
// {"errors": {"field": ["msg", ...]}}; field errors are concatenated in
// field order.
func (e *Error) Message() string {
	var payload struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(e.Body, &payload); err != nil {
		return strings.TrimSpace(string(e.Body))
	}
	if payload.Message != "" {
		return payload.Message
	}
	if len(payload.Errors) == 0 {
		return ""
	}

	fields := make([]string, 0, len(payload.Errors))
	for f := range payload.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var parts []string
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(payload.Errors[f], ", "))
	}
	return strings.Join(parts, "; ")
}

// IsStatus reports whether err is an *Error with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsUnauthorized reports whether err is a 401 or 403 backend response.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden)
}
