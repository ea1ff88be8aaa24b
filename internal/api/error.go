package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// RowError is one failed row from a bulk import.
type RowError struct {
	Row    int      `json:"row"`
	Errors []string `json:"errors"`
}

// Error is a non-2xx response from the backend. Message is the backend's own
// message when the body carried one, so it can be shown to the user verbatim.
type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
	Rows    []RowError
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: request failed with status %d", e.Status)
}

// Message returns the backend's message verbatim when err carries one, else
// the action-specific fallback. This is the single place the "show the
// backend's words if we have them" rule lives.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// RowErrors extracts per-row import errors from err, if any.
func RowErrors(err error) []RowError {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Rows
	}
	return nil
}

type errorBody struct {
	Message string `json:"message"`
	Error   *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
	Errors []RowError `json:"errors"`
}

// decodeError maps a non-2xx response to *Error. Bodies without a structured
// message yield an Error whose Message is empty; callers supply the fallback.
func decodeError(status int, raw []byte) *Error {
	e := &Error{Status: status}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return e
	}
	e.Message = body.Message
	e.Rows = body.Errors
	if body.Error != nil {
		e.Code = body.Error.Code
		e.Details = body.Error.Details
		if e.Message == "" {
			e.Message = body.Error.Message
		}
	}
	return e
}
