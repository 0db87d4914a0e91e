package api

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/Rohit242003/timesheet-dashboard/internal"
)

// errorBody is the shape ASP.NET-style APIs use for rejections: either a
// per-field validation map or a single title line.
type errorBody struct {
	Errors map[string][]string `json:"errors"`
	Title  string              `json:"title"`
}

// ErrorMessage extracts a human-readable message from a failed outcome.
// Precedence: flattened field validation errors, then the title field, then
// the raw response text, then the caller's fallback.
func ErrorMessage(o Outcome, fallback string) string {
	if o.IsTransportFailure() {
		return fallback
	}

	var parsed errorBody
	if err := json.Unmarshal(o.Body, &parsed); err == nil {
		if len(parsed.Errors) > 0 {
			fields := make([]string, 0, len(parsed.Errors))
			for field := range parsed.Errors {
				fields = append(fields, field)
			}
			sort.Strings(fields)

			var messages []string
			for _, field := range fields {
				messages = append(messages, parsed.Errors[field]...)
			}
			return strings.Join(messages, " ")
		}
		if parsed.Title != "" {
			return parsed.Title
		}
	}

	if text := strings.TrimSpace(string(o.Body)); text != "" {
		return text
	}
	return fallback
}

// AsError maps a non-success outcome onto the client error taxonomy. A nil
// return means the outcome succeeded.
func AsError(o Outcome, fallback string) error {
	switch {
	case o.IsSuccess():
		return nil
	case o.IsTransportFailure():
		return internal.NewTransportError(fallback, o.Err)
	case o.IsAuthRejected():
		return internal.NewAuthRejectedError()
	case o.Status == 400:
		return internal.NewValidationError(ErrorMessage(o, fallback))
	default:
		return internal.NewRemoteError(ErrorMessage(o, fallback), o.Status)
	}
}
