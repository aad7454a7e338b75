package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrWebsiteNotFound is returned when a website id does not resolve.
	ErrWebsiteNotFound = errors.New("website not found")
	// ErrSectionNotFound is returned when a section name does not exist on a website.
	ErrSectionNotFound = errors.New("section not found")
)

// ValidationError reports missing or malformed request fields.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

// NewValidationError creates a ValidationError from per-field reasons.
func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
