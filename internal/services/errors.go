// Package services defines the business logic for prompt enhancement,
// templates, and saved prompts. This file centralizes common service-level
// error values and types so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and translation
// into user-facing messages or HTTP status codes should be performed at the
// handler/controller layer.
package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTemplateNotFound indicates that the requested template does not
	// exist or is inactive.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrPromptNotFound indicates that the requested prompt does not exist
	// or is not accessible to the current user.
	ErrPromptNotFound = errors.New("prompt not found")

	// ErrNotEnhanced is returned when an operation requires a prompt to have
	// a completed enhancement but none exists (e.g. saving a failed prompt).
	ErrNotEnhanced = errors.New("prompt has no enhancement")

	// ErrSavedNotFound indicates that the requested saved prompt does not
	// exist or is not accessible to the current user. Cross-owner access is
	// reported as not-found rather than forbidden to avoid existence leaks.
	ErrSavedNotFound = errors.New("saved prompt not found")

	// ErrDuplicateSaved is returned when a user attempts to save the same
	// (prompt, enhancement) pair twice.
	ErrDuplicateSaved = errors.New("prompt already saved")
)

// ValidationError reports request fields that violate their constraints.
// Handlers map it to a 400 response listing the offending fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid request fields: " + strings.Join(e.Fields, ", ")
}

// ResponseShapeError reports that the model returned valid JSON which is
// missing a required field. Unlike a malformed response this indicates
// contract drift with the provider, is not user-fixable, and is surfaced
// as a server error.
type ResponseShapeError struct {
	Field string
}

func (e *ResponseShapeError) Error() string {
	return fmt.Sprintf("model response missing required field %q", e.Field)
}
