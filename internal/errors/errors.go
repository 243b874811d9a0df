// Package errors defines the domain error taxonomy and its HTTP mapping.
package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Sentinel domain errors surfaced to callers as 400-level responses.
var (
	// ErrDuplicateActor is returned when registering an email that is
	// already taken (case-sensitive exact match as stored).
	ErrDuplicateActor = errors.New("user already exists")

	// ErrActorNotFound is returned on login with an unknown email.
	ErrActorNotFound = errors.New("user not found")

	// ErrMissingCredential is returned on login with an empty password.
	ErrMissingCredential = errors.New("password required")
)

// ValidationError reports a missing or blank required field. It is always
// surfaced to the caller with a human-readable reason and never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validation creates a ValidationError with a formatted reason.
func Validation(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StatusCode maps repo/infra/domain errors to an HTTP status code.
// Keeps handlers clean by centralizing error mapping.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case IsValidation(err),
		errors.Is(err, ErrDuplicateActor),
		errors.Is(err, ErrActorNotFound),
		errors.Is(err, ErrMissingCredential):
		return http.StatusBadRequest

	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout

	default:
		return http.StatusInternalServerError
	}
}

// Message returns the caller-visible reason for an error. Internal errors
// are masked so storage details never leak to clients.
func Message(err error) string {
	if StatusCode(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}

// Respond writes the mapped status code and reason for err.
func Respond(c *fiber.Ctx, err error) error {
	return c.Status(StatusCode(err)).JSON(fiber.Map{"error": Message(err)})
}
