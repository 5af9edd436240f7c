package utils

import (
	"errors"
	"fmt"
)

var (
	ErrTripNotFound        = errors.New("trip not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrPreferencesNotFound = errors.New("preferences not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDatabaseError       = errors.New("database error")

	// ErrAPIKeyMissing is raised before any outbound call when the
	// generative model credential is absent.
	ErrAPIKeyMissing = errors.New("generative model API key not configured")

	// ErrMalformedResponse means the model reply could not be parsed into
	// an itinerary. Retrying the same prompt is unlikely to help, so it is
	// never retried automatically.
	ErrMalformedResponse = errors.New("model response is not a valid itinerary")
)

// UpstreamError reports a failed call to the generative model endpoint,
// either a non-retryable status or exhausted retries.
type UpstreamError struct {
	StatusCode int
	Body       string
	Attempts   int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generative model call failed after %d attempt(s): status %d: %s", e.Attempts, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("generative model call failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// PersistenceError reports a failed day-record insert. Rows already written
// for earlier days are left in place.
type PersistenceError struct {
	DayNumber int
	Err       error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist day %d: %v", e.DayNumber, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
