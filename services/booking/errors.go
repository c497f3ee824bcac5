package booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSessionNotFound means the checkout session does not exist or expired.
	ErrSessionNotFound = errors.New("checkout session not found or expired")
	// ErrAlreadySubmitted means the session has already produced an order;
	// a new booking needs a fresh session.
	ErrAlreadySubmitted = errors.New("checkout session already submitted")
	// ErrSubmissionInFlight means another submission for this session has not
	// resolved yet; duplicate orders are rejected, not queued.
	ErrSubmissionInFlight = errors.New("a submission for this session is already in flight")
)

// ValidationError reports why a session cannot be submitted. It is a local,
// recoverable outcome: the caller surfaces the missing fields to the user.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cannot submit: missing %s", strings.Join(e.Missing, ", "))
}

// SubmissionError wraps an opaque failure from the payment/persistence
// collaborator. The session is left untouched and remains resubmittable.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("booking submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
