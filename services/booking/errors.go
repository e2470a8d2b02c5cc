package booking

import (
	"errors"
	"fmt"
)

// ValidationError reports the first unmet required field blocking a step
// advance. Fields are checked in a fixed order, so the same incomplete state
// always names the same field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Message)
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// SubmissionError wraps a rejection from the submission collaborator. The
// booking stays at the contact/payment step and may be retried.
type SubmissionError struct {
	Cause error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("booking submission failed: %v", e.Cause)
}

func (e *SubmissionError) Unwrap() error { return e.Cause }

var (
	// ErrSubmissionTimeout means the collaborator did not answer in time.
	// Retrying with the same idempotency key is safe.
	ErrSubmissionTimeout = errors.New("booking submission timed out")

	// ErrSubmitInFlight rejects a second submit while one is outstanding.
	ErrSubmitInFlight = errors.New("a submission is already in progress")

	// ErrSubmitRequired is returned when Advance is called at the final form
	// step; the confirmed state is only reachable through Submit.
	ErrSubmitRequired = errors.New("confirmation is reached via submit, not advance")

	ErrTermsNotAgreed = errors.New("terms must be agreed before submitting")
	ErrFlowConfirmed  = errors.New("booking is confirmed; reset to start over")
	ErrSessionExpired = errors.New("booking session not found or expired")
)
