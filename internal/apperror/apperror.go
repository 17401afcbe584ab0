// Package apperror defines the error taxonomy shared by repositories,
// services and usecases: absent documents, rejected input and upstream
// (store or model) failures are distinct, inspectable variants.
package apperror

import (
	"errors"
	"fmt"
)

// ErrNotFound marks an absent activity, course, student or assessment.
// Repositories wrap it with the entity and id so callers can both match
// it with errors.Is and report which document was missing.
var ErrNotFound = errors.New("not found")

// NotFound wraps ErrNotFound with entity context.
func NotFound(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ValidationError rejects caller input: blank ids, missing rubric,
// mismatched path/body ids. Never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UpstreamError wraps a transport or service failure from a collaborator
// (document store, model backend) with the operation that failed.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func Upstream(op string, err error) *UpstreamError {
	return &UpstreamError{Op: op, Err: err}
}

func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
