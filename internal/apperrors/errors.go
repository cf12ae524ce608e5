// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError rejects a request before any write happens. The caller can
// recover by re-submitting corrected data.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
	}
	return "validation failed: " + e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PersistenceError tags an underlying write failure with the step that
// produced it, so multi-step operations can tell the caller exactly how far
// they got. Already-committed prior steps are never undone automatically.
type PersistenceError struct {
	Step string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure at step %q: %v", e.Step, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func NewPersistenceError(step string, err error) *PersistenceError {
	return &PersistenceError{Step: step, Err: err}
}

// ReconciliationInconsistency marks a desired media item whose id does not
// match any current row of the watch being saved. The item is handled as an
// insert instead; the write itself never fails on this.
type ReconciliationInconsistency struct {
	ItemID string
	Reason string
}

func (e *ReconciliationInconsistency) Error() string {
	return fmt.Sprintf("media reconciliation inconsistency for id %s: %s", e.ItemID, e.Reason)
}

// AuditWriteFailure is non-fatal to the mutation that triggered the audit
// record. It is reported to the observability collaborator, never to the
// mutating caller.
type AuditWriteFailure struct {
	Action string
	Err    error
}

func (e *AuditWriteFailure) Error() string {
	return fmt.Sprintf("audit write for %s failed: %v", e.Action, e.Err)
}

func (e *AuditWriteFailure) Unwrap() error { return e.Err }

// ErrNotFound is returned by stores when a row does not exist.
var ErrNotFound = errors.New("record not found")

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PersistenceStep extracts the failing step name from a wrapped
// PersistenceError, or "" when err carries none.
func PersistenceStep(err error) string {
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return pe.Step
	}
	return ""
}
