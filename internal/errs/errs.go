// Package errs defines the error taxonomy shared by the services and the
// HTTP boundary. Service operations return exactly one of these kinds; the
// handlers translate each kind into a user-facing message.
package errs

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// NotFoundError means a referenced user or task does not exist.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

// ValidationError means the input is malformed: a missing required field,
// an unparsable id, or an unknown enumeration value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// AuthorizationError means the acting user may not perform the mutation.
// No state change happens when it is returned.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return e.Reason
}

// ConflictError means a store constraint rejected the write (duplicate
// unique key or foreign-key violation).
type ConflictError struct {
	Constraint string
	Err        error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("constraint violation (%s): %v", e.Constraint, e.Err)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// StoreUnavailableError wraps any other store failure. Handlers surface it
// as a generic "something went wrong" message and log the detail.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsAuthorization reports whether err is an AuthorizationError.
func IsAuthorization(err error) bool {
	var ae *AuthorizationError
	return errors.As(err, &ae)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// FromStore translates a gorm error into the taxonomy. ErrRecordNotFound is
// deliberately NOT handled here: lookups decide per call site whether a miss
// is a NotFoundError or a valid "absent" result.
func FromStore(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &ConflictError{Constraint: "unique", Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &ConflictError{Constraint: "foreign key", Err: err}
	default:
		return &StoreUnavailableError{Op: op, Err: err}
	}
}
