package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	// ErrObjectNotFound signals that a fetch matched zero rows.
	ErrObjectNotFound = errors.New("object not found")
	// ErrValueIsInvalid signals that a supplied value failed validation.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsRequired signals that a required value is missing.
	ErrValueIsRequired = errors.New("value is required")
	// ErrValueAlreadyExists signals a uniqueness conflict on insert.
	ErrValueAlreadyExists = errors.New("value already exist")
	// ErrStoreFailure signals any data-access failure that is not a
	// zero-row fetch: connectivity, malformed statement, constraint.
	ErrStoreFailure = errors.New("store failure")
)

// ErrIDIsNotValid is returned by the services when a caller supplies an
// identifier that is zero or negative. It unwraps to ErrValueIsInvalid.
var ErrIDIsNotValid = fmt.Errorf("id can not be less or equals zero: %w", ErrValueIsInvalid)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ObjectNotFoundError reports that the object identified by ID could not
// be found under the parameter ParamName.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// the underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %s)",
			e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("object not found: %s", e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports that the value for ParamName is invalid.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping
// the underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is invalid: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is invalid: %s", e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports that the value for ParamName is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// the underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is required: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is required: %s", e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueAlreadyExistsError reports a uniqueness conflict: the value supplied
// for ParamName is already taken by another row.
type ValueAlreadyExistsError struct {
	ParamName string
	Value     string
	Cause     error
}

// NewValueAlreadyExistsError creates a ValueAlreadyExistsError without a cause.
func NewValueAlreadyExistsError(paramName, value string) *ValueAlreadyExistsError {
	return &ValueAlreadyExistsError{ParamName: paramName, Value: value}
}

// NewValueAlreadyExistsErrorWithCause creates a ValueAlreadyExistsError
// wrapping the underlying cause.
func NewValueAlreadyExistsErrorWithCause(paramName, value string, cause error) *ValueAlreadyExistsError {
	return &ValueAlreadyExistsError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ValueAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s already exist (cause: %s)", e.Value, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s already exist", e.Value))
}

func (e *ValueAlreadyExistsError) Unwrap() error {
	return ErrValueAlreadyExists
}

// StoreFailureError reports a data-access failure during Operation.
// A zero-row fetch is ObjectNotFoundError, never StoreFailureError.
type StoreFailureError struct {
	Operation string
	Cause     error
}

// NewStoreFailureError creates a StoreFailureError wrapping the underlying
// driver or mapping error.
func NewStoreFailureError(operation string, cause error) *StoreFailureError {
	return &StoreFailureError{Operation: operation, Cause: cause}
}

func (e *StoreFailureError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("store failure: %s (cause: %s)", e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("store failure: %s", e.Operation))
}

func (e *StoreFailureError) Unwrap() error {
	return ErrStoreFailure
}
