package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

type notFound struct {
	message string
}

// NewNotFoundError returns an error marking a referenced entity as unresolvable.
func NewNotFoundError(msg string) error {
	return &notFound{message: msg}
}

func (e notFound) Error() string {
	return e.message
}

func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(*notFound)
	return ok
}

type forbidden struct {
	message string
}

// NewForbiddenError returns an error marking a mutation the actor may not perform.
func NewForbiddenError(msg string) error {
	return &forbidden{message: msg}
}

func (e forbidden) Error() string {
	return e.message
}

func IsForbidden(err error) bool {
	_, ok := errors.Cause(err).(*forbidden)
	return ok
}
