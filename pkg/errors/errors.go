package errors

import (
	"errors"
	"fmt"
)

// Sentinels for the three failure classes every ledger operation can hit.
// Services wrap them with the typed errors below so callers can use
// errors.Is while still getting entity/id detail.
var (
	ErrNotFound     = errors.New("record not found")
	ErrConflict     = errors.New("conflict with the current state of the record")
	ErrInvalidState = errors.New("operation is not allowed in the current state")
)

type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError names the entity and id a lookup missed.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidStateError reports a precondition failure against the current
// status of an equipment, assignment or maintenance order.
type InvalidStateError struct {
	Entity  string
	ID      string
	Current string
	Message string
}

func (e *InvalidStateError) Error() string { return e.Message }

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

func NewInvalidStateError(entity, id, current, format string, args ...interface{}) error {
	return &InvalidStateError{
		Entity:  entity,
		ID:      id,
		Current: current,
		Message: fmt.Sprintf(format, args...),
	}
}

// ConflictError covers uniqueness violations on create and lost status
// races detected by the guarded update.
type ConflictError struct {
	Entity  string
	ID      string
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Unwrap() error { return ErrConflict }

func NewConflictError(entity, id, format string, args ...interface{}) error {
	return &ConflictError{Entity: entity, ID: id, Message: fmt.Sprintf(format, args...)}
}
