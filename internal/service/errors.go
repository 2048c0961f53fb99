package service

import (
	"errors"
	"fmt"

	"smart-sales-api/internal/repository"
	"smart-sales-api/pkg/validator"

	"gorm.io/gorm"
)

// ErrorKind classifies failures for the transport boundary.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	}
	return "internal"
}

// Error is the error type returned by every service.
type Error struct {
	Kind     ErrorKind
	Message  string
	Messages []string // validation details
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func ValidationError(message string, messages ...string) *Error {
	if len(messages) == 0 {
		messages = []string{message}
	}
	return &Error{Kind: KindValidation, Message: message, Messages: messages}
}

func UnauthorizedError(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func NotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func InternalError(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf reports the kind of err; anything not raised by a service is internal.
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}

// validateInput runs the struct tags before any mutation.
func validateInput(input interface{}) error {
	if messages := validator.Messages(input); len(messages) > 0 {
		return ValidationError("Validation failed", messages...)
	}
	return nil
}

// fromRepo classifies a repository error for the named resource.
func fromRepo(resource string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError(resource + " not found")
	case errors.Is(err, repository.ErrDuplicate):
		return ValidationError(resource + " with this value already exists")
	case errors.Is(err, repository.ErrInvalidReference):
		return ValidationError(resource + " references a record that does not exist")
	}
	return InternalError("Failed to access "+resource, err)
}

// requireRef resolves a referenced record, turning a miss into a field error.
func requireRef(field string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ValidationError("Validation failed", fmt.Sprintf("%s: object does not exist", field))
	}
	return InternalError("Failed to resolve "+field, err)
}
