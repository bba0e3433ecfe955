package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequired          = errors.New("this field is required")
	ErrTooLong           = errors.New("ensure this field is not too long")
	ErrInvalidUsername   = errors.New("enter a valid username: letters, digits and @/./+/-/_ only")
	ErrPasswordTooShort  = errors.New("ensure this field has at least 5 characters")
	ErrInvalidEmail      = errors.New("enter a valid email address")
	ErrInvalidReference  = errors.New("invalid pk, object does not exist")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// FieldError ties a validation failure to the request field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
