package params

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameterName is returned when an option name is not
	// recognized.
	ErrInvalidParameterName = errors.New("params: invalid parameter name")

	// ErrMissingField is returned by Validate when a required field is unset.
	ErrMissingField = errors.New("params: missing required field")

	// ErrTypeMismatch is returned when a value does not have the required
	// type.
	ErrTypeMismatch = errors.New("params: type mismatch")

	// ErrInvalidValue is returned when a value has the right type but is not
	// usable, for example a negative rate.
	ErrInvalidValue = errors.New("params: invalid value")
)

// A FieldError reports a problem with a named field, option or rate. It wraps
// one of the sentinel errors of this package.
type FieldError struct {
	Field string
	Err   error
	Msg   string
}

func (e *FieldError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Field)
	}

	return fmt.Sprintf("%v: %s: %s", e.Err, e.Field, e.Msg)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error, format string, args ...any) error {
	return &FieldError{
		Field: field,
		Err:   err,
		Msg:   fmt.Sprintf(format, args...),
	}
}
