// Package services holds the storefront's use cases. Handlers call services,
// services call the catalog engine and the stores.
package services

import (
	"errors"
	"fmt"
)

var (
	ErrHasChildren        = errors.New("cannot delete a category that has subcategories")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("not authorized to access this resource")
)

// ValidationError is a problem with caller input. Its message is safe to return to the client.
type ValidationError struct {
	Msg string
	Err error
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return e.Err }

func invalidf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
