package models

import (
	"errors"
	"fmt"
)

var (
	ErrPropertyNotFound  = errors.New("models: property not found")
	ErrBlogNotFound      = errors.New("models: blog not found")
	ErrUserNotFound      = errors.New("models: user not found")
	ErrDuplicateEmail    = errors.New("models: duplicate email")
	ErrForbidden         = errors.New("models: forbidden")
	ErrInvalidTransition = errors.New("models: invalid status transition")
)

// ValidationError reports the first violated field constraint of a payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
