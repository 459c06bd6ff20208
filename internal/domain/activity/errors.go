package activity

import "errors"

var (
	// ErrActivityNotFound indicates the activity doesn't exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered indicates the email is already on the roster.
	ErrAlreadyRegistered = errors.New("already signed up")
	// ErrNotRegistered indicates the email is not on the roster.
	ErrNotRegistered = errors.New("not registered")
	// ErrInvalidInput indicates invalid signup input.
	ErrInvalidInput = errors.New("invalid input")
)
