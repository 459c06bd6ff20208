package repository

import "errors"

var (
	// ErrNotFound is returned when a requested activity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an email is already on a roster
	ErrDuplicate = errors.New("duplicate participant")

	// ErrNotMember is returned when an email is not on a roster
	ErrNotMember = errors.New("participant not on roster")
)
