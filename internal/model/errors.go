package model

import "errors"

var (
	// ErrNotFound is returned by stores when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned by stores when a create collides with the
	// email uniqueness constraint.
	ErrDuplicateEmail = errors.New("email already exists")
)
