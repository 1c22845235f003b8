package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by stores when the referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrReferenceNotFound is returned by stores when a written row points at a
	// missing user or project. It matches ErrNotFound.
	ErrReferenceNotFound = fmt.Errorf("referenced record %w", ErrNotFound)
	// ErrConflict is returned by stores on unique violations.
	ErrConflict = errors.New("conflict")
	// ErrPasswordMismatch is returned by PasswordHasher.Verify for a wrong password.
	ErrPasswordMismatch = errors.New("password mismatch")
)
