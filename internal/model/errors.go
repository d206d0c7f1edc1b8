package model

import "errors"

var (
	// ErrNotFound is returned by stores when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned on registration when the email is taken.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrUserNotFound is returned on login when no user matches the email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned on login when the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotAuthenticated is returned when an operation requires a session and none is set.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrStorageCorrupt marks unparsable persisted data. Collections recover
	// by substituting an empty collection; it never escapes a repository.
	ErrStorageCorrupt = errors.New("storage corrupt")
)
