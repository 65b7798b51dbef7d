package store

import "errors"

var (
	// ErrUserNotFound is returned when the targeted user record does not
	// exist, including when a second erasure races a first one and loses.
	ErrUserNotFound = errors.New("user not found")

	// ErrEraseFailed wraps any failure inside the erasure transaction.
	// The transaction is rolled back in full; callers get this single
	// signal, never partial-success detail.
	ErrEraseFailed = errors.New("failed to erase user data")

	// ErrDuplicateResponse is returned when a survey response already
	// exists for the user and survey.
	ErrDuplicateResponse = errors.New("survey response already exists")
)
