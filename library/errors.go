package library

import "errors"

// Sentinel errors returned by the store and the loan engine. Callers match
// them with errors.Is; the interactive surface reports them and keeps going.
var (
	// ErrNotFound means a referenced book, account or loan does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyIssued means an issue was attempted on a book whose status
	// is already Issued. Silent re-issue is rejected.
	ErrAlreadyIssued = errors.New("book already issued")

	// ErrAlreadyReturned means a return was attempted on a closed loan.
	// Idempotent returns are rejected, not accepted.
	ErrAlreadyReturned = errors.New("loan already returned")

	// ErrDuplicateUsername means an account create or rename collided with
	// an existing username.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidInput covers blank required fields, out-of-range role or
	// status values, and failed password confirmation.
	ErrInvalidInput = errors.New("invalid input")
)
