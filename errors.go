package gsqlite

import (
	"errors"
	"fmt"
)

// Failures are surfaced in three categories. Callers match them with
// errors.Is; the concrete message carries the engine detail.
var (
	// ErrConnection reports that a session could not be opened or
	// maintained.
	ErrConnection = errors.New("gsqlite: connection error")

	// ErrProgramming reports misuse of the API: wrong parameter count,
	// operating on a closed handle, invalid SQL.
	ErrProgramming = errors.New("gsqlite: programming error")

	// ErrDatabase reports a runtime failure from the engine, such as a
	// constraint violation.
	ErrDatabase = errors.New("gsqlite: database error")
)

// errf builds a categorized error from a format string.
func errf(category error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", category, fmt.Sprintf(format, args...))
}

// wrapErr attaches a category to an engine error, keeping the original
// in the chain.
func wrapErr(category error, err error) error {
	return fmt.Errorf("%w: %w", category, err)
}
