package prompt

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no pending prompt matches a token.
	ErrNotFound = errors.New("prompt not found")
	// ErrAmbiguous is returned when a token matches more than one prompt.
	ErrAmbiguous = errors.New("ambiguous prompt token")
	// ErrConflict is returned when an archive destination already exists.
	ErrConflict = errors.New("archive destination conflict")
)

// NotFoundError reports a token that matched no pending prompt, along with
// the filenames that were available so callers can show them to the user.
type NotFoundError struct {
	Token     string
	Available []string
}

func (e *NotFoundError) Error() string {
	if len(e.Available) == 0 {
		if e.Token == "" {
			return "no pending prompts"
		}
		return fmt.Sprintf("no prompt matches %q (pending set is empty)", e.Token)
	}
	return fmt.Sprintf("no prompt matches %q, available: %s", e.Token, strings.Join(e.Available, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// AmbiguousError reports a token that matched more than one prompt. No
// tie-break is attempted; the caller must disambiguate.
type AmbiguousError struct {
	Token   string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("token %q matches %d prompts: %s", e.Token, len(e.Matches), strings.Join(e.Matches, ", "))
}

func (e *AmbiguousError) Unwrap() error { return ErrAmbiguous }

// ConflictError reports an archive destination that already holds a file
// with the same name. The pending file is left untouched.
type ConflictError struct {
	Dest string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("archive destination already exists: %s", e.Dest)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
