package songtex

import "errors"

// Sentinel errors for library operations.
var (
	// ErrEmptySource marks a song with no text. It is reported, never
	// fatal: the caller decides whether to skip or abort.
	ErrEmptySource = errors.New("song has no source text")

	// ErrMalformedClassification marks a curated annotation line that
	// does not match the two-field encoding. The line is substituted
	// with plain text and processing continues.
	ErrMalformedClassification = errors.New("malformed classification line")
)
