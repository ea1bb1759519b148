package text

import "errors"

// Errors returned by document operations. All of them report programmer
// errors: arguments are validated at the entry point and never recovered
// internally.
var (
	// ErrOffsetOutOfRange is returned when a character offset is negative or
	// exceeds the document length.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrInvalidLine is returned when a line number is outside [1, lines].
	ErrInvalidLine = errors.New("line number out of range")

	// ErrLineSeparator is returned when an input line string contains a line
	// separator.
	ErrLineSeparator = errors.New("line contains separator")

	// ErrNoLines is returned when a document is built from an empty line list.
	ErrNoLines = errors.New("document must have at least one line")

	// ErrMalformedJSON is returned when the JSON form of a document is not an
	// array of strings.
	ErrMalformedJSON = errors.New("malformed JSON document form")
)
