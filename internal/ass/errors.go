package ass

import "errors"

var (
	// ErrFormat marks structurally malformed ASS input: a data line without a
	// colon, a second Format header inside one section, or a style/event line
	// appearing before any Format header.
	ErrFormat = errors.New("malformed ass document")

	// ErrCodec marks a field value that cannot be decoded by the requested
	// typed accessor or codec primitive.
	ErrCodec = errors.New("ass value codec")
)
