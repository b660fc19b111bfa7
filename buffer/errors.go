package buffer

import "errors"

var (
	// ErrInvalidUTF8 signals invalid UTF-8 source text.
	ErrInvalidUTF8 = errors.New("buffer: invalid UTF-8")
	// ErrIndexOutOfBounds signals invalid byte offsets for slicing.
	ErrIndexOutOfBounds = errors.New("buffer: index out of bounds")
	// ErrUnknownSource signals a source tag that names no backing buffer.
	ErrUnknownSource = errors.New("buffer: unknown source tag")
)
