/*
Package buffer implements the two-buffer backing store of a piece table.

A store owns the immutable original text and an append-only add buffer.
Pieces reference byte ranges into one of the two buffers and rely on the
store never moving or overwriting bytes once they are in place.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package buffer

import (
	"unicode/utf8"
)

// Source identifies which backing buffer a byte range slices.
type Source int

const (
	// Original is the immutable text the store was constructed from.
	Original Source = iota
	// Add is the append-only buffer holding all text inserted after
	// construction.
	Add
)

// String returns a tag name for tracing and DOT output.
func (src Source) String() string {
	switch src {
	case Original:
		return "original"
	case Add:
		return "add"
	}
	return "unknown"
}

// Store owns the two backing buffers of a piece table.
//
// The zero value is not usable; create stores with FromText. The original
// buffer is frozen at construction time. The add buffer only ever grows,
// so byte ranges handed out by Append stay permanently valid.
type Store struct {
	original []byte
	add      []byte
}

// FromText creates a store whose original buffer holds text.
//
// Returns ErrInvalidUTF8 if text is not valid UTF-8.
func FromText(text string) (*Store, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}
	return &Store{original: []byte(text)}, nil
}

// Append appends text to the add buffer and returns the byte range the
// text now occupies. This is the only mutation a store ever undergoes.
//
// Returns ErrInvalidUTF8 without mutating the store if text is not valid
// UTF-8.
func (st *Store) Append(text string) (start, end uint64, err error) {
	if !utf8.ValidString(text) {
		return 0, 0, ErrInvalidUTF8
	}
	start = uint64(len(st.add))
	st.add = append(st.add, text...)
	return start, uint64(len(st.add)), nil
}

// Len returns the byte length of the named buffer.
func (st *Store) Len(src Source) uint64 {
	switch src {
	case Original:
		return uint64(len(st.original))
	case Add:
		return uint64(len(st.add))
	}
	return 0
}

// Slice returns the bytes of [start,end) in the named buffer.
//
// The returned slice aliases the store's internal storage and must not be
// mutated or handed out to clients; callers copy before returning data.
func (st *Store) Slice(src Source, start, end uint64) ([]byte, error) {
	b, err := st.bytes(src)
	if err != nil {
		return nil, err
	}
	if start > end || end > uint64(len(b)) {
		return nil, ErrIndexOutOfBounds
	}
	return b[start:end], nil
}

// IsCharBoundary reports whether off is a UTF-8 rune boundary in the named
// buffer. The buffer end counts as a boundary.
func (st *Store) IsCharBoundary(src Source, off uint64) bool {
	b, err := st.bytes(src)
	if err != nil {
		return false
	}
	if off > uint64(len(b)) {
		return false
	}
	if off == uint64(len(b)) {
		return true
	}
	return utf8.RuneStart(b[off])
}

func (st *Store) bytes(src Source) ([]byte, error) {
	switch src {
	case Original:
		return st.original, nil
	case Add:
		return st.add, nil
	}
	return nil, ErrUnknownSource
}
