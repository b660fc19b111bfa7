/*
Package pieces implements a piece-table text buffer.

Piece tables

A piece table represents an editable text without ever copying the full
text on an edit. The text the buffer is constructed from stays immutable
for the lifetime of the buffer (the “original” buffer), and every
insertion appends to a second, append-only buffer (the “add” buffer).
The visible text is described by an ordered list of pieces, each piece
slicing a byte range out of one of the two buffers. Edits only ever
split, narrow or replace pieces; the buffers themselves are never
rewritten, which also makes recording edit history cheap.

The technique goes back to early editors like Bravo and is discussed in
depth in Charles Crowley's survey:

Data Structures for Text Sequences (1998)

University of New Mexico, Albuquerque

	The piece table method is the best method overall considering
	all the criteria. […] The sequence is represented by a series
	of spans (or pieces) of the two buffers.

Within this package, a Table owns its two buffers and its piece list
outright. All operations are synchronous, in-memory mutations over that
exclusively-owned state; clients only ever receive owned copies
(projected strings, removed characters). The package has no internal
concurrency story: clients requiring multiple writers serialize calls
through an external gate around an otherwise unchanged table.

Clients address text by character (rune) offsets. Internally pieces
store byte ranges, and every operation translates between the two units
at UTF-8 rune boundaries, so removing “one character” always removes the
full multi-byte sequence.

The piece list is a flat slice, giving O(n) offset resolution in the
number of pieces. A balanced index keyed by cumulative length would make
that O(log n); for the intended scope the flat list is simpler and fast
enough.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package pieces

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pieces'
func tracer() tracing.Trace {
	return tracing.Select("pieces")
}

// TableError is an error type for the pieces module.
type TableError string

func (e TableError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a table position is greater than
// the length of the table's text.
const ErrIndexOutOfBounds = TableError("index out of bounds")

// ErrNoHistory is flagged when undo or redo is called with no recorded
// patch left to replay.
const ErrNoHistory = TableError("no edit history to replay")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TableError("illegal arguments")

// ErrTableCompleted signals that a builder has already completed a table and
// it's illegal to further add fragments.
const ErrTableCompleted = TableError("forbidden to add fragments; table has been completed")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
