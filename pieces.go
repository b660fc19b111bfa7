package pieces

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"unicode/utf8"

	"github.com/npillmayer/pieces/buffer"
)

// Piece describes a contiguous run of currently visible text, backed by a
// byte range into exactly one of the two backing buffers.
//
// Pieces are immutable values; editing operations replace pieces rather
// than mutating them in place.
type Piece struct {
	src   buffer.Source
	start uint64 // byte offset into the source buffer, inclusive
	end   uint64 // byte offset into the source buffer, exclusive
	runes uint64 // cached rune count of [start,end)
}

// Source returns the tag of the backing buffer this piece slices.
func (p Piece) Source() buffer.Source {
	return p.src
}

// Range returns the half-open byte range [start,end) into the backing buffer.
func (p Piece) Range() (start, end uint64) {
	return p.start, p.end
}

// Len returns the piece length in bytes.
func (p Piece) Len() uint64 {
	return p.end - p.start
}

// CharCount returns the number of UTF-8 runes the piece references.
func (p Piece) CharCount() uint64 {
	return p.runes
}

// IsEmpty reports whether the piece references no bytes.
func (p Piece) IsEmpty() bool {
	return p.start == p.end
}

// Table is a piece-table text buffer.
//
// A table created by FromText represents the construction text; edits
// mutate the piece list only. Methods that take or return positions use
// rune offsets; byte-addressed accessors say so explicitly.
//
// A Table is a single-owner, single-threaded structure and performs no
// internal locking.
type Table struct {
	store  *buffer.Store
	pieces []Piece
	undo   []patch
	redo   []patch
	length uint64 // cached byte length of the visible text
	chars  uint64 // cached rune length of the visible text
}

// FromText creates a piece table from initial content. The whole input
// becomes the immutable original buffer, spanned by a single piece.
//
// The input string must be valid UTF-8. Invalid input triggers an internal
// assertion panic, matching package invariants for stored text.
func FromText(text string) *Table {
	store, err := buffer.FromText(text)
	assert(err == nil, "FromText requires valid UTF-8 input")
	t := &Table{store: store}
	if len(text) > 0 {
		t.pieces = []Piece{{
			src:   buffer.Original,
			start: 0,
			end:   uint64(len(text)),
			runes: uint64(utf8.RuneCountInString(text)),
		}}
		t.length = uint64(len(text))
		t.chars = uint64(utf8.RuneCountInString(text))
	}
	return t
}

// String returns the projection: the full current text, produced by walking
// the piece list in order and concatenating each piece's referenced slice.
// It allocates exactly one output buffer sized to the final length.
//
// An empty piece list projects the untouched original buffer verbatim;
// this only arises from a never-mutated table.
func (t *Table) String() string {
	if len(t.pieces) == 0 {
		b, err := t.store.Slice(buffer.Original, 0, t.store.Len(buffer.Original))
		assert(err == nil, "table.String: cannot slice original buffer")
		return string(b)
	}
	out := make([]byte, 0, t.length)
	for _, p := range t.pieces {
		out = append(out, t.pieceBytes(p)...)
	}
	return string(out)
}

// Len returns the visible text length in bytes.
func (t *Table) Len() uint64 {
	if len(t.pieces) == 0 {
		return t.store.Len(buffer.Original)
	}
	return t.length
}

// CharCount returns the visible text length in UTF-8 runes. Rune offsets
// accepted by the editing operations range over [0, CharCount()].
func (t *Table) CharCount() uint64 {
	return t.chars
}

// IsEmpty reports whether the table holds no visible text.
func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// PieceCount returns the number of pieces the visible text is split into.
func (t *Table) PieceCount() int {
	return len(t.pieces)
}

// RangePiece returns an iterator over all pieces in logical order.
func (t *Table) RangePiece() iter.Seq[Piece] {
	return func(yield func(Piece) bool) {
		for _, p := range t.pieces {
			if !yield(p) {
				return
			}
		}
	}
}

// EachPiece visits all pieces in logical order.
//
// The callback receives each piece and its starting byte offset in the
// projection. Iteration stops at the first callback error and returns that
// error to the caller.
func (t *Table) EachPiece(f func(Piece, uint64) error) error {
	var pos uint64
	for _, p := range t.pieces {
		if err := f(p, pos); err != nil {
			return err
		}
		pos += p.Len()
	}
	return nil
}

// Report outputs a byte-addressed substring of the projection:
// Report(i,l) returns the bytes at positions i,…,i+l-1.
func (t *Table) Report(i, l uint64) (string, error) {
	if i+l > t.Len() {
		return "", ErrIndexOutOfBounds
	}
	if l == 0 {
		return "", nil
	}
	if len(t.pieces) == 0 {
		b, err := t.store.Slice(buffer.Original, i, i+l)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	out := make([]byte, 0, l)
	var pos uint64
	for _, p := range t.pieces {
		if pos >= i+l {
			break
		}
		next := pos + p.Len()
		if next <= i {
			pos = next
			continue
		}
		b := t.pieceBytes(p)
		lo, hi := uint64(0), p.Len()
		if i > pos {
			lo = i - pos
		}
		if i+l < next {
			hi = i + l - pos
		}
		out = append(out, b[lo:hi]...)
		pos = next
	}
	return string(out), nil
}

// CharAt returns the rune at rune offset at.
func (t *Table) CharAt(at uint64) (rune, error) {
	if at >= t.chars {
		return 0, ErrIndexOutOfBounds
	}
	i, o, err := t.resolve(at)
	if err != nil {
		return 0, err
	}
	b := t.pieceBytes(t.pieces[i])
	off := byteOffsetForRune(b, o)
	r, _ := utf8.DecodeRune(b[off:])
	return r, nil
}

// pieceBytes returns the backing bytes of p.
//
// Piece ranges stay valid for the lifetime of the store, so a failing
// slice indicates a corrupted piece list.
func (t *Table) pieceBytes(p Piece) []byte {
	b, err := t.store.Slice(p.src, p.start, p.end)
	assert(err == nil, "piece references an invalid buffer range")
	return b
}

// newPiece creates a piece for byte range [start,end) of src, counting runes.
func (t *Table) newPiece(src buffer.Source, start, end uint64) Piece {
	p := Piece{src: src, start: start, end: end}
	b, err := t.store.Slice(src, start, end)
	assert(err == nil, "new piece references an invalid buffer range")
	p.runes = uint64(utf8.RuneCount(b))
	return p
}
