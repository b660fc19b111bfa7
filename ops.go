package pieces

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"unicode/utf8"

	"github.com/npillmayer/pieces/buffer"
)

// Insert inserts text so that it appears starting at rune offset at.
//
// The text bytes are appended to the add buffer and a single new piece
// referencing them enters the piece list; inserting inside an existing
// piece splits that piece around the insertion point. Inserting the empty
// string is a no-op and records no history.
//
// Returns ErrIndexOutOfBounds if at > CharCount(); a failed call leaves
// the table unchanged.
func (t *Table) Insert(text string, at uint64) error {
	if at > t.chars {
		return ErrIndexOutOfBounds
	}
	if text == "" {
		return nil
	}
	start, end, err := t.store.Append(text)
	if err != nil {
		return err
	}
	addPiece := t.newPiece(buffer.Add, start, end)
	var e edit
	if at == t.chars {
		// Appending at the end, including the empty-buffer case: the
		// end-of-text offset is not inside any piece, so no lookup.
		tracer().Debugf("pieces: appending %d byte(s) at the end", addPiece.Len())
		e = edit{index: len(t.pieces), inserted: []Piece{addPiece}}
	} else {
		i, o, rerr := t.resolve(at)
		assert(rerr == nil, "in-bounds offset failed to resolve")
		cur := t.pieces[i]
		if o == 0 {
			// Insertion point is a piece boundary; no split needed.
			e = edit{index: i, inserted: []Piece{addPiece}}
		} else {
			b := t.pieceBytes(cur)
			off := byteOffsetForRune(b, o)
			left := Piece{src: cur.src, start: cur.start, end: cur.start + off, runes: o}
			right := Piece{src: cur.src, start: cur.start + off, end: cur.end, runes: cur.runes - o}
			e = edit{index: i, removed: []Piece{cur}, inserted: []Piece{left, addPiece, right}}
		}
	}
	t.applyEdit(e)
	t.record(patch{op: opInsert, edits: []edit{e}})
	return nil
}

// RemoveChar removes exactly one rune at rune offset at and returns it.
//
// Removal never touches buffer contents, only piece ranges: the removed
// bytes stay physically present in their backing buffer but are no longer
// referenced by any piece.
//
// Returns ErrIndexOutOfBounds if at >= CharCount(); a failed call leaves
// the table unchanged.
func (t *Table) RemoveChar(at uint64) (rune, error) {
	if at >= t.chars {
		return 0, ErrIndexOutOfBounds
	}
	r, e, err := t.removeCharEdit(at)
	if err != nil {
		return 0, err
	}
	t.applyEdit(e)
	t.record(patch{op: opRemove, edits: []edit{e}})
	return r, nil
}

// Remove removes every rune offset in the half-open range [from,to) and
// returns the removed substring.
//
// The range is validated in full before any mutation, so a failed call
// leaves the table unchanged. Offsets are removed from the high end of the
// range toward the low end; earlier removals therefore never perturb
// offsets of not-yet-removed runes. All per-character changes are grouped
// into one history patch, so a single Undo reverses the whole call.
//
// Returns ErrIndexOutOfBounds if from > to or to > CharCount().
func (t *Table) Remove(from, to uint64) (string, error) {
	if from > to || to > t.chars {
		return "", ErrIndexOutOfBounds
	}
	if from == to {
		return "", nil
	}
	removed := make([]rune, to-from)
	edits := make([]edit, 0, to-from)
	for at := to; at > from; at-- {
		r, e, err := t.removeCharEdit(at - 1)
		assert(err == nil, "pre-validated offset failed to resolve")
		t.applyEdit(e)
		removed[at-1-from] = r
		edits = append(edits, e)
	}
	t.record(patch{op: opRemove, edits: edits})
	tracer().Debugf("pieces: removed rune range [%d,%d)", from, to)
	return string(removed), nil
}

// removeCharEdit computes the piece-list change that removes the rune at
// rune offset at, reading the rune before its piece is narrowed. The
// change is not applied.
//
// Pieces narrowed to zero length are elided, except when that would empty
// the piece list: an edited table always keeps at least one piece.
func (t *Table) removeCharEdit(at uint64) (rune, edit, error) {
	i, o, err := t.resolve(at)
	if err != nil {
		return 0, edit{}, err
	}
	p := t.pieces[i]
	b := t.pieceBytes(p)
	off := byteOffsetForRune(b, o)
	r, w := utf8.DecodeRune(b[off:])
	width := uint64(w)
	var ins []Piece
	switch {
	case o == 0:
		// Deleting the piece's first rune: narrow from the left.
		narrowed := Piece{src: p.src, start: p.start + width, end: p.end, runes: p.runes - 1}
		if !narrowed.IsEmpty() || len(t.pieces) == 1 {
			ins = append(ins, narrowed)
		}
	case o == p.runes-1:
		// Deleting the piece's last rune: narrow from the right.
		narrowed := Piece{src: p.src, start: p.start, end: p.end - width, runes: p.runes - 1}
		ins = append(ins, narrowed)
	default:
		// Interior deletion: split the piece, skipping the removed rune.
		left := Piece{src: p.src, start: p.start, end: p.start + off, runes: o}
		right := Piece{src: p.src, start: p.start + off + width, end: p.end, runes: p.runes - o - 1}
		ins = append(ins, left, right)
	}
	return r, edit{index: i, removed: []Piece{p}, inserted: ins}, nil
}
