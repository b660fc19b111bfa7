package pieces

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "slices"

// patchOp tags the edit operation a patch was recorded for. The tag only
// feeds tracing and debugging; replay is driven by the edits themselves.
type patchOp int

const (
	opNone patchOp = iota
	opInsert
	opRemove
)

func (op patchOp) String() string {
	switch op {
	case opNone:
		return "none"
	case opInsert:
		return "insert"
	case opRemove:
		return "remove"
	}
	return "unknown"
}

// edit is one structural change to the piece list: at index, the span of
// pieces in removed was replaced by the span in inserted. Either span may
// be empty. An edit together with its position is sufficient to reverse
// exactly one mutation.
type edit struct {
	index    int
	removed  []Piece
	inserted []Piece
}

// inverse returns the edit that undoes e.
func (e edit) inverse() edit {
	return edit{index: e.index, removed: e.inserted, inserted: e.removed}
}

// patch records one caller-visible edit operation as the list of piece-level
// changes it performed, in application order. A ranged remove groups all its
// per-character changes into a single patch, so one Undo reverses the whole
// call.
type patch struct {
	op    patchOp
	edits []edit
}

// applyEdit performs the piece-list replacement described by e and keeps
// the length caches in sync.
func (t *Table) applyEdit(e edit) {
	assert(e.index >= 0 && e.index+len(e.removed) <= len(t.pieces),
		"edit references positions outside the piece list")
	t.pieces = slices.Insert(
		slices.Delete(t.pieces, e.index, e.index+len(e.removed)),
		e.index, e.inserted...)
	for _, p := range e.removed {
		t.length -= p.Len()
		t.chars -= p.runes
	}
	for _, p := range e.inserted {
		t.length += p.Len()
		t.chars += p.runes
	}
}

// record pushes a patch for a fresh edit onto the undo stack. A fresh edit
// invalidates the redo stack.
func (t *Table) record(p patch) {
	t.undo = append(t.undo, p)
	t.redo = nil
	tracer().Debugf("pieces: recorded %s patch with %d piece-level edits", p.op, len(p.edits))
}

// Undo reverses the most recent edit operation by replaying the inverse of
// its recorded patch, and moves the patch to the redo stack.
//
// Returns ErrNoHistory if no edit is left to undo.
func (t *Table) Undo() error {
	if len(t.undo) == 0 {
		return ErrNoHistory
	}
	p := t.undo[len(t.undo)-1]
	t.undo = t.undo[:len(t.undo)-1]
	for i := len(p.edits) - 1; i >= 0; i-- {
		t.applyEdit(p.edits[i].inverse())
	}
	t.redo = append(t.redo, p)
	tracer().Debugf("pieces: undid %s patch", p.op)
	return nil
}

// Redo replays the most recently undone edit operation and moves its patch
// back to the undo stack.
//
// Returns ErrNoHistory if no undone edit is left to replay.
func (t *Table) Redo() error {
	if len(t.redo) == 0 {
		return ErrNoHistory
	}
	p := t.redo[len(t.redo)-1]
	t.redo = t.redo[:len(t.redo)-1]
	for _, e := range p.edits {
		t.applyEdit(e)
	}
	t.undo = append(t.undo, p)
	tracer().Debugf("pieces: redid %s patch", p.op)
	return nil
}

// CanUndo reports whether an edit is left to undo.
func (t *Table) CanUndo() bool {
	return len(t.undo) > 0
}

// CanRedo reports whether an undone edit is left to replay.
func (t *Table) CanRedo() bool {
	return len(t.redo) > 0
}
