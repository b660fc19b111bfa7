package pieces

import "unicode/utf8"

// CharCursor navigates a table by UTF-8 rune positions.
//
// Movement is in rune steps, while the cursor also tracks the matching
// byte offset in the projection. The cursor reads through the live table:
// it stays cheap to create, but edits made while a cursor is in use
// invalidate its position, and the cursor must be re-seeked afterwards.
type CharCursor struct {
	table   *Table
	at      uint64 // rune offset
	byteOff uint64 // byte offset matching at
}

// NewCharCursor creates a rune-aware cursor at the start of the table.
func (t *Table) NewCharCursor() *CharCursor {
	return &CharCursor{table: t}
}

// Pos returns the current rune offset.
func (cc *CharCursor) Pos() uint64 {
	if cc == nil {
		return 0
	}
	return cc.at
}

// ByteOffset returns the current cursor byte offset.
func (cc *CharCursor) ByteOffset() uint64 {
	if cc == nil {
		return 0
	}
	return cc.byteOff
}

// SeekRunes moves the cursor to absolute rune offset n.
func (cc *CharCursor) SeekRunes(n uint64) error {
	if cc == nil {
		return ErrIllegalArguments
	}
	b, err := cc.table.byteOffsetOfRune(n)
	if err != nil {
		return err
	}
	cc.at = n
	cc.byteOff = b
	return nil
}

// Next returns the rune at the current cursor position and advances by one
// rune.
//
// If the cursor is at end-of-text, ok is false.
func (cc *CharCursor) Next() (r rune, ok bool) {
	if cc == nil {
		return 0, false
	}
	r, err := cc.table.CharAt(cc.at)
	if err != nil {
		return 0, false
	}
	cc.at++
	cc.byteOff += uint64(utf8.RuneLen(r))
	return r, true
}

// Prev returns the rune before the current cursor position and moves back
// by one rune.
//
// If the cursor is at start-of-text, ok is false.
func (cc *CharCursor) Prev() (r rune, ok bool) {
	if cc == nil {
		return 0, false
	}
	if cc.at == 0 {
		return 0, false
	}
	r, err := cc.table.CharAt(cc.at - 1)
	if err != nil {
		return 0, false
	}
	cc.at--
	cc.byteOff -= uint64(utf8.RuneLen(r))
	return r, true
}
