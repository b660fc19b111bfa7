package pieces

import "unicode/utf8"

// resolve maps rune offset at to the piece whose accumulated rune range
// contains it, returning the piece index and the intra-piece rune offset.
//
// The end-of-text offset (at == CharCount()) is not inside any piece;
// callers handle appends before resolving.
func (t *Table) resolve(at uint64) (int, uint64, error) {
	if at >= t.chars {
		return 0, 0, ErrIndexOutOfBounds
	}
	var acc uint64
	for i, p := range t.pieces {
		if at < acc+p.runes {
			return i, at - acc, nil
		}
		acc += p.runes
	}
	// Unreachable while the rune-length cache matches the piece list.
	assert(false, "rune length cache out of sync with piece list")
	return 0, 0, ErrIndexOutOfBounds
}

// byteOffsetOfRune translates rune offset at into a byte offset in the
// projection. at may equal CharCount(), translating to Len().
func (t *Table) byteOffsetOfRune(at uint64) (uint64, error) {
	if at > t.chars {
		return 0, ErrIndexOutOfBounds
	}
	if at == t.chars {
		return t.Len(), nil
	}
	var accRunes, accBytes uint64
	for _, p := range t.pieces {
		if at < accRunes+p.runes {
			b := t.pieceBytes(p)
			return accBytes + byteOffsetForRune(b, at-accRunes), nil
		}
		accRunes += p.runes
		accBytes += p.Len()
	}
	return 0, ErrIndexOutOfBounds
}

// byteOffsetForRune returns the local byte offset of rune number o in b.
// o must not exceed the rune count of b.
func byteOffsetForRune(b []byte, o uint64) uint64 {
	var off uint64
	for ; o > 0; o-- {
		_, n := utf8.DecodeRune(b[off:])
		assert(n > 0, "rune offset beyond piece content")
		off += uint64(n)
	}
	return off
}
