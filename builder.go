package pieces

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/pieces/buffer"
)

// Builder incrementally stages text and finalizes it into a Table.
//
// Builder collects UTF-8 fragments and materializes the table only when
// Table() is called; all staged text becomes the table's immutable
// original buffer. This lets loaders assemble the construction text
// piecewise without paying for an edit per fragment.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// front keeps prepended fragments in reverse logical order.
	front []string
	// back keeps appended fragments in logical order.
	back []string

	done  bool
	dirty bool
	table *Table
}

// NewBuilder creates a new and empty table builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Table returns the table built from all staged fragments.
//
// It is illegal to continue adding fragments after Table has been called,
// but Table may be called multiple times.
func (b *Builder) Table() *Table {
	if b == nil {
		return FromText("")
	}
	if b.dirty || b.table == nil {
		b.table = FromText(b.buildText())
		b.dirty = false
	}
	b.done = true
	if b.table.IsEmpty() {
		tracer().Debugf("table builder: table is empty")
	}
	return b.table
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.table = nil
}

// AppendString appends UTF-8 text to the staged build.
func (b *Builder) AppendString(text string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTableCompleted
	}
	if !utf8.ValidString(text) {
		return buffer.ErrInvalidUTF8
	}
	if text != "" {
		b.back = append(b.back, text)
		b.dirty = true
	}
	return nil
}

// PrependString prepends UTF-8 text to the staged build.
func (b *Builder) PrependString(text string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTableCompleted
	}
	if !utf8.ValidString(text) {
		return buffer.ErrInvalidUTF8
	}
	if text != "" {
		b.front = append(b.front, text)
		b.dirty = true
	}
	return nil
}

func (b *Builder) buildText() string {
	var sb strings.Builder
	for i := len(b.front) - 1; i >= 0; i-- {
		sb.WriteString(b.front[i])
	}
	for _, s := range b.back {
		sb.WriteString(s)
	}
	return sb.String()
}
