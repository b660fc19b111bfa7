package pieces

import "io"

// Reader returns a reader for the bytes of the projection. The reader
// streams piecewise and never materializes the full text.
func (t *Table) Reader() io.Reader {
	return &tableReader{table: t}
}

type tableReader struct {
	table  *Table
	cursor uint64
}

func (tr *tableReader) Read(p []byte) (n int, err error) {
	l := uint64(len(p))
	if tr.cursor+l > tr.table.Len() {
		l = tr.table.Len() - tr.cursor
		if l == 0 {
			return 0, io.EOF
		}
	}
	s, err := tr.table.Report(tr.cursor, l)
	if err != nil {
		return 0, err
	}
	n = copy(p, s)
	tr.cursor += uint64(n)
	return n, nil
}
