package pieces

import (
	"fmt"
	"io"

	"github.com/npillmayer/pieces/buffer"
)

// Table2Dot outputs the internal structure of a Table in Graphviz DOT format
// (for debugging purposes). Pieces appear in logical order as a chain of
// boxes, each linked to the backing buffer it slices.
func Table2Dot(t *Table, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, "\trankdir=LR;\n")
	nodelist := fmt.Sprintf("\"orig\" [label=\"original (%d)\" %s];\n",
		t.store.Len(buffer.Original), bufferDotStyles)
	nodelist += fmt.Sprintf("\"add\" [label=\"add (%d)\" %s];\n",
		t.store.Len(buffer.Add), bufferDotStyles)
	edgelist := ""
	previd := ""
	err := t.EachPiece(func(p Piece, pos uint64) error {
		id := fmt.Sprintf("p%d", pos)
		start, end := p.Range()
		label := fmt.Sprintf("@%d\\n[%d,%d)\\n“%s”", pos, start, end, pieceExcerpt(t, p))
		nodelist += fmt.Sprintf("\"%s\" [label=\"%s\" %s];\n", id, label, pieceDotStyles)
		if previd != "" {
			edgelist += fmt.Sprintf("\"%s\" -> \"%s\";\n", previd, id)
		}
		previd = id
		switch p.Source() {
		case buffer.Original:
			edgelist += fmt.Sprintf("\"%s\" -> \"orig\";\n", id)
		case buffer.Add:
			edgelist += fmt.Sprintf("\"%s\" -> \"add\";\n", id)
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("table DOT: %s", err.Error())
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

const pieceDotStyles = ",style=filled,shape=box"
const bufferDotStyles = ",style=filled,color=black,fillcolor=\"#a3d7e4\",shape=folder"

// pieceExcerpt returns the first few bytes of a piece's text for labelling.
func pieceExcerpt(t *Table, p Piece) string {
	b := t.pieceBytes(p)
	if len(b) > 8 {
		return string(b[:8]) + "…"
	}
	return string(b)
}
