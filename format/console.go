package format

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/pieces"
	"github.com/npillmayer/pieces/buffer"
	"golang.org/x/term"
)

// ConsoleTable is a type for outputting the text of a piece table to a
// console with a fixed width font, coloring each run of text by the
// backing buffer it slices. Text still present from the construction text
// and text inserted afterwards thus become visually distinguishable,
// which is chiefly useful when debugging edit sequences.
type ConsoleTable struct {
	colors map[buffer.Source]*color.Color
}

// NewConsoleTable creates a new provenance-coloring console printer.
//
// colors is a map from buffer source tags to colors used for display. It
// may be nil, selecting a default palette, or contain just a subset of the
// tags; uncolored tags print plain.
func NewConsoleTable(colors map[buffer.Source]*color.Color) *ConsoleTable {
	ct := &ConsoleTable{}
	if colors == nil {
		ct.colors = makeDefaultPalette()
	} else {
		ct.colors = colors
	}
	return ct
}

func makeDefaultPalette() map[buffer.Source]*color.Color {
	return map[buffer.Source]*color.Color{
		buffer.Original: color.New(color.FgBlue),
		buffer.Add:      color.New(color.FgRed),
	}
}

// Print outputs the table's text to stdout.
func (ct *ConsoleTable) Print(table *pieces.Table) error {
	return ct.Fprint(os.Stdout, table)
}

// Fprint outputs the table's text to w, piece by piece, each piece's text
// in the color registered for its backing buffer.
func (ct *ConsoleTable) Fprint(w io.Writer, table *pieces.Table) error {
	return table.EachPiece(func(p pieces.Piece, pos uint64) error {
		text, err := table.Report(pos, p.Len())
		if err != nil {
			return err
		}
		if c, ok := ct.colors[p.Source()]; ok {
			_, err = c.Fprint(w, text)
			return err
		}
		_, err = io.WriteString(w, text)
		return err
	})
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
