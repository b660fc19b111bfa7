package format

import (
	"bufio"
	"io"

	"github.com/npillmayer/pieces"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// Config steers the line breaking of formatted output.
type Config struct {
	LineWidth int            // target line length in fixed-width ‘en’s
	Context   *uax11.Context // interpretation context for ambiguous East Asian widths
}

// Format outputs the projection of a table, broken into lines of at most
// Config.LineWidth fixed-width cells.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive), with
// Config.Context created from the user environment.
func Format(table *pieces.Table, out io.Writer, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	breaks := lineBreaks(table, config.LineWidth, config.Context)
	var start uint64
	for i, pos := range breaks {
		line, err := table.Report(start, pos-start)
		if err != nil {
			tracer().Errorf("error reporting line segment: %v", err)
			return err
		}
		tracer().Debugf("[%3d] %s", i, line)
		if _, err := io.WriteString(out, line); err != nil {
			return err
		}
		if _, err := out.Write([]byte{'\n'}); err != nil {
			return err
		}
		start = pos
	}
	return nil
}

// lineBreaks walks the possible line-break positions of the projection
// (UAX#14) first-fit, accumulating fragment widths until the line target is
// reached. It returns the byte positions of the line ends, the last of which
// is the projection length.
func lineBreaks(table *pieces.Table, linewidth int, context *uax11.Context) []uint64 {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(table.Reader()))
	breaks := make([]uint64, 0, 20)
	spaceleft := linewidth
	pos := 0
	linestart := true
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		gstr := grapheme.StringFromString(frag)
		fraglen := uax11.StringWidth(gstr, context)
		if fraglen >= spaceleft && !linestart {
			// fragment overshoots the line; break before it
			breaks = append(breaks, uint64(pos))
			spaceleft = linewidth
			linestart = true
		}
		pos += len(frag)
		spaceleft -= fraglen
		linestart = false
	}
	if len(breaks) == 0 || breaks[len(breaks)-1] != table.Len() {
		breaks = append(breaks, table.Len())
	}
	return breaks
}
