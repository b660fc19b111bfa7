/*
Package format renders piece tables to consoles.

Formatting breaks the projection of a table into lines using Unicode
line-break segmentation (UAX#14) and measures fragment widths in
fixed-width character cells (UAX#11 East Asian width over grapheme
clusters). A provenance-colored mode prints each piece's text in a color
identifying the backing buffer it slices, which makes the structure of an
edited table visible at a glance.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package format

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pieces'
func tracer() tracing.Trace {
	return tracing.Select("pieces")
}
