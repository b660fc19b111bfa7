/*
Package textfile provides API helpers to load UTF-8 text files as piece
tables.

Loading reads the file as a sequence of fragments in a background
goroutine and folds them into the table's original buffer, while a
broadcast channel publishes per-fragment progress to interested
observers. The synchronous Load API hides all of this.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pieces'
func tracer() tracing.Trace {
	return tracing.Select("pieces")
}
