/*
Package ubidi is a bidi-paragraph-analysis facility for UTF-16 text.

It resolves embedding levels for a paragraph following the Unicode
Bidirectional Algorithm (UAX #9) and writes text in visual order, with
optional mirroring and removal of bidi control characters. A second entry
point, [WriteReverse], reverses a buffer without any paragraph analysis.

The API is modelled after a status-code style bidi library: clients open
an analysis context with [OpenSized], configure it, call [Para.SetPara]
and then retrieve results with [Para.WriteReordered], [Para.Levels] or
[Para.VisualMap]. Every failing call returns an error wrapping one of the
[Status] codes.

Bidi classes and bracket properties are taken from golang.org/x/text/unicode/bidi.
A context must not be shared between goroutines; open one context per
concurrent analysis.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ubidi

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bidishape.ubidi'.
func tracer() tracing.Trace {
	return tracing.Select("bidishape.ubidi")
}
