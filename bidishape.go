/*
Package bidishape prepares UTF-16 text containing Arabic script for display.

It offers two operations, which turn a segment of logical-order text into
visually ordered, Arabic-shaped text in a caller-supplied buffer:

▪︎ [ReorderReshapeBidiText] runs the Unicode Bidirectional Algorithm over the
segment (right-to-left default paragraph direction), writes it in visual
order with mirroring and without bidi controls, and then replaces Arabic
letters by their contextual presentation forms.

▪︎ [ReshapeArabicText] skips the bidi analysis. It reverses the segment
physically, shapes it, and reverses it again, leaving the text in its
original order with shaped letters. It is meant for text already known to
run in a single direction.

Shaping keeps the length of the segment: cells freed by lam-alef ligatures
are padded with spaces at the end of the visual output.

Both operations are stateless and allocate their working buffers and bidi
context per call; they may be called concurrently with independent buffers.
The analysis and shaping facilities live in packages ubidi and ushape.

Failures are reported as *[PipelineError] values carrying the failing stage.
Callers interested only in success or failure test for [ErrShapingPipeline].

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package bidishape

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bidishape'.
func tracer() tracing.Trace {
	return tracing.Select("bidishape")
}
