/*
Package ushape is an Arabic shaping facility for UTF-16 text.

[ShapeArabic] replaces Arabic letters with their contextual presentation
forms (isolated, final, initial, medial), composes lam-alef ligatures and
optionally converts between European and Arabic-Indic digits. It can also
undo shaping, mapping presentation forms back to the letters of the Arabic
block.

Behaviour is selected by an [Options] bit set. The option values follow the
layout of the widely deployed u_shapeArabic interface, so option words can be
passed through unchanged from callers of that interface. Failures return an
error wrapping one of the [Status] codes.

Shaping works on code units of the Basic Multilingual Plane. Supplementary
characters are passed through unchanged.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ushape

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bidishape.ushape'.
func tracer() tracing.Trace {
	return tracing.Select("bidishape.ushape")
}
