package ubidi

import "github.com/go-text/typesetting/unicodedata"

// Mirror returns the Bidi_Mirroring_Glyph of r, or r itself if r has no
// mirrored counterpart.
func Mirror(r rune) rune {
	m, _ := unicodedata.LookupMirrorChar(r)
	return m
}

// IsBidiControl reports whether r is removed from output by the
// RemoveBidiControls write option: ZWNJ, ZWJ, LRM, RLM, the embedding and
// override controls LRE..RLO, and the isolate controls LRI..PDI.
func IsBidiControl(r rune) bool {
	return r&^0x3 == 0x200C ||
		(r >= 0x202A && r <= 0x202E) ||
		(r >= 0x2066 && r <= 0x2069)
}

// canonicalBracket maps the deprecated angle brackets to their canonical
// equivalents, for bracket pair matching (BD16).
func canonicalBracket(r rune) rune {
	switch r {
	case 0x2329:
		return 0x3008
	case 0x232A:
		return 0x3009
	}
	return r
}
