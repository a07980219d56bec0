// Package codeunits has helpers for moving text between Go strings and
// UTF-16 code unit buffers, and for reading and printing code units in
// U+XXXX notation.
package codeunits

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// FromString encodes s as UTF-16. Invalid UTF-8 is encoded as U+FFFD.
func FromString(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// ToString decodes UTF-16 code units. Unpaired surrogates decode to U+FFFD.
func ToString(u []uint16) string {
	return string(utf16.Decode(u))
}

// Format prints code units as space separated U+XXXX values.
func Format(u []uint16) string {
	var b strings.Builder
	for i, c := range u {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "U+%04X", c)
	}
	return b.String()
}

// Parse reads code units separated by commas or white space. Every item is a
// hexadecimal number, optionally prefixed by "U+" or "0x". Values above
// U+FFFF are encoded as surrogate pairs.
func Parse(s string) ([]uint16, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no code points in %q", s)
	}
	runes := make([]rune, 0, len(fields))
	for _, f := range fields {
		h := strings.TrimSpace(f)
		h = strings.TrimPrefix(h, "U+")
		h = strings.TrimPrefix(h, "u+")
		h = strings.TrimPrefix(h, "0x")
		h = strings.TrimPrefix(h, "0X")
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid code point %q: %w", f, err)
		}
		if v > 0x10FFFF {
			return nil, fmt.Errorf("code point out of range: %q", f)
		}
		runes = append(runes, rune(v))
	}
	return encodeKeepingSurrogates(runes), nil
}

// encodeKeepingSurrogates differs from utf16.Encode in writing surrogate code
// points unchanged instead of replacing them.
func encodeKeepingSurrogates(runes []rune) []uint16 {
	u := make([]uint16, 0, len(runes))
	for _, r := range runes {
		if r >= 0x10000 {
			r1, r2 := utf16.EncodeRune(r)
			u = append(u, uint16(r1), uint16(r2))
			continue
		}
		u = append(u, uint16(r))
	}
	return u
}
