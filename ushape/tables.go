package ushape

import (
	"golang.org/x/text/unicode/bidi"
)

// joiningType is the Unicode Joining_Type property, restricted to the values
// relevant for shaping.
type joiningType uint8

const (
	jtU joiningType = iota // non-joining, e.g. Hamza, Full Stop
	jtR                    // right-joining, e.g. Alef, Dal
	jtD                    // dual-joining, e.g. Beh, Lam
	jtC                    // join-causing, e.g. Tatweel, ZWJ
	jtT                    // transparent, e.g. Fatha
)

func (jt joiningType) joinsPrevious() bool {
	return jt == jtR || jt == jtD || jt == jtC
}

func (jt joiningType) joinsNext() bool {
	return jt == jtD || jt == jtC
}

// Positional forms, indexes into letterForms.forms.
const (
	formIsol = iota
	formFina
	formInit
	formMedi
)

// letterForms holds the joining type of a letter and its presentation forms.
// A zero form is not available.
type letterForms struct {
	jt    joiningType
	forms [4]uint16
}

func right(isol uint16) letterForms {
	return letterForms{jt: jtR, forms: [4]uint16{isol, isol + 1}}
}

const (
	lam         = 0x0644
	zwj         = 0x200D
	space       = 0x0020
	lamAlefLow  = 0xFEF5
	lamAlefHigh = 0xFEFC
)

// arabicLetters maps the letters with presentation forms to their joining
// type and forms. Lam-alef ligatures are listed by their isolated form; they
// join like Alef.
var arabicLetters = func() map[uint16]letterForms {
	m := make(map[uint16]letterForms, len(shapingForms)+len(lamAlefLigatures))
	for i, forms := range shapingForms {
		if forms[formIsol] == 0 {
			continue
		}
		c := uint16(firstShaped + i)
		m[c] = letterForms{jt: letterJoining[c], forms: forms}
	}
	for _, lig := range lamAlefLigatures {
		m[lig] = right(lig)
	}
	return m
}()

// lamAlefLigatures maps the alef variants joining with a preceding lam to
// the isolated form of the ligature.
var lamAlefLigatures = map[uint16]uint16{
	0x0622: 0xFEF5,
	0x0623: 0xFEF7,
	0x0625: 0xFEF9,
	0x0627: 0xFEFB,
}

// tashkeelIsolated maps the tashkeel marks Fathatan..Sukun to their isolated
// presentation forms.
var tashkeelIsolated = map[uint16]uint16{
	0x064B: 0xFE70, 0x064C: 0xFE72, 0x064D: 0xFE74, 0x064E: 0xFE76,
	0x064F: 0xFE78, 0x0650: 0xFE7A, 0x0651: 0xFE7C, 0x0652: 0xFE7E,
}

// presentationBase maps every presentation form to the letter or mark it
// represents. Lam-alef ligatures map to their isolated form, alefOf gives
// the alef they contain.
var presentationBase = func() map[uint16]uint16 {
	m := make(map[uint16]uint16, 4*len(arabicLetters)+len(tashkeelIsolated))
	for base, lf := range arabicLetters {
		for _, f := range lf.forms {
			if f != 0 {
				m[f] = base
			}
		}
	}
	for mark, f := range tashkeelIsolated {
		m[f] = mark
	}
	return m
}()

// alefOf returns the alef contained in the lam-alef ligature lig (any form).
func alefOf(lig uint16) uint16 {
	isol := lig
	if lig&1 == 0 { // final form
		isol--
	}
	for alef, l := range lamAlefLigatures {
		if l == isol {
			return alef
		}
	}
	return 0
}

func isLamAlef(c uint16) bool {
	return c >= lamAlefLow && c <= lamAlefHigh
}

// joiningTypeOf returns the joining type of a code unit of the logical
// text, which must not contain presentation forms other than the isolated
// lam-alef ligatures.
func joiningTypeOf(c uint16) joiningType {
	if lf, ok := arabicLetters[c]; ok {
		return lf.jt
	}
	if jt, ok := letterJoining[c]; ok {
		return jt
	}
	if c == zwj {
		return jtC
	}
	if c >= 0xD800 && c <= 0xDFFF {
		return jtU
	}
	props, _ := bidi.LookupRune(rune(c))
	if props.Class() == bidi.NSM {
		return jtT
	}
	return jtU
}
