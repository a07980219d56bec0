package ushape

import (
	"fmt"
	"slices"

	"github.com/go-text/typesetting/language"
)

// ShapeArabic shapes src according to opts and writes the result to dest,
// returning the number of code units written.
//
// With dest == nil, ShapeArabic only computes and returns the length of the
// output (preflighting). If dest is too small for the output, nothing is
// written and the required length is returned together with BufferOverflow.
// src and dest may overlap.
//
// With a fixed length policy the output always has the length of src:
// cells freed by lam-alef composition become spaces, and unshaping of
// lam-alef ligatures consumes spaces. Without room for the expansion,
// unshaping fails with NoSpaceAvailable.
func ShapeArabic(src, dest []uint16, opts Options) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	var out []uint16
	if needsShaping(src, opts) {
		var err error
		if out, err = shape(src, opts); err != nil {
			return 0, err
		}
	} else {
		out = src
	}
	if dest == nil {
		return len(out), nil
	}
	if len(dest) < len(out) {
		return len(out), fmt.Errorf("shape %d code units into buffer of %d: %w",
			len(out), len(dest), BufferOverflow)
	}
	copy(dest, out)
	tracer().Debugf("shaped %d code units into %d (%s)", len(src), len(out), opts)
	return len(out), nil
}

// needsShaping reports whether opts may change src. Text without characters
// of the Arabic script passes through letter shaping unchanged.
func needsShaping(src []uint16, opts Options) bool {
	if opts&DigitsMask != DigitsNOOP {
		return true
	}
	if opts&LettersMask == LettersNOOP {
		return false
	}
	for _, c := range src {
		if language.LookupScript(rune(c)) == language.Arabic {
			return true
		}
		if _, ok := tashkeelIsolated[c]; ok {
			return true
		}
	}
	return false
}

func shape(src []uint16, opts Options) ([]uint16, error) {
	text := slices.Clone(src)
	letters := opts & LettersMask
	policy := opts & LengthMask
	if letters == LettersUnshape && (policy == LengthFixedSpacesAtEnd || policy == LengthFixedSpacesAtBeginning) {
		var err error
		if text, err = reserveSpaces(text, countLamAlef(text), policy); err != nil {
			return nil, err
		}
	}
	if opts.visual() {
		slices.Reverse(text)
	}
	freed := 0
	switch letters {
	case LettersShape, LettersShapeTashkeelIsolated:
		text, freed = shapeLetters(text, letters == LettersShapeTashkeelIsolated, policy)
	case LettersUnshape:
		var err error
		if text, err = unshapeLetters(text, policy == LengthFixedSpacesNear); err != nil {
			return nil, err
		}
	}
	shapeDigits(text, opts)
	if opts.visual() {
		slices.Reverse(text)
	}
	if freed > 0 {
		text = padSpaces(text, freed, policy)
	}
	return text, nil
}

// shapeLetters shapes a text in logical order. It returns the shaped text
// and the number of cells freed by lam-alef composition, which have to be
// filled with spaces to keep the length. With LengthFixedSpacesNear the
// alef of a lam-alef ligature is replaced by a space in place and no cells
// are freed.
func shapeLetters(text []uint16, tashkeel bool, policy Options) ([]uint16, int) {
	for i, c := range text {
		if base, ok := presentationBase[c]; ok {
			text[i] = base
		}
	}
	n := len(text)
	types := make([]joiningType, n)
	for i, c := range text {
		types[i] = joiningTypeOf(c)
	}
	removed := make([]bool, n)
	composed := 0
	for i := range n {
		if text[i] != lam {
			continue
		}
		j := i + 1
		for j < n && types[j] == jtT {
			j++
		}
		if j == n {
			break
		}
		if lig, ok := lamAlefLigatures[text[j]]; ok {
			text[i], types[i] = lig, jtR
			removed[j], types[j] = true, jtT
			composed++
		}
	}
	// type of the next non-transparent character, for each position
	following := make([]joiningType, n)
	next := jtU
	for i := n - 1; i >= 0; i-- {
		following[i] = next
		if types[i] != jtT {
			next = types[i]
		}
	}
	prev := jtU
	for i, t := range types {
		if t == jtT {
			continue
		}
		if lf, ok := arabicLetters[text[i]]; ok {
			joinPrev := t.joinsPrevious() && prev.joinsNext()
			joinNext := t.joinsNext() && following[i].joinsPrevious()
			text[i] = lf.form(joinPrev, joinNext)
		}
		prev = t
	}
	if tashkeel {
		for i, c := range text {
			if f, ok := tashkeelIsolated[c]; ok {
				text[i] = f
			}
		}
	}
	if composed == 0 {
		return text, 0
	}
	if policy == LengthFixedSpacesNear {
		for i := range text {
			if removed[i] {
				text[i] = space
			}
		}
		return text, 0
	}
	out := text[:0]
	for i, c := range text {
		if !removed[i] {
			out = append(out, c)
		}
	}
	return out, composed
}

// form selects the presentation form for the joining situation of a letter,
// falling back to forms with fewer connections where a form does not exist.
func (lf letterForms) form(joinPrev, joinNext bool) uint16 {
	f := formIsol
	switch {
	case joinPrev && joinNext:
		f = formMedi
	case joinPrev:
		f = formFina
	case joinNext:
		f = formInit
	}
	if lf.forms[f] == 0 {
		switch f {
		case formMedi:
			f = formFina
		case formInit:
			f = formIsol
		}
	}
	if lf.forms[f] == 0 {
		f = formIsol
	}
	return lf.forms[f]
}

// unshapeLetters replaces presentation forms of a text in logical order by
// the characters they represent, expanding lam-alef ligatures into lam and
// alef. If near is set, every ligature consumes an adjacent space.
func unshapeLetters(text []uint16, near bool) ([]uint16, error) {
	consumed := make([]bool, len(text))
	if near {
		for i, c := range text {
			if !isLamAlef(c) {
				continue
			}
			switch {
			case i+1 < len(text) && text[i+1] == space && !consumed[i+1]:
				consumed[i+1] = true
			case i > 0 && text[i-1] == space && !consumed[i-1]:
				consumed[i-1] = true
			default:
				return nil, fmt.Errorf("no space next to lam-alef at position %d: %w", i, NoSpaceAvailable)
			}
		}
	}
	out := make([]uint16, 0, len(text)+countLamAlef(text))
	for i, c := range text {
		if consumed[i] {
			continue
		}
		if isLamAlef(c) {
			out = append(out, lam, alefOf(c))
			continue
		}
		if base, ok := presentationBase[c]; ok {
			c = base
		}
		out = append(out, c)
	}
	return out, nil
}

func countLamAlef(text []uint16) int {
	n := 0
	for _, c := range text {
		if isLamAlef(c) {
			n++
		}
	}
	return n
}

// reserveSpaces removes count spaces from the end or the beginning of text,
// making room for the expansion of lam-alef ligatures.
func reserveSpaces(text []uint16, count int, policy Options) ([]uint16, error) {
	if count == 0 {
		return text, nil
	}
	n := len(text)
	for i := range count {
		pos := n - 1 - i
		if policy == LengthFixedSpacesAtBeginning {
			pos = i
		}
		if pos < 0 || pos >= n || text[pos] != space {
			return nil, fmt.Errorf("%d lam-alef ligatures need %d spaces: %w", count, count, NoSpaceAvailable)
		}
	}
	if policy == LengthFixedSpacesAtBeginning {
		return text[count:], nil
	}
	return text[:n-count], nil
}

// padSpaces fills the cells freed by lam-alef composition with spaces,
// according to the length policy.
func padSpaces(text []uint16, count int, policy Options) []uint16 {
	switch policy {
	case LengthFixedSpacesAtEnd:
		for range count {
			text = append(text, space)
		}
	case LengthFixedSpacesAtBeginning:
		text = append(slices.Repeat([]uint16{space}, count), text...)
	}
	return text
}

func shapeDigits(text []uint16, opts Options) {
	switch opts & DigitsMask {
	case DigitsENToAN:
		zero := uint16(0x0660)
		if opts&DigitTypeMask == DigitTypeANExtended {
			zero = 0x06F0
		}
		for i, c := range text {
			if c >= '0' && c <= '9' {
				text[i] = zero + c - '0'
			}
		}
	case DigitsANToEN:
		for i, c := range text {
			switch {
			case c >= 0x0660 && c <= 0x0669:
				text[i] = '0' + c - 0x0660
			case c >= 0x06F0 && c <= 0x06F9:
				text[i] = '0' + c - 0x06F0
			}
		}
	}
}
