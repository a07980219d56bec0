package ubidi

import (
	"fmt"
	"slices"
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/unicode/bidi"
)

// visualOrder implements L2: it returns the logical index of every position
// in visual order.
func visualOrder(levels []Level) []int {
	order := make([]int, len(levels))
	for i := range order {
		order[i] = i
	}
	var highest Level
	lowestOdd := Level(0xff)
	for _, l := range levels {
		highest = max(highest, l)
		if l.IsRTL() {
			lowestOdd = min(lowestOdd, l)
		}
	}
	for level := highest; level >= lowestOdd; level-- {
		for i := 0; i < len(order); {
			if levels[order[i]] < level {
				i++
				continue
			}
			j := i
			for j < len(order) && levels[order[j]] >= level {
				j++
			}
			slices.Reverse(order[i:j])
			i = j
		}
	}
	return order
}

// VisualMap returns, for every visual position, the logical position of the
// code unit displayed there. Surrogate pairs keep their code unit order.
func (p *Para) VisualMap() ([]int, error) {
	if err := p.check(); err != nil {
		return nil, fmt.Errorf("visual map: %w", err)
	}
	vmap := make([]int, 0, len(p.text))
	for _, li := range visualOrder(p.levels) {
		for j := p.starts[li]; j < p.starts[li+1]; j++ {
			vmap = append(vmap, j)
		}
	}
	return vmap, nil
}

// LogicalMap returns, for every logical position, the visual position of
// the code unit. It is the inverse of the visual map.
func (p *Para) LogicalMap() ([]int, error) {
	if err := p.check(); err != nil {
		return nil, fmt.Errorf("logical map: %w", err)
	}
	vmap, _ := p.VisualMap()
	lmap := make([]int, len(vmap))
	for visual, logical := range vmap {
		lmap[logical] = visual
	}
	return lmap, nil
}

// WriteReordered writes the analysed text in visual order to dest and
// returns the number of code units written.
//
// If dest is too small, nothing is written and the required length is
// returned together with BufferOverflow.
func (p *Para) WriteReordered(dest []uint16, opts WriteOption) (int, error) {
	if err := p.check(); err != nil {
		return 0, fmt.Errorf("write reordered: %w", err)
	}
	if opts&^allWriteOptions != 0 {
		return 0, fmt.Errorf("write reordered with options %#x: %w", uint16(opts), IllegalArgument)
	}
	order := visualOrder(p.levels)
	if opts&KeepBaseCombining != 0 {
		order = p.keepBaseCombining(order)
	}
	if opts&OutputReverse != 0 {
		slices.Reverse(order)
	}
	out := make([]uint16, 0, len(p.text))
	for _, li := range order {
		r := p.runes[li]
		if opts&RemoveBidiControls != 0 && IsBidiControl(r) {
			continue
		}
		if opts&DoMirroring != 0 && p.levels[li].IsRTL() {
			r = Mirror(r)
		}
		out = appendRune(out, r)
	}
	if len(dest) < len(out) {
		return len(out), fmt.Errorf("write reordered: %d code units into buffer of %d: %w",
			len(out), len(dest), BufferOverflow)
	}
	copy(dest, out)
	tracer().Debugf("wrote %d of %d code units in visual order", len(out), len(p.text))
	return len(out), nil
}

// keepBaseCombining moves nonspacing marks of right-to-left runs behind their
// base character, keeping the logical order of base and marks.
func (p *Para) keepBaseCombining(order []int) []int {
	isRTLMark := func(li int) bool {
		return p.levels[li].IsRTL() && p.classes[li] == bidi.NSM
	}
	out := make([]int, 0, len(order))
	for i := 0; i < len(order); {
		j := i
		for j < len(order) && isRTLMark(order[j]) {
			j++
		}
		switch {
		case j > i && j < len(order) && p.levels[order[j]].IsRTL():
			out = append(out, order[j])
			for k := j - 1; k >= i; k-- {
				out = append(out, order[k])
			}
			i = j + 1
		case j > i:
			out = append(out, order[i:j]...)
			i = j
		default:
			out = append(out, order[i])
			i++
		}
	}
	return out
}

// WriteReverse reverses src into dest without any bidi analysis and returns
// the number of code units written. Surrogate pairs are kept intact.
// DoMirroring mirrors every character, KeepBaseCombining keeps nonspacing
// marks behind their base character, RemoveBidiControls drops bidi controls.
// OutputReverse is ignored.
//
// src and dest may overlap. If dest is too small, nothing is written and the
// required length is returned together with BufferOverflow.
func WriteReverse(src, dest []uint16, opts WriteOption) (int, error) {
	if opts&^allWriteOptions != 0 {
		return 0, fmt.Errorf("write reverse with options %#x: %w", uint16(opts), IllegalArgument)
	}
	runes := decodeRunes(src)
	out := make([]uint16, 0, len(src))
	for i := len(runes) - 1; i >= 0; {
		start := i
		if opts&KeepBaseCombining != 0 {
			for start > 0 && isNonspacingMark(runes[start]) {
				start--
			}
		}
		for _, r := range runes[start : i+1] {
			if opts&RemoveBidiControls != 0 && IsBidiControl(r) {
				continue
			}
			if opts&DoMirroring != 0 {
				r = Mirror(r)
			}
			out = appendRune(out, r)
		}
		i = start - 1
	}
	if len(dest) < len(out) {
		return len(out), fmt.Errorf("write reverse: %d code units into buffer of %d: %w",
			len(out), len(dest), BufferOverflow)
	}
	copy(dest, out)
	return len(out), nil
}

func isNonspacingMark(r rune) bool {
	props, _ := bidi.LookupRune(r)
	return props.Class() == bidi.NSM
}

// decodeRunes decodes UTF-16, keeping unpaired surrogates as code points.
func decodeRunes(text []uint16) []rune {
	runes := make([]rune, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := rune(text[i])
		if utf16.IsSurrogate(c) && i+1 < len(text) {
			if r := utf16.DecodeRune(c, rune(text[i+1])); r != unicode.ReplacementChar {
				runes = append(runes, r)
				i++
				continue
			}
		}
		runes = append(runes, c)
	}
	return runes
}

// appendRune encodes r as UTF-16. Unpaired surrogates are written unchanged.
func appendRune(out []uint16, r rune) []uint16 {
	if r >= 0x10000 {
		r1, r2 := utf16.EncodeRune(r)
		return append(out, uint16(r1), uint16(r2))
	}
	return append(out, uint16(r))
}
