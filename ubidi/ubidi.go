package ubidi

import (
	"fmt"
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/unicode/bidi"
)

// Level is a bidi embedding level. Odd levels are right-to-left.
type Level uint8

const (
	// MaxExplicitLevel is the maximum depth of explicit embeddings.
	MaxExplicitLevel Level = 125
	// DefaultLTR as a paragraph level selects the level from the first strong
	// character, falling back to left-to-right.
	DefaultLTR Level = 0xfe
	// DefaultRTL as a paragraph level selects the level from the first strong
	// character, falling back to right-to-left.
	DefaultRTL Level = 0xff
)

// IsRTL reports whether l is a right-to-left level.
func (l Level) IsRTL() bool {
	return l&1 == 1
}

// IsDefault reports whether l is one of the default paragraph levels.
func (l Level) IsDefault() bool {
	return l >= DefaultLTR
}

// ReorderingMode selects a variant of the reordering algorithm.
type ReorderingMode uint8

const (
	// ReorderDefault is the regular logical-to-visual algorithm.
	ReorderDefault ReorderingMode = iota
	// ReorderInverseNumbersAsL is the inverse (visual-to-logical) variant
	// which treats numbers like left-to-right letters.
	ReorderInverseNumbersAsL
	// ReorderInverseLikeDirect is the inverse (visual-to-logical) variant
	// using the same resolution rules as the regular algorithm.
	ReorderInverseLikeDirect
)

func (m ReorderingMode) String() string {
	switch m {
	case ReorderDefault:
		return "default"
	case ReorderInverseNumbersAsL:
		return "inverse-numbers-as-L"
	case ReorderInverseLikeDirect:
		return "inverse-like-direct"
	}
	return fmt.Sprintf("ReorderingMode(%d)", uint8(m))
}

// WriteOption is a bit set of output options for [Para.WriteReordered] and
// [WriteReverse].
type WriteOption uint16

const (
	// KeepBaseCombining keeps combining marks after their base character in
	// right-to-left output.
	KeepBaseCombining WriteOption = 1
	// DoMirroring replaces characters with their mirror glyph where the
	// output direction is right-to-left.
	DoMirroring WriteOption = 2
	// RemoveBidiControls drops bidi control characters from the output,
	// see [IsBidiControl].
	RemoveBidiControls WriteOption = 8
	// OutputReverse writes the visual output from right to left.
	OutputReverse WriteOption = 16

	allWriteOptions = KeepBaseCombining | DoMirroring | RemoveBidiControls | OutputReverse
)

// Para is a paragraph analysis context. The zero value is not usable;
// create contexts with [OpenSized].
type Para struct {
	maxLength int
	mode      ReorderingMode
	closed    bool
	analyzed  bool
	text      []uint16
	runes     []rune       // decoded text
	starts    []int        // code unit position of each rune, plus one sentinel
	classes   []bidi.Class // bidi class of each rune
	levels    []Level      // resolved level of each rune
	paraLevel Level
}

// OpenSized creates an analysis context for texts of at most maxLength code
// units. A maxLength of 0 lets the context accept texts of any length.
func OpenSized(maxLength int) (*Para, error) {
	if maxLength < 0 {
		return nil, fmt.Errorf("open context of size %d: %w", maxLength, IllegalArgument)
	}
	p := &Para{maxLength: maxLength}
	if maxLength > 0 {
		p.runes = make([]rune, 0, maxLength)
		p.starts = make([]int, 0, maxLength+1)
		p.classes = make([]bidi.Class, 0, maxLength)
		p.levels = make([]Level, 0, maxLength)
	}
	return p, nil
}

// Close releases the context. Subsequent calls return InvalidState.
func (p *Para) Close() {
	if p == nil {
		return
	}
	p.closed = true
	p.analyzed = false
	p.text = nil
	p.runes, p.starts, p.classes, p.levels = nil, nil, nil, nil
}

// SetReorderingMode selects the reordering algorithm variant. It must be
// called before SetPara to take effect.
func (p *Para) SetReorderingMode(mode ReorderingMode) {
	if p == nil || mode > ReorderInverseLikeDirect {
		return
	}
	p.mode = mode
}

// ReorderingMode returns the current reordering mode.
func (p *Para) ReorderingMode() ReorderingMode {
	return p.mode
}

// SetPara runs the paragraph analysis over text.
//
// paraLevel is either an explicit level 0..MaxExplicitLevel, or one of
// DefaultLTR, DefaultRTL. The text must not be modified while the context
// refers to it, i.e. until the next call to SetPara or Close.
//
// The complete text is treated as one paragraph; paragraph separators
// terminate all explicit embeddings and are set to the paragraph level.
func (p *Para) SetPara(text []uint16, paraLevel Level) error {
	if p == nil || p.closed {
		return fmt.Errorf("set paragraph: %w", InvalidState)
	}
	p.analyzed = false
	if paraLevel > MaxExplicitLevel && !paraLevel.IsDefault() {
		return fmt.Errorf("set paragraph with level %d: %w", paraLevel, IllegalArgument)
	}
	if p.maxLength > 0 && len(text) > p.maxLength {
		return fmt.Errorf("set paragraph of length %d in context of size %d: %w",
			len(text), p.maxLength, MemoryAllocation)
	}
	p.text = text
	p.decode()
	p.classify()
	r := newResolver(p.runes, p.classes)
	p.paraLevel = r.paragraphLevel(paraLevel)
	p.levels = r.resolve(p.levels[:0])
	p.analyzed = true
	tracer().Debugf("bidi paragraph of %d code units, level %d, mode %s", len(text), p.paraLevel, p.mode)
	return nil
}

// decode splits the UTF-16 text into code points. Unpaired surrogates are
// kept as single code points.
func (p *Para) decode() {
	p.runes, p.starts = p.runes[:0], p.starts[:0]
	for i := 0; i < len(p.text); {
		p.starts = append(p.starts, i)
		c := rune(p.text[i])
		if utf16.IsSurrogate(c) && i+1 < len(p.text) {
			if r := utf16.DecodeRune(c, rune(p.text[i+1])); r != unicode.ReplacementChar {
				p.runes = append(p.runes, r)
				i += 2
				continue
			}
		}
		p.runes = append(p.runes, c)
		i++
	}
	p.starts = append(p.starts, len(p.text))
}

func (p *Para) classify() {
	p.classes = p.classes[:0]
	for _, r := range p.runes {
		props, _ := bidi.LookupRune(r)
		c := props.Class()
		if p.mode == ReorderInverseNumbersAsL && (c == bidi.EN || c == bidi.AN) {
			c = bidi.L
		}
		p.classes = append(p.classes, c)
	}
}

func (p *Para) check() error {
	if p == nil || p.closed || !p.analyzed {
		return InvalidState
	}
	return nil
}

// Length returns the length of the analysed text in code units.
func (p *Para) Length() int {
	if p.check() != nil {
		return 0
	}
	return len(p.text)
}

// ParaLevel returns the resolved paragraph level.
func (p *Para) ParaLevel() Level {
	return p.paraLevel
}

// Levels returns the resolved embedding level of every code unit of the text.
// Both code units of a surrogate pair carry the level of their code point.
func (p *Para) Levels() ([]Level, error) {
	if err := p.check(); err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	levels := make([]Level, len(p.text))
	for i, l := range p.levels {
		for j := p.starts[i]; j < p.starts[i+1]; j++ {
			levels[j] = l
		}
	}
	return levels, nil
}

// LevelAt returns the level of the code unit at position pos.
func (p *Para) LevelAt(pos int) (Level, error) {
	if err := p.check(); err != nil {
		return 0, fmt.Errorf("level at %d: %w", pos, err)
	}
	if pos < 0 || pos >= len(p.text) {
		return 0, fmt.Errorf("level at %d: %w", pos, IndexOutOfBounds)
	}
	i := p.runeIndex(pos)
	return p.levels[i], nil
}

// runeIndex finds the code point containing code unit pos.
func (p *Para) runeIndex(pos int) int {
	lo, hi := 0, len(p.runes)
	for lo < hi {
		m := (lo + hi) / 2
		if p.starts[m+1] <= pos {
			lo = m + 1
		} else {
			hi = m
		}
	}
	return lo
}

// Direction returns LeftToRight if all levels are even, RightToLeft if all
// levels are odd, and Mixed otherwise. An empty text has the direction of
// the paragraph level.
func (p *Para) Direction() bidi.Direction {
	if p.check() != nil || len(p.levels) == 0 {
		if p.paraLevel.IsRTL() {
			return bidi.RightToLeft
		}
		return bidi.LeftToRight
	}
	odd, even := false, false
	for _, l := range p.levels {
		if l.IsRTL() {
			odd = true
		} else {
			even = true
		}
	}
	switch {
	case odd && even:
		return bidi.Mixed
	case odd:
		return bidi.RightToLeft
	}
	return bidi.LeftToRight
}
