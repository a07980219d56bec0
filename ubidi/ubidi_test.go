package ubidi

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/bidishape/internal/codeunits"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/bidi"
)

func analyze(t *testing.T, text string, level Level, mode ReorderingMode) *Para {
	t.Helper()
	u := codeunits.FromString(text)
	p, err := OpenSized(len(u))
	require.NoError(t, err)
	p.SetReorderingMode(mode)
	require.NoError(t, p.SetPara(u, level))
	return p
}

func TestOpenSizedRejectsNegativeSize(t *testing.T) {
	_, err := OpenSized(-1)
	if !errors.Is(err, IllegalArgument) {
		t.Fatalf("expected ILLEGAL_ARGUMENT, got %v", err)
	}
}

func TestSetParaErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidishape.ubidi")
	defer teardown()
	//
	p, err := OpenSized(2)
	require.NoError(t, err)
	err = p.SetPara(codeunits.FromString("abc"), DefaultLTR)
	assert.ErrorIs(t, err, MemoryAllocation)
	err = p.SetPara(codeunits.FromString("ab"), 126)
	assert.ErrorIs(t, err, IllegalArgument)
	_, err = p.WriteReordered(make([]uint16, 2), 0)
	assert.ErrorIs(t, err, InvalidState, "no successful SetPara yet")
	p.Close()
	err = p.SetPara(codeunits.FromString("ab"), DefaultLTR)
	assert.ErrorIs(t, err, InvalidState)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ubidi: BUFFER_OVERFLOW", BufferOverflow.Error())
	assert.Equal(t, "UNKNOWN", Status(99).String())
}

func TestParagraphLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidishape.ubidi")
	defer teardown()
	//
	tests := []struct {
		text      string
		requested Level
		mode      ReorderingMode
		want      Level
	}{
		{"abc", DefaultRTL, ReorderDefault, 0},
		{"אבג", DefaultLTR, ReorderDefault, 1},
		{"123", DefaultRTL, ReorderDefault, 1},
		{"123", DefaultLTR, ReorderDefault, 0},
		{"123", DefaultRTL, ReorderInverseNumbersAsL, 0},
		{"\u2067אב\u2069abc", DefaultRTL, ReorderDefault, 0},
		{"abc", 1, ReorderDefault, 1},
		{"", DefaultRTL, ReorderInverseLikeDirect, 1},
	}
	for _, tt := range tests {
		p := analyze(t, tt.text, tt.requested, tt.mode)
		if got := p.ParaLevel(); got != tt.want {
			t.Errorf("paragraph level of %q = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestWriteReordered(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidishape.ubidi")
	defer teardown()
	//
	tests := []struct {
		name, input, want string
	}{
		{"latin", "abc", "abc"},
		{"hebrew", "אבג", "גבא"},
		{"mixed", "abc אבג", "abc גבא"},
		{"numbers in RTL", "אב 12", "12 בא"},
		{"mirrored brackets", "(אב)", "(בא)"},
		{"right-to-left override", "ab\u202Ecd", "abdc"},
		{"left-to-right override", "ab\u202Dcd", "abcd"},
		{"isolate", "a\u2067אב\u2069c", "aבאc"},
		{"marks removed", "a\u200Fb", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := analyze(t, tt.input, DefaultRTL, ReorderInverseLikeDirect)
			dest := make([]uint16, len(codeunits.FromString(tt.input)))
			n, err := p.WriteReordered(dest, DoMirroring|RemoveBidiControls)
			require.NoError(t, err)
			assert.Equal(t, tt.want, codeunits.ToString(dest[:n]))
		})
	}
}

func TestWriteReorderedKeepsControlsByDefault(t *testing.T) {
	p := analyze(t, "ab\u202Ecd", DefaultLTR, ReorderDefault)
	dest := make([]uint16, 5)
	n, err := p.WriteReordered(dest, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Contains(t, dest[:n], uint16(0x202E))
}

func TestWriteReorderedOptions(t *testing.T) {
	p := analyze(t, "ab(אב)", DefaultLTR, ReorderDefault)
	dest := make([]uint16, 6)
	n, err := p.WriteReordered(dest, OutputReverse)
	require.NoError(t, err)
	// brackets resolve to L, visual order is "ab(בא)", written backwards
	assert.Equal(t, ")אב(ba", codeunits.ToString(dest[:n]))
	//
	p = analyze(t, "\u0628\u064E\u062A", DefaultRTL, ReorderDefault)
	dest = make([]uint16, 3)
	n, err = p.WriteReordered(dest, KeepBaseCombining)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0x062A, 0x0628, 0x064E}, dest[:n])
	_, err = p.WriteReordered(dest, WriteOption(4))
	assert.ErrorIs(t, err, IllegalArgument)
}

func TestWriteReorderedBufferOverflow(t *testing.T) {
	p := analyze(t, "abcd", DefaultLTR, ReorderDefault)
	n, err := p.WriteReordered(make([]uint16, 3), 0)
	assert.ErrorIs(t, err, BufferOverflow)
	assert.Equal(t, 4, n, "required length is reported")
}

func TestLevelsAndVisualMap(t *testing.T) {
	p := analyze(t, "אa", DefaultLTR, ReorderDefault)
	levels, err := p.Levels()
	require.NoError(t, err)
	assert.Equal(t, []Level{1, 2}, levels)
	vmap, err := p.VisualMap()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, vmap)
	assert.Equal(t, bidi.Mixed, p.Direction())
	//
	p = analyze(t, "a\U0001D400", DefaultLTR, ReorderDefault)
	levels, err = p.Levels()
	require.NoError(t, err)
	assert.Equal(t, []Level{0, 0, 0}, levels)
	assert.Equal(t, 3, p.Length())
	l, err := p.LevelAt(2)
	require.NoError(t, err)
	assert.Equal(t, Level(0), l)
	_, err = p.LevelAt(3)
	assert.ErrorIs(t, err, IndexOutOfBounds)
	assert.Equal(t, bidi.LeftToRight, p.Direction())
	//
	p = analyze(t, "אב", DefaultLTR, ReorderDefault)
	assert.Equal(t, bidi.RightToLeft, p.Direction())
}

func TestTrailingWhitespaceTakesParagraphLevel(t *testing.T) {
	p := analyze(t, "אב abc  ", 1, ReorderDefault)
	levels, err := p.Levels()
	require.NoError(t, err)
	assert.Equal(t, []Level{1, 1, 1, 2, 2, 2, 1, 1}, levels)
}

func TestWriteReverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidishape.ubidi")
	defer teardown()
	//
	tests := []struct {
		name, input string
		opts        WriteOption
		want        string
	}{
		{"plain", "abc", 0, "cba"},
		{"mirroring", "(a<b)", DoMirroring, "(b>a)"},
		{"no mirroring", "(a)", 0, ")a("},
		{"controls removed", "a\u200Fb\u202C", RemoveBidiControls, "ba"},
		{"surrogates intact", "x\U0001D400", 0, "\U0001D400x"},
		{"keep base combining", "\u0628\u064E\u062A", KeepBaseCombining, "\u062A\u0628\u064E"},
		{"empty", "", DoMirroring, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := codeunits.FromString(tt.input)
			dest := make([]uint16, len(src))
			n, err := WriteReverse(src, dest, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, codeunits.ToString(dest[:n]))
		})
	}
}

func TestWriteReverseInPlaceAndOverflow(t *testing.T) {
	buf := codeunits.FromString("abc")
	n, err := WriteReverse(buf, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, "cba", codeunits.ToString(buf[:n]))
	_, err = WriteReverse(buf, buf[:2], 0)
	assert.ErrorIs(t, err, BufferOverflow)
}

func TestMirror(t *testing.T) {
	assert.Equal(t, ')', Mirror('('))
	assert.Equal(t, '\u00AB', Mirror('\u00BB'))
	assert.Equal(t, 'a', Mirror('a'))
	assert.Equal(t, '\u29A3', Mirror('\u2220'))
	assert.Equal(t, '\u2BFE', Mirror('\u221F'))
	assert.Equal(t, '\u2E56', Mirror('\u2E55'))
	assert.True(t, IsBidiControl(0x200D))
	assert.True(t, IsBidiControl(0x2069))
	assert.False(t, IsBidiControl(0x0627))
}

func TestResolvedLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidishape.ubidi")
	defer teardown()
	//
	tests := []struct {
		name  string
		text  string
		level Level
		want  []Level
	}{
		{"brackets around RTL in LTR", "ab (אב) cd", DefaultLTR, []Level{0, 0, 0, 0, 1, 1, 0, 0, 0, 0}},
		{"brackets take LTR context", "א a(b) ב", DefaultRTL, []Level{1, 1, 2, 2, 2, 2, 1, 1}},
		{"brackets take LTR context, no space", "a(b)א", 1, []Level{2, 2, 2, 2, 1}},
		{"newer brackets pair", "a\u2E55b\u2E56א", 1, []Level{2, 2, 2, 2, 1}},
		{"decimal separator between digits", "אב 1.2", DefaultRTL, []Level{1, 1, 1, 2, 2, 2}},
		{"terminator before digits", "$12 אב", DefaultRTL, []Level{2, 2, 2, 1, 1, 1}},
		{"first strong isolate with RTL content", "\u2068אב\u2069 abc", DefaultLTR, []Level{0, 1, 1, 0, 0, 0, 0, 0}},
		{"first strong isolate with LTR content", "\u2068abc\u2069", DefaultRTL, []Level{1, 2, 2, 2, 1}},
		{"nested isolates", "a\u2067\u2066b\u2069\u2069c", DefaultLTR, []Level{0, 0, 1, 2, 1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := analyze(t, tt.text, tt.level, ReorderDefault)
			levels, err := p.Levels()
			require.NoError(t, err)
			assert.Equal(t, tt.want, levels)
		})
	}
}

func TestExplicitLevelOverflow(t *testing.T) {
	// 62 embeddings reach level 124, the remaining 8 overflow
	text := strings.Repeat("\u202A", 70) + "a" + strings.Repeat("\u202C", 9) + "b"
	p := analyze(t, text, 0, ReorderDefault)
	l, err := p.LevelAt(70)
	require.NoError(t, err)
	assert.Equal(t, Level(124), l)
	l, err = p.LevelAt(80)
	require.NoError(t, err)
	assert.Equal(t, Level(122), l, "8 PDFs balance the overflow, the 9th closes an embedding")
	//
	text = strings.Repeat("\u2066", 70) + "a" + strings.Repeat("\u2069", 9) + "b"
	p = analyze(t, text, 0, ReorderDefault)
	l, err = p.LevelAt(70)
	require.NoError(t, err)
	assert.Equal(t, Level(124), l)
	l, err = p.LevelAt(80)
	require.NoError(t, err)
	assert.Equal(t, Level(122), l, "8 PDIs balance the overflow, the 9th closes an isolate")
}

func TestReorderInverseNumbersAsL(t *testing.T) {
	text := "12 אב"
	for mode, want := range map[ReorderingMode]string{
		ReorderDefault:           "בא 12",
		ReorderInverseNumbersAsL: "12 בא",
	} {
		p := analyze(t, text, DefaultRTL, mode)
		dest := make([]uint16, 5)
		n, err := p.WriteReordered(dest, 0)
		require.NoError(t, err)
		assert.Equal(t, want, codeunits.ToString(dest[:n]), mode.String())
	}
}

func TestLogicalMap(t *testing.T) {
	p := analyze(t, "ab אבג", DefaultLTR, ReorderDefault)
	vmap, err := p.VisualMap()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 5, 4, 3}, vmap)
	lmap, err := p.LogicalMap()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 5, 4, 3}, lmap)
	p = analyze(t, "אבג a", DefaultLTR, ReorderDefault)
	lmap, err = p.LogicalMap()
	require.NoError(t, err)
	for logical, visual := range lmap {
		vmap, _ = p.VisualMap()
		assert.Equal(t, logical, vmap[visual])
	}
	p.Close()
	_, err = p.LogicalMap()
	assert.ErrorIs(t, err, InvalidState)
}

func TestManyUnmatchedIsolates(t *testing.T) {
	text := codeunits.FromString(strings.Repeat("\u2066", 200000))
	p, err := OpenSized(len(text))
	require.NoError(t, err)
	start := time.Now()
	require.NoError(t, p.SetPara(text, DefaultLTR))
	n, err := p.WriteReordered(make([]uint16, len(text)), RemoveBidiControls)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Less(t, time.Since(start), 5*time.Second, "isolate matching must stay linear")
	levels, err := p.Levels()
	require.NoError(t, err)
	assert.Equal(t, Level(0), levels[len(levels)-1], "trailing isolate controls take the paragraph level")
}
