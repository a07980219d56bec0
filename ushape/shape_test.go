package ushape

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ShapeTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestShapeArabic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidishape.ushape")
	defer teardown()
	suite.Run(t, new(ShapeTestEnviron))
}

// run once, before test suite methods
func (env *ShapeTestEnviron) SetupSuite() {
	tracing.Select("bidishape.ushape").SetTraceLevel(tracing.LevelInfo)
}

func (env *ShapeTestEnviron) shape(src []uint16, opts Options) []uint16 {
	dest := make([]uint16, len(src)+4)
	n, err := ShapeArabic(src, dest, opts)
	env.Require().NoError(err)
	return dest[:n]
}

// --- Tests -----------------------------------------------------------------

func (env *ShapeTestEnviron) TestJoiningForms() {
	tests := []struct {
		name     string
		in, want []uint16
	}{
		{"beh beh beh", []uint16{0x0628, 0x0628, 0x0628}, []uint16{0xFE91, 0xFE92, 0xFE90}},
		{"single beh", []uint16{0x0628}, []uint16{0xFE8F}},
		{"alef does not join left", []uint16{0x0627, 0x0628}, []uint16{0xFE8D, 0xFE8F}},
		{"beh alef", []uint16{0x0628, 0x0627}, []uint16{0xFE91, 0xFE8E}},
		{"hamza breaks joining", []uint16{0x0628, 0x0621, 0x0628}, []uint16{0xFE8F, 0xFE80, 0xFE8F}},
		{"marks are transparent", []uint16{0x0628, 0x064E, 0x0628}, []uint16{0xFE91, 0x064E, 0xFE90}},
		{"tatweel causes joining", []uint16{0x0640, 0x0628, 0x0640}, []uint16{0x0640, 0xFE92, 0x0640}},
		{"peh peh", []uint16{0x067E, 0x067E}, []uint16{0xFB58, 0xFB57}},
		{"presentation forms are reshaped", []uint16{0xFE8F, 0xFE8F}, []uint16{0xFE91, 0xFE90}},
		{"supplementary characters pass", []uint16{0x0628, 0xD835, 0xDC00, 0x0628}, []uint16{0xFE8F, 0xD835, 0xDC00, 0xFE8F}},
		{"latin unchanged", []uint16{'a', 'b', 'c'}, []uint16{'a', 'b', 'c'}},
		{"sindhi nyeh", []uint16{0x0628, 0x0683, 0x0628}, []uint16{0xFE91, 0xFB79, 0xFE90}},
		{"sindhi tcheheh", []uint16{0x0687, 0x0687}, []uint16{0xFB80, 0xFB7F}},
		{"ng", []uint16{0x06AD, 0x0628}, []uint16{0xFBD5, 0xFE90}},
		{"urdu yeh barree with hamza", []uint16{0x0628, 0x06D3}, []uint16{0xFE91, 0xFBB1}},
		{"heh with yeh above", []uint16{0x0628, 0x06C0}, []uint16{0xFE91, 0xFBA5}},
		{"kirghiz oe", []uint16{0x0628, 0x06C6}, []uint16{0xFE91, 0xFBDA}},
		{"e", []uint16{0x06D0, 0x06D0, 0x06D0}, []uint16{0xFBE6, 0xFBE7, 0xFBE5}},
		{"rnoon", []uint16{0x06BB, 0x0628}, []uint16{0xFBA2, 0xFE90}},
		{"joining letter without forms", []uint16{0x0628, 0x0620, 0x0628}, []uint16{0xFE91, 0x0620, 0xFE90}},
	}
	for _, tt := range tests {
		env.Equal(tt.want, env.shape(tt.in, LettersShape), tt.name)
	}
}

func (env *ShapeTestEnviron) TestVisualOrder() {
	in := []uint16{0x0628, 0x0628, 0x0628}
	env.Equal([]uint16{0xFE90, 0xFE92, 0xFE91}, env.shape(in, TextDirectionVisualLTR|LettersShape))
}

func (env *ShapeTestEnviron) TestLamAlef() {
	lamAlef := []uint16{0x0644, 0x0627}
	env.Equal([]uint16{0xFEFB}, env.shape(lamAlef, LettersShape))
	behLamAlef := []uint16{0x0628, 0x0644, 0x0627}
	env.Equal([]uint16{0xFE91, 0xFEFC}, env.shape(behLamAlef, LettersShape))
	env.Equal([]uint16{0xFE91, 0xFEFC, 0x0020}, env.shape(behLamAlef, LettersShape|LengthFixedSpacesAtEnd))
	env.Equal([]uint16{0x0020, 0xFE91, 0xFEFC}, env.shape(behLamAlef, LettersShape|LengthFixedSpacesAtBeginning))
	env.Equal([]uint16{0xFE91, 0xFEFC, 0x0020}, env.shape(behLamAlef, LettersShape|LengthFixedSpacesNear))
	env.Equal([]uint16{0xFEF7}, env.shape([]uint16{0x0644, 0x0623}, LettersShape))
	env.Equal([]uint16{0xFEFB, 0x064E}, env.shape([]uint16{0x0644, 0x064E, 0x0627}, LettersShape),
		"marks between lam and alef")
	visual := []uint16{0x0627, 0x0644, 0x0628}
	env.Equal([]uint16{0xFEFC, 0xFE91, 0x0020},
		env.shape(visual, TextDirectionVisualLTR|LettersShape|LengthFixedSpacesAtEnd))
}

func (env *ShapeTestEnviron) TestTashkeelIsolated() {
	in := []uint16{0x0628, 0x064E, 0x0628}
	env.Equal([]uint16{0xFE91, 0xFE76, 0xFE90}, env.shape(in, LettersShapeTashkeelIsolated))
}

func (env *ShapeTestEnviron) TestUnshape() {
	env.Equal([]uint16{0x0628, 0x0644, 0x0627}, env.shape([]uint16{0xFE91, 0xFEFC}, LettersUnshape))
	shaped := []uint16{0xFE91, 0xFEFC, 0x0020}
	env.Equal([]uint16{0x0628, 0x0644, 0x0627}, env.shape(shaped, LettersUnshape|LengthFixedSpacesAtEnd))
	env.Equal([]uint16{0x0628, 0x0644, 0x0627}, env.shape(shaped, LettersUnshape|LengthFixedSpacesNear))
	env.Equal([]uint16{0x064E}, env.shape([]uint16{0xFE76}, LettersUnshape))
	_, err := ShapeArabic([]uint16{0xFE91, 0xFEFC}, make([]uint16, 4), LettersUnshape|LengthFixedSpacesAtEnd)
	env.ErrorIs(err, NoSpaceAvailable)
	_, err = ShapeArabic([]uint16{0xFEFB, 0x0628}, make([]uint16, 4), LettersUnshape|LengthFixedSpacesNear)
	env.ErrorIs(err, NoSpaceAvailable)
}

func (env *ShapeTestEnviron) TestDigits() {
	env.Equal([]uint16{0x0661, 0x0662}, env.shape([]uint16{'1', '2'}, DigitsENToAN))
	env.Equal([]uint16{0x06F1, 0x06F2}, env.shape([]uint16{'1', '2'}, DigitsENToAN|DigitTypeANExtended))
	env.Equal([]uint16{'3', '4'}, env.shape([]uint16{0x0663, 0x06F4}, DigitsANToEN))
}

func (env *ShapeTestEnviron) TestPreflightAndOverflow() {
	n, err := ShapeArabic([]uint16{0x0644, 0x0627}, nil, LettersShape)
	env.NoError(err)
	env.Equal(1, n)
	n, err = ShapeArabic([]uint16{0x0644, 0x0627}, nil, LettersShape|LengthFixedSpacesAtEnd)
	env.NoError(err)
	env.Equal(2, n)
	n, err = ShapeArabic([]uint16{0x0628, 0x0628, 0x0628}, make([]uint16, 1), LettersShape)
	env.ErrorIs(err, BufferOverflow)
	env.Equal(3, n)
	n, err = ShapeArabic(nil, make([]uint16, 1), LettersShape)
	env.NoError(err)
	env.Zero(n)
}

func (env *ShapeTestEnviron) TestIllegalOptions() {
	for _, opts := range []Options{0x60, 0x80, 0x200} {
		_, err := ShapeArabic([]uint16{'a'}, make([]uint16, 1), opts)
		env.ErrorIs(err, IllegalArgument, "options %#x", uint32(opts))
	}
}

func (env *ShapeTestEnviron) TestInPlace() {
	buf := []uint16{0x0628, 0x0628, 0x0628}
	n, err := ShapeArabic(buf, buf, LettersShape)
	env.NoError(err)
	env.Equal([]uint16{0xFE91, 0xFE92, 0xFE90}, buf[:n])
}

func (env *ShapeTestEnviron) TestOptionsString() {
	opts := TextDirectionVisualLTR | LettersShape | LengthFixedSpacesAtEnd
	env.Equal("spaces-at-end|visual-ltr|shape", opts.String())
	env.Equal("ushape: NO_SPACE_AVAILABLE", NoSpaceAvailable.Error())
}

func (env *ShapeTestEnviron) TestLetterTable() {
	for i, forms := range shapingForms {
		c := uint16(firstShaped + i)
		if forms[formIsol] == 0 {
			env.NotContains(arabicLetters, c, "U+%04X", c)
			continue
		}
		lf, ok := arabicLetters[c]
		env.Require().True(ok, "U+%04X", c)
		if lf.forms[formInit] != 0 {
			env.Equal(jtD, lf.jt, "U+%04X with initial form", c)
		}
		for _, f := range lf.forms {
			if f != 0 {
				env.Equal(c, presentationBase[f], "U+%04X", f)
			}
		}
	}
	env.Equal(jtC, joiningTypeOf(0x0640))
	env.Equal(jtC, joiningTypeOf(0x200D))
	env.Equal(jtT, joiningTypeOf(0x064E))
	env.Equal(jtD, joiningTypeOf(0x0620))
	env.Equal(jtR, joiningTypeOf(0xFEFB))
}
