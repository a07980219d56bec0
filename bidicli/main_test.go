package main

import (
	"testing"

	"github.com/npillmayer/bidishape/ubidi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	intp := &Intp{}
	op, err := intp.parseCommand("reorder abc  def")
	require.NoError(t, err)
	assert.Equal(t, REORDER, op.code)
	assert.Equal(t, "abc  def", op.arg)
	op, _ = intp.parseCommand("Levels x")
	assert.Equal(t, LEVELS, op.code)
	op, _ = intp.parseCommand("frobnicate")
	assert.Equal(t, HELP, op.code)
}

func TestCodeUnits(t *testing.T) {
	intp := &Intp{}
	u, err := intp.codeUnits(&Op{arg: "ab"})
	require.NoError(t, err)
	assert.Equal(t, []uint16{'a', 'b'}, u)
	intp.hex = true
	u, err = intp.codeUnits(&Op{arg: "U+0628, 0x0644"})
	require.NoError(t, err)
	assert.Equal(t, []uint16{0x0628, 0x0644}, u)
	_, err = intp.codeUnits(&Op{})
	assert.ErrorIs(t, err, errNoInput)
}

func TestPipelineOps(t *testing.T) {
	intp := &Intp{hex: true}
	err, quit := reshapeOp(intp, &Op{code: RESHAPE, arg: "U+0628 U+0628"})
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, []uint16{0xFE91, 0xFE90}, intp.last)
	err, _ = unshapeOp(intp, &Op{code: UNSHAPE, arg: "U+FE91 U+FEFC"})
	require.NoError(t, err)
	assert.Equal(t, []uint16{0x0628, 0x0644, 0x0627}, intp.last)
	err, _ = inputOp(intp, &Op{arg: "binary"})
	assert.Error(t, err)
}

func TestLevelTable(t *testing.T) {
	text := []uint16{'a', ' ', 0x05D0, 0x05D1, 0x05D2}
	levels := []ubidi.Level{0, 0, 1, 1, 1}
	lmap := []int{0, 1, 4, 3, 2}
	data := levelTable(text, levels, lmap)
	require.Len(t, data, 6)
	assert.Equal(t, "Shown at", data[0][3])
	assert.Equal(t, []string{"2", "U+05D0", "1", "4"}, data[3])
	assert.Equal(t, []string{"4", "U+05D2", "1", "2"}, data[5])
}
