package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		enc  string
		in   []byte
		want []uint16
	}{
		{"utf16 with BOM", "utf16", []byte{0xFE, 0xFF, 0x06, 0x28, 0x00, 0x61}, []uint16{0x0628, 'a'}},
		{"utf16 without BOM", "utf16", []byte{0x28, 0x06, 0x61, 0x00}, []uint16{0x0628, 'a'}},
		{"utf16be", "utf16be", []byte{0x06, 0x28}, []uint16{0x0628}},
		{"utf16le", "UTF-16LE", []byte{0x28, 0x06}, []uint16{0x0628}},
		{"utf8", "utf8", []byte("ab"), []uint16{'a', 'b'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeText(bytes.NewReader(tt.in), tt.enc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	_, err := decodeText(bytes.NewReader(nil), "latin1")
	assert.Error(t, err)
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, formatHex, nil, []uint16{0xFE91, 0xFE90})
	assert.Equal(t, "U+FE91 U+FE90\n", buf.String())
	buf.Reset()
	printResult(&buf, formatText, nil, []uint16{'a', 'b'})
	assert.Equal(t, "ab\n", buf.String())
	buf.Reset()
	printResult(&buf, formatTable, []uint16{'a'}, nil)
	assert.Equal(t, "   0  U+0061    -       \n", buf.String())
}
