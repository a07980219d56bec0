package bidishape

import (
	"bytes"

	"golang.org/x/text/transform"
)

// NewTransformer returns a transformer applying op to UTF-8 text, one line
// at a time. Every line, without its terminating newline, is treated as a
// segment of its own. A line has to fit into the source buffer of the
// transformer's caller; transform.Reader, for example, supports lines of up
// to 4096 bytes.
func NewTransformer(op Operation) transform.Transformer {
	return lineTransformer{op: op}
}

type lineTransformer struct {
	transform.NopResetter
	op Operation
}

// Transform implements transform.Transformer.
func (t lineTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		line := src[nSrc:]
		consumed, newline := len(line), 0
		if end := bytes.IndexByte(line, '\n'); end >= 0 {
			line = line[:end]
			consumed, newline = end+1, 1
		} else if !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		out, err := applyString(t.op, string(line))
		if err != nil {
			return nDst, nSrc, err
		}
		if len(dst)-nDst < len(out)+newline {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		if newline > 0 {
			dst[nDst] = '\n'
			nDst++
		}
		nSrc += consumed
	}
	return nDst, nSrc, nil
}
