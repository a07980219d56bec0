package bidishape

import (
	"github.com/npillmayer/bidishape/internal/codeunits"
)

// ReorderReshapeString applies ReorderReshapeBidiText to a complete string.
func ReorderReshapeString(s string) (string, error) {
	return applyString(ReorderReshape, s)
}

// ReshapeArabicString applies ReshapeArabicText to a complete string.
func ReshapeArabicString(s string) (string, error) {
	return applyString(Reshape, s)
}

func applyString(op Operation, s string) (string, error) {
	src := codeunits.FromString(s)
	dest := make([]uint16, len(src))
	n, err := op.Apply(src, dest, 0, len(src))
	if err != nil {
		return "", err
	}
	return codeunits.ToString(dest[:n]), nil
}
