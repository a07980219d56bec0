package bidishape

import (
	"fmt"

	"github.com/npillmayer/bidishape/ubidi"
	"github.com/npillmayer/bidishape/ushape"
)

// Operation identifies one of the two operations of the pipeline.
type Operation int

const (
	// ReorderReshape is the bidi reordering followed by Arabic shaping,
	// see ReorderReshapeBidiText.
	ReorderReshape Operation = iota
	// Reshape is Arabic shaping between two buffer reversals,
	// see ReshapeArabicText.
	Reshape
)

// String returns the boundary name of the operation.
func (op Operation) String() string {
	switch op {
	case ReorderReshape:
		return "reorderReshapeBidiText"
	case Reshape:
		return "reshapeArabicText"
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// Apply runs the operation, see ReorderReshapeBidiText and ReshapeArabicText.
func (op Operation) Apply(src, dest []uint16, offset, length int) (int, error) {
	switch op {
	case ReorderReshape:
		return ReorderReshapeBidiText(src, dest, offset, length)
	case Reshape:
		return ReshapeArabicText(src, dest, offset, length)
	}
	return 0, fail(op, KindOperation, fmt.Errorf("no operation %d", int(op)))
}

// shapeOptions interpret the shaper input as visual left-to-right text and
// keep its length, padding freed cells with spaces at the end.
const shapeOptions = ushape.TextDirectionVisualLTR | ushape.LettersShape | ushape.LengthFixedSpacesAtEnd

// TextPreparer is the pair of entry points prepared text is requested from.
type TextPreparer interface {
	ReorderReshapeBidiText(src, dest []uint16, offset, length int) (int, error)
	ReshapeArabicText(src, dest []uint16, offset, length int) (int, error)
}

// Pipeline implements TextPreparer. It is stateless; the zero value is
// ready to use and may be shared between goroutines.
type Pipeline struct{}

var _ TextPreparer = Pipeline{}

// ReorderReshapeBidiText calls the package level function of the same name.
func (Pipeline) ReorderReshapeBidiText(src, dest []uint16, offset, length int) (int, error) {
	return ReorderReshapeBidiText(src, dest, offset, length)
}

// ReshapeArabicText calls the package level function of the same name.
func (Pipeline) ReshapeArabicText(src, dest []uint16, offset, length int) (int, error) {
	return ReshapeArabicText(src, dest, offset, length)
}

// EntryPoint is the signature shared by both operations.
type EntryPoint func(src, dest []uint16, offset, length int) (int, error)

// EntryPoints maps the boundary names of the operations to their
// implementations.
var EntryPoints = map[string]EntryPoint{
	ReorderReshape.String(): ReorderReshapeBidiText,
	Reshape.String():        ReshapeArabicText,
}

// Lookup returns the entry point registered under name.
func Lookup(name string) (EntryPoint, bool) {
	ep, ok := EntryPoints[name]
	return ep, ok
}

// ReorderReshapeBidiText converts the segment src[offset:offset+length] from
// logical to visual order and shapes its Arabic letters. The result is
// written to dest starting at index 0 and its length is returned.
//
// The segment is analysed as a single paragraph with default direction
// right-to-left, in inverse-like-direct reordering mode. The visual output
// is mirrored where it runs right-to-left and bidi control characters are
// removed, so the result may be shorter than the segment. Shaping keeps the
// length of its input, padding cells freed by lam-alef ligatures with
// spaces at the end.
//
// dest must hold at least length code units. src is never written. On
// failure the contents of dest are undefined and the error matches
// ErrShapingPipeline.
func ReorderReshapeBidiText(src, dest []uint16, offset, length int) (int, error) {
	const op = ReorderReshape
	view, err := acquire(src, offset, length)
	if err != nil {
		return 0, fail(op, KindAcquisition, err)
	}
	if len(dest) < length {
		return 0, fail(op, KindCapacity, fmt.Errorf("destination of length %d for segment of length %d",
			len(dest), length))
	}
	ws := newWorkspace(2, length)
	defer ws.release()
	para, err := ubidi.OpenSized(length)
	if err != nil {
		return 0, fail(op, KindContextInit, err)
	}
	defer para.Close()
	para.SetReorderingMode(ubidi.ReorderInverseLikeDirect)
	if err = para.SetPara(view, ubidi.DefaultRTL); err != nil {
		return 0, fail(op, KindAnalysis, err)
	}
	visual := ws.buffer(0)
	written, err := para.WriteReordered(visual, ubidi.DoMirroring|ubidi.RemoveBidiControls)
	if err != nil {
		return 0, fail(op, KindReversal, err)
	}
	shaped := ws.buffer(1)
	outputSize, err := ushape.ShapeArabic(visual[:written], shaped, shapeOptions)
	if err != nil {
		return 0, fail(op, KindShaping, err)
	}
	copy(dest, shaped[:outputSize])
	tracer().Debugf("%s: %d code units at %d, paragraph level %d, %d written",
		op, length, offset, para.ParaLevel(), outputSize)
	return outputSize, nil
}

// ReshapeArabicText shapes the Arabic letters of the segment
// src[offset:offset+length] without any bidi analysis. The result is
// written to dest starting at index 0 and its length is returned.
//
// The segment is reversed with mirroring and without bidi controls, shaped
// as visual left-to-right text, and reversed once more without mirroring.
// The letters thus keep their order while mirrored characters stay mirrored.
// Shaping keeps the length of its input, padding cells freed by lam-alef
// ligatures with spaces.
//
// dest must hold at least length code units. src is never written. On
// failure the contents of dest are undefined and the error matches
// ErrShapingPipeline.
func ReshapeArabicText(src, dest []uint16, offset, length int) (int, error) {
	const op = Reshape
	view, err := acquire(src, offset, length)
	if err != nil {
		return 0, fail(op, KindAcquisition, err)
	}
	if len(dest) < length {
		return 0, fail(op, KindCapacity, fmt.Errorf("destination of length %d for segment of length %d",
			len(dest), length))
	}
	ws := newWorkspace(3, length)
	defer ws.release()
	reversed := ws.buffer(0)
	n, err := ubidi.WriteReverse(view, reversed, ubidi.DoMirroring|ubidi.RemoveBidiControls)
	if err != nil {
		return 0, fail(op, KindReversal, err)
	}
	shaped := ws.buffer(1)
	if n, err = ushape.ShapeArabic(reversed[:n], shaped, shapeOptions); err != nil {
		return 0, fail(op, KindShaping, err)
	}
	output := ws.buffer(2)
	outputSize, err := ubidi.WriteReverse(shaped[:n], output, ubidi.RemoveBidiControls)
	if err != nil {
		return 0, fail(op, KindReversal, err)
	}
	copy(dest, output[:outputSize])
	tracer().Debugf("%s: %d code units at %d, %d written", op, length, offset, outputSize)
	return outputSize, nil
}
