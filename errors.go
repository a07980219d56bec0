package bidishape

import (
	"errors"
	"fmt"
)

// ErrShapingPipeline is the single failure signal of the pipeline. Every
// error returned by an operation matches it with errors.Is.
var ErrShapingPipeline = errors.New("bidishape: text preparation failed")

// ErrorKind tells which stage of an operation failed.
type ErrorKind int

const (
	// KindAcquisition flags a source segment outside of the source buffer.
	KindAcquisition ErrorKind = iota
	// KindContextInit flags a bidi context which could not be created.
	KindContextInit
	// KindAnalysis flags a failing bidi paragraph analysis.
	KindAnalysis
	// KindReversal flags a failing reordering write or buffer reversal.
	KindReversal
	// KindShaping flags a failing Arabic shaping call.
	KindShaping
	// KindCapacity flags a destination buffer shorter than the segment.
	KindCapacity
	// KindOperation flags a request for an operation which does not exist.
	KindOperation
)

func (k ErrorKind) String() string {
	switch k {
	case KindAcquisition:
		return "acquisition"
	case KindContextInit:
		return "context initialization"
	case KindAnalysis:
		return "analysis"
	case KindReversal:
		return "reversal"
	case KindShaping:
		return "shaping"
	case KindCapacity:
		return "capacity"
	case KindOperation:
		return "operation"
	default:
		return "unknown"
	}
}

// PipelineError is returned by the operations of a pipeline. Err is the
// error of the failing stage, often wrapping a status code of package ubidi
// or ushape.
type PipelineError struct {
	Op   Operation
	Kind ErrorKind
	Err  error
}

func (e *PipelineError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("bidishape: %s: %s failure", e.Op, e.Kind)
	}
	return fmt.Sprintf("bidishape: %s: %s failure: %v", e.Op, e.Kind, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Is lets every pipeline error match ErrShapingPipeline.
func (e *PipelineError) Is(target error) bool {
	return target == ErrShapingPipeline
}

func fail(op Operation, kind ErrorKind, err error) error {
	tracer().Errorf("%s: %s failure: %v", op, kind, err)
	return &PipelineError{Op: op, Kind: kind, Err: err}
}
