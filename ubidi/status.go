package ubidi

// Status is the failure code of a bidi operation. Status values implement
// the error interface and are usually returned wrapped with additional
// context; test for them with errors.Is.
type Status int

const (
	// IllegalArgument flags an out-of-range argument, e.g. a negative size or
	// an invalid paragraph level.
	IllegalArgument Status = iota + 1
	// MemoryAllocation flags input exceeding the capacity of a sized context.
	MemoryAllocation
	// IndexOutOfBounds flags a position outside of the analysed text.
	IndexOutOfBounds
	// InvalidState flags a call on a closed context or before SetPara.
	InvalidState
	// BufferOverflow flags a destination buffer too small for the output.
	BufferOverflow
)

// String returns the symbolic name of a status code.
func (s Status) String() string {
	switch s {
	case IllegalArgument:
		return "ILLEGAL_ARGUMENT"
	case MemoryAllocation:
		return "MEMORY_ALLOCATION"
	case IndexOutOfBounds:
		return "INDEX_OUT_OF_BOUNDS"
	case InvalidState:
		return "INVALID_STATE"
	case BufferOverflow:
		return "BUFFER_OVERFLOW"
	default:
		return "UNKNOWN"
	}
}

// Error implements the error interface.
func (s Status) Error() string {
	return "ubidi: " + s.String()
}
