package ushape

// Status is the failure code of a shaping operation. Status values implement
// the error interface; test for them with errors.Is.
type Status int

const (
	// IllegalArgument flags an invalid option word.
	IllegalArgument Status = iota + 1
	// BufferOverflow flags a destination buffer too small for the output.
	BufferOverflow
	// NoSpaceAvailable flags a fixed-length unshaping without enough spaces
	// to expand lam-alef ligatures into.
	NoSpaceAvailable
)

func (s Status) String() string {
	switch s {
	case IllegalArgument:
		return "ILLEGAL_ARGUMENT"
	case BufferOverflow:
		return "BUFFER_OVERFLOW"
	case NoSpaceAvailable:
		return "NO_SPACE_AVAILABLE"
	default:
		return "UNKNOWN"
	}
}

func (s Status) Error() string {
	return "ushape: " + s.String()
}
