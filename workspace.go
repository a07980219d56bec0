package bidishape

import "fmt"

// acquire returns a read view of the segment [offset, offset+length) of src.
// The view has its capacity clipped, so appending to it never writes into
// the source buffer.
func acquire(src []uint16, offset, length int) ([]uint16, error) {
	if offset < 0 || length < 0 || offset > len(src) || length > len(src)-offset {
		return nil, fmt.Errorf("segment [%d,%d+%d) outside of source of length %d",
			offset, offset, length, len(src))
	}
	end := offset + length
	return src[offset:end:end], nil
}

// workspace holds the working buffers of a single operation call. Buffers
// are not shared between calls; release clears and drops them.
type workspace struct {
	bufs [][]uint16
}

func newWorkspace(count, length int) *workspace {
	ws := &workspace{bufs: make([][]uint16, count)}
	for i := range ws.bufs {
		ws.bufs[i] = make([]uint16, length)
	}
	return ws
}

func (ws *workspace) buffer(i int) []uint16 {
	return ws.bufs[i]
}

func (ws *workspace) release() {
	for i := range ws.bufs {
		clear(ws.bufs[i])
		ws.bufs[i] = nil
	}
	ws.bufs = nil
}
