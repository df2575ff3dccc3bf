package trigger

import "sync/atomic"

// Sequence hands out the process-wide sequential index attached to every
// fired trigger. It is injected rather than global so tests can run
// isolated instances; reset only by explicit call.
type Sequence struct {
	n atomic.Uint64
}

// NewSequence creates a counter starting at zero
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next index, starting at 0
func (s *Sequence) Next() uint64 {
	return s.n.Add(1) - 1
}

// Reset rewinds the counter to zero
func (s *Sequence) Reset() {
	s.n.Store(0)
}
