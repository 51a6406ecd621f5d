package kernel

import "sync/atomic"

// Sequence hands out fresh identities for one collection.
// It is safe for concurrent use and never returns the same ID twice.
type Sequence struct {
	last atomic.Uint64
}

// NewSequence returns a sequence whose first ID is 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next unused ID.
func (s *Sequence) Next() ID {
	return ID{value: s.last.Add(1)}
}
