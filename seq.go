package netid64

import (
	"fmt"
	"sync"
)

// Sequence hands out identifiers with a monotonically increasing counter
// for a fixed (kind, node) pair. It is an in-process convenience only:
// callers that need uniqueness across processes or restarts must persist
// the last counter themselves and resume with SequenceFrom.
type Sequence struct {
	mu   sync.Mutex
	kind uint8
	node uint16
	next uint64
}

// NewSequence returns a Sequence whose first identifier carries counter 0.
func NewSequence(kind uint8, node uint16) *Sequence {
	return &Sequence{kind: kind, node: node}
}

// SequenceFrom returns a Sequence whose first identifier carries the given
// counter. The counter must fit in 40 bits.
func SequenceFrom(kind uint8, node uint16, counter uint64) (*Sequence, error) {
	if counter > MaxCounter {
		return nil, fmt.Errorf("%w: counter %d exceeds %d bits", ErrFieldRange, counter, CounterBits)
	}
	return &Sequence{kind: kind, node: node, next: counter}, nil
}

// Next returns the next identifier. Once the 40-bit counter space is
// exhausted every subsequent call fails with ErrFieldRange; the counter
// never wraps. Safe for concurrent use.
func (s *Sequence) Next() (NetID64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next > MaxCounter {
		return Nil, fmt.Errorf("%w: counter space exhausted for %d:%d", ErrFieldRange, s.kind, s.node)
	}
	id := NetID64(uint64(s.kind)<<kindShift | uint64(s.node)<<nodeShift | s.next)
	s.next++
	return id, nil
}
