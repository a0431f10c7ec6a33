// Package netid64 implements a deterministic 64-bit identifier packed as
// [KIND:8][NODE:16][COUNTER:40], most significant bits first.
//
// The packed value is the only state; kind, node and counter are always
// derived by shifting and masking. Because KIND sits in the most significant
// bits, numeric ordering of the packed value orders identifiers first by
// kind, then by node, then by counter.
//
// The binary and accessor paths never allocate; only the textual conversions
// need a string buffer.
package netid64

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Bit widths of the three packed fields, most significant first.
const (
	KindBits    = 8
	NodeBits    = 16
	CounterBits = 40
)

// Maximum value each field can carry.
const (
	MaxKind    = 1<<KindBits - 1
	MaxNode    = 1<<NodeBits - 1
	MaxCounter = 1<<CounterBits - 1
)

const (
	nodeShift = CounterBits
	kindShift = CounterBits + NodeBits
)

// Sentinel errors, matched with errors.Is.
var (
	// ErrFieldRange reports a kind, node or counter value that does not fit
	// its declared bit width.
	ErrFieldRange = errors.New("netid64: field out of range")
	// ErrMalformedText reports input that matches neither accepted textual
	// grammar.
	ErrMalformedText = errors.New("netid64: malformed text")
	// ErrMalformedBytes reports a binary form that is not exactly 8 bytes.
	ErrMalformedBytes = errors.New("netid64: malformed bytes")
)

// NetID64 is a 64-bit identifier with the [KIND:8][NODE:16][COUNTER:40]
// layout. It is an immutable value type: operations return new identifiers,
// never mutate in place.
type NetID64 uint64

// Nil is the zero identifier.
const Nil NetID64 = 0

// Make packs the three fields into an identifier. kind and node are
// width-constrained by their types; counter is logically 40 bits wide and
// values above MaxCounter are rejected with ErrFieldRange, never truncated.
func Make(kind uint8, node uint16, counter uint64) (NetID64, error) {
	if counter > MaxCounter {
		return Nil, fmt.Errorf("%w: counter %d exceeds %d bits", ErrFieldRange, counter, CounterBits)
	}
	return NetID64(uint64(kind)<<kindShift | uint64(node)<<nodeShift | counter), nil
}

// MustMake is like Make but panics when counter is out of range. Intended
// for constants and tests where the inputs are known to fit.
func MustMake(kind uint8, node uint16, counter uint64) NetID64 {
	id, err := Make(kind, node, counter)
	if err != nil {
		panic(err)
	}
	return id
}

// FromUint64 wraps a raw packed value. Every 64-bit pattern is accepted,
// including ones Make would never produce; the accessors make no assumption
// about how the value was constructed.
func FromUint64(value uint64) NetID64 {
	return NetID64(value)
}

// Uint64Value returns the raw packed value.
func (id NetID64) Uint64Value() uint64 {
	return uint64(id)
}

// GetKind returns the 8-bit kind tag.
func (id NetID64) GetKind() uint8 {
	return uint8(id >> kindShift)
}

// GetNode returns the 16-bit node tag.
func (id NetID64) GetNode() uint16 {
	return uint16(id >> nodeShift)
}

// GetCounter returns the 40-bit counter.
func (id NetID64) GetCounter() uint64 {
	return uint64(id) & MaxCounter
}

// IsNil reports whether the identifier is the zero value.
func (id NetID64) IsNil() bool {
	return id == Nil
}

// ToBytes returns the 8-byte big-endian wire form.
func (id NetID64) ToBytes() [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(id))
	return b
}

// FromBytes decodes the 8-byte big-endian wire form. Any length other than
// exactly 8 is rejected with ErrMalformedBytes. The full 64-bit space is
// accepted; decoding is not limited to identifiers Make could produce.
func FromBytes(b []byte) (NetID64, error) {
	if len(b) != 8 {
		return Nil, fmt.Errorf("%w: got %d bytes, want 8", ErrMalformedBytes, len(b))
	}
	return NetID64(binary.BigEndian.Uint64(b)), nil
}

// Compare returns -1, 0 or 1 ordering a against b by packed value. The
// layout makes this order by kind, then node, then counter.
func Compare(a, b NetID64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
