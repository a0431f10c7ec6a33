package netid64

// SignedNetID64 is a utility for converting NetID64 identifiers to and from
// int64. This is particularly useful when storing identifiers in database
// columns that use a signed 64-bit integer type, such as PostgreSQL's
// `BIGINT` and SQLite's `INTEGER`. The conversion method used
// (`value XOR 2^63`) ensures that the natural sort order of the identifiers
// is preserved, so the kind/node/counter precedence survives indexed range
// queries.
var SignedNetID64 = signedNetID64{}

type signedNetID64 struct{}

// signBit is strictly uint64 because calculations always need to be performed
// in the unsigned domain to avoid triggering overflow compiler warnings.
const signBit uint64 = 1 << 63

// FromID returns the signed int representation of the `id`,
// while perfectly preserving sorting properties.
func (signedNetID64) FromID(id NetID64) int64 {
	return int64(id.Uint64Value() ^ signBit)
}

// ToID returns the identifier encoded by `signedIntID`.
func (signedNetID64) ToID(signedIntID int64) NetID64 {
	unsignedInt64 := uint64(signedIntID) ^ signBit
	return FromUint64(unsignedInt64)
}

// KindRange returns `start` and `end` signed int values covering every
// identifier of one kind. The returned values can be used directly in a SQL
// `BETWEEN` clause on a signed integer column.
func (signedNetID64) KindRange(kind uint8) (int64, int64) {
	unsignedStart := uint64(kind) << kindShift
	unsignedEnd := unsignedStart | (1<<kindShift - 1)
	return int64(unsignedStart ^ signBit), int64(unsignedEnd ^ signBit)
}

// NodeRange returns `start` and `end` signed int values covering one
// (kind, node) partition, BETWEEN-friendly like KindRange.
func (signedNetID64) NodeRange(kind uint8, node uint16) (int64, int64) {
	unsignedStart := uint64(kind)<<kindShift | uint64(node)<<nodeShift
	unsignedEnd := unsignedStart | MaxCounter
	return int64(unsignedStart ^ signBit), int64(unsignedEnd ^ signBit)
}

// GetKind extracts the kind tag from an identifier represented as a signed
// integer, without converting the whole value back.
func (signedNetID64) GetKind(signedIntID int64) uint8 {
	unsignedValue := uint64(signedIntID) ^ signBit
	return uint8(unsignedValue >> kindShift)
}
