package netid64

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The identifier serializes as one opaque value everywhere: the canonical
// decimal string for text and JSON, the 8-byte big-endian form for binary
// and database blobs. It is never exposed as a three-field object.

// MarshalText implements encoding.TextMarshaler using the canonical decimal
// triple.
func (id NetID64) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Both textual grammars
// accepted by Parse are valid input.
func (id *NetID64) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the 8-byte
// big-endian wire form.
func (id NetID64) MarshalBinary() ([]byte, error) {
	b := id.ToBytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *NetID64) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON encodes the identifier as its canonical decimal string. A
// JSON number cannot carry a full 64-bit value without precision loss, so
// the string form is used.
func (id NetID64) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON decodes a JSON string in either textual grammar.
func (id *NetID64) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedText, err)
	}
	return id.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer, storing the 8-byte big-endian form.
// For signed integer columns use SignedNetID64 instead.
func (id NetID64) Value() (driver.Value, error) {
	b := id.ToBytes()
	return b[:], nil
}

// Scan implements sql.Scanner. It accepts an 8-byte blob, a string in
// either textual grammar, or an int64 written through SignedNetID64.
func (id *NetID64) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		parsed, err := FromBytes(v)
		if err != nil {
			return err
		}
		*id = parsed
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*id = parsed
	case int64:
		*id = SignedNetID64.ToID(v)
	case nil:
		*id = Nil
	default:
		return fmt.Errorf("netid64: cannot scan %T into NetID64", src)
	}
	return nil
}

// NullNetID64 represents an identifier that may be absent, mirroring the
// database/sql null types. It scans SQL NULL and marshals JSON null.
type NullNetID64 struct {
	ID    NetID64
	Valid bool
}

// Value implements driver.Valuer.
func (n NullNetID64) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.ID.Value()
}

// Scan implements sql.Scanner.
func (n *NullNetID64) Scan(src any) error {
	if src == nil {
		n.ID, n.Valid = Nil, false
		return nil
	}
	if err := n.ID.Scan(src); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n NullNetID64) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.ID.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NullNetID64) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.ID, n.Valid = Nil, false
		return nil
	}
	if err := n.ID.UnmarshalJSON(data); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
