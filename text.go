package netid64

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// String renders the canonical decimal triple "kind:node:counter", e.g.
// "1:7:42". No leading zeros, no padding.
func (id NetID64) String() string {
	return strconv.FormatUint(uint64(id.GetKind()), 10) + ":" +
		strconv.FormatUint(uint64(id.GetNode()), 10) + ":" +
		strconv.FormatUint(id.GetCounter(), 10)
}

// ToHex renders the raw packed value as "0x" followed by exactly 16
// uppercase hex digits, zero-padded to full width.
func (id NetID64) ToHex() string {
	return fmt.Sprintf("0x%016X", uint64(id))
}

// Parse accepts either textual grammar: the decimal triple produced by
// String, or a "0x"/"0X"-prefixed raw value of exactly 16 hex digits
// (digit case does not matter).
//
// Malformed shapes and non-digit characters fail with ErrMalformedText;
// decimal fields that overflow their bit width fail with ErrFieldRange.
// Parse is the exact left inverse of String and of ToHex.
func Parse(s string) (NetID64, error) {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return parseHex(s[2:])
	}
	return parseTriple(s)
}

func parseHex(digits string) (NetID64, error) {
	if len(digits) != 16 {
		return Nil, fmt.Errorf("%w: want exactly 16 hex digits after 0x, got %d", ErrMalformedText, len(digits))
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return Nil, fmt.Errorf("%w: %q is not hexadecimal", ErrMalformedText, digits)
	}
	return NetID64(v), nil
}

func parseTriple(s string) (NetID64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Nil, fmt.Errorf("%w: want 3 colon-separated fields, got %d", ErrMalformedText, len(parts))
	}
	kind, err := parseField(parts[0], "kind", MaxKind)
	if err != nil {
		return Nil, err
	}
	node, err := parseField(parts[1], "node", MaxNode)
	if err != nil {
		return Nil, err
	}
	counter, err := parseField(parts[2], "counter", MaxCounter)
	if err != nil {
		return Nil, err
	}
	return NetID64(kind<<kindShift | node<<nodeShift | counter), nil
}

// parseField parses one decimal field. strconv.ParseUint rejects signs,
// spaces and group separators, so only plain digit runs get through.
func parseField(s, name string, max uint64) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty %s field", ErrMalformedText, name)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s %q exceeds maximum %d", ErrFieldRange, name, s, max)
		}
		return 0, fmt.Errorf("%w: %s %q is not a decimal number", ErrMalformedText, name, s)
	}
	if v > max {
		return 0, fmt.Errorf("%w: %s %d exceeds maximum %d", ErrFieldRange, name, v, max)
	}
	return v, nil
}
