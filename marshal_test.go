package netid64

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextMarshaling_RoundTrip(t *testing.T) {
	id := MustMake(1, 7, 42)

	text, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1:7:42", string(text))

	var back NetID64
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, id, back)

	// Hex grammar is accepted on the way in as well.
	require.NoError(t, back.UnmarshalText([]byte(id.ToHex())))
	assert.Equal(t, id, back)
}

func TestBinaryMarshaling_RoundTrip(t *testing.T) {
	id := FromUint64(0x01AA00F300000000)

	data, err := id.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 8)

	var back NetID64
	require.NoError(t, back.UnmarshalBinary(data))
	assert.Equal(t, id, back)

	err = back.UnmarshalBinary(data[:7])
	assert.ErrorIs(t, err, ErrMalformedBytes)
}

func TestJSONMarshaling(t *testing.T) {
	type record struct {
		ID     NetID64     `json:"id"`
		Parent NullNetID64 `json:"parent"`
	}

	in := record{
		ID:     MustMake(1, 7, 42),
		Parent: NullNetID64{ID: MustMake(1, 7, 41), Valid: true},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1:7:42","parent":"1:7:41"}`, string(data))

	var out record
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestJSONMarshaling_Null(t *testing.T) {
	type record struct {
		Parent NullNetID64 `json:"parent"`
	}

	data, err := json.Marshal(record{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"parent":null}`, string(data))

	var out record
	require.NoError(t, json.Unmarshal([]byte(`{"parent":null}`), &out))
	assert.False(t, out.Parent.Valid)
	assert.True(t, out.Parent.ID.IsNil())
}

func TestJSONMarshaling_RejectsNumbers(t *testing.T) {
	var id NetID64
	err := json.Unmarshal([]byte(`12345`), &id)
	assert.ErrorIs(t, err, ErrMalformedText)
}

func TestScan_Variants(t *testing.T) {
	want := MustMake(1, 7, 42)
	raw := want.ToBytes()

	tests := []struct {
		name string
		src  any
	}{
		{"blob", raw[:]},
		{"decimal string", "1:7:42"},
		{"hex string", want.ToHex()},
		{"signed int64", SignedNetID64.FromID(want)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id NetID64
			require.NoError(t, id.Scan(tt.src))
			assert.Equal(t, want, id)
		})
	}
}

func TestScan_Errors(t *testing.T) {
	var id NetID64

	assert.ErrorIs(t, id.Scan(make([]byte, 7)), ErrMalformedBytes)
	assert.ErrorIs(t, id.Scan("1:7"), ErrMalformedText)
	assert.Error(t, id.Scan(3.14))

	require.NoError(t, id.Scan(nil))
	assert.True(t, id.IsNil())
}

func TestValue_StoresWireForm(t *testing.T) {
	id := MustMake(1, 7, 42)

	v, err := id.Value()
	require.NoError(t, err)

	b, ok := v.([]byte)
	require.True(t, ok, "Value() should produce a byte slice")
	want := id.ToBytes()
	assert.Equal(t, want[:], b)
}

func TestNullNetID64_Scan(t *testing.T) {
	var n NullNetID64

	require.NoError(t, n.Scan(nil))
	assert.False(t, n.Valid)

	raw := MustMake(1, 7, 42).ToBytes()
	require.NoError(t, n.Scan(raw[:]))
	assert.True(t, n.Valid)
	assert.Equal(t, MustMake(1, 7, 42), n.ID)

	v, err := NullNetID64{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
