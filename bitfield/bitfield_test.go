package bitfield_test

import (
	"testing"

	"github.com/aldas/go-n2k/bitfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBits_Uint(t *testing.T) {
	var testCases = []struct {
		name      string
		data      []byte
		bitOffset int
		bitLength int
		expect    uint64
	}{
		{
			name:      "byte aligned, single byte",
			data:      []byte{0xAB},
			bitOffset: 0,
			bitLength: 8,
			expect:    0xAB,
		},
		{
			name:      "nibble at start of byte",
			data:      []byte{0xAB},
			bitOffset: 0,
			bitLength: 4,
			expect:    0x0B,
		},
		{
			name:      "nibble at end of byte",
			data:      []byte{0xAB},
			bitOffset: 4,
			bitLength: 4,
			expect:    0x0A,
		},
		{
			name:      "spans two bytes, unaligned",
			data:      []byte{0xFF, 0x01},
			bitOffset: 4,
			bitLength: 8,
			expect:    0x1F,
		},
		{
			name:      "16 bit little endian",
			data:      []byte{0x34, 0x12},
			bitOffset: 0,
			bitLength: 16,
			expect:    0x1234,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bitfield.Bits(tc.data).Uint(tc.bitOffset, tc.bitLength)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestBits_Uint_outOfRange(t *testing.T) {
	_, err := bitfield.Bits([]byte{0x01}).Uint(0, 16)
	assert.ErrorIs(t, err, bitfield.ErrOutOfRange)
}

func TestBits_Int(t *testing.T) {
	var testCases = []struct {
		name      string
		data      []byte
		bitOffset int
		bitLength int
		expect    int64
	}{
		{
			name:      "positive value",
			data:      []byte{0x05},
			bitOffset: 0,
			bitLength: 8,
			expect:    5,
		},
		{
			name:      "negative value, 8 bit",
			data:      []byte{0xFB}, // -5 as int8
			bitOffset: 0,
			bitLength: 8,
			expect:    -5,
		},
		{
			name:      "negative value, 4 bit field",
			data:      []byte{0x0B}, // 1011 -> -5 in 4 bit two's complement
			bitOffset: 0,
			bitLength: 4,
			expect:    -5,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bitfield.Bits(tc.data).Int(tc.bitOffset, tc.bitLength)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestBits_Bool(t *testing.T) {
	data := bitfield.Bits([]byte{0b00000010})
	got, err := data.Bool(1)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = data.Bool(0)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestBits_Slice(t *testing.T) {
	var testCases = []struct {
		name      string
		data      []byte
		bitOffset int
		bitLength int
		expect    []byte
	}{
		{
			name:      "byte aligned",
			data:      []byte{0x01, 0x02, 0x03},
			bitOffset: 8,
			bitLength: 16,
			expect:    []byte{0x02, 0x03},
		},
		{
			name:      "remainder of data, bitLength zero",
			data:      []byte{0x01, 0x02, 0x03},
			bitOffset: 8,
			bitLength: 0,
			expect:    []byte{0x02, 0x03},
		},
		{
			name:      "single byte subfield",
			data:      []byte{0xAB},
			bitOffset: 0,
			bitLength: 4,
			expect:    []byte{0x0B},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bitfield.Bits(tc.data).Slice(tc.bitOffset, tc.bitLength)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, got)
		})
	}
}
