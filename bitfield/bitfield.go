// Package bitfield provides the Lsb0 bit-slice accessors that every
// generated PGN decoder is built on. A field in a canboat PGN definition is
// addressed by a bit offset and a bit length counted from the start of the
// frame payload, least-significant-bit first within each byte.
package bitfield

import (
	"encoding/binary"
	"errors"
)

// ErrOutOfRange is returned when the requested bit range extends past the
// end of the backing data.
var ErrOutOfRange = errors.New("bitfield: bit range out of data bounds")

// Bits is a read-only Lsb0 bit view over a byte slice, as used for N2K PGN
// payloads (single frames or reassembled fast-packet/TP data).
type Bits []byte

// Uint loads an unsigned value of bitLength bits starting at bitOffset.
// bitLength must be between 1 and 64. Bits are loaded little-endian across
// byte boundaries, matching the canboat field layout.
func (b Bits) Uint(bitOffset, bitLength int) (uint64, error) {
	if bitLength <= 0 || bitLength > 64 {
		return 0, errors.New("bitfield: bit length must be between 1 and 64")
	}
	startByte := bitOffset / 8
	endByte := ((bitOffset + bitLength + 7) / 8) - 1
	if endByte >= len(b) || startByte < 0 {
		return 0, ErrOutOfRange
	}

	raw := make([]byte, 8)
	copy(raw, b[startByte:endByte+1])
	result := binary.LittleEndian.Uint64(raw)

	result >>= uint(bitOffset % 8)
	if endByte-startByte == 8 {
		// The field straddles a ninth byte; pull in its low bits.
		result |= uint64(b[endByte]) << (64 - uint(bitOffset%8))
	}
	mask := (^uint64(0)) >> (64 - bitLength)
	return result & mask, nil
}

// Int loads a two's-complement signed value of bitLength bits starting at
// bitOffset, sign-extending from the top bit of the field.
func (b Bits) Int(bitOffset, bitLength int) (int64, error) {
	result, err := b.Uint(bitOffset, bitLength)
	if err != nil {
		return 0, err
	}
	signBit := uint64(1) << (bitLength - 1)
	if result&signBit != 0 {
		negativeMask := ^((^uint64(0)) >> (64 - bitLength))
		result |= negativeMask
	}
	return int64(result), nil
}

// Bool loads a single-bit boolean field.
func (b Bits) Bool(bitOffset int) (bool, error) {
	v, err := b.Uint(bitOffset, 1)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// Slice copies out bitLength bits starting at bitOffset as a byte slice,
// used for fields wider than 64 bits (binary blobs, variable-length ASCII)
// where no single numeric interpretation applies. bitLength of zero means
// "take all remaining bytes from bitOffset to the end of b".
func (b Bits) Slice(bitOffset, bitLength int) ([]byte, error) {
	startByte := bitOffset / 8
	if startByte < 0 || startByte > len(b) {
		return nil, ErrOutOfRange
	}
	if bitLength == 0 {
		return append([]byte(nil), b[startByte:]...), nil
	}

	endByte := (bitOffset + bitLength - 1) / 8
	if endByte >= len(b) {
		return nil, ErrOutOfRange
	}

	length := (bitLength + 7) / 8
	result := make([]byte, length)

	startBit := bitOffset % 8
	if startByte == endByte {
		result[0] = b[startByte] >> startBit
		if leftover := bitLength % 8; leftover != 0 {
			result[0] &= 0xFF >> (8 - leftover)
		}
		return result, nil
	}
	if startBit == 0 {
		copy(result, b[startByte:endByte+1])
		if leftover := bitLength % 8; leftover != 0 {
			result[len(result)-1] &= 0xFF >> (8 - leftover)
		}
		return result, nil
	}

	result[0] = b[startByte] >> startBit
	for i := 1; i <= length; i++ {
		var current byte
		if idx := startByte + i; idx < len(b) {
			current = b[idx]
		}
		result[i-1] |= current << (8 - startBit)

		if i < length {
			result[i] = current >> startBit
		}
	}
	if leftover := bitLength % 8; leftover != 0 {
		result[len(result)-1] &= 0xFF >> (8 - leftover)
	}
	return result, nil
}
