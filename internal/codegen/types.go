package codegen

import "fmt"

// rawKind is the shape of a field's raw bit-accessor: a fixed width integer
// read via bitfield.Uint/Int, a bool for single bit fields, or a byte slice
// for anything wider than 64 bits or of unbounded length.
type rawKind int

const (
	rawKindUint rawKind = iota
	rawKindInt
	rawKindBool
	rawKindSlice
)

// rawType describes the Go type and accessor kind used for a field's raw
// getter, mirroring decode_unsigned_int_type_for_bit_length /
// decode_signed_int_type_for_bit_length.
type rawType struct {
	kind rawKind
	name string // Go type name: uint8/uint16/.../bool/[]byte
}

func rawUintTypeForBitLength(bitLength int) rawType {
	switch {
	case bitLength == 0 || bitLength > 64:
		return rawType{kind: rawKindSlice, name: "[]byte"}
	case bitLength == 1:
		return rawType{kind: rawKindBool, name: "bool"}
	case bitLength <= 8:
		return rawType{kind: rawKindUint, name: "uint8"}
	case bitLength <= 16:
		return rawType{kind: rawKindUint, name: "uint16"}
	case bitLength <= 32:
		return rawType{kind: rawKindUint, name: "uint32"}
	default:
		return rawType{kind: rawKindUint, name: "uint64"}
	}
}

func rawSignedTypeForBitLength(bitLength int) rawType {
	switch {
	case bitLength == 1:
		return rawType{kind: rawKindBool, name: "bool"}
	case bitLength <= 8:
		return rawType{kind: rawKindInt, name: "int8"}
	case bitLength <= 16:
		return rawType{kind: rawKindInt, name: "int16"}
	case bitLength <= 32:
		return rawType{kind: rawKindInt, name: "int32"}
	default:
		return rawType{kind: rawKindInt, name: "int64"}
	}
}

// rawTypeForField picks the raw accessor type for field, following
// signedness and bit length, matching the original codegen's
// decode_{un,}signed_int_type_for_bit_length pair.
func rawTypeForField(f Field) rawType {
	if f.BitLength == 0 || f.BitLength > 64 {
		return rawType{kind: rawKindSlice, name: "[]byte"}
	}
	if f.Signed {
		return rawSignedTypeForBitLength(f.BitLength)
	}
	return rawUintTypeForBitLength(f.BitLength)
}

// floatTypeForBitLength picks the scaled floating point type used for a
// resolution-bearing field's interpreted getter, matching
// decode_float_type_for_bit_length.
func floatTypeForBitLength(bitLength int) string {
	if bitLength > 32 {
		return "float64"
	}
	return "float32"
}

// lookupTypeName returns the Go type name of the enum generated for a
// lookup table field.
func lookupTypeName(f Field) string {
	return typeName(f.Id)
}

// interpretedType returns the Go type of a field's interpreted (non-raw)
// getter, mirroring Field::to_rust_type. ok is false when no interpreted
// getter is generated; rawOnly then distinguishes why: true means
// f.N2kType is a recognized type that is correctly raw-only by design
// (Date/Time/variable length strings/bitfields), false means f.N2kType
// itself is not a type this generator knows at all, which the caller
// must treat as a hard failure rather than silently falling back to raw.
func interpretedType(f Field) (goType string, ok bool, rawOnly bool) {
	switch f.N2kType {
	case "Binary data":
		return rawTypeForField(f).name, true, false
	case "Lookup table":
		return lookupTypeName(f), true, false
	case "Manufacturer code":
		return "uint16", true, false
	case "ASCII text":
		return "string", true, false
	case "Date", "Time",
		"ASCII or UNICODE string starting with length and control byte",
		"ASCII string starting with length byte",
		"String with start/stop byte",
		"Bitfield":
		return "", false, true
	case "Latitude", "Longitude", "IEEE Float", "Temperature", "Pressure (hires)", "Temperature (hires)":
		return floatTypeForBitLength(f.BitLength), true, false
	case "Decimal encoded number":
		return rawTypeForField(f).name, true, false
	case "":
		if f.IsFloat() {
			return floatTypeForBitLength(f.BitLength), true, false
		}
		return rawTypeForField(f).name, true, false
	case "Integer":
		if f.IsFloat() {
			return "", false, true
		}
		return rawTypeForField(f).name, true, false
	default:
		return "", false, false
	}
}

func errUnknownFieldType(pgn uint32, field Field) error {
	return fmt.Errorf("%w: pgn %d field %q type %q", ErrUnknownFieldType, pgn, field.Id, field.N2kType)
}
