package n2k

import "fmt"

// GlobalAddress is the broadcast destination address (0xFF), used for PGNs
// that have no specific destination (PDU2 format) and for ISO transport
// protocol broadcast announce messages.
const GlobalAddress uint8 = 0xff

// Priority is the 3 bit CAN arbitration priority carried in an Id, 0 being
// highest priority and 7 lowest.
type Priority uint8

// Valid priority values, mirroring the NMEA2000 arbitration field.
const (
	Priority0 Priority = 0
	Priority1 Priority = 1
	Priority2 Priority = 2
	Priority3 Priority = 3
	Priority4 Priority = 4
	Priority5 Priority = 5
	Priority6 Priority = 6
	Priority7 Priority = 7
)

// IdError is returned for malformed or unsendable 29 bit identifiers.
type IdError struct {
	Kind IdErrorKind
}

func (e *IdError) Error() string {
	return e.Kind.String()
}

// IdErrorKind enumerates the ways building or parsing an Id can fail.
type IdErrorKind uint8

const (
	// IdErrorCanNotSendToDestination is returned by NewId when a PDU2 (non
	// addressable) PGN is given a destination other than GlobalAddress.
	IdErrorCanNotSendToDestination IdErrorKind = iota
	// IdErrorInvalidId is returned when a raw uint32 has bits set outside
	// the 29 bit extended identifier range.
	IdErrorInvalidId
	// IdErrorInvalidPriority is returned when a priority value above 7 is
	// supplied.
	IdErrorInvalidPriority
)

func (k IdErrorKind) String() string {
	switch k {
	case IdErrorCanNotSendToDestination:
		return "id: PGN does not support addressing a specific destination"
	case IdErrorInvalidId:
		return "id: value does not fit in a 29 bit extended identifier"
	case IdErrorInvalidPriority:
		return "id: priority must be between 0 and 7"
	default:
		return "id: unknown error"
	}
}

// Id is a decoded 29 bit extended CAN identifier as used by NMEA2000:
// 3 bit priority, 1 reserved/data-page bit, 8 bit PDU format, 8 bit
// PDU specific (destination or PGN extension), 8 bit source address.
type Id struct {
	value uint32
}

// NewId builds an Id from its logical fields. For PDU1 (addressable) PGNs,
// pgn's low byte (the PDU specific field) must be zero and dst is encoded
// into that byte. For PDU2 (broadcast only) PGNs dst must be GlobalAddress.
func NewId(priority Priority, pgn uint32, src uint8, dst uint8) (Id, error) {
	if priority > Priority7 {
		return Id{}, &IdError{Kind: IdErrorInvalidPriority}
	}

	var value uint32
	value |= uint32(src)

	pf := (pgn >> 8) & 0xff
	if pf <= 239 {
		// PDU1: the PS byte carries the destination address.
		value |= uint32(dst) << 8
		value |= pgn << 8
	} else {
		if dst != GlobalAddress {
			return Id{}, &IdError{Kind: IdErrorCanNotSendToDestination}
		}
		// PDU2: PGN already carries its own PS byte, no destination.
		value |= pgn << 8
	}
	value |= uint32(priority) << 26

	return Id{value: value}, nil
}

// ParseId validates and wraps a raw 29 bit extended CAN identifier.
func ParseId(value uint32) (Id, error) {
	if value&0xe0000000 > 0 {
		return Id{}, &IdError{Kind: IdErrorInvalidId}
	}
	return Id{value: value}, nil
}

// Priority returns the CAN arbitration priority encoded in the identifier.
func (id Id) Priority() Priority {
	return Priority((id.value >> 26) & 0x7)
}

// Pgn returns the 18 bit Parameter Group Number encoded in the identifier.
func (id Id) Pgn() uint32 {
	pf := uint8(id.value >> 16)
	dp := uint8((id.value >> 24) & 1)
	if pf <= 239 {
		// PDU1: destination lives in PS, PGN does not include it.
		return uint32(dp)<<16 | uint32(pf)<<8
	}
	// PDU2: PGN is extended, PS is the low byte of the PGN itself.
	ps := uint8(id.value >> 8)
	return uint32(dp)<<16 | uint32(pf)<<8 | uint32(ps)
}

// Source returns the 8 bit source address of the sending node.
func (id Id) Source() uint8 {
	return uint8(id.value)
}

// Destination returns the destination address, or GlobalAddress for
// PDU2-format (broadcast only) PGNs.
func (id Id) Destination() uint8 {
	pf := uint8(id.value >> 16)
	if pf <= 239 {
		return uint8(id.value >> 8)
	}
	return GlobalAddress
}

// Value returns the raw 29 bit extended identifier.
func (id Id) Value() uint32 {
	return id.value
}

// String implements fmt.Stringer for debugging and log output.
func (id Id) String() string {
	return fmt.Sprintf("Id{priority=%d pgn=%d source=%d destination=%d}",
		id.Priority(), id.Pgn(), id.Source(), id.Destination())
}
