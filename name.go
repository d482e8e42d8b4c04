package n2k

// Name is the bit-packed 64 bit ISO 11783 NAME that identifies a device on
// the bus: arbitrary-address-capable flag, industry group, vehicle system
// instance/system, function (and its instance), ECU instance, manufacturer
// code and a 21 bit identity number.
type Name struct {
	value uint64
}

// NewName packs a Name's fields into their documented bit positions.
func NewName(
	arbitraryAddressCapable bool,
	industryGroup uint8,
	vehicleSystemInstance uint8,
	vehicleSystem uint8,
	function uint8,
	functionInstance uint8,
	ecuInstance uint8,
	manufacturerCode uint16,
	identityNumber uint32,
) Name {
	var value uint64

	if arbitraryAddressCapable {
		value |= 0x8000000000000000
	}
	value |= uint64(industryGroup&0x07) << 60
	value |= uint64(vehicleSystemInstance&0x0f) << 56
	value |= uint64(vehicleSystem&0x7f) << 49
	// bit 48 is reserved
	value |= uint64(function) << 40
	value |= uint64(functionInstance&0x1f) << 35
	value |= uint64(ecuInstance&0x07) << 32
	value |= uint64(manufacturerCode&0x07ff) << 21
	value |= uint64(identityNumber & 0x1fffff)

	return Name{value: value}
}

// ParseName wraps a raw 64 bit NAME value, as received in PGN 60928
// (ISO Address Claim).
func ParseName(value uint64) Name {
	return Name{value: value}
}

// ArbitraryAddressCapable reports whether the device can resolve address
// claim conflicts by selecting a new source address on its own.
func (n Name) ArbitraryAddressCapable() bool {
	return n.value&0x8000000000000000 > 0
}

// IndustryGroup returns the 3 bit industry group code.
func (n Name) IndustryGroup() uint8 {
	return uint8((n.value >> 60) & 0x07)
}

// VehicleSystemInstance returns the 4 bit vehicle system instance.
func (n Name) VehicleSystemInstance() uint8 {
	return uint8((n.value >> 56) & 0x0f)
}

// VehicleSystem returns the 7 bit vehicle system code.
func (n Name) VehicleSystem() uint8 {
	return uint8((n.value >> 49) & 0x7f)
}

// Function returns the 8 bit device function code.
func (n Name) Function() uint8 {
	return uint8((n.value >> 40) & 0xff)
}

// FunctionInstance returns the 5 bit function instance.
func (n Name) FunctionInstance() uint8 {
	return uint8((n.value >> 35) & 0x1f)
}

// EcuInstance returns the 3 bit ECU instance.
func (n Name) EcuInstance() uint8 {
	return uint8((n.value >> 32) & 0x07)
}

// ManufacturerCode returns the 11 bit NMEA-assigned manufacturer code.
func (n Name) ManufacturerCode() uint16 {
	return uint16((n.value >> 21) & 0x07ff)
}

// IdentityNumber returns the 21 bit manufacturer-assigned identity number.
func (n Name) IdentityNumber() uint32 {
	return uint32(n.value & 0x1fffff)
}

// Value returns the raw packed 64 bit NAME.
func (n Name) Value() uint64 {
	return n.value
}
