package n2k

// Product is the plain (non bit-packed) set of fields carried by PGN 126996
// Product Information: the NMEA2000 version the device implements, its
// product code, human-readable model/software/version/serial strings, and
// certification level / load equivalency numbers.
type Product struct {
	n2k           uint16
	code          uint16
	model         string
	software      string
	version       string
	serial        string
	certification uint8
	load          uint8
}

// NewProduct builds a Product from its component fields. No validation is
// performed here; the generated PGN 126996 decoder is responsible for
// extracting well-formed values from the wire payload.
func NewProduct(
	n2kVersion uint16,
	code uint16,
	model string,
	software string,
	version string,
	serial string,
	certification uint8,
	load uint8,
) Product {
	return Product{
		n2k:           n2kVersion,
		code:          code,
		model:         model,
		software:      software,
		version:       version,
		serial:        serial,
		certification: certification,
		load:          load,
	}
}

// N2kVersion returns the NMEA2000 version implemented by the device.
func (p Product) N2kVersion() uint16 {
	return p.n2k
}

// Code returns the manufacturer's product code.
func (p Product) Code() uint16 {
	return p.code
}

// Model returns the model ID string.
func (p Product) Model() string {
	return p.model
}

// Software returns the software version string.
func (p Product) Software() string {
	return p.software
}

// Version returns the model version string.
func (p Product) Version() string {
	return p.version
}

// Serial returns the model serial code string.
func (p Product) Serial() string {
	return p.serial
}

// Certification returns the NMEA2000 certification level.
func (p Product) Certification() uint8 {
	return p.certification
}

// Load returns the load equivalency number.
func (p Product) Load() uint8 {
	return p.load
}
