package gen

import (
	"bytes"

	"github.com/aldas/go-n2k/bitfield"
)

// ProductInformation is PGN 126996, Product Information.
type ProductInformation struct {
	raw bitfield.Bits
}

// Pgn returns the PGN number ProductInformation was generated for.
func (p *ProductInformation) Pgn() uint32 { return 126996 }

func newProductInformation(data []byte) (*ProductInformation, error) {
	if len(data) < 134 {
		return nil, &PayloadSizeError{Pgn: 126996, Expected: 134, Actual: len(data)}
	}
	raw := make(bitfield.Bits, 134)
	copy(raw, data[:134])
	return &ProductInformation{raw: raw}, nil
}

// Nmea2000VersionRaw returns the raw bit-exact value of this field.
func (p *ProductInformation) Nmea2000VersionRaw() uint16 {
	v, _ := p.raw.Uint(0, 16)
	return uint16(v)
}

// Nmea2000Version returns the interpreted value of this field.
func (p *ProductInformation) Nmea2000Version() uint16 {
	return p.Nmea2000VersionRaw()
}

// ProductCodeRaw returns the raw bit-exact value of this field.
func (p *ProductInformation) ProductCodeRaw() uint16 {
	v, _ := p.raw.Uint(16, 16)
	return uint16(v)
}

// ProductCode returns the interpreted value of this field.
func (p *ProductInformation) ProductCode() uint16 {
	return p.ProductCodeRaw()
}

// ModelIdRaw returns the raw bit-exact value of this field.
func (p *ProductInformation) ModelIdRaw() []byte {
	v, _ := p.raw.Slice(32, 256)
	return v
}

// ModelId returns the interpreted value of this field, with NMEA2000's
// trailing pad bytes trimmed.
func (p *ProductInformation) ModelId() string {
	return string(bytes.TrimRight(p.ModelIdRaw(), "@ \x00\xff"))
}

// SoftwareVersionCodeRaw returns the raw bit-exact value of this field.
func (p *ProductInformation) SoftwareVersionCodeRaw() []byte {
	v, _ := p.raw.Slice(288, 256)
	return v
}

// SoftwareVersionCode returns the interpreted value of this field, with
// NMEA2000's trailing pad bytes trimmed.
func (p *ProductInformation) SoftwareVersionCode() string {
	return string(bytes.TrimRight(p.SoftwareVersionCodeRaw(), "@ \x00\xff"))
}

// ModelVersionRaw returns the raw bit-exact value of this field.
func (p *ProductInformation) ModelVersionRaw() []byte {
	v, _ := p.raw.Slice(544, 256)
	return v
}

// ModelVersion returns the interpreted value of this field, with
// NMEA2000's trailing pad bytes trimmed.
func (p *ProductInformation) ModelVersion() string {
	return string(bytes.TrimRight(p.ModelVersionRaw(), "@ \x00\xff"))
}

// ModelSerialCodeRaw returns the raw bit-exact value of this field.
func (p *ProductInformation) ModelSerialCodeRaw() []byte {
	v, _ := p.raw.Slice(800, 256)
	return v
}

// ModelSerialCode returns the interpreted value of this field, with
// NMEA2000's trailing pad bytes trimmed.
func (p *ProductInformation) ModelSerialCode() string {
	return string(bytes.TrimRight(p.ModelSerialCodeRaw(), "@ \x00\xff"))
}

// CertificationLevelRaw returns the raw bit-exact value of this field.
func (p *ProductInformation) CertificationLevelRaw() uint8 {
	v, _ := p.raw.Uint(1056, 8)
	return uint8(v)
}

// CertificationLevel returns the interpreted value of this field.
func (p *ProductInformation) CertificationLevel() uint8 {
	return p.CertificationLevelRaw()
}

// LoadEquivalencyRaw returns the raw bit-exact value of this field.
func (p *ProductInformation) LoadEquivalencyRaw() uint8 {
	v, _ := p.raw.Uint(1064, 8)
	return uint8(v)
}

// LoadEquivalency returns the interpreted value of this field.
func (p *ProductInformation) LoadEquivalency() uint8 {
	return p.LoadEquivalencyRaw()
}
