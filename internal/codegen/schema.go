// Package codegen reads a canboat-style PGN catalog and generates Go source
// for a concrete n2k.PgnRegistry implementation: one struct per selected
// PGN, bit-accurate getters built on package bitfield, and a Pgn sum type
// tying them together.
package codegen

import "encoding/xml"

// PgnsFile is the root element of a canboat PGNs XML catalog.
type PgnsFile struct {
	XMLName     xml.Name `xml:"PGNDefinitions"`
	Comment     string   `xml:"Comment"`
	CreatorCode string   `xml:"CreatorCode"`
	License     string   `xml:"License"`
	PGNs        Pgns     `xml:"PGNs"`
}

// Pgns wraps the list of PGNInfo entries.
type Pgns struct {
	PgnInfos []PgnInfo `xml:"PGNInfo"`
}

// PgnInfo describes a single PGN definition: its wire length, packet type
// (Single/Fast/ISO) and field layout.
type PgnInfo struct {
	Pgn            uint32 `xml:"PGN"`
	Id             string `xml:"Id"`
	Description    string `xml:"Description"`
	Complete       bool   `xml:"Complete"`
	Length         int    `xml:"Length"`
	Type           string `xml:"Type"`
	RepeatingField uint32 `xml:"RepeatingFields"`
	Fields         Fields `xml:"Fields"`
}

// IsFastPacket reports whether this PGN is reassembled from Fast Packet
// fragments rather than decoded from a single CAN frame.
func (p PgnInfo) IsFastPacket() bool {
	return p.Type == "Fast"
}

// Fields wraps the ordered list of fields making up a PGN's payload.
type Fields struct {
	Fields []Field `xml:"Field"`
}

// Field describes one bit-packed value within a PGN's payload.
type Field struct {
	Order     string     `xml:"Order"`
	Id        string     `xml:"Id"`
	Name      string     `xml:"Name"`
	Signed    bool       `xml:"Signed"`
	BitLength int        `xml:"BitLength"`
	BitOffset int        `xml:"BitOffset"`
	N2kType   string     `xml:"Type"`
	Unit      string     `xml:"Units"`
	Resolution float64   `xml:"Resolution"`
	EnumValues EnumValues `xml:"EnumValues"`
}

// IsReserved reports whether this is a reserved padding field that the
// generator should skip a getter for.
func (f Field) IsReserved() bool {
	return f.Id == "reserved"
}

// IsEnum reports whether the field carries a lookup table of named values.
func (f Field) IsEnum() bool {
	return len(f.EnumValues.EnumValues) > 0
}

// IsFloat reports whether the field's resolution makes it a scaled
// floating point value rather than a raw integer.
func (f Field) IsFloat() bool {
	return f.Resolution != 0 && f.Resolution != 1
}

// IsString reports whether the field is a fixed length ASCII text field.
func (f Field) IsString() bool {
	return f.N2kType == "ASCII text"
}

// EnumValues wraps the named value pairs of a lookup table field.
type EnumValues struct {
	EnumValues []EnumPair `xml:"EnumPair"`
}

// EnumPair is one name/value entry of a lookup table.
type EnumPair struct {
	Value string `xml:"Value,attr"`
	Name  string `xml:"Name,attr"`
}
