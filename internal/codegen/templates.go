package codegen

import "text/template"

var messageTemplate = template.Must(template.New("message").Parse(`package {{.Package}}

import (
{{if .Message.HasString}}	"bytes"

{{end}}	"github.com/aldas/go-n2k/bitfield"
)

// {{.Message.StructName}} is PGN {{.Message.Pgn}}, {{.Message.Description}}.
type {{.Message.StructName}} struct {
	raw bitfield.Bits
}

// Pgn returns the PGN number {{.Message.StructName}} was generated for.
func ({{.Message.Receiver}} *{{.Message.StructName}}) Pgn() uint32 { return {{.Message.Pgn}} }

func new{{.Message.StructName}}(data []byte) (*{{.Message.StructName}}, error) {
	if len(data) < {{.Message.ByteLength}} {
		return nil, &PayloadSizeError{Pgn: {{.Message.Pgn}}, Expected: {{.Message.ByteLength}}, Actual: len(data)}
	}
	raw := make(bitfield.Bits, {{.Message.ByteLength}})
	copy(raw, data[:{{.Message.ByteLength}}])
	return &{{.Message.StructName}}{raw: raw}, nil
}
{{range .Message.Enums}}{{$enum := .}}
// {{.TypeName}} is the lookup table for the corresponding field of {{$.Message.StructName}}.
type {{.TypeName}} {{.RawGoType}}

const (
{{range .Values}}	{{.ConstName}} {{$enum.TypeName}} = {{.Value}}
{{end}})
{{end}}
{{range .Message.Fields}}
// {{.RawGetterName}} returns the raw bit-exact value of this field.
func ({{$.Message.Receiver}} *{{$.Message.StructName}}) {{.RawGetterName}}() {{.RawGoType}} {
{{if eq .RawAccessor "Bool"}}	v, _ := {{$.Message.Receiver}}.raw.Bool({{.BitOffset}})
	return v
{{else if eq .RawAccessor "Slice"}}	v, _ := {{$.Message.Receiver}}.raw.Slice({{.BitOffset}}, {{.BitLength}})
	return v
{{else if eq .RawAccessor "Int"}}	v, _ := {{$.Message.Receiver}}.raw.Int({{.BitOffset}}, {{.BitLength}})
	return {{.RawGoType}}(v)
{{else}}	v, _ := {{$.Message.Receiver}}.raw.Uint({{.BitOffset}}, {{.BitLength}})
	return {{.RawGoType}}(v)
{{end}}}
{{if .HasInterpreted}}
// {{.GetterName}} returns the interpreted value of this field.
func ({{$.Message.Receiver}} *{{$.Message.StructName}}) {{.GetterName}}() {{.InterpretedType}} {
{{if .IsEnum}}	return {{.EnumTypeName}}({{$.Message.Receiver}}.{{.RawGetterName}}())
{{else if .IsString}}	return string(bytes.TrimRight({{$.Message.Receiver}}.{{.RawGetterName}}(), "@ \x00\xff"))
{{else if .IsFloat}}	return {{.InterpretedType}}({{$.Message.Receiver}}.{{.RawGetterName}}()) * {{printf "%v" .Resolution}}
{{else}}	return {{$.Message.Receiver}}.{{.RawGetterName}}()
{{end}}}
{{end}}
{{end}}
`))

var errorsTemplate = template.Must(template.New("errors").Parse(`package {{.Package}}

import "fmt"

// PayloadSizeError is returned when a message's payload is shorter than
// the PGN's declared byte length.
type PayloadSizeError struct {
	Pgn      uint32
	Expected int
	Actual   int
}

func (e *PayloadSizeError) Error() string {
	return fmt.Sprintf("gen: pgn %d: expected at least %d bytes, got %d", e.Pgn, e.Expected, e.Actual)
}

// UnknownPgnError is returned by Registry.BuildMessage for a PGN number
// this package was not generated for.
type UnknownPgnError struct {
	Pgn uint32
}

func (e *UnknownPgnError) Error() string {
	return fmt.Sprintf("gen: unknown pgn %d", e.Pgn)
}
`))

var catalogTemplate = template.Must(template.New("catalog").Parse(`package {{.Package}}

// Pgns names every PGN number present in the catalog this package was
// generated from, independent of which ones have a generated message type.
type Pgns uint32

const (
{{range .Entries}}	Pgns{{.ConstName}} Pgns = {{.Pgn}}
{{end}})

// PgnsFromNumber looks up the catalog entry for pgn. ok is false when pgn
// does not appear anywhere in the catalog.
func PgnsFromNumber(pgn uint32) (Pgns, bool) {
	switch pgn {
{{range .Entries}}	case {{.Pgn}}:
		return Pgns{{.ConstName}}, true
{{end}}	default:
		return 0, false
	}
}
`))

var registryTemplate = template.Must(template.New("registry").Parse(`package {{.Package}}

import "github.com/aldas/go-n2k"

// Pgn is the sum type of every message this package was generated for.
type Pgn interface {
	Pgn() uint32
}

// Registry implements n2k.PgnRegistry[Pgn] over the PGNs this package was
// generated for.
type Registry struct{}

// IsFastPacket reports whether pgn is reassembled from Fast Packet
// fragments before being handed to BuildMessage.
func (Registry) IsFastPacket(pgn uint32) bool {
	switch pgn {
{{range .Messages}}{{if .IsFastPacket}}	case {{.Pgn}}:
		return true
{{end}}{{end}}	default:
		return false
	}
}

// BuildMessage decodes data, already reassembled if pgn is a Fast Packet
// PGN, into the matching generated message type.
func (Registry) BuildMessage(pgn uint32, data []byte) (Pgn, error) {
	switch pgn {
{{range .Messages}}	case {{.Pgn}}:
		return new{{.StructName}}(data)
{{end}}	default:
		return nil, &UnknownPgnError{Pgn: pgn}
	}
}

var _ n2k.PgnRegistry[Pgn] = Registry{}
`))
