package codegen

import (
	"sort"
	"strconv"
	"strings"

	strcase "github.com/stoewer/go-strcase"
)

type messageModel struct {
	Pgn          uint32
	Description  string
	StructName   string
	Receiver     string
	FileName     string
	ByteLength   int
	IsFastPacket bool
	HasString    bool
	Fields       []fieldModel
	Enums        []enumModel
}

type fieldModel struct {
	RawGetterName   string
	GetterName      string
	RawGoType       string
	RawAccessor     string // "Uint", "Int", "Bool" or "Slice"
	BitOffset       int
	BitLength       int
	HasInterpreted  bool
	InterpretedType string
	IsFloat         bool
	Resolution      float64
	IsEnum          bool
	EnumTypeName    string
	IsString        bool
}

type enumModel struct {
	TypeName  string
	RawGoType string
	Values    []enumValueModel
}

type enumValueModel struct {
	ConstName string
	Name      string
	Value     string
}

// reservedMethodNames are getter names that would collide with a fixed
// method every generated message type carries.
var reservedMethodNames = map[string]bool{
	"Pgn": true,
}

func buildMessageModel(info PgnInfo) (messageModel, error) {
	m := messageModel{
		Pgn:          info.Pgn,
		Description:  info.Description,
		StructName:   typeName(info.Id),
		Receiver:     receiverName(typeName(info.Id)),
		FileName:     strcase.SnakeCase(info.Id) + ".go",
		ByteLength:   info.Length,
		IsFastPacket: info.IsFastPacket(),
	}

	for _, field := range info.Fields.Fields {
		if field.IsReserved() {
			continue
		}

		raw := rawTypeForField(field)
		getterName := typeName(field.Id)
		if reservedMethodNames[getterName] {
			// Dodge a collision with a fixed method of the same name
			// (e.g. a field literally called "pgn" would otherwise shadow
			// the struct's own Pgn() identity method).
			getterName += "Field"
		}
		fm := fieldModel{
			RawGetterName: getterName + "Raw",
			GetterName:    getterName,
			RawGoType:     raw.name,
			BitOffset:     field.BitOffset,
			BitLength:     field.BitLength,
		}
		switch raw.kind {
		case rawKindBool:
			fm.RawAccessor = "Bool"
		case rawKindInt:
			fm.RawAccessor = "Int"
		case rawKindSlice:
			fm.RawAccessor = "Slice"
		default:
			fm.RawAccessor = "Uint"
		}

		if field.IsEnum() {
			enum, err := buildEnumModel(field)
			if err != nil {
				return messageModel{}, err
			}
			m.Enums = append(m.Enums, enum)
			fm.IsEnum = true
			fm.EnumTypeName = enum.TypeName
			fm.HasInterpreted = true
			fm.InterpretedType = enum.TypeName
		} else if field.IsString() {
			fm.IsString = true
			fm.HasInterpreted = true
			fm.InterpretedType = "string"
			m.HasString = true
		} else if interpreted, ok, rawOnly := interpretedType(field); ok {
			fm.HasInterpreted = true
			fm.InterpretedType = interpreted
			fm.IsFloat = field.IsFloat()
			fm.Resolution = field.Resolution
		} else if !rawOnly {
			return messageModel{}, errUnknownFieldType(info.Pgn, field)
		}

		m.Fields = append(m.Fields, fm)
	}

	return m, nil
}

func buildEnumModel(field Field) (enumModel, error) {
	raw := rawUintTypeForBitLength(field.BitLength)
	enum := enumModel{
		TypeName:  lookupTypeName(field),
		RawGoType: raw.name,
	}
	if enum.RawGoType == "bool" {
		enum.RawGoType = "uint8"
	}

	isBinary := true
	for _, pair := range field.EnumValues.EnumValues {
		for _, r := range pair.Value {
			if r != '0' && r != '1' {
				isBinary = false
			}
		}
	}

	for _, pair := range field.EnumValues.EnumValues {
		base := 10
		if isBinary {
			base = 2
		}
		n, err := strconv.ParseUint(pair.Value, base, 64)
		if err != nil {
			return enumModel{}, err
		}
		enum.Values = append(enum.Values, enumValueModel{
			ConstName: enum.TypeName + typeName(pair.Name),
			Name:      pair.Name,
			Value:     strconv.FormatUint(n, 10),
		})
	}
	return enum, nil
}

// catalogEntry names one distinct PGN number found anywhere in the catalog.
type catalogEntry struct {
	ConstName string
	Pgn       uint32
}

// buildCatalogModel collects every distinct PGN number in catalog into a
// sorted, deduplicated list of named constants for the Pgns enum: one entry
// per PGN number, named by joining the type names of every catalog row
// sharing that number (canboat XML often lists the same PGN several times
// across revisions/variants).
func buildCatalogModel(catalog PgnsFile) []catalogEntry {
	namesByPgn := make(map[uint32][]string)
	var order []uint32
	seen := make(map[uint32]bool)
	for _, info := range catalog.PGNs.PgnInfos {
		if !seen[info.Pgn] {
			seen[info.Pgn] = true
			order = append(order, info.Pgn)
		}
		namesByPgn[info.Pgn] = append(namesByPgn[info.Pgn], typeName(info.Id))
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	namesUsed := make(map[string]bool)
	entries := make([]catalogEntry, 0, len(order))
	for _, pgn := range order {
		name := strings.Join(namesByPgn[pgn], "_")
		if namesUsed[name] {
			continue
		}
		namesUsed[name] = true
		entries = append(entries, catalogEntry{ConstName: name, Pgn: pgn})
	}
	return entries
}

// receiverName derives a short method receiver name from a struct's
// exported type name, e.g. Rudder -> r, ProductInformation -> p.
func receiverName(structName string) string {
	lower := strings.ToLower(structName)
	for _, r := range lower {
		return string(r)
	}
	return "m"
}
