package codegen

import (
	"strings"
	"unicode"

	"github.com/stoewer/go-strcase"
)

// typeName converts a canboat Id (e.g. "rudder", "productInformation") into
// an exported Go type name, prefixing with X when the Id starts with a
// digit or collides with a reserved word — mirroring n2k-codegen's
// type_name(). Characters other than letters and digits (spaces,
// parentheses, ...) act as word separators and are dropped.
func typeName(id string) string {
	id = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, id)
	camel := strcase.UpperCamelCase(id)
	if isKeyword(id) || !startsWithLetter(id) {
		return "X" + camel
	}
	return camel
}

// fieldName converts a canboat field Id into an unexported Go field/getter
// name, mirroring n2k-codegen's field_name().
func fieldName(id string) string {
	snake := strcase.LowerCamelCase(id)
	if isKeyword(id) || !startsWithLetter(id) {
		return "x" + strcase.UpperCamelCase(id)
	}
	return snake
}

func startsWithLetter(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return unicode.IsLetter(r) && r <= unicode.MaxASCII
}
