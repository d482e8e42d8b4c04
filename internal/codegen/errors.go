package codegen

import "errors"

var (
	// ErrUnknownFieldType is returned when a field's Type attribute doesn't
	// match any case the generator knows how to translate to a Go type.
	ErrUnknownFieldType = errors.New("codegen: unknown field type")
	// ErrMultiplePgnDefinitions is returned when a requested PGN number
	// appears more than once in the catalog. canboat's schema allows this
	// for genuine field-driven variants, but this generator's scope treats
	// one PGN number as one struct and refuses to guess a merge.
	ErrMultiplePgnDefinitions = errors.New("codegen: multiple definitions for requested pgn")
	// ErrPgnNotFound is returned when a requested PGN number isn't present
	// in the catalog at all.
	ErrPgnNotFound = errors.New("codegen: pgn not found in catalog")
)
