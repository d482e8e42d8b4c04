package gen

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
