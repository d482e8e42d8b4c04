package n2k

import "fmt"

// BusErrorKind enumerates the ways Bus.Receive or Bus.Send can fail.
type BusErrorKind uint8

const (
	BusErrorNoExtendedId BusErrorKind = iota
	BusErrorNoData
	BusErrorInvalidId
	BusErrorOutOfFastPacketMemory
	BusErrorFastPacket
	BusErrorPgn
	BusErrorCan
)

func (k BusErrorKind) String() string {
	switch k {
	case BusErrorNoExtendedId:
		return "frame did not use an extended (29 bit) identifier"
	case BusErrorNoData:
		return "frame carried no data"
	case BusErrorInvalidId:
		return "invalid identifier"
	case BusErrorOutOfFastPacketMemory:
		return "fast packet reassembly cache is full"
	case BusErrorFastPacket:
		return "fast packet reassembly error"
	case BusErrorPgn:
		return "pgn registry error"
	case BusErrorCan:
		return "can transport error"
	default:
		return "unknown bus error"
	}
}

// BusError wraps the underlying cause (if any) of a Bus failure with a
// Kind that callers can switch on without needing errors.As for every
// possible concrete error type.
type BusError struct {
	Kind BusErrorKind
	Err  error
}

func (e *BusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("n2k: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("n2k: %s", e.Kind)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

func newBusError(kind BusErrorKind, err error) *BusError {
	return &BusError{Kind: kind, Err: err}
}
