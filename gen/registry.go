// Package gen holds PGN message types in the form cmd/n2kgen generates
// from a canboat-style PGNs XML catalog (see internal/codegen), committed
// here as a working sample for PGNs 127245 (Rudder), 127251 (Rate of Turn)
// and 126996 (Product Information).
package gen

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
	case 126996:
		return true
	default:
		return false
	}
}

// BuildMessage decodes data, already reassembled if pgn is a Fast Packet
// PGN, into the matching generated message type.
func (Registry) BuildMessage(pgn uint32, data []byte) (Pgn, error) {
	switch pgn {
	case 127245:
		return newRudder(data)
	case 127251:
		return newRateOfTurn(data)
	case 126996:
		return newProductInformation(data)
	default:
		return nil, &UnknownPgnError{Pgn: pgn}
	}
}

var _ n2k.PgnRegistry[Pgn] = Registry{}
