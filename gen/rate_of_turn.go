package gen

import "github.com/aldas/go-n2k/bitfield"

// RateOfTurn is PGN 127251, Rate of Turn.
type RateOfTurn struct {
	raw bitfield.Bits
}

// Pgn returns the PGN number RateOfTurn was generated for.
func (r *RateOfTurn) Pgn() uint32 { return 127251 }

func newRateOfTurn(data []byte) (*RateOfTurn, error) {
	if len(data) < 8 {
		return nil, &PayloadSizeError{Pgn: 127251, Expected: 8, Actual: len(data)}
	}
	raw := make(bitfield.Bits, 8)
	copy(raw, data[:8])
	return &RateOfTurn{raw: raw}, nil
}

// SidRaw returns the raw bit-exact value of this field.
func (r *RateOfTurn) SidRaw() uint8 {
	v, _ := r.raw.Uint(0, 8)
	return uint8(v)
}

// Sid returns the interpreted value of this field.
func (r *RateOfTurn) Sid() uint8 {
	return r.SidRaw()
}

// RateRaw returns the raw bit-exact value of this field.
func (r *RateOfTurn) RateRaw() int32 {
	v, _ := r.raw.Int(8, 32)
	return int32(v)
}

// Rate returns the interpreted value of this field, in radians per second.
func (r *RateOfTurn) Rate() float32 {
	return float32(r.RateRaw()) * 3.125e-05
}
