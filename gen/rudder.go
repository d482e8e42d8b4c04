package gen

import "github.com/aldas/go-n2k/bitfield"

// Rudder is PGN 127245, Rudder.
type Rudder struct {
	raw bitfield.Bits
}

// Pgn returns the PGN number Rudder was generated for.
func (r *Rudder) Pgn() uint32 { return 127245 }

func newRudder(data []byte) (*Rudder, error) {
	if len(data) < 8 {
		return nil, &PayloadSizeError{Pgn: 127245, Expected: 8, Actual: len(data)}
	}
	raw := make(bitfield.Bits, 8)
	copy(raw, data[:8])
	return &Rudder{raw: raw}, nil
}

// DirectionOrder is the lookup table for the corresponding field of Rudder.
type DirectionOrder uint8

const (
	DirectionOrderNoDirectionOrder DirectionOrder = 0
	DirectionOrderMoveToStarboard  DirectionOrder = 1
	DirectionOrderMoveToPort       DirectionOrder = 2
)

// InstanceRaw returns the raw bit-exact value of this field.
func (r *Rudder) InstanceRaw() uint8 {
	v, _ := r.raw.Uint(0, 8)
	return uint8(v)
}

// Instance returns the interpreted value of this field.
func (r *Rudder) Instance() uint8 {
	return r.InstanceRaw()
}

// DirectionOrderRaw returns the raw bit-exact value of this field.
func (r *Rudder) DirectionOrderRaw() uint8 {
	v, _ := r.raw.Uint(8, 3)
	return uint8(v)
}

// DirectionOrder returns the interpreted value of this field.
func (r *Rudder) DirectionOrder() DirectionOrder {
	return DirectionOrder(r.DirectionOrderRaw())
}

// AngleOrderRaw returns the raw bit-exact value of this field.
func (r *Rudder) AngleOrderRaw() int16 {
	v, _ := r.raw.Int(16, 16)
	return int16(v)
}

// AngleOrder returns the interpreted value of this field, in radians.
func (r *Rudder) AngleOrder() float32 {
	return float32(r.AngleOrderRaw()) * 0.0001
}

// PositionRaw returns the raw bit-exact value of this field.
func (r *Rudder) PositionRaw() int16 {
	v, _ := r.raw.Int(32, 16)
	return int16(v)
}

// Position returns the interpreted value of this field, in radians.
func (r *Rudder) Position() float32 {
	return float32(r.PositionRaw()) * 0.0001
}
