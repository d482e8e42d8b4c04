package n2k

// CanFrame is a single CAN data frame: an extended identifier plus up to 8
// bytes of payload. NMEA2000 never uses remote frames or base (11 bit)
// identifiers, so CanFrame only models what the stack actually needs.
type CanFrame struct {
	id   Id
	dlc  int
	data [8]byte
}

// NewCanFrame builds a data frame, truncating data to 8 bytes if longer
// (callers that need more than 8 bytes must use Fast Packet or ISO
// transport-protocol segmentation, see Bus.Send).
func NewCanFrame(id Id, data []byte) CanFrame {
	frame := CanFrame{id: id}
	n := copy(frame.data[:], data)
	frame.dlc = n
	return frame
}

// Id returns the frame's extended identifier.
func (f CanFrame) Id() Id {
	return f.id
}

// Data returns the frame payload, 0 to 8 bytes.
func (f CanFrame) Data() []byte {
	return f.data[:f.dlc]
}
