package n2k

import "errors"

// ErrWouldBlock is returned by a Receiver or Transmitter when no frame is
// currently available (or the transmit queue is full) and the caller
// should retry later rather than block. Bus.Receive treats it as "nothing
// to report this poll", not an error condition.
var ErrWouldBlock = errors.New("n2k: operation would block")

// ErrNotExtendedFrame is returned by a Receiver when it read a classic
// (11 bit, standard) CAN identifier frame instead of the 29 bit extended
// identifier frames NMEA2000 exclusively uses. Bus.Receive reports this as
// BusErrorNoExtendedId rather than treating it as a generic transport
// failure.
var ErrNotExtendedFrame = errors.New("n2k: frame did not use an extended identifier")

// Receiver is the non-blocking read half of a CAN interface. Implementations
// (socketcan.Device, actisense.NGT1, or a test double) must return
// ErrWouldBlock rather than blocking when no frame is ready.
type Receiver interface {
	Receive() (CanFrame, error)
}

// Transmitter is the non-blocking write half of a CAN interface. Transmit
// may return a displaced frame: some CAN controllers keep a single pending
// transmit slot, and submitting a higher priority frame evicts whatever
// lower priority frame was waiting there. The displaced frame (if any) is
// returned so the caller can resubmit it, matching how real mailbox-based
// CAN peripherals behave.
type Transmitter interface {
	Transmit(frame CanFrame) (displaced *CanFrame, err error)
}

// ReceiverTransmitter is satisfied by a full duplex CAN interface.
type ReceiverTransmitter interface {
	Receiver
	Transmitter
}
