package socketcan

import (
	"errors"

	"github.com/aldas/go-n2k"
	"golang.org/x/sys/unix"
)

// Device adapts a Connection to n2k.Receiver/n2k.Transmitter: a single,
// non-blocking Receive/Transmit call per invocation, matching the Bus's
// cooperative polling model rather than the blocking, context-aware loop a
// higher-level device reader would use.
type Device struct {
	conn *Connection

	// ifName is the SocketCAN interface name, e.g. can0.
	ifName string
}

// NewDevice prepares a Device for ifName; call Initialize before use.
func NewDevice(ifName string) *Device {
	return &Device{ifName: ifName}
}

// Initialize opens and binds the underlying CAN socket.
func (d *Device) Initialize() error {
	conn, err := NewConnection(d.ifName)
	if err != nil {
		return err
	}
	d.conn = conn
	return unix.SetNonblock(d.conn.socketFD, true) // EWOULDBLOCK immediately if nothing pending
}

// Close releases the underlying socket.
func (d *Device) Close() error {
	return d.conn.Close()
}

// Receive implements n2k.Receiver.
func (d *Device) Receive() (n2k.CanFrame, error) {
	frame, err := d.conn.ReadFrame()
	if err != nil {
		if errors.Is(err, errReadTimeout) {
			return n2k.CanFrame{}, n2k.ErrWouldBlock
		}
		return n2k.CanFrame{}, err
	}
	return frame, nil
}

// Transmit implements n2k.Transmitter. SocketCAN has no concept of a
// single-slot mailbox that can displace a pending lower priority frame
// (the kernel queues writes), so Transmit never returns a displaced frame.
func (d *Device) Transmit(frame n2k.CanFrame) (*n2k.CanFrame, error) {
	if err := d.conn.WriteFrame(frame); err != nil {
		if errors.Is(err, errWriteTimeout) {
			return nil, n2k.ErrWouldBlock
		}
		return nil, err
	}
	return nil, nil
}
