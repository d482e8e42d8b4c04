// Package socketcan binds the N2K Bus to a Linux SocketCAN interface
// (e.g. can0, vcan0) using raw AF_CAN sockets.
package socketcan

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"

	"github.com/aldas/go-n2k"
	"golang.org/x/sys/unix"
)

const (
	canRaw = 1

	// canIDMask masks off the EFF/RTR/ERR flag bits (29-31), leaving the
	// 29 bit extended identifier.
	canIDMask = uint32(0b111) << 29
	// canIDERRFlag: bit 29, error message frame.
	canIDERRFlag = uint32(1 << 29)
	// canIDRTRFlag: bit 30, remote transmission request frame.
	canIDRTRFlag = uint32(1 << 30)
	// canIDEFFFlag: bit 31, extended (29 bit) identifier in use.
	canIDEFFFlag = uint32(1 << 31)
)

var errReadTimeout = errors.New("socketcan: read timeout")
var errWriteTimeout = errors.New("socketcan: write timeout")

// Connection is a bound, raw AF_CAN socket.
type Connection struct {
	socketFD int
}

// NewConnection opens and binds a raw CAN socket on the named interface.
func NewConnection(ifName string) (*Connection, error) {
	ifi, err := net.InterfaceByName(ifName)
	if err != nil {
		return nil, fmt.Errorf("socketcan: bad interface name: %w", err)
	}

	fd, err := unix.Socket(unix.AF_CAN, unix.SOCK_RAW, canRaw)
	if err != nil {
		return nil, fmt.Errorf("socketcan: could not create CAN socket: %w", err)
	}

	addr := &unix.SockaddrCAN{Ifindex: ifi.Index}
	if err = unix.Bind(fd, addr); err != nil {
		return nil, fmt.Errorf("socketcan: could not bind CAN socket: %w", err)
	}

	return &Connection{socketFD: fd}, nil
}

func isContinuableSocketErr(err error) bool {
	return err == syscall.EWOULDBLOCK || err == syscall.EINTR
}

// SetReadTimeout bounds how long ReadFrame can block; ReadFrame returns
// errReadTimeout once it elapses. A zero timeout disables the bound, so
// ReadFrame then blocks until a frame arrives.
func (c *Connection) SetReadTimeout(timeout time.Duration) error {
	return c.setSocketTimeout(unix.SO_RCVTIMEO, timeout)
}

// SetSendTimeout bounds how long WriteFrame can block.
func (c *Connection) SetSendTimeout(timeout time.Duration) error {
	return c.setSocketTimeout(unix.SO_SNDTIMEO, timeout)
}

func (c *Connection) setSocketTimeout(opt int, timeout time.Duration) error {
	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	return unix.SetsockoptTimeval(c.socketFD, unix.SOL_SOCKET, opt, &tv)
}

// Close releases the underlying socket.
func (c *Connection) Close() error {
	return unix.Close(c.socketFD)
}

// WriteFrame sends one CAN frame in the SocketCAN wire layout:
// https://github.com/linux-can/can-utils/blob/master/include/linux/can.h
func (c *Connection) WriteFrame(frame n2k.CanFrame) error {
	raw := make([]byte, 16)

	canID := frame.Id().Value() | canIDEFFFlag
	binary.LittleEndian.PutUint32(raw[0:4], canID) // FIXME: big-endian arches (mips64, ppc64) need big-endian here

	data := frame.Data()
	raw[4] = byte(len(data))
	copy(raw[8:], data)

	_, err := unix.Write(c.socketFD, raw)
	if isContinuableSocketErr(err) {
		return errWriteTimeout
	}
	return err
}

// ReadFrame reads one CAN frame, honoring the read timeout set by
// SetReadTimeout.
func (c *Connection) ReadFrame() (n2k.CanFrame, error) {
	raw := make([]byte, 16)
	_, err := unix.Read(c.socketFD, raw)
	if err != nil {
		if isContinuableSocketErr(err) {
			return n2k.CanFrame{}, errReadTimeout
		}
		return n2k.CanFrame{}, err
	}

	canID := binary.LittleEndian.Uint32(raw[0:4])
	if canID&canIDRTRFlag != 0 {
		return n2k.CanFrame{}, errors.New("socketcan: read a remote transmission request frame")
	}
	if canID&canIDERRFlag != 0 {
		return n2k.CanFrame{}, errors.New("socketcan: read an error message frame")
	}
	if canID&canIDEFFFlag == 0 {
		return n2k.CanFrame{}, n2k.ErrNotExtendedFrame
	}

	id, err := n2k.ParseId(canID &^ canIDMask)
	if err != nil {
		return n2k.CanFrame{}, fmt.Errorf("socketcan: %w", err)
	}

	length := raw[4]
	return n2k.NewCanFrame(id, raw[8:8+length]), nil
}
