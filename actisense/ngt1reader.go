// Package actisense drives an Actisense NGT-1 USB-to-NMEA2000 gateway over
// a serial port, framing/deframing its DLE/STX/ETX byte-stuffed protocol.
package actisense

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"

	"github.com/aldas/go-n2k"
	"github.com/tarm/serial"
)

// ngt1MessageBufSize comfortably holds the largest NGT-1 binary message:
// command + length + priority + pgn(3) + dst + src + timestamp(4) +
// data-length + up to 223 bytes of reassembled Fast Packet data + checksum.
const ngt1MessageBufSize = 256

const (
	// STX is the start-of-packet byte for an Actisense framed message.
	STX = 0x02
	// ETX is the end-of-packet byte for an Actisense framed message.
	ETX = 0x03
	// DLE is the escape marker sent before a literal STX/ETX byte, and
	// doubled (DLE DLE) when a literal DLE byte appears in the payload.
	DLE = 0x10

	// cmdN2KMessageReceived identifies an incoming NMEA2000 data message.
	cmdN2KMessageReceived = 0x93
	// cmdN2KMessageSend identifies an outgoing NMEA2000 data message.
	cmdN2KMessageSend = 0x94
	// cmdNGTMessageSend identifies an NGT-1 specific (BEMCMD) message.
	cmdNGTMessageSend = 0xA1
)

// OpenSerial opens the NGT-1's USB serial port with a short read timeout so
// reads return promptly with whatever bytes are currently available,
// matching the non-blocking Receiver contract.
func OpenSerial(name string, baud int) (*serial.Port, error) {
	return serial.OpenPort(&serial.Config{
		Name:        name,
		Baud:        baud,
		ReadTimeout: 10 * time.Millisecond,
	})
}

type parserState uint8

const (
	waitingStartOfMessage parserState = iota
	readingMessageData
	processingEscapeSequence
)

// NGT1 drives an Actisense NGT-1 gateway. It implements n2k.Receiver and
// n2k.Transmitter: each Receive call makes one non-blocking read of
// whatever bytes are available on the wire and feeds them through the
// DLE/STX/ETX parser, returning n2k.ErrWouldBlock until a full frame has
// been deframed.
type NGT1 struct {
	device io.ReadWriter

	state        parserState
	message      [ngt1MessageBufSize]byte
	messageLen   int
	previousByte byte
	readBuf      [64]byte
}

// NewNGT1 wraps an already-open serial connection (see OpenSerial).
func NewNGT1(device io.ReadWriter) *NGT1 {
	return &NGT1{device: device}
}

// Initialize instructs the NGT-1 to clear its PGN transmit filter so it
// forwards every PGN it sees on the bus. Reverse engineered from Actisense
// NMEAreader, as documented in the Actisense Comms SDK manual.
func (d *NGT1) Initialize() error {
	clearPGNFilter := []byte{
		cmdNGTMessageSend, // NGT specific message
		3,                 // length
		0x11,              // operating mode
		0x02,              // 'receive all'
		0x00,
	}
	return d.write(clearPGNFilter)
}

// Receive implements n2k.Receiver. It performs one non-blocking read and
// advances the frame parser; n2k.ErrWouldBlock is returned whenever no
// complete frame is available yet.
func (d *NGT1) Receive() (n2k.CanFrame, error) {
	n, err := d.device.Read(d.readBuf[:])
	if err != nil && !errors.Is(err, os.ErrDeadlineExceeded) && !errors.Is(err, io.EOF) {
		return n2k.CanFrame{}, err
	}

	for i := 0; i < n; i++ {
		if frame, ok, ferr := d.consumeByte(d.readBuf[i]); ferr != nil {
			return n2k.CanFrame{}, ferr
		} else if ok {
			return frame, nil
		}
	}
	return n2k.CanFrame{}, n2k.ErrWouldBlock
}

func (d *NGT1) consumeByte(current byte) (n2k.CanFrame, bool, error) {
	previous := d.previousByte
	d.previousByte = current

	switch d.state {
	case waitingStartOfMessage:
		if previous == DLE && current == STX {
			d.state = readingMessageData
			d.messageLen = 0
		}
		return n2k.CanFrame{}, false, nil
	case readingMessageData:
		if current == DLE {
			d.state = processingEscapeSequence
			return n2k.CanFrame{}, false, nil
		}
		d.appendByte(current)
		return n2k.CanFrame{}, false, nil
	case processingEscapeSequence:
		if current == DLE { // doubled DLE: literal DLE byte in payload
			d.state = readingMessageData
			d.appendByte(current)
			return n2k.CanFrame{}, false, nil
		}
		d.state = waitingStartOfMessage
		if current != ETX || d.messageLen == 0 {
			return n2k.CanFrame{}, false, nil
		}
		raw := d.message[:d.messageLen]
		switch raw[0] {
		case cmdN2KMessageReceived, cmdN2KMessageSend:
			frame, err := parseBinaryMessage(raw)
			if err != nil {
				return n2k.CanFrame{}, false, fmt.Errorf("actisense: %w", err)
			}
			return frame, true, nil
		default:
			return n2k.CanFrame{}, false, nil
		}
	default:
		return n2k.CanFrame{}, false, nil
	}
}

func (d *NGT1) appendByte(b byte) {
	if d.messageLen < len(d.message) {
		d.message[d.messageLen] = b
		d.messageLen++
	}
}

// parseBinaryMessage decodes an NGT-1 N2K data message (command byte 0x93
// or 0x94) into a CanFrame. Layout: command(1), length(1), priority(1),
// pgn(3, little endian), destination(1), source(1), timestamp(4, unused),
// data length(1), data(n), checksum(1).
func parseBinaryMessage(raw []byte) (n2k.CanFrame, error) {
	length := len(raw) - 2 // minus command + length bytes
	data := raw[2:]

	const dataOffset = 11
	if length < 11 {
		return n2k.CanFrame{}, errors.New("message too short to be a valid NGT-1 N2K message")
	}
	dataLen := int(data[10])
	if length < dataOffset+dataLen {
		return n2k.CanFrame{}, errors.New("message length does not match declared data length")
	}
	if err := checkCRC(raw); err != nil {
		return n2k.CanFrame{}, err
	}

	pgn := uint32(data[1]) + uint32(data[2])<<8 + uint32(data[3])<<16
	priority := n2k.Priority(data[0])
	destination := data[4]
	source := data[5]

	// PDU2 (broadcast-only) PGNs report destination 0 on some NGT-1
	// firmware revisions even though the PGN itself carries no
	// destination; normalize so NewId's PDU1/PDU2 validation accepts it.
	if pf := (pgn >> 8) & 0xff; pf > 239 {
		destination = n2k.GlobalAddress
	}

	id, err := n2k.NewId(priority, pgn, source, destination)
	if err != nil {
		return n2k.CanFrame{}, err
	}
	return n2k.NewCanFrame(id, data[dataOffset:dataOffset+dataLen]), nil
}

// checkCRC validates that the sum of command + length + payload bytes is
// zero modulo 256.
func checkCRC(data []byte) error {
	if crc(data) != 0 {
		return errors.New("message has invalid crc")
	}
	return nil
}

func crc(data []byte) uint8 {
	sum := uint16(0)
	for _, b := range data {
		v := uint16(b)
		if sum+v > 255 {
			sum = v - (256 - sum)
			continue
		}
		sum += v
	}
	return uint8(sum)
}

// Transmit implements n2k.Transmitter, framing frame as an outgoing NGT-1
// N2K data message. The NGT-1 protocol has no mailbox-displacement
// behavior, so Transmit never returns a displaced frame.
func (d *NGT1) Transmit(frame n2k.CanFrame) (*n2k.CanFrame, error) {
	id := frame.Id()
	data := frame.Data()

	payload := make([]byte, 0, 11+len(data))
	payload = append(payload,
		byte(id.Priority()),
		byte(id.Pgn()),
		byte(id.Pgn()>>8),
		byte(id.Pgn()>>16),
		id.Destination(),
		id.Source(),
		0, 0, 0, 0, // timestamp, unused on send
		byte(len(data)),
	)
	payload = append(payload, data...)

	message := append([]byte{cmdN2KMessageSend, byte(len(payload))}, payload...)
	if err := d.write(message); err != nil {
		if errors.Is(err, syscall.EAGAIN) {
			return nil, n2k.ErrWouldBlock
		}
		return nil, err
	}
	return nil, nil
}

func (d *NGT1) write(data []byte) error {
	packet := append([]byte{DLE, STX}, data...)
	crcByte := 0 - crc(data)
	packet = append(packet, crcByte, DLE, ETX)

	_, err := d.device.Write(packet)
	if err != nil {
		return fmt.Errorf("actisense write failure: %w", err)
	}
	return nil
}

// Close closes the underlying serial connection, if it supports it.
func (d *NGT1) Close() error {
	if c, ok := d.device.(io.Closer); ok {
		return c.Close()
	}
	return errors.New("actisense: device does not implement io.Closer")
}
