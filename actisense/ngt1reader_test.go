package actisense

import (
	"io"
	"testing"

	"github.com/aldas/go-n2k"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSerial is an in-memory io.ReadWriter standing in for the NGT-1's
// serial port: Read hands back one chunk per call, Write records what
// was sent.
type fakeSerial struct {
	chunks  [][]byte
	reads   int
	written [][]byte
}

func (f *fakeSerial) Read(p []byte) (int, error) {
	if f.reads >= len(f.chunks) {
		return 0, io.EOF
	}
	chunk := f.chunks[f.reads]
	f.reads++
	return copy(p, chunk), nil
}

func (f *fakeSerial) Write(p []byte) (int, error) {
	cp := make([]byte, len(p))
	copy(cp, p)
	f.written = append(f.written, cp)
	return len(p), nil
}

// buildN2KMessage frames an NGT-1 binary N2K message (command 0x93) for
// priority/pgn/dst/src/data, computing its checksum, without DLE/STX/ETX
// byte stuffing.
func buildN2KMessage(priority n2k.Priority, pgn uint32, dst, src uint8, data []byte) []byte {
	payload := []byte{
		byte(priority),
		byte(pgn), byte(pgn >> 8), byte(pgn >> 16),
		dst, src,
		0, 0, 0, 0, // timestamp
		byte(len(data)),
	}
	payload = append(payload, data...)
	raw := append([]byte{cmdN2KMessageReceived, byte(len(payload))}, payload...)
	raw = append(raw, 0-crc(raw))
	return raw
}

// frameWithDLE wraps raw in DLE/STX ... DLE/ETX byte stuffing, doubling any
// literal DLE byte found in raw.
func frameWithDLE(raw []byte) []byte {
	out := []byte{DLE, STX}
	for _, b := range raw {
		if b == DLE {
			out = append(out, DLE)
		}
		out = append(out, b)
	}
	out = append(out, DLE, ETX)
	return out
}

func TestNGT1_Receive_singleFrame(t *testing.T) {
	raw := buildN2KMessage(n2k.Priority2, 130306, n2k.GlobalAddress, 7, []byte{0x00, 10, 1, 2, 3, 4, 5, 6})
	wire := frameWithDLE(raw)

	device := &fakeSerial{chunks: [][]byte{wire}}
	ngt1 := NewNGT1(device)

	frame, err := ngt1.Receive()
	require.NoError(t, err)
	assert.Equal(t, uint32(130306), frame.Id().Pgn())
	assert.Equal(t, uint8(7), frame.Id().Source())
	assert.Equal(t, []byte{0x00, 10, 1, 2, 3, 4, 5, 6}, frame.Data())
}

func TestNGT1_Receive_splitAcrossReads(t *testing.T) {
	raw := buildN2KMessage(n2k.Priority0, 59904, 255, 0, []byte{1, 2, 3})
	wire := frameWithDLE(raw)
	mid := len(wire) / 2

	device := &fakeSerial{chunks: [][]byte{wire[:mid], wire[mid:]}}
	ngt1 := NewNGT1(device)

	_, err := ngt1.Receive()
	assert.ErrorIs(t, err, n2k.ErrWouldBlock, "a partial frame must not complete yet")

	frame, err := ngt1.Receive()
	require.NoError(t, err)
	assert.Equal(t, uint32(59904), frame.Id().Pgn())
}

func TestNGT1_Receive_wouldBlock(t *testing.T) {
	device := &fakeSerial{chunks: [][]byte{{}}}
	ngt1 := NewNGT1(device)

	_, err := ngt1.Receive()
	assert.ErrorIs(t, err, n2k.ErrWouldBlock)
}

func TestNGT1_Receive_badChecksum(t *testing.T) {
	raw := buildN2KMessage(n2k.Priority0, 59904, 255, 0, []byte{1, 2, 3})
	raw[len(raw)-1] ^= 0xFF // corrupt checksum
	wire := frameWithDLE(raw)

	device := &fakeSerial{chunks: [][]byte{wire}}
	ngt1 := NewNGT1(device)

	_, err := ngt1.Receive()
	assert.Error(t, err)
}

func TestNGT1_Transmit(t *testing.T) {
	device := &fakeSerial{}
	ngt1 := NewNGT1(device)

	id, err := n2k.NewId(n2k.Priority3, 126720, 0, 7)
	require.NoError(t, err)
	frame := n2k.NewCanFrame(id, []byte{1, 2, 3})

	displaced, err := ngt1.Transmit(frame)
	require.NoError(t, err)
	assert.Nil(t, displaced)
	require.Len(t, device.written, 1)

	sent := device.written[0]
	assert.Equal(t, byte(DLE), sent[0])
	assert.Equal(t, byte(STX), sent[1])
	assert.Equal(t, byte(cmdN2KMessageSend), sent[2])
}

func TestCRC(t *testing.T) {
	raw := buildN2KMessage(n2k.Priority0, 59904, 255, 0, []byte{1, 2, 3})
	require.NoError(t, checkCRC(raw))
	assert.Equal(t, uint8(0), crc(raw))
}

func TestNGT1_Close(t *testing.T) {
	ngt1 := NewNGT1(&fakeSerial{})
	assert.Error(t, ngt1.Close())

	ngt1Closable := NewNGT1(&closableSerial{fakeSerial: &fakeSerial{}})
	assert.NoError(t, ngt1Closable.Close())
}

type closableSerial struct {
	*fakeSerial
}

func (c *closableSerial) Close() error { return nil }
