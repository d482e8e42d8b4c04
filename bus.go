package n2k

import "errors"

// Control byte marking an ISO 11783 Broadcast Announce Message.
const isoTpBAMControlByte = 0x40

// PGNs used by ISO 11783 Transport Protocol broadcast (BAM) segmentation.
const (
	pgnIsoTpConnectionManagement uint32 = 0x00ec00 // 60416
	pgnIsoTpDataTransfer         uint32 = 0x00eb00 // 60160
)

// Bus drives the receive and transmit sides of an N2K network over a CAN
// transport, decoding incoming application messages of type M using a
// PgnRegistry[M]. It owns the Fast Packet reassembly state, so one Bus
// must not be shared between goroutines without external locking.
type Bus[M any] struct {
	can     ReceiverTransmitter
	address uint8
	cache   fastPacketTable
	pgns    PgnRegistry[M]
}

// NewBus creates a Bus bound to can (for both receiving and sending) and
// pgns (for deciding which PGNs are fast packets and decoding their
// payloads). address is this node's own source address, used when
// constructing outbound ISO-TP control frames.
func NewBus[M any](can ReceiverTransmitter, pgns PgnRegistry[M], address uint8) *Bus[M] {
	return &Bus[M]{
		can:     can,
		address: address,
		pgns:    pgns,
	}
}

// Receive polls for and processes at most one incoming CAN frame. It
// returns (message, true, nil) once a complete application message has been
// decoded (immediately for single-frame PGNs, or once a Fast Packet
// sequence completes), (zero, false, nil) if the poll produced no frame or
// only partial progress on a multi-frame message, and a non-nil error for
// malformed input or registry failures.
func (b *Bus[M]) Receive() (M, bool, error) {
	var zero M

	frame, err := b.can.Receive()
	if err != nil {
		if errors.Is(err, ErrWouldBlock) {
			return zero, false, nil
		}
		if errors.Is(err, ErrNotExtendedFrame) {
			return zero, false, newBusError(BusErrorNoExtendedId, err)
		}
		return zero, false, newBusError(BusErrorCan, err)
	}

	id := frame.Id()
	data := frame.Data()
	if len(data) == 0 {
		return zero, false, newBusError(BusErrorNoData, nil)
	}

	pgn := id.Pgn()
	if !b.pgns.IsFastPacket(pgn) {
		message, err := b.pgns.BuildMessage(pgn, data)
		if err != nil {
			return zero, false, newBusError(BusErrorPgn, err)
		}
		return message, true, nil
	}

	return b.receiveFastPacketFrame(id, pgn, data)
}

func (b *Bus[M]) receiveFastPacketFrame(id Id, pgn uint32, data []byte) (M, bool, error) {
	var zero M

	// Good explanation of the fast packet bit format:
	// https://forums.ni.com/t5/LabVIEW/How-do-I-read-the-larger-than-8-byte-messages-from-a-NMEA-2000/td-p/3132045?profile.language=en
	sequenceGroup := data[0] & 0xE0
	frameIndex := int(data[0] & 0x1F)

	key := FastPacketIdentifier{Source: id.Source(), Pgn: pgn, SequenceGroup: sequenceGroup}

	if frameIndex == 0 {
		if len(data) < 2 {
			return zero, false, newBusError(BusErrorNoData, nil)
		}
		totalSize := int(data[1])
		cache := newFastPacketCache(totalSize)
		if _, err := cache.extend(0, data[2:]); err != nil {
			b.cache.remove(key)
			return zero, false, newBusError(BusErrorFastPacket, err)
		}
		if err := b.cache.insert(key, cache); err != nil {
			return zero, false, newBusError(BusErrorOutOfFastPacketMemory, err)
		}
		return zero, false, nil
	}

	cache, ok := b.cache.get(key)
	if !ok {
		// Unknown continuation frame: either we missed the first frame or
		// our cache entry was already evicted. Nothing to do but wait for
		// the next first-frame.
		return zero, false, nil
	}

	complete, err := cache.extend(frameIndex, data[1:])
	if err != nil {
		b.cache.remove(key)
		return zero, false, newBusError(BusErrorFastPacket, err)
	}
	if !complete {
		return zero, false, nil
	}

	payload, _ := cache.completeData()
	message, err := b.pgns.BuildMessage(pgn, payload)
	b.cache.remove(key)
	if err != nil {
		return zero, false, newBusError(BusErrorPgn, err)
	}
	return message, true, nil
}

// Send transmits message, splitting it into an ISO 11783 broadcast
// multi-packet (BAM + TP_DT sequence) if its payload is larger than a
// single CAN frame can hold.
func (b *Bus[M]) Send(message Message) error {
	id := message.Id()
	data := message.Data()
	length := len(data)

	if length <= 8 {
		return b.transmit(NewCanFrame(id, data))
	}

	// packets = ceil(length / 7): the naive `length/7 + 1` formula
	// over-counts by one whenever length is an exact multiple of 7.
	packets := (length + 6) / 7

	pgn := id.Pgn()
	priority := id.Priority()
	bamID, err := NewId(priority, pgnIsoTpConnectionManagement, b.address, GlobalAddress)
	if err != nil {
		return newBusError(BusErrorInvalidId, err)
	}
	bamData := [8]byte{
		isoTpBAMControlByte,
		byte(length & 0xff),
		byte((length >> 8) & 0xff),
		byte(packets),
		0xff, // maximum number of packets, unused by BAM
		byte(pgn & 0xff),
		byte((pgn >> 8) & 0xff),
		byte((pgn >> 16) & 0xff),
	}
	if err := b.transmit(NewCanFrame(bamID, bamData[:])); err != nil {
		return err
	}

	dtID, err := NewId(priority, pgnIsoTpDataTransfer, b.address, GlobalAddress)
	if err != nil {
		return newBusError(BusErrorInvalidId, err)
	}

	count := 1
	index := 0
	remaining := length
	for remaining > 0 {
		chunk := remaining
		if chunk > 7 {
			chunk = 7
		}
		remaining -= chunk

		var dtData [8]byte
		for i := range dtData {
			dtData[i] = 0xff
		}
		dtData[0] = byte(count)
		count++
		for i := 0; i < chunk; i++ {
			dtData[i+1] = data[index]
			index++
		}

		if err := b.transmit(NewCanFrame(dtID, dtData[:])); err != nil {
			return err
		}
	}

	return nil
}

// transmit submits frame, resubmitting any frame the transport displaces
// from its single-slot mailbox (see Transmitter), and retrying on
// ErrWouldBlock.
func (b *Bus[M]) transmit(frame CanFrame) error {
	for {
		displaced, err := b.can.Transmit(frame)
		if err == nil {
			if displaced != nil {
				frame = *displaced
				continue
			}
			return nil
		}
		if errors.Is(err, ErrWouldBlock) {
			continue
		}
		return newBusError(BusErrorCan, err)
	}
}
