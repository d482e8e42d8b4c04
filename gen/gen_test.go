package gen_test

import (
	"testing"

	"github.com/aldas/go-n2k/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRudder(t *testing.T) {
	registry := gen.Registry{}
	assert.False(t, registry.IsFastPacket(127245))

	data := []byte{1, 0x01, 0x10, 0x27, 0xf0, 0xd8, 0x00, 0x00}
	msg, err := registry.BuildMessage(127245, data)
	require.NoError(t, err)

	rudder, ok := msg.(*gen.Rudder)
	require.True(t, ok)
	assert.Equal(t, uint8(1), rudder.Instance())
	assert.Equal(t, gen.DirectionOrderMoveToStarboard, rudder.DirectionOrder())
	assert.InDelta(t, 1.0, rudder.AngleOrder(), 0.0001)
}

func TestRateOfTurn(t *testing.T) {
	registry := gen.Registry{}
	data := []byte{7, 0, 0, 0, 0, 0, 0, 0}
	msg, err := registry.BuildMessage(127251, data)
	require.NoError(t, err)

	rot, ok := msg.(*gen.RateOfTurn)
	require.True(t, ok)
	assert.Equal(t, uint8(7), rot.Sid())
}

func TestProductInformation(t *testing.T) {
	registry := gen.Registry{}
	assert.True(t, registry.IsFastPacket(126996))

	data := make([]byte, 134)
	data[0], data[1] = 0x34, 0x08 // 2100 little endian
	copy(data[4:], []byte("ModelX@@@@@@@@@@@@@@@@@@@@@@@@@@"))

	msg, err := registry.BuildMessage(126996, data)
	require.NoError(t, err)

	pi, ok := msg.(*gen.ProductInformation)
	require.True(t, ok)
	assert.Equal(t, uint16(2100), pi.Nmea2000Version())
	assert.Equal(t, "ModelX", pi.ModelId())

	product := pi.ToProduct()
	assert.Equal(t, uint16(2100), product.N2kVersion())
	assert.Equal(t, "ModelX", product.Model())
}

func TestBuildMessage_unknownPgn(t *testing.T) {
	registry := gen.Registry{}
	_, err := registry.BuildMessage(99999, nil)
	require.Error(t, err)

	var unknown *gen.UnknownPgnError
	require.ErrorAs(t, err, &unknown)
}

func TestPgnsFromNumber(t *testing.T) {
	pgn, ok := gen.PgnsFromNumber(127245)
	require.True(t, ok)
	assert.Equal(t, gen.PgnsRudder, pgn)

	_, ok = gen.PgnsFromNumber(99999)
	assert.False(t, ok)
}

func TestBuildMessage_payloadTooShort(t *testing.T) {
	registry := gen.Registry{}
	_, err := registry.BuildMessage(127245, []byte{1, 2})
	require.Error(t, err)

	var tooShort *gen.PayloadSizeError
	require.ErrorAs(t, err, &tooShort)
}
