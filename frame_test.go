package n2k_test

import (
	"testing"

	"github.com/aldas/go-n2k"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCanFrame(t *testing.T) {
	id, err := n2k.NewId(n2k.Priority3, 65132, 238, 255)
	require.NoError(t, err)

	frame := n2k.NewCanFrame(id, []byte{1, 2, 3})

	assert.Equal(t, id, frame.Id())
	assert.Equal(t, []byte{1, 2, 3}, frame.Data())
}

func TestNewCanFrame_truncatesToEightBytes(t *testing.T) {
	id, err := n2k.NewId(n2k.Priority3, 65132, 238, 255)
	require.NoError(t, err)

	frame := n2k.NewCanFrame(id, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, frame.Data())
}
