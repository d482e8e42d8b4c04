package n2k

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastPacketCache_extend(t *testing.T) {
	cache := newFastPacketCache(10)

	complete, err := cache.extend(0, []byte{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.False(t, complete)

	complete, err = cache.extend(1, []byte{7, 8, 9, 10})
	require.NoError(t, err)
	assert.True(t, complete)

	data, ok := cache.completeData()
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, data)
}

func TestFastPacketCache_extend_outOfOrder(t *testing.T) {
	cache := newFastPacketCache(10)

	_, err := cache.extend(2, []byte{1, 2, 3})
	require.Error(t, err)

	var fpErr *FastPacketError
	require.ErrorAs(t, err, &fpErr)
	assert.Equal(t, FastPacketErrorUnexpectedFrameIndex, fpErr.Kind)
	assert.Equal(t, 0, fpErr.Expected)
}

func TestFastPacketTable_insertGetRemove(t *testing.T) {
	table := &fastPacketTable{}
	key := FastPacketIdentifier{Source: 1, Pgn: 130306, SequenceGroup: 0x40}

	_, ok := table.get(key)
	assert.False(t, ok)

	pack := newFastPacketCache(10)
	require.NoError(t, table.insert(key, pack))

	got, ok := table.get(key)
	require.True(t, ok)
	assert.Same(t, pack, got)

	table.remove(key)
	_, ok = table.get(key)
	assert.False(t, ok)
}

func TestFastPacketTable_full(t *testing.T) {
	table := &fastPacketTable{}
	for i := 0; i < fastPacketCacheSize; i++ {
		key := FastPacketIdentifier{Source: uint8(i), Pgn: 130306, SequenceGroup: 0}
		require.NoError(t, table.insert(key, newFastPacketCache(10)))
	}

	overflow := FastPacketIdentifier{Source: 200, Pgn: 130306, SequenceGroup: 0}
	err := table.insert(overflow, newFastPacketCache(10))
	assert.ErrorIs(t, err, errFastPacketCacheFull)
}
