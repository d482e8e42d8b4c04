package socketcan

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanIDFlagBits(t *testing.T) {
	assert.Equal(t, uint32(0b111)<<29, canIDMask)
	assert.Equal(t, uint32(1<<31), canIDEFFFlag)
	assert.Equal(t, uint32(1<<30), canIDRTRFlag)
	assert.Equal(t, uint32(1<<29), canIDERRFlag)
}

func TestIsContinuableSocketErr(t *testing.T) {
	assert.True(t, isContinuableSocketErr(syscall.EWOULDBLOCK))
	assert.True(t, isContinuableSocketErr(syscall.EINTR))
	assert.False(t, isContinuableSocketErr(syscall.EINVAL))
}
