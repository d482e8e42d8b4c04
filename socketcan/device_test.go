package socketcan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sudo ip link set can0 down && sudo /sbin/ip link set can0 up type can bitrate 250000
//
// Renamed from TestName so `go test` skips it by default; run manually on a
// machine with a real or virtual CAN interface up.
func xTestDevice(t *testing.T) {
	dev := NewDevice("can0")
	if err := dev.Initialize(); err != nil {
		assert.NoError(t, err)
		return
	}
	defer dev.Close()

	for i := 0; i < 100; i++ {
		frame, err := dev.Receive()
		if err != nil {
			assert.NoError(t, err)
			return
		}
		fmt.Printf("frame: %+v\n", frame)
	}
}
