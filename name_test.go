package n2k_test

import (
	"testing"

	"github.com/aldas/go-n2k"
	"github.com/stretchr/testify/assert"
)

func TestNewName(t *testing.T) {
	var testCases = []struct {
		name                    string
		arbitraryAddressCapable bool
		industryGroup           uint8
		vehicleSystemInstance   uint8
		vehicleSystem           uint8
		function                uint8
		functionInstance        uint8
		ecuInstance             uint8
		manufacturerCode        uint16
		identityNumber          uint32
	}{
		{
			name:                    "first set",
			arbitraryAddressCapable: true,
			industryGroup:           0x02,
			vehicleSystemInstance:   0x05,
			vehicleSystem:           0x55,
			function:                0x55,
			functionInstance:        0x15,
			ecuInstance:             0x05,
			manufacturerCode:        0x0555,
			identityNumber:          0x00155555,
		},
		{
			name:                    "second set",
			arbitraryAddressCapable: true,
			industryGroup:           0x02,
			vehicleSystemInstance:   0x0a,
			vehicleSystem:           0x55,
			function:                0xaa,
			functionInstance:        0x15,
			ecuInstance:             0x02,
			manufacturerCode:        0x0555,
			identityNumber:          0x000aaaaa,
		},
		{
			name:                    "arbitrary address not capable",
			arbitraryAddressCapable: false,
			industryGroup:           0x05,
			vehicleSystemInstance:   0x05,
			vehicleSystem:           0x2a,
			function:                0x55,
			functionInstance:        0x0a,
			ecuInstance:             0x05,
			manufacturerCode:        0x02aa,
			identityNumber:          0x00155555,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name := n2k.NewName(
				tc.arbitraryAddressCapable,
				tc.industryGroup,
				tc.vehicleSystemInstance,
				tc.vehicleSystem,
				tc.function,
				tc.functionInstance,
				tc.ecuInstance,
				tc.manufacturerCode,
				tc.identityNumber,
			)

			assert.Equal(t, tc.arbitraryAddressCapable, name.ArbitraryAddressCapable())
			assert.Equal(t, tc.industryGroup, name.IndustryGroup())
			assert.Equal(t, tc.vehicleSystemInstance, name.VehicleSystemInstance())
			assert.Equal(t, tc.vehicleSystem, name.VehicleSystem())
			assert.Equal(t, tc.function, name.Function())
			assert.Equal(t, tc.functionInstance, name.FunctionInstance())
			assert.Equal(t, tc.ecuInstance, name.EcuInstance())
			assert.Equal(t, tc.manufacturerCode, name.ManufacturerCode())
			assert.Equal(t, tc.identityNumber, name.IdentityNumber())
		})
	}
}

func TestParseName_roundTrip(t *testing.T) {
	original := n2k.NewName(true, 0x02, 0x05, 0x55, 0x55, 0x15, 0x05, 0x0555, 0x00155555)

	parsed := n2k.ParseName(original.Value())

	assert.Equal(t, original, parsed)
}
