package arcade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user-none/go-chip-8080/internal/arcade"
)

func TestShiftRegisterWindowMath(t *testing.T) {
	var b arcade.Bus

	b.Write(nil, 4, 0xAA) // shiftData = 0xAA00
	b.Write(nil, 4, 0xFF) // shiftData = 0xFFAA

	b.Write(nil, 2, 0) // offset 0: top byte
	assert.Equal(t, uint8(0xFF), b.Read(nil, 3))

	b.Write(nil, 2, 4) // offset 4: shiftData >> 4, low byte
	assert.Equal(t, uint8(0xFA), b.Read(nil, 3))
}

func TestInputLatchesAndFixedPort(t *testing.T) {
	b := arcade.Bus{Input1: 0x42, Input2: 0x99}

	assert.Equal(t, uint8(0b0111_1110), b.Read(nil, 0))
	assert.Equal(t, uint8(0x42), b.Read(nil, 1))
	assert.Equal(t, uint8(0x99), b.Read(nil, 2))
}

func TestSoundPortsAreLatchedNotDropped(t *testing.T) {
	var b arcade.Bus
	b.Write(nil, 3, 0x01)
	b.Write(nil, 5, 0x10)
	b.Write(nil, 6, 0xFF) // watchdog, must not panic or affect state

	assert.Equal(t, uint8(0x01), b.Port3)
	assert.Equal(t, uint8(0x10), b.Port5)
}
