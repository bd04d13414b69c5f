// Package arcade implements the Space Invaders cabinet's I/O map as an
// example i8080.Bus: a 16-bit shift register used to compute sprite
// collision windows cheaply, plus the dip-switch/input-latch ports the
// original hardware exposed.
package arcade

import i8080 "github.com/user-none/go-chip-8080"

// Bus is a port-accurate Space Invaders peripheral set. Input1 and Input2
// are the coin-slot/button/dip-switch latches a host sets directly; the
// shift register is driven entirely by the program being emulated.
type Bus struct {
	Input1 uint8
	Input2 uint8

	shiftData   uint16
	shiftOffset uint8

	// Port3 and Port5 latch the sound-effect bits the real cabinet wires
	// to discrete audio hardware; nothing in this package drives them to
	// a sink, but a host can read them back to add its own.
	Port3, Port5 uint8
}

func (b *Bus) Read(_ *i8080.CPU, port uint8) uint8 {
	switch port {
	case 0:
		return 0b0111_1110 // fixed: no coin, player 2 start tied off
	case 1:
		return b.Input1
	case 2:
		return b.Input2
	case 3:
		return uint8(b.shiftData >> (8 - b.shiftOffset))
	default:
		return 0
	}
}

func (b *Bus) Write(_ *i8080.CPU, port uint8, data uint8) {
	switch port {
	case 2:
		b.shiftOffset = data & 0x07
	case 4:
		b.shiftData = (b.shiftData >> 8) | uint16(data)<<8
	case 3:
		b.Port3 = data
	case 5:
		b.Port5 = data
	case 6:
		// watchdog reset, no-op
	}
}
