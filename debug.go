package i8080

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
)

// Debug writes a formatted snapshot of PC, SP, HALT, IE, every register,
// and the five named flag bits to w. Callers inject the sink rather than
// writing to stdout directly, so tests can capture it.
func (c *CPU) Debug(w io.Writer) {
	fmt.Fprintf(w, "PC: %#04x  SP: %#04x  HALT: %t  IE: %s\n", c.pc, c.sp, c.halt, c.ie)
	fmt.Fprintf(w,
		"B: %#02x  C: %#02x  D: %#02x  E: %#02x  H: %#02x  L: %#02x  A: %#02x\n",
		c.reg[regB], c.reg[regC], c.reg[regD], c.reg[regE], c.reg[regH], c.reg[regL], c.reg[regA],
	)
	fmt.Fprintf(w, "S: %d  Z: %d  AC: %d  P: %d  C: %d\n",
		b2i(c.f&flagS != 0), b2i(c.f&flagZ != 0), b2i(c.f&flagAC != 0), b2i(c.f&flagP != 0), b2i(c.f&flagC != 0),
	)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (s ieState) String() string {
	switch s {
	case ieDisabled:
		return "disabled"
	case ieArmPending:
		return "arm-pending"
	case ieArmed:
		return "armed"
	case ieEnabled:
		return "enabled"
	default:
		return "unknown"
	}
}

// dumpState is a struct-shaped snapshot of CPU state for verbose
// diagnostic reporting; unlike Register it exposes every field
// in one shot so spew can render a single readable block.
type dumpState struct {
	PC, SP             uint16
	F                  uint8
	B, C, D, E, H, L, A uint8
	Halt               bool
	IE                 ieState
}

// DumpState renders the full CPU state with go-spew, for diagnostic
// tooling that wants a structured dump on test-ROM failure rather than
// the fixed one-line-per-group format Debug produces.
func (c *CPU) DumpState() string {
	return spew.Sdump(dumpState{
		PC: c.pc, SP: c.sp, F: c.f,
		B: c.reg[regB], C: c.reg[regC], D: c.reg[regD], E: c.reg[regE],
		H: c.reg[regH], L: c.reg[regL], A: c.reg[regA],
		Halt: c.halt, IE: c.ie,
	})
}
