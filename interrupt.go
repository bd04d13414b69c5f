package i8080

// advanceIE moves the interrupt-enable flip-flop one step along its arm
// sequence. EI sets ieArmPending; two Step calls later (here, plus the
// next call) it reaches ieEnabled. This is what gives EI its documented
// one-instruction immunity: the instruction right after EI always runs
// with the flip-flop still short of Enabled.
func (c *CPU) advanceIE() {
	switch c.ie {
	case ieArmPending:
		c.ie = ieArmed
	case ieArmed:
		c.ie = ieEnabled
	}
}

// fetchOpcode returns the byte Step should decode: a latched interrupt
// RST if one is pending, otherwise the instruction at pc.
func (c *CPU) fetchOpcode() uint8 {
	if c.hasPending {
		opcode := c.pending
		c.hasPending = false
		c.halt = false
		// RST's own push-PC path adds 1 to pc to compute the return
		// address, which is correct for a memory-fetched RST (it wants
		// to return to the next instruction). A device-supplied RST
		// instead wants to return to the instruction that was about to
		// run, so we decrement pc here to compensate before the RST
		// handler runs.
		c.pc--
		return opcode
	}
	return c.mem[c.pc]
}

// Interrupt attempts to latch rst as a pending interrupt, to be executed
// as the next Step. It succeeds only when the interrupt flip-flop is
// fully Enabled and rst is one of the eight RST opcodes; otherwise it
// returns false and has no effect. A successful latch implicitly clears
// HLT once the interrupt is taken.
func (c *CPU) Interrupt(rst uint8) bool {
	if c.ie != ieEnabled {
		return false
	}
	if !isRST(rst) {
		return false
	}
	c.pending = rst
	c.hasPending = true
	return true
}

func isRST(opcode uint8) bool {
	switch opcode {
	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF:
		return true
	default:
		return false
	}
}
