package i8080

func init() {
	registerINXDCX()
	registerINRDCR()
	registerDAD()
	registerALUReg()
	registerALUImm()
	registerDAA()
}

// --- INX / DCX ---

func registerINXDCX() {
	opcodeTable[0x03] = opINX
	opcodeTable[0x13] = opINX
	opcodeTable[0x23] = opINX
	opcodeTable[0x33] = opINXSP

	opcodeTable[0x0B] = opDCX
	opcodeTable[0x1B] = opDCX
	opcodeTable[0x2B] = opDCX
	opcodeTable[0x3B] = opDCXSP
}

func opINX(c *CPU, bus Bus) uint8 {
	hi, lo := pairRegs(c.ir)
	val := uint16(c.reg[hi])<<8 | uint16(c.reg[lo])
	val++
	c.reg[hi] = uint8(val >> 8)
	c.reg[lo] = uint8(val)
	c.pc++
	return 5
}

func opINXSP(c *CPU, bus Bus) uint8 {
	c.sp++
	c.pc++
	return 5
}

func opDCX(c *CPU, bus Bus) uint8 {
	hi, lo := pairRegs(c.ir)
	val := uint16(c.reg[hi])<<8 | uint16(c.reg[lo])
	val--
	c.reg[hi] = uint8(val >> 8)
	c.reg[lo] = uint8(val)
	c.pc++
	return 5
}

func opDCXSP(c *CPU, bus Bus) uint8 {
	c.sp--
	c.pc++
	return 5
}

// --- INR / DCR ---

func registerINRDCR() {
	for r := uint8(0); r <= 7; r++ {
		if r == 6 {
			continue
		}
		opcodeTable[r<<3|0x04] = opINR
		opcodeTable[r<<3|0x05] = opDCR
	}
	opcodeTable[0x34] = opINR
	opcodeTable[0x35] = opDCR
}

func opINR(c *CPU, bus Bus) uint8 {
	dst := (c.ir >> 3) & 0x07
	v := reg8(c, dst)
	result := v + 1
	ac := (v&0x0F)+1 > 0x0F
	setReg8(c, dst, result)
	c.setSZP(result)
	if ac {
		c.f |= flagAC
	} else {
		c.f &^= flagAC
	}
	c.pc++
	if dst == 6 {
		return 10
	}
	return 5
}

func opDCR(c *CPU, bus Bus) uint8 {
	dst := (c.ir >> 3) & 0x07
	v := reg8(c, dst)
	result := v - 1
	ac := auxCarrySub(v, 1)
	setReg8(c, dst, result)
	c.setSZP(result)
	if ac {
		c.f |= flagAC
	} else {
		c.f &^= flagAC
	}
	c.pc++
	if dst == 6 {
		return 10
	}
	return 5
}

// --- DAD ---

func registerDAD() {
	opcodeTable[0x09] = opDAD
	opcodeTable[0x19] = opDAD
	opcodeTable[0x29] = opDAD
	opcodeTable[0x39] = opDADSP
}

func opDAD(c *CPU, bus Bus) uint8 {
	hi, lo := pairRegs(c.ir)
	operand := uint16(c.reg[hi])<<8 | uint16(c.reg[lo])
	c.dad(operand)
	c.pc++
	return 10
}

func opDADSP(c *CPU, bus Bus) uint8 {
	c.dad(c.sp)
	c.pc++
	return 10
}

// dad adds operand into HL, setting C from the carry out of bit 15 and
// leaving every other flag untouched.
func (c *CPU) dad(operand uint16) {
	hl := c.hl()
	result := uint32(hl) + uint32(operand)
	c.reg[regH] = uint8(result >> 8)
	c.reg[regL] = uint8(result)
	if result > 0xFFFF {
		c.f |= flagC
	} else {
		c.f &^= flagC
	}
}

// --- ADD/ADC/SUB/SBB/CMP register forms (ANA/XRA/ORA live in ops_logic.go) ---

func registerALUReg() {
	for r := uint8(0); r <= 7; r++ {
		opcodeTable[0x80|r] = opADDr
		opcodeTable[0x88|r] = opADCr
		opcodeTable[0x90|r] = opSUBr
		opcodeTable[0x98|r] = opSBBr
		opcodeTable[0xB8|r] = opCMPr
	}
}

func aluCycles(opSrc uint8) uint8 {
	if opSrc == 6 {
		return 7
	}
	return 4
}

func opADDr(c *CPU, bus Bus) uint8 {
	src := c.ir & 0x07
	c.add(reg8(c, src), false)
	c.pc++
	return aluCycles(src)
}

func opADCr(c *CPU, bus Bus) uint8 {
	src := c.ir & 0x07
	c.add(reg8(c, src), c.f&flagC != 0)
	c.pc++
	return aluCycles(src)
}

func opSUBr(c *CPU, bus Bus) uint8 {
	src := c.ir & 0x07
	c.sub(reg8(c, src), false)
	c.pc++
	return aluCycles(src)
}

func opSBBr(c *CPU, bus Bus) uint8 {
	src := c.ir & 0x07
	c.sub(reg8(c, src), c.f&flagC != 0)
	c.pc++
	return aluCycles(src)
}

func opCMPr(c *CPU, bus Bus) uint8 {
	src := c.ir & 0x07
	c.cmp(reg8(c, src))
	c.pc++
	return aluCycles(src)
}

// --- Immediate forms: ADI, ACI, SUI, SBI, CPI (ANI/XRI/ORI live in ops_logic.go) ---

func registerALUImm() {
	opcodeTable[0xC6] = opADI
	opcodeTable[0xCE] = opACI
	opcodeTable[0xD6] = opSUI
	opcodeTable[0xDE] = opSBI
	opcodeTable[0xFE] = opCPI
}

func opADI(c *CPU, bus Bus) uint8 {
	c.add(c.fetch8(), false)
	c.pc += 2
	return 7
}

func opACI(c *CPU, bus Bus) uint8 {
	c.add(c.fetch8(), c.f&flagC != 0)
	c.pc += 2
	return 7
}

func opSUI(c *CPU, bus Bus) uint8 {
	c.sub(c.fetch8(), false)
	c.pc += 2
	return 7
}

func opSBI(c *CPU, bus Bus) uint8 {
	c.sub(c.fetch8(), c.f&flagC != 0)
	c.pc += 2
	return 7
}

func opCPI(c *CPU, bus Bus) uint8 {
	c.cmp(c.fetch8())
	c.pc += 2
	return 7
}

// add computes A = A + val + cy and sets all five flags.
func (c *CPU) add(val uint8, cy bool) {
	a := c.reg[regA]
	result := a + val
	if cy {
		result++
	}

	c.f = flagBit1
	c.setSZP(result)
	if carryAt(4, uint16(a), uint16(val), cy) {
		c.f |= flagAC
	}
	if carryAt(8, uint16(a), uint16(val), cy) {
		c.f |= flagC
	}
	c.reg[regA] = result
}

// sub computes A = A - val - cy as ADD of the bitwise-complemented
// operand and complemented incoming carry, then complements the outgoing
// carry — this yields textbook borrow semantics directly from add's
// carry-chain math.
func (c *CPU) sub(val uint8, cy bool) {
	c.add(^val, !cy)
	c.f ^= flagC
}

// cmp computes A - val, discarding the result, and sets flags exactly as
// SUB would without touching A.
func (c *CPU) cmp(val uint8) {
	a := c.reg[regA]
	result16 := uint16(a) - uint16(val)
	result := uint8(result16)

	c.f = flagBit1
	c.setSZP(result)
	if (^(uint16(a) ^ result16 ^ uint16(val)))&0x10 != 0 {
		c.f |= flagAC
	}
	if result16 > 0xFF {
		c.f |= flagC
	}
}

// --- DAA ---

func registerDAA() {
	opcodeTable[0x27] = opDAA
}

func opDAA(c *CPU, bus Bus) uint8 {
	cy := c.f&flagC != 0
	ac := c.f&flagAC != 0

	lsb := c.reg[regA] & 0x0F
	msb := c.reg[regA] >> 4

	var correction uint8
	if ac || lsb > 9 {
		correction += 0x06
	}
	if cy || msb > 9 || (msb >= 9 && lsb > 9) {
		correction += 0x60
		cy = true
	}

	c.add(correction, false)

	if cy {
		c.f |= flagC
	} else {
		c.f &^= flagC
	}
	c.pc++
	return 4
}
