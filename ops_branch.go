package i8080

func init() {
	registerJumps()
	registerCalls()
	registerReturns()
	registerRST()
}

// testCondition evaluates one of the eight 8080 condition codes, encoded
// in bits 5:3 of a Jcc/Ccc/Rcc opcode: 0=NZ 1=Z 2=NC 3=C 4=PO 5=PE 6=P(+) 7=M(-).
func (c *CPU) testCondition(cc uint8) bool {
	switch cc {
	case 0: // NZ
		return c.f&flagZ == 0
	case 1: // Z
		return c.f&flagZ != 0
	case 2: // NC
		return c.f&flagC == 0
	case 3: // C
		return c.f&flagC != 0
	case 4: // PO (parity odd, P=0)
		return c.f&flagP == 0
	case 5: // PE (parity even, P=1)
		return c.f&flagP != 0
	case 6: // P (plus, S=0)
		return c.f&flagS == 0
	case 7: // M (minus, S=1)
		return c.f&flagS != 0
	}
	return false
}

// --- JMP / Jcc ---

func registerJumps() {
	opcodeTable[0xC3] = opJMP
	opcodeTable[0xCB] = opJMP // documented duplicate
	for cc := uint8(0); cc < 8; cc++ {
		opcodeTable[0xC2|cc<<3] = opJcc
	}
}

func opJMP(c *CPU, bus Bus) uint8 {
	c.pc = c.fetch16()
	return 10
}

func opJcc(c *CPU, bus Bus) uint8 {
	cc := (c.ir >> 3) & 0x07
	if c.testCondition(cc) {
		c.pc = c.fetch16()
	} else {
		c.pc += 3
	}
	return 10
}

// --- CALL / Ccc ---

func registerCalls() {
	for _, op := range []uint8{0xCD, 0xDD, 0xED, 0xFD} { // documented duplicates
		opcodeTable[op] = opCALL
	}
	for cc := uint8(0); cc < 8; cc++ {
		opcodeTable[0xC4|cc<<3] = opCcc
	}
}

func opCALL(c *CPU, bus Bus) uint8 {
	addr := c.fetch16()
	c.pushWord(c.pc + 3)
	c.pc = addr
	return 17
}

func opCcc(c *CPU, bus Bus) uint8 {
	cc := (c.ir >> 3) & 0x07
	if c.testCondition(cc) {
		addr := c.fetch16()
		c.pushWord(c.pc + 3)
		c.pc = addr
		return 17
	}
	c.pc += 3
	return 11
}

// --- RET / Rcc ---

func registerReturns() {
	opcodeTable[0xC9] = opRET
	opcodeTable[0xD9] = opRET // documented duplicate
	for cc := uint8(0); cc < 8; cc++ {
		opcodeTable[0xC0|cc<<3] = opRcc
	}
}

func opRET(c *CPU, bus Bus) uint8 {
	c.pc = c.popWord()
	return 10
}

func opRcc(c *CPU, bus Bus) uint8 {
	cc := (c.ir >> 3) & 0x07
	if c.testCondition(cc) {
		c.pc = c.popWord()
		return 11
	}
	c.pc++
	return 5
}

// --- RST n ---

func registerRST() {
	for n := uint8(0); n < 8; n++ {
		opcodeTable[0xC7|n<<3] = opRST
	}
}

func opRST(c *CPU, bus Bus) uint8 {
	n := (c.ir >> 3) & 0x07
	c.pushWord(c.pc + 1)
	c.pc = uint16(n) * 8
	return 11
}
