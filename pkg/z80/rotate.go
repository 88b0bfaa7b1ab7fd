package z80

// Rotate/shift primitives: the CB-prefixed register/memory forms
// (RLC/RRC/RL/RR/SLA/SRA/SRL/SLL) and the accumulator-only forms
// (RLCA/RRCA/RLA/RRA, which preserve S,Z,P/V unlike their CB counterparts).

func (c *CPU) execRlcA() {
	c.A = (c.A << 1) | (c.A >> 7)
	c.F = (c.F & (FlagP | FlagZ | FlagS)) | (c.A & (FlagC | Flag3 | Flag5))
}

func (c *CPU) execRrcA() {
	c.F = (c.F & (FlagP | FlagZ | FlagS)) | (c.A & FlagC)
	c.A = (c.A >> 1) | (c.A << 7)
	c.F |= c.A & (Flag3 | Flag5)
}

func (c *CPU) execRlA() {
	old := c.A
	c.A = (c.A << 1) | (c.F & FlagC)
	c.F = (c.F & (FlagP | FlagZ | FlagS)) | (c.A & (Flag3 | Flag5)) | (old >> 7)
}

func (c *CPU) execRrA() {
	old := c.A
	c.A = (c.A >> 1) | (c.F << 7)
	c.F = (c.F & (FlagP | FlagZ | FlagS)) | (c.A & (Flag3 | Flag5)) | (old & FlagC)
}

// CB-prefix rotate/shift helpers: return the new value and set
// S,Z,P/V,F3,F5 from the result, H=0, N=0.

func (c *CPU) execRlc(v uint8) uint8 {
	v = (v << 1) | (v >> 7)
	c.F = (v & FlagC) | sz53pTable[v]
	return v
}

func (c *CPU) execRrc(v uint8) uint8 {
	c.F = v & FlagC
	v = (v >> 1) | (v << 7)
	c.F |= sz53pTable[v]
	return v
}

func (c *CPU) execRl(v uint8) uint8 {
	old := v
	v = (v << 1) | (c.F & FlagC)
	c.F = (old >> 7) | sz53pTable[v]
	return v
}

func (c *CPU) execRr(v uint8) uint8 {
	old := v
	v = (v >> 1) | (c.F << 7)
	c.F = (old & FlagC) | sz53pTable[v]
	return v
}

func (c *CPU) execSla(v uint8) uint8 {
	c.F = v >> 7
	v <<= 1
	c.F |= sz53pTable[v]
	return v
}

func (c *CPU) execSra(v uint8) uint8 {
	c.F = v & FlagC
	v = (v & 0x80) | (v >> 1)
	c.F |= sz53pTable[v]
	return v
}

func (c *CPU) execSrl(v uint8) uint8 {
	c.F = v & FlagC
	v >>= 1
	c.F |= sz53pTable[v]
	return v
}

// execSll implements the undocumented SLL: shift left, bit 0 set to 1.
func (c *CPU) execSll(v uint8) uint8 {
	c.F = v >> 7
	v = (v << 1) | 0x01
	c.F |= sz53pTable[v]
	return v
}
