package z80

// 8-bit register field decoding shared by the root and CB tables. Z80
// opcodes encode an 8-bit operand register in 3 bits using the fixed order
// B, C, D, E, H, L, (HL), A.

// reg8 reads the register selected by a 3-bit field, dereferencing through
// (HL) for index 6.
func (c *CPU) reg8(idx uint8) uint8 {
	switch idx & 0x07 {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.Memory.ReadByte(c.HL())
	default:
		return c.A
	}
}

// setReg8 writes the register selected by a 3-bit field, through (HL) for
// index 6.
func (c *CPU) setReg8(idx uint8, v uint8) {
	switch idx & 0x07 {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		c.Memory.WriteByte(c.HL(), v)
	default:
		c.A = v
	}
}

// regPair16 reads one of the four main register pairs selected by a 2-bit
// field in the order BC, DE, HL, SP (the "dd"/"qq" field of the Z80 ISA).
func (c *CPU) regPair16(idx uint8) uint16 {
	switch idx & 0x03 {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.SP
	}
}

func (c *CPU) setRegPair16(idx uint8, v uint16) {
	switch idx & 0x03 {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.SP = v
	}
}

// pushPair16 selects BC, DE, HL, AF for PUSH/POP (the "qq" field uses AF,
// not SP, in the fourth slot).
func (c *CPU) pushPair16(idx uint8) uint16 {
	switch idx & 0x03 {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.AF()
	}
}

func (c *CPU) setPushPair16(idx uint8, v uint16) {
	switch idx & 0x03 {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.SetAF(v)
	}
}

// condition evaluates one of the eight condition codes (NZ,Z,NC,C,PO,PE,P,M)
// used by conditional JP/CALL/RET.
func (c *CPU) condition(idx uint8) bool {
	switch idx & 0x07 {
	case 0:
		return c.F&FlagZ == 0
	case 1:
		return c.F&FlagZ != 0
	case 2:
		return c.F&FlagC == 0
	case 3:
		return c.F&FlagC != 0
	case 4:
		return c.F&FlagP == 0
	case 5:
		return c.F&FlagP != 0
	case 6:
		return c.F&FlagS == 0
	default:
		return c.F&FlagS != 0
	}
}
