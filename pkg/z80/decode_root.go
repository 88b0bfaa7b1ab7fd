package z80

// Root dispatch table. Built algorithmically from the standard Z80 opcode
// bit fields (x = bits 7-6, y = bits 5-3, z = bits 2-0, p = y>>1, q = y&1)
// rather than enumerated by hand, populating a 256-entry table once in
// init() instead of a literal per-opcode switch. Each entry is built once
// at init time, so dispatch itself never allocates a closure.
var tableRoot [256]func(*CPU) int

func init() {
	for op := 0; op < 256; op++ {
		tableRoot[op] = buildRootHandler(uint8(op))
	}
}

func buildRootHandler(op uint8) func(*CPU) int {
	x := op >> 6
	y := (op >> 3) & 0x07
	z := op & 0x07
	p := y >> 1
	q := y & 0x01

	switch x {
	case 0:
		switch z {
		case 0:
			switch y {
			case 0:
				return func(c *CPU) int { return 4 } // NOP
			case 1:
				return func(c *CPU) int { c.ExAF(); return 4 }
			case 2:
				return execDJNZ
			case 3:
				return execJR
			default:
				cc := y - 4
				return func(c *CPU) int { return execJRCond(c, cc) }
			}
		case 1:
			if q == 0 {
				return func(c *CPU) int {
					nn := c.fetchWord()
					c.setRegPair16(p, nn)
					return 10
				}
			}
			return func(c *CPU) int {
				c.execAddHL(c.HL, c.SetHL, c.regPair16(p))
				return 11
			}
		case 2:
			return buildIndirectLoad(p, q)
		case 3:
			if q == 0 {
				return func(c *CPU) int { c.setRegPair16(p, c.regPair16(p)+1); return 6 }
			}
			return func(c *CPU) int { c.setRegPair16(p, c.regPair16(p)-1); return 6 }
		case 4:
			return buildIncReg(y)
		case 5:
			return buildDecReg(y)
		case 6:
			return buildLdRegImm(y)
		case 7:
			return rootAccumOps[y]
		}
	case 1:
		if z == 6 && y == 6 {
			return func(c *CPU) int { c.Halted = true; return 4 }
		}
		return buildLdRegReg(y, z)
	case 2:
		return buildAluOp(y, z)
	case 3:
		switch z {
		case 0:
			return func(c *CPU) int { return execRetCond(c, y) }
		case 1:
			if q == 0 {
				return func(c *CPU) int { c.setPushPair16(p, c.popWord()); return 10 }
			}
			switch p {
			case 0:
				return func(c *CPU) int { c.PC = c.popWord(); return 10 }
			case 1:
				return func(c *CPU) int { c.Exx(); return 4 }
			case 2:
				return func(c *CPU) int { c.PC = c.HL(); return 4 }
			default:
				return func(c *CPU) int { c.SP = c.HL(); return 6 }
			}
		case 2:
			return func(c *CPU) int { return execJPCond(c, y) }
		case 3:
			return rootMiscOps[y]
		case 4:
			return func(c *CPU) int { return execCallCond(c, y) }
		case 5:
			if q == 0 {
				return func(c *CPU) int { c.pushWord(c.pushPair16(p)); return 11 }
			}
			switch p {
			case 0:
				return func(c *CPU) int {
					nn := c.fetchWord()
					c.pushWord(c.PC)
					c.PC = nn
					return 17
				}
			case 1:
				return func(c *CPU) int { return 4 + dispatchDD(c) }
			case 2:
				return func(c *CPU) int { return 4 + dispatchED(c) }
			default:
				return func(c *CPU) int { return 4 + dispatchFD(c) }
			}
		case 6:
			return buildAluImm(y)
		case 7:
			return func(c *CPU) int {
				c.pushWord(c.PC)
				c.PC = uint16(y) * 8
				return 11
			}
		}
	}
	panic("unreachable root opcode decode")
}

func buildIndirectLoad(p, q uint8) func(*CPU) int {
	switch {
	case q == 0 && p == 0:
		return func(c *CPU) int { c.Memory.WriteByte(c.BC(), c.A); return 7 }
	case q == 0 && p == 1:
		return func(c *CPU) int { c.Memory.WriteByte(c.DE(), c.A); return 7 }
	case q == 0 && p == 2:
		return func(c *CPU) int {
			nn := c.fetchWord()
			c.Memory.WriteWord(nn, c.HL())
			return 16
		}
	case q == 0:
		return func(c *CPU) int { nn := c.fetchWord(); c.Memory.WriteByte(nn, c.A); return 13 }
	case q == 1 && p == 0:
		return func(c *CPU) int { c.A = c.Memory.ReadByte(c.BC()); return 7 }
	case q == 1 && p == 1:
		return func(c *CPU) int { c.A = c.Memory.ReadByte(c.DE()); return 7 }
	case q == 1 && p == 2:
		return func(c *CPU) int { nn := c.fetchWord(); c.SetHL(c.Memory.ReadWord(nn)); return 16 }
	default:
		return func(c *CPU) int { nn := c.fetchWord(); c.A = c.Memory.ReadByte(nn); return 13 }
	}
}

func buildIncReg(y uint8) func(*CPU) int {
	if y == 6 {
		return func(c *CPU) int {
			v := c.Memory.ReadByte(c.HL())
			c.execInc(&v)
			c.Memory.WriteByte(c.HL(), v)
			return 11
		}
	}
	return func(c *CPU) int {
		v := c.reg8(y)
		c.execInc(&v)
		c.setReg8(y, v)
		return 4
	}
}

func buildDecReg(y uint8) func(*CPU) int {
	if y == 6 {
		return func(c *CPU) int {
			v := c.Memory.ReadByte(c.HL())
			c.execDec(&v)
			c.Memory.WriteByte(c.HL(), v)
			return 11
		}
	}
	return func(c *CPU) int {
		v := c.reg8(y)
		c.execDec(&v)
		c.setReg8(y, v)
		return 4
	}
}

func buildLdRegImm(y uint8) func(*CPU) int {
	if y == 6 {
		return func(c *CPU) int { n := c.fetchByte(); c.Memory.WriteByte(c.HL(), n); return 10 }
	}
	return func(c *CPU) int { n := c.fetchByte(); c.setReg8(y, n); return 7 }
}

func buildLdRegReg(y, z uint8) func(*CPU) int {
	cost := uint8(4)
	if y == 6 || z == 6 {
		cost = 7
	}
	return func(c *CPU) int { c.setReg8(y, c.reg8(z)); return int(cost) }
}

var rootAccumOps = [8]func(*CPU) int{
	func(c *CPU) int { c.execRlcA(); return 4 },
	func(c *CPU) int { c.execRrcA(); return 4 },
	func(c *CPU) int { c.execRlA(); return 4 },
	func(c *CPU) int { c.execRrA(); return 4 },
	func(c *CPU) int { c.execDaa(); return 4 },
	func(c *CPU) int { c.A = ^c.A; c.F = (c.F & (FlagC | FlagP | FlagZ | FlagS)) | FlagH | FlagN | (c.A & (Flag3 | Flag5)); return 4 },
	func(c *CPU) int { c.F = (c.F & (FlagP | FlagZ | FlagS)) | FlagC | (c.A & (Flag3 | Flag5)); return 4 },
	func(c *CPU) int {
		c.F = (c.F & (FlagP | FlagZ | FlagS | FlagC)) | bsel(c.F&FlagC != 0, FlagH, 0) | (c.A & (Flag3 | Flag5))
		c.F ^= FlagC
		return 4
	},
}

var rootMiscOps = [8]func(*CPU) int{
	func(c *CPU) int { nn := c.fetchWord(); c.PC = nn; return 10 },
	func(c *CPU) int { return 4 + dispatchCB(c) },
	func(c *CPU) int { n := c.fetchByte(); c.IO.WritePort(uint16(c.A)<<8|uint16(n), c.A); return 11 },
	func(c *CPU) int { n := c.fetchByte(); c.A = c.IO.ReadPort(uint16(c.A)<<8 | uint16(n)); return 11 },
	func(c *CPU) int {
		v := c.Memory.ReadWord(c.SP)
		c.Memory.WriteWord(c.SP, c.HL())
		c.SetHL(v)
		return 19
	},
	func(c *CPU) int {
		d, h := c.DE(), c.HL()
		c.SetDE(h)
		c.SetHL(d)
		return 4
	},
	func(c *CPU) int { c.IFF1, c.IFF2 = false, false; return 4 },
	func(c *CPU) int { c.IFF1, c.IFF2 = true, true; return 4 },
}

func execDJNZ(c *CPU) int {
	d := c.fetchDisp()
	c.B--
	if c.B != 0 {
		c.PC = uint16(int32(c.PC) + int32(d))
		return 13
	}
	return 8
}

func execJR(c *CPU) int {
	d := c.fetchDisp()
	c.PC = uint16(int32(c.PC) + int32(d))
	return 12
}

func execJRCond(c *CPU, cc uint8) int {
	d := c.fetchDisp()
	if c.condition(cc) {
		c.PC = uint16(int32(c.PC) + int32(d))
		return 12
	}
	return 7
}

func execJPCond(c *CPU, cc uint8) int {
	nn := c.fetchWord()
	if c.condition(cc) {
		c.PC = nn
	}
	return 10
}

func execCallCond(c *CPU, cc uint8) int {
	nn := c.fetchWord()
	if c.condition(cc) {
		c.pushWord(c.PC)
		c.PC = nn
		return 17
	}
	return 10
}

func execRetCond(c *CPU, cc uint8) int {
	if c.condition(cc) {
		c.PC = c.popWord()
		return 11
	}
	return 5
}

var aluOps = [8]func(*CPU, uint8){
	(*CPU).execAdd,
	(*CPU).execAdc,
	(*CPU).execSub,
	(*CPU).execSbc,
	(*CPU).execAnd,
	(*CPU).execXor,
	(*CPU).execOr,
	(*CPU).execCp,
}

func buildAluOp(y, z uint8) func(*CPU) int {
	op := aluOps[y]
	if z == 6 {
		return func(c *CPU) int { op(c, c.Memory.ReadByte(c.HL())); return 7 }
	}
	return func(c *CPU) int { op(c, c.reg8(z)); return 4 }
}

func buildAluImm(y uint8) func(*CPU) int {
	op := aluOps[y]
	return func(c *CPU) int { n := c.fetchByte(); op(c, n); return 7 }
}
