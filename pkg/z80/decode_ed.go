package z80

import (
	"log"

	"github.com/retrozx/z80core/pkg/inst"
)

// ED dispatch table: extended ops. Unlike the root and CB tables this one
// is genuinely sparse — most of the 256 possible ED opcodes are unmapped
// and cost 8 T-states with no other effect. Built as a dense array with a
// default handler so dispatch stays a single table lookup, same as root/CB.
//
// Every handler here returns its cost excluding the ED prefix byte; the
// root table adds that 4 separately (decode_root.go).
var tableED [256]func(*CPU) int

func init() {
	for op := 0; op < 256; op++ {
		op := uint8(op)
		tableED[op] = func(c *CPU) int { return edUnmapped(c, op) }
	}

	// 16-bit ADC/SBC HL,rr and LD (nn),rr / LD rr,(nn), one row per pair.
	for p := uint8(0); p < 4; p++ {
		p := p
		tableED[0x42+p*0x10] = func(c *CPU) int { c.execSbcHL(c.regPair16(p)); return 11 }
		tableED[0x4A+p*0x10] = func(c *CPU) int { c.execAdcHL(c.regPair16(p)); return 11 }
		tableED[0x43+p*0x10] = func(c *CPU) int {
			nn := c.fetchWord()
			c.Memory.WriteWord(nn, c.regPair16(p))
			return 16
		}
		tableED[0x4B+p*0x10] = func(c *CPU) int {
			nn := c.fetchWord()
			c.setRegPair16(p, c.Memory.ReadWord(nn))
			return 16
		}
	}

	tableED[0x47] = func(c *CPU) int { c.I = c.A; return 5 }
	tableED[0x4F] = func(c *CPU) int { c.R = c.A; return 5 }
	tableED[0x57] = func(c *CPU) int {
		c.A = c.I
		c.F = (c.F & FlagC) | sz53Table[c.A] | bsel(c.IFF2, FlagP, 0)
		return 5
	}
	tableED[0x5F] = func(c *CPU) int {
		c.A = c.R
		c.F = (c.F & FlagC) | sz53Table[c.A] | bsel(c.IFF2, FlagP, 0)
		return 5
	}

	for _, op := range []uint8{0x44, 0x4C, 0x54, 0x5C, 0x64, 0x6C, 0x74, 0x7C} {
		tableED[op] = func(c *CPU) int { c.execNeg(); return 4 }
	}
	for _, op := range []uint8{0x46, 0x4E, 0x66, 0x6E} {
		tableED[op] = func(c *CPU) int { c.IM = 0; return 4 }
	}
	for _, op := range []uint8{0x56, 0x76} {
		tableED[op] = func(c *CPU) int { c.IM = 1; return 4 }
	}
	for _, op := range []uint8{0x5E, 0x7E} {
		tableED[op] = func(c *CPU) int { c.IM = 2; return 4 }
	}
	for _, op := range []uint8{0x45, 0x55, 0x65, 0x75} {
		tableED[op] = execRetn
	}
	for _, op := range []uint8{0x4D, 0x5D, 0x6D, 0x7D} {
		tableED[op] = execReti
	}

	tableED[0x67] = func(c *CPU) int {
		m := c.execRrd(c.Memory.ReadByte(c.HL()))
		c.Memory.WriteByte(c.HL(), m)
		return 14
	}
	tableED[0x6F] = func(c *CPU) int {
		m := c.execRld(c.Memory.ReadByte(c.HL()))
		c.Memory.WriteByte(c.HL(), m)
		return 14
	}

	tableED[0xA0] = func(c *CPU) int { c.blockTransferStep(true); return 12 }
	tableED[0xA8] = func(c *CPU) int { c.blockTransferStep(false); return 12 }
	tableED[0xB0] = execLdir
	tableED[0xB8] = execLddr

	tableED[0xA1] = func(c *CPU) int { _, _ = c.blockCompareStep(true); return 12 }
	tableED[0xA9] = func(c *CPU) int { _, _ = c.blockCompareStep(false); return 12 }
	tableED[0xB1] = execCpir
	tableED[0xB9] = execCpdr

	tableED[0xA2] = func(c *CPU) int { c.blockInStep(true); return 12 }
	tableED[0xAA] = func(c *CPU) int { c.blockInStep(false); return 12 }
	tableED[0xB2] = execInir
	tableED[0xBA] = execIndr

	tableED[0xA3] = func(c *CPU) int { c.blockOutStep(true); return 12 }
	tableED[0xAB] = func(c *CPU) int { c.blockOutStep(false); return 12 }
	tableED[0xB3] = execOtir
	tableED[0xBB] = execOtdr
}

func edUnmapped(c *CPU, op uint8) int {
	if c.Debug {
		log.Printf("z80: unmapped opcode %s at PC=%#04x", inst.DescribeED(op), c.PC-2)
	}
	return 4
}

func execRetn(c *CPU) int {
	c.PC = c.popWord()
	c.IFF1 = c.IFF2
	return 10
}

func execReti(c *CPU) int {
	c.PC = c.popWord()
	return 10
}

func execLdir(c *CPU) int {
	bc := c.blockTransferStep(true)
	if bc != 0 {
		c.PC -= 2
		return 17
	}
	return 12
}

func execLddr(c *CPU) int {
	bc := c.blockTransferStep(false)
	if bc != 0 {
		c.PC -= 2
		return 17
	}
	return 12
}

func execCpir(c *CPU) int {
	bc, matched := c.blockCompareStep(true)
	if matched {
		c.F &^= FlagP
		return 12
	}
	if bc != 0 {
		c.PC -= 2
		return 17
	}
	return 12
}

func execCpdr(c *CPU) int {
	bc, matched := c.blockCompareStep(false)
	if matched {
		c.F &^= FlagP
		return 12
	}
	if bc != 0 {
		c.PC -= 2
		return 17
	}
	return 12
}

func execInir(c *CPU) int {
	if c.blockInStep(true) != 0 {
		c.PC -= 2
		return 17
	}
	return 12
}

func execIndr(c *CPU) int {
	if c.blockInStep(false) != 0 {
		c.PC -= 2
		return 17
	}
	return 12
}

func execOtir(c *CPU) int {
	if c.blockOutStep(true) != 0 {
		c.PC -= 2
		return 17
	}
	return 12
}

func execOtdr(c *CPU) int {
	if c.blockOutStep(false) != 0 {
		c.PC -= 2
		return 17
	}
	return 12
}

// dispatchED fetches the ED sub-opcode (incrementing R) and dispatches
// through tableED. Returns the cost excluding the ED prefix byte, which
// the root table adds.
func dispatchED(c *CPU) int {
	op := c.fetchOpcodeByte()
	return tableED[op](c)
}
