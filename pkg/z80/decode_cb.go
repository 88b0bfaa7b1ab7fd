package z80

// CB dispatch table. Bits 6-7 select the family
// (00 rotate/shift, 01 BIT, 10 RES, 11 SET), bits 3-5 select the sub-op or
// bit index, and the low 3 bits select the operand register in the usual
// B,C,D,E,H,L,(HL),A order. Built once in init(), same table-of-closures
// idiom as the root table.
var tableCB [256]func(*CPU) int

var cbRotateOps = [8]func(*CPU, uint8) uint8{
	(*CPU).execRlc,
	(*CPU).execRrc,
	(*CPU).execRl,
	(*CPU).execRr,
	(*CPU).execSla,
	(*CPU).execSra,
	(*CPU).execSll,
	(*CPU).execSrl,
}

func init() {
	for op := 0; op < 256; op++ {
		tableCB[op] = buildCBHandler(uint8(op))
	}
}

// buildCBHandler returns the cost of the operation excluding the CB prefix
// byte itself; dispatchCB's caller adds that separately.
func buildCBHandler(op uint8) func(*CPU) int {
	family := op >> 6
	mid := (op >> 3) & 0x07
	reg := op & 0x07

	switch family {
	case 0:
		rot := cbRotateOps[mid]
		if reg == 6 {
			return func(c *CPU) int {
				v := rot(c, c.Memory.ReadByte(c.HL()))
				c.Memory.WriteByte(c.HL(), v)
				return 11
			}
		}
		return func(c *CPU) int { c.setReg8(reg, rot(c, c.reg8(reg))); return 4 }
	case 1:
		if reg == 6 {
			return func(c *CPU) int { c.execBit(c.Memory.ReadByte(c.HL()), mid); return 8 }
		}
		return func(c *CPU) int { c.execBit(c.reg8(reg), mid); return 4 }
	case 2:
		if reg == 6 {
			return func(c *CPU) int {
				v := execRes(c.Memory.ReadByte(c.HL()), mid)
				c.Memory.WriteByte(c.HL(), v)
				return 11
			}
		}
		return func(c *CPU) int { c.setReg8(reg, execRes(c.reg8(reg), mid)); return 4 }
	default:
		if reg == 6 {
			return func(c *CPU) int {
				v := execSet(c.Memory.ReadByte(c.HL()), mid)
				c.Memory.WriteByte(c.HL(), v)
				return 11
			}
		}
		return func(c *CPU) int { c.setReg8(reg, execSet(c.reg8(reg), mid)); return 4 }
	}
}

// dispatchCB fetches the CB sub-opcode (incrementing R) and
// dispatches through tableCB. Returns the cost excluding the CB prefix byte
// itself, which the caller (root table / DD-FD fallthrough) adds.
func dispatchCB(c *CPU) int {
	op := c.fetchOpcodeByte()
	return tableCB[op](c)
}
