package z80

// DD-CB / FD-CB dispatch. Fetch order is fixed: the
// DD/FD and CB prefix bytes are already consumed by dispatchDD/dispatchFD
// by the time this runs; what remains is the displacement byte d, then the
// sub-opcode. Neither of those two bytes increments R (a DD CB d op sequence
// increments R by exactly 2, for DD and CB only), so both are fetched with
// the plain fetchByte/fetchDisp helpers.
//
// The sub-opcode shares the CB table's family/mid/reg layout, but the
// "reg" field additionally selects which plain register also receives the
// written-back result (the undocumented "copy to register" behaviour);
// reg==6 means the result is written to memory only. BIT never writes
// anywhere, so its reg field is ignored.
func dispatchIndexedCB(c *CPU, getIdx func(*CPU) uint16) int {
	d := c.fetchDisp()
	sub := c.fetchByte()
	addr := uint16(int32(getIdx(c)) + int32(d))

	family := sub >> 6
	mid := (sub >> 3) & 0x07
	reg := sub & 0x07

	operand := c.Memory.ReadByte(addr)

	if family == 1 {
		c.execBit(operand, mid)
		return 12
	}

	var result uint8
	switch family {
	case 0:
		result = cbRotateOps[mid](c, operand)
	case 2:
		result = execRes(operand, mid)
	default:
		result = execSet(operand, mid)
	}
	c.Memory.WriteByte(addr, result)
	if reg != 6 {
		c.setReg8(reg, result)
	}
	return 15
}
