package z80

// DD/FD dispatch tables: IX/IY-prefixed forms. Both tables are sparse
// overlays on top of the root table — an entry present here overrides the
// corresponding root opcode to operate on IX/IY instead of HL; everything
// absent falls through to the root table unchanged (the documented "prefix
// acts as a NOP with respect to the index register" behaviour).
//
// Every entry returns its cost excluding the DD/FD prefix byte; the root
// table adds that 4 separately (decode_root.go).
var tableDD [256]func(*CPU) int
var tableFD [256]func(*CPU) int

func init() {
	buildIndexTable(&tableDD, func(c *CPU) uint16 { return c.IX }, func(c *CPU, v uint16) { c.IX = v },
		func(c *CPU) uint8 { return c.IXH() }, func(c *CPU, v uint8) { c.SetIXH(v) },
		func(c *CPU) uint8 { return c.IXL() }, func(c *CPU, v uint8) { c.SetIXL(v) })
	buildIndexTable(&tableFD, func(c *CPU) uint16 { return c.IY }, func(c *CPU, v uint16) { c.IY = v },
		func(c *CPU) uint8 { return c.IYH() }, func(c *CPU, v uint8) { c.SetIYH(v) },
		func(c *CPU) uint8 { return c.IYL() }, func(c *CPU, v uint8) { c.SetIYL(v) })
}

// buildIndexTable fills one of tableDD/tableFD. get/set address the 16-bit
// index register; getH/setH/getL/setL address its two halves (used by the
// undocumented IXH/IXL/IYH/IYL 8-bit forms).
func buildIndexTable(
	table *[256]func(*CPU) int,
	get func(*CPU) uint16, set func(*CPU, uint16),
	getH func(*CPU) uint8, setH func(*CPU, uint8),
	getL func(*CPU) uint8, setL func(*CPU, uint8),
) {
	effAddr := func(c *CPU) uint16 {
		d := c.fetchDisp()
		return uint16(int32(get(c)) + int32(d))
	}

	table[0x21] = func(c *CPU) int { set(c, c.fetchWord()); return 10 }
	table[0x22] = func(c *CPU) int { nn := c.fetchWord(); c.Memory.WriteWord(nn, get(c)); return 16 }
	table[0x2A] = func(c *CPU) int { nn := c.fetchWord(); set(c, c.Memory.ReadWord(nn)); return 16 }
	table[0x23] = func(c *CPU) int { set(c, get(c)+1); return 6 }
	table[0x2B] = func(c *CPU) int { set(c, get(c)-1); return 6 }
	table[0xF9] = func(c *CPU) int { c.SP = get(c); return 6 }
	table[0xE1] = func(c *CPU) int { set(c, c.popWord()); return 10 }
	table[0xE5] = func(c *CPU) int { c.pushWord(get(c)); return 11 }
	table[0xE9] = func(c *CPU) int { c.PC = get(c); return 4 }
	table[0xE3] = func(c *CPU) int {
		v := c.Memory.ReadWord(c.SP)
		c.Memory.WriteWord(c.SP, get(c))
		set(c, v)
		return 19
	}

	for _, p := range []uint8{0, 1, 2, 3} {
		p := p
		var value func(c *CPU) uint16
		switch p {
		case 0:
			value = (*CPU).BC
		case 1:
			value = (*CPU).DE
		case 2:
			value = get
		default:
			value = func(c *CPU) uint16 { return c.SP }
		}
		op := uint8(0x09 + p*0x10)
		table[op] = func(c *CPU) int { c.execAddHL(func() uint16 { return get(c) }, func(v uint16) { set(c, v) }, value(c)); return 11 }
	}

	table[0x34] = func(c *CPU) int {
		addr := effAddr(c)
		v := c.Memory.ReadByte(addr)
		c.execInc(&v)
		c.Memory.WriteByte(addr, v)
		return 19
	}
	table[0x35] = func(c *CPU) int {
		addr := effAddr(c)
		v := c.Memory.ReadByte(addr)
		c.execDec(&v)
		c.Memory.WriteByte(addr, v)
		return 19
	}
	table[0x36] = func(c *CPU) int {
		addr := effAddr(c)
		n := c.fetchByte()
		c.Memory.WriteByte(addr, n)
		return 15
	}

	// LD r,(index+d) / LD (index+d),r for the six plain registers.
	plainRegs := []struct {
		op  uint8
		get func(*CPU) *uint8
	}{
		{0x46, func(c *CPU) *uint8 { return &c.B }},
		{0x4E, func(c *CPU) *uint8 { return &c.C }},
		{0x56, func(c *CPU) *uint8 { return &c.D }},
		{0x5E, func(c *CPU) *uint8 { return &c.E }},
		{0x66, func(c *CPU) *uint8 { return &c.H }},
		{0x6E, func(c *CPU) *uint8 { return &c.L }},
		{0x7E, func(c *CPU) *uint8 { return &c.A }},
	}
	for _, r := range plainRegs {
		r := r
		table[r.op] = func(c *CPU) int { addr := effAddr(c); *r.get(c) = c.Memory.ReadByte(addr); return 15 }
	}
	storeRegs := []struct {
		op  uint8
		get func(*CPU) uint8
	}{
		{0x70, func(c *CPU) uint8 { return c.B }},
		{0x71, func(c *CPU) uint8 { return c.C }},
		{0x72, func(c *CPU) uint8 { return c.D }},
		{0x73, func(c *CPU) uint8 { return c.E }},
		{0x74, func(c *CPU) uint8 { return c.H }},
		{0x75, func(c *CPU) uint8 { return c.L }},
		{0x77, func(c *CPU) uint8 { return c.A }},
	}
	for _, r := range storeRegs {
		r := r
		table[r.op] = func(c *CPU) int { addr := effAddr(c); c.Memory.WriteByte(addr, r.get(c)); return 15 }
	}

	for y, op := range aluOps {
		y, op := uint8(y), op
		table[0x86+y*8] = func(c *CPU) int { addr := effAddr(c); op(c, c.Memory.ReadByte(addr)); return 15 }
	}

	// Undocumented IXH/IXL (IYH/IYL) 8-bit forms: INC/DEC/LD n/LD r,half,
	// half,r and ALU A,half.
	table[0x24] = func(c *CPU) int { v := getH(c); c.execInc(&v); setH(c, v); return 4 }
	table[0x25] = func(c *CPU) int { v := getH(c); c.execDec(&v); setH(c, v); return 4 }
	table[0x2C] = func(c *CPU) int { v := getL(c); c.execInc(&v); setL(c, v); return 4 }
	table[0x2D] = func(c *CPU) int { v := getL(c); c.execDec(&v); setL(c, v); return 4 }
	table[0x26] = func(c *CPU) int { setH(c, c.fetchByte()); return 7 }
	table[0x2E] = func(c *CPU) int { setL(c, c.fetchByte()); return 7 }

	// LD r,r' combinations where at least one side is IXH/IXL: every other
	// combination (both sides plain) leaves the table slot nil so dispatch
	// falls through to the root table's ordinary LD r,r', unaffected by the
	// prefix.
	type regSlot struct {
		idx uint8
		get func(*CPU) uint8
		set func(*CPU, uint8)
	}
	allRegs := []regSlot{
		{0, func(c *CPU) uint8 { return c.B }, func(c *CPU, v uint8) { c.B = v }},
		{1, func(c *CPU) uint8 { return c.C }, func(c *CPU, v uint8) { c.C = v }},
		{2, func(c *CPU) uint8 { return c.D }, func(c *CPU, v uint8) { c.D = v }},
		{3, func(c *CPU) uint8 { return c.E }, func(c *CPU, v uint8) { c.E = v }},
		{4, getH, setH},
		{5, getL, setL},
		{7, func(c *CPU) uint8 { return c.A }, func(c *CPU, v uint8) { c.A = v }},
	}
	isHalf := func(idx uint8) bool { return idx == 4 || idx == 5 }
	for _, dst := range allRegs {
		dst := dst
		for _, src := range allRegs {
			src := src
			if !isHalf(dst.idx) && !isHalf(src.idx) {
				continue
			}
			table[0x40+dst.idx*8+src.idx] = func(c *CPU) int { dst.set(c, src.get(c)); return 4 }
		}
	}

	for y, op := range aluOps {
		y, op := uint8(y), op
		table[0x84+y*8] = func(c *CPU) int { op(c, getH(c)); return 4 }
		table[0x85+y*8] = func(c *CPU) int { op(c, getL(c)); return 4 }
	}
}

func dispatchDD(c *CPU) int {
	op := c.fetchOpcodeByte()
	if op == 0xCB {
		return 4 + dispatchIndexedCB(c, func(c *CPU) uint16 { return c.IX })
	}
	if h := tableDD[op]; h != nil {
		return h(c)
	}
	return tableRoot[op](c)
}

func dispatchFD(c *CPU) int {
	op := c.fetchOpcodeByte()
	if op == 0xCB {
		return 4 + dispatchIndexedCB(c, func(c *CPU) uint16 { return c.IY })
	}
	if h := tableFD[op]; h != nil {
		return h(c)
	}
	return tableRoot[op](c)
}
