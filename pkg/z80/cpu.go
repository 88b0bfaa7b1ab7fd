package z80

// CPU is the single owned struct that holds the register file plus the
// memory/IO collaborators and drives the interpreter loop. There is no
// factory/lazy-getter split between "indexed" and other operation groups:
// every primitive is a method (or a plain function taking *CPU) on this one
// type, called directly.
type CPU struct {
	Registers

	Memory Memory
	IO     IO

	// Cycles is the monotonic T-state counter.
	Cycles uint64

	// Debug gates the diagnostic log line for an unmapped ED opcode. Never
	// enabled by default — the core must never spam stdout/stderr in
	// production use.
	Debug bool

	irqPending bool
	irqVector  uint8
	nmiPending bool
}

// NewCPU constructs a CPU wired to the given memory and I/O collaborators
// and resets it to the power-on state.
func NewCPU(mem Memory, io IO) *CPU {
	c := &CPU{Memory: mem, IO: io}
	c.Reset()
	return c
}

// Reset returns the CPU to the power-on state. The cycle counter and
// pending-interrupt latches are cleared too.
func (c *CPU) Reset() {
	c.Registers.Reset()
	c.Cycles = 0
	c.irqPending = false
	c.irqVector = 0
	c.nmiPending = false
}

// fetchByte reads the byte at PC and advances PC by one, wrapping at
// 0x10000. It is a helper layered on top of the memory contract, not
// itself part of the Memory interface.
func (c *CPU) fetchByte() uint8 {
	v := c.Memory.ReadByte(c.PC)
	c.PC++
	return v
}

// fetchOpcodeByte fetches a byte that counts toward the R-register refresh
// policy: the root opcode/prefix byte itself, the CB sub-opcode, the ED
// sub-opcode, and the byte following a DD/FD prefix. The displacement and
// final sub-opcode bytes of a DD-CB/FD-CB sequence do not call this.
func (c *CPU) fetchOpcodeByte() uint8 {
	v := c.fetchByte()
	c.IncR()
	return v
}

// fetchWord fetches two bytes (low, then high) via fetchByte.
func (c *CPU) fetchWord() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

// fetchDisp fetches a signed 8-bit displacement, used by the (IX+d)/(IY+d)
// addressing modes.
func (c *CPU) fetchDisp() int8 { return int8(c.fetchByte()) }

// pushWord decrements SP by two and writes v at the new SP.
func (c *CPU) pushWord(v uint16) {
	c.SP -= 2
	c.Memory.WriteWord(c.SP, v)
}

// popWord reads the word at SP and increments SP by two.
func (c *CPU) popWord() uint16 {
	v := c.Memory.ReadWord(c.SP)
	c.SP += 2
	return v
}
