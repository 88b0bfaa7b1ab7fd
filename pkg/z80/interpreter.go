package z80

// Step executes exactly one instruction (or one HALT-state tick) and
// returns its T-state cost: an interrupt check at the boundary, then
// either the HALT tick or a real opcode fetch through the prefix chain.
func (c *CPU) Step() int {
	if t := c.acknowledgeInterrupts(); t != 0 {
		c.Cycles += uint64(t)
		return t
	}

	if c.Halted {
		c.Cycles += 4
		c.IncR()
		return 4
	}

	op := c.fetchOpcodeByte()
	t := tableRoot[op](c)
	c.Cycles += uint64(t)
	return t
}

// Run steps the CPU until at least maxCycles T-states have elapsed,
// returning the number actually consumed. Provided for cmd/z80run and
// tests that want to drive a fixed number of frames' worth of T-states
// rather than single-stepping.
func (c *CPU) Run(maxCycles uint64) uint64 {
	var spent uint64
	for spent < maxCycles {
		spent += uint64(c.Step())
	}
	return spent
}
