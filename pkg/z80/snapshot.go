package z80

// State is a value capturing the full register file plus the cycle
// counter, suitable for save/restore and for equality comparison in tests.
type State struct {
	A, F, B, C, D, E, H, L         uint8
	A_, F_, B_, C_, D_, E_, H_, L_ uint8
	IX, IY                         uint16
	SP, PC                         uint16
	I, R                           uint8
	IFF1, IFF2                     bool
	IM                             uint8
	Halted                         bool
	Cycles                         uint64
}

// Snapshot captures the current CPU state.
func (c *CPU) Snapshot() State {
	return State{
		A: c.A, F: c.F, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		A_: c.A_, F_: c.F_, B_: c.B_, C_: c.C_, D_: c.D_, E_: c.E_, H_: c.H_, L_: c.L_,
		IX: c.IX, IY: c.IY,
		SP: c.SP, PC: c.PC,
		I: c.I, R: c.R,
		IFF1: c.IFF1, IFF2: c.IFF2,
		IM:     c.IM,
		Halted: c.Halted,
		Cycles: c.Cycles,
	}
}

// Restore replaces the CPU's state with the given snapshot. Returns
// SnapshotMalformed, leaving the CPU untouched, if the snapshot cannot
// represent a valid CPU state — here, an interrupt mode outside the
// documented 0..2 range.
func (c *CPU) Restore(s State) error {
	if s.IM > 2 {
		return SnapshotMalformed
	}
	c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L = s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L
	c.A_, c.F_, c.B_, c.C_, c.D_, c.E_, c.H_, c.L_ = s.A_, s.F_, s.B_, s.C_, s.D_, s.E_, s.H_, s.L_
	c.IX, c.IY = s.IX, s.IY
	c.SP, c.PC = s.SP, s.PC
	c.I, c.R = s.I, s.R
	c.IFF1, c.IFF2 = s.IFF1, s.IFF2
	c.IM = s.IM
	c.Halted = s.Halted
	c.Cycles = s.Cycles
	return nil
}
