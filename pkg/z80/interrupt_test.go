package z80

import "testing"

// TestIrqMode1 is P8.
func TestIrqMode1(t *testing.T) {
	c, _ := newTestCPU()
	c.IM = 1
	c.IFF1, c.IFF2 = true, true
	c.PC = 0x1234
	c.SP = 0x8000

	c.RequestIRQ(0)
	tStates := c.Step()

	if tStates != 13 {
		t.Errorf("cost = %d, want 13", tStates)
	}
	if c.Cycles != 13 {
		t.Errorf("cycles = %d, want 13", c.Cycles)
	}
	if c.IFF1 || c.IFF2 {
		t.Error("IFF1/IFF2 should be cleared")
	}
	if c.PC != 0x0038 {
		t.Errorf("PC = %#04x, want 0x0038", c.PC)
	}
	if c.SP != 0x7FFE {
		t.Errorf("SP = %#04x, want 0x7ffe", c.SP)
	}
	if c.Memory.ReadWord(0x7FFE) != 0x1234 {
		t.Errorf("pushed return address = %#04x, want 0x1234", c.Memory.ReadWord(0x7FFE))
	}
}

// TestHaltResumption is P9.
func TestHaltResumption(t *testing.T) {
	c, _ := newTestCPU()
	c.IM = 1
	c.IFF1, c.IFF2 = true, true
	c.Halted = true
	c.PC = 0x1234

	c.RequestIRQ(0)
	c.Step()

	if c.Halted {
		t.Error("HALT should be cleared")
	}
	if c.PC != 0x0038 {
		t.Errorf("PC = %#04x, want 0x0038", c.PC)
	}
}

// TestInterruptMode2 is scenario S6.
func TestInterruptMode2(t *testing.T) {
	c, mem := newTestCPU()
	c.I = 0x80
	mem[0x80FF] = 0x34
	mem[0x8100] = 0x12
	c.SP = 0x6000
	c.PC = 0x9000
	c.IM = 2
	c.IFF1, c.IFF2 = true, true

	c.RequestIRQ(0xFF)
	tStates := c.Step()

	if c.SP != 0x5FFE {
		t.Errorf("SP = %#04x, want 0x5ffe", c.SP)
	}
	if mem[0x5FFE] != 0x00 || mem[0x5FFF] != 0x90 {
		t.Errorf("pushed PC bytes = %02x %02x, want 00 90", mem[0x5FFE], mem[0x5FFF])
	}
	if c.PC != 0x1234 {
		t.Errorf("PC = %#04x, want 0x1234", c.PC)
	}
	if c.IFF1 || c.IFF2 {
		t.Error("IFF1/IFF2 should be cleared")
	}
	if tStates != 19 {
		t.Errorf("cost = %d, want 19", tStates)
	}
	if c.Cycles != 19 {
		t.Errorf("cycles = %d, want 19", c.Cycles)
	}
}

func TestNmiRestoresIff1ViaRetn(t *testing.T) {
	c, _ := newTestCPU()
	c.IFF1, c.IFF2 = true, true
	c.PC = 0x1234
	c.SP = 0x8000

	c.RequestNMI()
	c.Step()

	if c.IFF1 {
		t.Error("IFF1 should be false immediately after NMI acknowledgement")
	}
	if !c.IFF2 {
		t.Error("IFF2 should retain the prior IFF1 value (true)")
	}
	if c.PC != 0x0066 {
		t.Errorf("PC = %#04x, want 0x0066", c.PC)
	}

	// RETN: IFF1 = IFF2.
	c.Memory.WriteByte(0x0066, 0xED)
	c.Memory.WriteByte(0x0067, 0x45)
	c.Step()
	if !c.IFF1 {
		t.Error("RETN should restore IFF1 from IFF2")
	}
	if c.PC != 0x1234 {
		t.Errorf("PC after RETN = %#04x, want 0x1234", c.PC)
	}
}
