package z80

import "testing"

type recordingIO struct {
	ports map[uint16]uint8
}

func (io *recordingIO) ReadPort(port uint16) uint8 {
	if v, ok := io.ports[port]; ok {
		return v
	}
	return 0xFF
}

func (io *recordingIO) WritePort(port uint16, v uint8) {
	if io.ports == nil {
		io.ports = make(map[uint16]uint8)
	}
	io.ports[port] = v
}

func TestIniReadsPortIntoMemoryAndDecrementsB(t *testing.T) {
	mem := &FlatMemory{}
	io := &recordingIO{ports: map[uint16]uint8{0x10FE: 0x77}}
	c := NewCPU(mem, io)
	c.B, c.C = 0x10, 0xFE
	c.SetHL(0x4000)

	b := c.blockInStep(true)

	if mem[0x4000] != 0x77 {
		t.Errorf("mem[0x4000] = %#02x, want 0x77", mem[0x4000])
	}
	if b != 0x0F {
		t.Errorf("B = %#02x, want 0x0f", b)
	}
	if c.HL() != 0x4001 {
		t.Errorf("HL = %#04x, want 0x4001", c.HL())
	}
}

func TestOtirRepeatsUntilBIsZero(t *testing.T) {
	mem := &FlatMemory{}
	io := &recordingIO{}
	c := NewCPU(mem, io)
	mem[0x5000], mem[0x5001] = 0xAA, 0xBB
	c.SetHL(0x5000)
	c.B, c.C = 0x02, 0x10
	c.Memory.WriteByte(0x0100, 0xED)
	c.Memory.WriteByte(0x0101, 0xB3) // OTIR
	c.PC = 0x0100

	c.Step() // B: 2->1, still repeating
	if c.PC != 0x0100 {
		t.Fatalf("PC = %#04x, want 0x0100 (still repeating)", c.PC)
	}
	c.Step() // B: 1->0, terminates
	if c.PC != 0x0102 {
		t.Errorf("PC = %#04x, want 0x0102", c.PC)
	}
	if c.B != 0 {
		t.Errorf("B = %#02x, want 0", c.B)
	}
	if io.ports[0x0010] != 0xBB {
		t.Errorf("last byte written to port = %#02x, want 0xbb", io.ports[0x0010])
	}
}
