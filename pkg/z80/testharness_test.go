package z80

// newTestCPU returns a CPU wired to fresh flat memory and a map-backed I/O
// collaborator, using plain stdlib testing (no testify) throughout.
func newTestCPU() (*CPU, *FlatMemory) {
	mem := &FlatMemory{}
	c := NewCPU(mem, NewMapIO())
	return c, mem
}
