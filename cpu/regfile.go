package cpu

import (
	"fmt"
)

const (
	REGISTER_COUNT = 8 // Byte-wide registers r0-r7.
)

// RegisterFile holds the eight byte-wide registers. By convention r7
// doubles as a stack pointer; no component enforces stack semantics,
// it is an ordinary addressable register.
type RegisterFile struct {
	Registers [REGISTER_COUNT]uint8
}

// RegisterName returns the conventional name of a register index.
func RegisterName(index int) string {
	return fmt.Sprintf("R%d", index)
}

// Read returns a register value, or 0 for an out-of-range index.
func (rf *RegisterFile) Read(index int) (value uint8) {
	if inRange(index, len(rf.Registers)) {
		value = rf.Registers[index]
	}
	return
}

// Write stores the low 8 bits of value. An out-of-range index is a
// no-op reporting ok=false.
func (rf *RegisterFile) Write(index int, value uint32) (ok bool) {
	if !inRange(index, len(rf.Registers)) {
		return
	}
	rf.Registers[index] = uint8(value & 0xff)
	return true
}

// All returns a name-to-value snapshot of every register.
func (rf *RegisterFile) All() (regs map[string]uint8) {
	regs = make(map[string]uint8, len(rf.Registers))
	for n, value := range rf.Registers {
		regs[RegisterName(n)] = value
	}
	return
}

// Reset clears every register.
func (rf *RegisterFile) Reset() {
	clear(rf.Registers[:])
}
