package cpu

import (
	"strings"
)

// ControlUnit decodes packed instruction bytes and owns the program
// counter.
type ControlUnit struct {
	Pc uint8 // Program counter; advances modulo 256.
	Ir Code  // Instruction register, the last decoded byte.

	Op   Op
	Dst  int
	Src1 int
	Src2 int
}

// Decode unpacks an instruction byte into its operation and register
// fields.
func (cu *ControlUnit) Decode(instr Code) (op Op, dst, src1, src2 int) {
	cu.Ir = instr
	cu.Op = instr.Op()
	cu.Dst = instr.Dst()
	cu.Src1 = instr.Src1()
	cu.Src2 = instr.Src2()
	return cu.Op, cu.Dst, cu.Src1, cu.Src2
}

// OperationName returns the decoded operation's name in upper case.
func (cu *ControlUnit) OperationName() string {
	return strings.ToUpper(cu.Op.String())
}

// IncrementPc advances the program counter, wrapping silently at 256.
func (cu *ControlUnit) IncrementPc() {
	cu.Pc++
}

// Reset returns the control unit to its power-on state.
func (cu *ControlUnit) Reset() {
	cu.Pc = 0
	cu.Ir = 0
	cu.Op = 0
	cu.Dst = 0
	cu.Src1 = 0
	cu.Src2 = 0
}
