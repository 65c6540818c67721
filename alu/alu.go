package alu

import (
	"github.com/AVEng123/Microcontroller-CPU-Model/gate"
)

// AluOp selects an arithmetic unit.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD  = AluOp(0) // add
	ALU_OP_SUB  = AluOp(1) // sub
	ALU_OP_MUL  = AluOp(2) // mul
	ALU_OP_DIV  = AluOp(3) // div
	ALU_OP_FADD = AluOp(4) // fadd
	ALU_OP_FMUL = AluOp(5) // fmul
)

// Flags is the ALU status word. Zero and Sign are recomputed on every
// call from the result; Carry and Overflow are written only by the
// paths that produce them, so they hold their previous value across
// other operations.
type Flags struct {
	Carry    gate.Bit
	Zero     gate.Bit
	Overflow gate.Bit
	Sign     gate.Bit
}

// Alu owns one instance of each arithmetic unit and dispatches on the
// low 3 bits of the operation code. Operations 6 and 7 leave the
// previous result in place.
type Alu struct {
	Label string

	Adder      RippleCarryAdder
	Subtractor TwosComplementSubtractor
	Multiplier ShiftAndAddMultiplier
	Divider    Divider
	Fpu        Fpu

	Result Wide
	Flags  Flags
}

// Execute runs one ALU operation and recomputes the flags.
//
// The divide path reports divide-by-zero on the carry flag; the unit
// has no dedicated fault line, so carry is overloaded. Overflow is
// written only by the add path.
func (alu *Alu) Execute(a, b Vec, op AluOp) (result Wide, flags Flags) {
	switch op & 0x7 {
	case ALU_OP_ADD:
		sum, carry, overflow := alu.Adder.Execute(a, b)
		alu.Result = widen(sum)
		alu.Flags.Carry = carry
		alu.Flags.Overflow = overflow
	case ALU_OP_SUB:
		diff, borrow := alu.Subtractor.Execute(a, b)
		alu.Result = widen(diff)
		alu.Flags.Carry = borrow
	case ALU_OP_MUL:
		alu.Result = alu.Multiplier.Execute(a, b)
	case ALU_OP_DIV:
		quot, rem, divZero := alu.Divider.Execute(a, b)
		alu.Result = join(quot, rem)
		alu.Flags.Carry = 0
		if divZero {
			alu.Flags.Carry = 1
		}
	case ALU_OP_FADD:
		alu.Result = widen(alu.Fpu.Add(a, b))
	case ALU_OP_FMUL:
		alu.Result = widen(alu.Fpu.Multiply(a, b))
	}

	alu.Flags.Zero = 1
	for _, bit := range alu.Result[:8] {
		if bit != 0 {
			alu.Flags.Zero = 0
			break
		}
	}
	alu.Flags.Sign = alu.Result[7]

	return alu.Result, alu.Flags
}
