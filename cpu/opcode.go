package cpu

import (
	"fmt"
)

// Op is the 2-bit instruction operation field.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD = Op(0) // add
	OP_SUB = Op(1) // sub
	OP_MUL = Op(2) // mul
	OP_MOV = Op(3) // mov
)

// Code is a packed instruction byte: bits [7:6] operation, [5:4]
// destination register, [3:2] source 1, [1:0] source 2.
//
// The register fields are 2 bits wide and address r0-r3 only, while
// the register file holds eight registers. The asymmetry is part of
// the toy encoding.
type Code uint8

// MakeCode packs an instruction byte from its fields.
func MakeCode(op Op, dst, src1, src2 int) Code {
	return Code((uint8(op)&0x3)<<6 | (uint8(dst)&0x3)<<4 | (uint8(src1)&0x3)<<2 | (uint8(src2) & 0x3))
}

// Op returns the operation field.
func (code Code) Op() Op {
	return Op((code >> 6) & 0x3)
}

// Dst returns the destination register field.
func (code Code) Dst() int {
	return int((code >> 4) & 0x3)
}

// Src1 returns the first source register field.
func (code Code) Src1() int {
	return int((code >> 2) & 0x3)
}

// Src2 returns the second source register field.
func (code Code) Src2() int {
	return int(code & 0x3)
}

func (code Code) String() string {
	return fmt.Sprintf("%v r%d,r%d,r%d", code.Op(), code.Dst(), code.Src1(), code.Src2())
}
