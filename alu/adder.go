package alu

import (
	"github.com/AVEng123/Microcontroller-CPU-Model/gate"
)

// RippleCarryAdder chains 8 full adders, each bit's carry-out feeding
// the next bit's carry-in.
type RippleCarryAdder struct {
	Label string

	Adders [8]gate.FullAdder

	Result   Vec
	CarryOut gate.Bit
	Overflow gate.Bit
}

// Execute adds two vectors. Overflow follows the two's-complement
// rule: both operand sign bits equal, result sign bit different.
func (rca *RippleCarryAdder) Execute(a, b Vec) (sum Vec, carryOut, overflow gate.Bit) {
	carry := gate.Bit(0)
	for n := range rca.Adders {
		rca.Result[n], carry = rca.Adders[n].Execute(a[n], b[n], carry)
	}
	rca.CarryOut = carry

	rca.Overflow = 0
	if a[7] == b[7] && rca.Result[7] != a[7] {
		rca.Overflow = 1
	}

	return rca.Result, rca.CarryOut, rca.Overflow
}

// TwosComplementSubtractor computes a - b as a + NOT(b) + 1, reusing
// the adder's per-bit full adders directly so the carry-in can be
// seeded to 1.
type TwosComplementSubtractor struct {
	Label string

	Adder     RippleCarryAdder
	Inverters [8]gate.Not

	Result    Vec
	BorrowOut gate.Bit
}

func (sub *TwosComplementSubtractor) Execute(a, b Vec) (result Vec, borrowOut gate.Bit) {
	carry := gate.Bit(1)
	for n := range sub.Adder.Adders {
		inverted := sub.Inverters[n].Execute(b[n])
		sub.Result[n], carry = sub.Adder.Adders[n].Execute(a[n], inverted, carry)
	}
	sub.BorrowOut = carry

	return sub.Result, sub.BorrowOut
}
