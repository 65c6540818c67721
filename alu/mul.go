package alu

import (
	"github.com/AVEng123/Microcontroller-CPU-Model/gate"
)

// ShiftAndAddMultiplier produces a 16-bit product from 8-bit partial
// sums. For each set bit i of b it adds a<<i, truncated to the low
// byte, into the low accumulator, and folds the adder's carry into
// the high accumulator.
//
// Bits of the shifted operand above bit 7 are discarded before the
// add; only the single ripple carry reaches the high byte, so the
// high word underestimates products wider than 9 bits. Products that
// fit in the low byte are exact.
type ShiftAndAddMultiplier struct {
	Label string

	Adders [8]RippleCarryAdder

	ProductLow  Vec
	ProductHigh Vec
}

func (mul *ShiftAndAddMultiplier) Execute(a, b Vec) (product Wide) {
	var low, high Vec
	for i := range b {
		if b[i] != 1 {
			continue
		}

		var part Vec
		for n := i; n < len(part); n++ {
			part[n] = a[n-i]
		}

		var carry gate.Bit
		low, carry, _ = mul.Adders[i].Execute(low, part)
		if carry == 1 {
			high = addWithCarry(high, Vec{carry})
		}
	}

	mul.ProductLow = low
	mul.ProductHigh = high

	return join(low, high)
}

// addWithCarry ripples a plain binary add, used to fold low-word
// carries into the high word.
func addWithCarry(a, b Vec) (result Vec) {
	carry := 0
	for n := range a {
		sum := int(a[n]) + int(b[n]) + carry
		result[n] = gate.Bit(sum & 1)
		carry = sum >> 1
	}
	return
}
