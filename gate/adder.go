package gate

// HalfAdder adds two bits: sum = a XOR b, carry = a AND b.
type HalfAdder struct {
	Label string

	Xor Xor
	And And

	Sum   Bit
	Carry Bit
}

func (ha *HalfAdder) Execute(a, b Bit) (sum, carry Bit) {
	ha.Sum = ha.Xor.Execute(a, b)
	ha.Carry = ha.And.Execute(a, b)
	return ha.Sum, ha.Carry
}

// FullAdder adds two bits plus a carry-in, built from two half adders
// and an OR gate combining their carries.
type FullAdder struct {
	Label string

	Ha1 HalfAdder
	Ha2 HalfAdder
	Or  Or

	Sum      Bit
	CarryOut Bit
}

func (fa *FullAdder) Execute(a, b, carryIn Bit) (sum, carryOut Bit) {
	s1, c1 := fa.Ha1.Execute(a, b)
	sum, c2 := fa.Ha2.Execute(s1, carryIn)
	fa.Sum = sum
	fa.CarryOut = fa.Or.Execute(c1, c2)
	return fa.Sum, fa.CarryOut
}

// OneBitSubtractor computes a - b - borrowIn as FullAdder(a, NOT b, borrowIn).
//
// This is one's-complement-plus-carry, not true borrow logic: the
// "borrow" outputs follow full-adder carry semantics. The 8-bit
// subtractor seeds the chain with carry-in 1 to complete the two's
// complement.
type OneBitSubtractor struct {
	Label string

	Fa   FullAdder
	NotB Not

	Difference Bit
	BorrowOut  Bit
}

func (sb *OneBitSubtractor) Execute(a, b, borrowIn Bit) (difference, borrowOut Bit) {
	inverted := sb.NotB.Execute(b)
	sb.Difference, sb.BorrowOut = sb.Fa.Execute(a, inverted, borrowIn)
	return sb.Difference, sb.BorrowOut
}
