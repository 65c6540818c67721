package alu

const (
	DIV_ITERATION_LIMIT = 255 // Quotient cap guarding the subtraction loop.
)

// Divider is a simplified division unit: repeated subtraction in
// integer space rather than a restoring gate-level divider.
type Divider struct {
	Label string

	Quotient       Vec
	Remainder      Vec
	DivisionByZero bool
}

// Execute divides dividend by divisor. A zero divisor returns a zero
// quotient, the dividend as remainder, and the divisionByZero flag;
// no error is ever raised.
func (div *Divider) Execute(dividend, divisor Vec) (quotient, remainder Vec, divisionByZero bool) {
	if divisor.Uint() == 0 {
		div.Quotient = Vec{}
		div.Remainder = dividend
		div.DivisionByZero = true
		return div.Quotient, div.Remainder, true
	}
	div.DivisionByZero = false

	q := uint32(0)
	rem := dividend.Uint()
	d := divisor.Uint()
	for rem >= d {
		rem -= d
		q++
		if q > DIV_ITERATION_LIMIT {
			break
		}
	}

	div.Quotient = VecOf(q)
	div.Remainder = VecOf(rem)

	return div.Quotient, div.Remainder, false
}
