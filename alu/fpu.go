package alu

import (
	"math"

	"github.com/AVEng123/Microcontroller-CPU-Model/gate"
)

// Toy float8 field layout, LSB first: bits [0:4] mantissa (most
// significant fraction bit at index 0), bits [4:7] exponent, bit 7
// sign.
const (
	FLOAT8_BIAS    = 3 // Exponent bias.
	FLOAT8_EXP_INF = 7 // Exponent value encoding infinity.
)

// Fpu is the toy 8-bit floating point unit. It is not IEEE-754:
// exponent value 0 encodes zero, exponent value 7 encodes infinity,
// and arithmetic decodes both operands to real values, computes in
// full precision, then re-encodes with greedy 4-bit mantissa
// extraction. Encoding loss on the re-encode is expected.
type Fpu struct {
	Label string

	SignBit  gate.Bit
	Exponent [3]gate.Bit
	Mantissa [4]gate.Bit

	Value      float64
	IsZero     bool
	IsInfinity bool
}

// Parse decodes a float8 vector and returns its real value.
func (fpu *Fpu) Parse(v Vec) (value float64) {
	fpu.SignBit = v[7]
	copy(fpu.Exponent[:], v[4:7])
	copy(fpu.Mantissa[:], v[0:4])
	fpu.evaluate()
	return fpu.Value
}

// ParseBits decodes from a raw bit slice, failing fast if the slice
// is not exactly 8 bits.
func (fpu *Fpu) ParseBits(bits []gate.Bit) (value float64, err error) {
	v, err := VecFromBits(bits)
	if err != nil {
		return
	}
	value = fpu.Parse(v)
	return
}

func (fpu *Fpu) evaluate() {
	expVal := 0
	for n, bit := range fpu.Exponent {
		expVal += int(bit) << n
	}

	mantissaVal := 1.0
	for n, bit := range fpu.Mantissa {
		if bit == 1 {
			mantissaVal += math.Pow(2, float64(-n-1))
		}
	}

	switch expVal {
	case 0:
		fpu.IsZero = true
		fpu.Value = 0.0
	case FLOAT8_EXP_INF:
		fpu.IsInfinity = true
		fpu.Value = math.Inf(1)
	default:
		sign := 1.0
		if fpu.SignBit == 1 {
			sign = -1.0
		}
		fpu.Value = sign * mantissaVal * math.Pow(2, float64(expVal-FLOAT8_BIAS))
		fpu.IsZero = false
		fpu.IsInfinity = false
	}
}

// CreateFromFloat encodes a real value into the float8 format. The
// exponent clamps to [0,7]; clamping to 0 marks zero and clamping to
// 7 marks infinity. Mantissa bits come from greedy binary fraction
// extraction, most significant first.
func (fpu *Fpu) CreateFromFloat(value float64) (v Vec) {
	if value == 0 || math.IsNaN(value) {
		// The toy format has no NaN; it encodes as zero.
		fpu.SignBit = 0
		fpu.Exponent = [3]gate.Bit{}
		fpu.Mantissa = [4]gate.Bit{}
		fpu.IsZero = true
		return Vec{}
	}

	fpu.SignBit = 0
	if value < 0 {
		fpu.SignBit = 1
	}
	value = math.Abs(value)

	if math.IsInf(value, 0) {
		fpu.Exponent = [3]gate.Bit{1, 1, 1}
		fpu.Mantissa = [4]gate.Bit{}
		fpu.IsInfinity = true
		return fpu.pack()
	}

	exp := int(math.Floor(math.Log2(value)))
	expBiased := exp + FLOAT8_BIAS
	switch {
	case expBiased >= FLOAT8_EXP_INF:
		fpu.IsInfinity = true
		expBiased = FLOAT8_EXP_INF
	case expBiased <= 0:
		expBiased = 0
		fpu.IsZero = true
	}
	for n := range fpu.Exponent {
		fpu.Exponent[n] = gate.Bit((expBiased >> n) & 1)
	}

	// The fraction is extracted against the unclamped exponent.
	mantissaVal := value/math.Pow(2, float64(exp)) - 1.0
	for n := range fpu.Mantissa {
		bitVal := math.Pow(2, float64(-n-1))
		fpu.Mantissa[n] = 0
		if mantissaVal >= bitVal {
			fpu.Mantissa[n] = 1
			mantissaVal -= bitVal
		}
	}

	return fpu.pack()
}

func (fpu *Fpu) pack() (v Vec) {
	copy(v[0:4], fpu.Mantissa[:])
	copy(v[4:7], fpu.Exponent[:])
	v[7] = fpu.SignBit
	return
}

// Add decodes both operands, adds in full precision, and re-encodes.
func (fpu *Fpu) Add(a, b Vec) (result Vec) {
	v1 := fpu.Parse(a)
	v2 := fpu.Parse(b)
	return fpu.CreateFromFloat(v1 + v2)
}

// Multiply decodes both operands, multiplies in full precision, and
// re-encodes.
func (fpu *Fpu) Multiply(a, b Vec) (result Vec) {
	v1 := fpu.Parse(a)
	v2 := fpu.Parse(b)
	return fpu.CreateFromFloat(v1 * v2)
}
