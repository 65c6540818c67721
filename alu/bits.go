package alu

import (
	"github.com/AVEng123/Microcontroller-CPU-Model/gate"
)

// Vec is an 8-bit vector, least significant bit at index 0.
type Vec [8]gate.Bit

// Wide is a 16-bit result vector, low byte first.
type Wide [16]gate.Bit

// VecOf builds a Vec from the low 8 bits of value.
func VecOf(value uint32) (v Vec) {
	for n := range v {
		v[n] = gate.Bit((value >> n) & 1)
	}
	return
}

// VecFromBits converts a raw bit slice into a Vec.
// The slice must be exactly 8 bits.
func VecFromBits(bits []gate.Bit) (v Vec, err error) {
	if len(bits) != len(v) {
		err = ErrVecWidth
		return
	}
	copy(v[:], bits)
	return
}

// Uint returns the unsigned value of the vector.
func (v Vec) Uint() (value uint32) {
	for n, bit := range v {
		value |= uint32(bit&1) << n
	}
	return
}

// Uint returns the unsigned value of the vector.
func (w Wide) Uint() (value uint32) {
	for n, bit := range w {
		value |= uint32(bit&1) << n
	}
	return
}

// Low returns the low byte of the vector.
func (w Wide) Low() (v Vec) {
	copy(v[:], w[:8])
	return
}

// widen places v in the low byte of a Wide with a zeroed high byte.
func widen(v Vec) (w Wide) {
	copy(w[:8], v[:])
	return
}

// join packs two bytes into a Wide, low byte first.
func join(low, high Vec) (w Wide) {
	copy(w[:8], low[:])
	copy(w[8:], high[:])
	return
}
