// Package alu implements the 8-bit arithmetic units and the ALU that
// dispatches between them.
//
// The adder and subtractor are built structurally from the gate
// package's full adders, rippling carry LSB to MSB. The multiplier
// accumulates shifted partial products through the ripple-carry adder.
// The divider and the toy 8-bit floating point unit sit above the
// gate level: division runs by repeated subtraction in
// integer space, and the FPU decodes to a real value, computes, and
// re-encodes.
//
// Values move as Vec (8 bits) and Wide (16 bits) vectors, least
// significant bit at index 0.
package alu
