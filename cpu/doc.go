// Package cpu implements the 8-bit processor datapath and its
// assembler.
//
// The processor composes the ALU with a file of eight byte-wide
// registers (r0-r7), 256 bytes of memory, a control unit owning the
// program counter, and data/address buses that record the most recent
// transfer for diagnostic consumers. Instructions are single packed
// bytes: a 2-bit operation plus three 2-bit register fields that
// address r0-r3 only.
//
// The datapath is total: out-of-range registers, addresses, and zero
// divisors are absorbed into default results and status flags, never
// raised as errors. The assembler provides mnemonics, equates, data
// directives, and compile-time expression evaluation for the fixed
// encoding.
package cpu
