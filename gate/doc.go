// Package gate implements the boolean logic layer of the datapath.
//
// The gate layer is the leaf of the composition chain: pure 1-bit
// functions (AND, OR, NOT, XOR, NAND, NOR) with standard truth tables.
// On top of them sit the composite combinational blocks (half adder,
// full adder, one-bit subtractor, 2-to-1 multiplexer) and the only
// genuinely stateful primitives in the whole model, the SR and D
// latches.
//
// Every gate records its last computed output for display consumers.
// The recorded output is never an input to a later computation.
package gate
