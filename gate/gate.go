package gate

// Bit is a single logic level, 0 or 1.
//
// Gates compare inputs against 1, so a Bit holding any other value
// behaves as logic low. Callers constructing Bits from wider integers
// should mask with &1.
type Bit uint8

// And is a two-input AND gate.
type And struct {
	Label string
	Out   Bit // Last computed output.
}

func (g *And) Execute(a, b Bit) Bit {
	g.Out = 0
	if a == 1 && b == 1 {
		g.Out = 1
	}
	return g.Out
}

// Or is a two-input OR gate.
type Or struct {
	Label string
	Out   Bit // Last computed output.
}

func (g *Or) Execute(a, b Bit) Bit {
	g.Out = 0
	if a == 1 || b == 1 {
		g.Out = 1
	}
	return g.Out
}

// Not is an inverter.
type Not struct {
	Label string
	Out   Bit // Last computed output.
}

func (g *Not) Execute(a Bit) Bit {
	g.Out = 0
	if a == 0 {
		g.Out = 1
	}
	return g.Out
}

// Xor is a two-input XOR gate.
type Xor struct {
	Label string
	Out   Bit // Last computed output.
}

func (g *Xor) Execute(a, b Bit) Bit {
	g.Out = 0
	if a != b {
		g.Out = 1
	}
	return g.Out
}

// Nand is a two-input NAND gate.
type Nand struct {
	Label string
	Out   Bit // Last computed output.
}

func (g *Nand) Execute(a, b Bit) Bit {
	g.Out = 1
	if a == 1 && b == 1 {
		g.Out = 0
	}
	return g.Out
}

// Nor is a two-input NOR gate.
type Nor struct {
	Label string
	Out   Bit // Last computed output.
}

func (g *Nor) Execute(a, b Bit) Bit {
	g.Out = 0
	if a == 0 && b == 0 {
		g.Out = 1
	}
	return g.Out
}
