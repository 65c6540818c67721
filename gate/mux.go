package gate

// Multiplexer2to1 selects between two inputs:
// out = OR(AND(a, NOT sel), AND(b, sel)).
type Multiplexer2to1 struct {
	Label string

	And1 And
	And2 And
	Or   Or
	Not  Not

	Out Bit
}

func (mux *Multiplexer2to1) Execute(a, b, sel Bit) Bit {
	notSel := mux.Not.Execute(sel)
	term1 := mux.And1.Execute(a, notSel)
	term2 := mux.And2.Execute(b, sel)
	mux.Out = mux.Or.Execute(term1, term2)
	return mux.Out
}
