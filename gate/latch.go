package gate

// SRLatch is a set/reset latch with persistent state.
//
// The latch powers up with Q=0, QBar=1. Asserting set and reset
// simultaneously holds the previous state; no race is modeled.
type SRLatch struct {
	Label string

	Nor1 Nor
	Nor2 Nor

	Q    Bit
	QBar Bit
}

// NewSRLatch creates a latch in its cleared state.
func NewSRLatch(label string) (sr *SRLatch) {
	sr = &SRLatch{Label: label}
	sr.QBar = 1
	return
}

func (sr *SRLatch) Execute(set, reset Bit) (q, qBar Bit) {
	switch {
	case set == 1 && reset == 1:
		// hold; unresolved race
	case set == 1:
		sr.Q = 1
		sr.QBar = 0
	case reset == 1:
		sr.Q = 0
		sr.QBar = 1
	}
	return sr.Q, sr.QBar
}

// Set drives the latch to Q=1.
func (sr *SRLatch) Set() (q, qBar Bit) {
	return sr.Execute(1, 0)
}

// Reset drives the latch to Q=0.
func (sr *SRLatch) Reset() (q, qBar Bit) {
	return sr.Execute(0, 1)
}

// Hold leaves the latch unchanged.
func (sr *SRLatch) Hold() (q, qBar Bit) {
	return sr.Execute(0, 0)
}

// DLatch is a transparent data latch built on an SR latch with
// AND-gated set/reset inputs. While enable is 1 the output follows
// data; while enable is 0 the latch holds.
type DLatch struct {
	Label string

	Sr   *SRLatch
	Not  Not
	And1 And
	And2 And

	Q    Bit
	QBar Bit
}

// NewDLatch creates a latch in its cleared state.
func NewDLatch(label string) (dl *DLatch) {
	dl = &DLatch{Label: label}
	dl.Sr = NewSRLatch(label + "_SR")
	dl.QBar = 1
	return
}

func (dl *DLatch) Execute(data, enable Bit) (q, qBar Bit) {
	notData := dl.Not.Execute(data)
	set := dl.And1.Execute(data, enable)
	reset := dl.And2.Execute(notData, enable)
	dl.Q, dl.QBar = dl.Sr.Execute(set, reset)
	return dl.Q, dl.QBar
}
