package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalfAdder(t *testing.T) {
	assert := assert.New(t)

	ha := &HalfAdder{Label: "HA"}

	table := [](struct {
		a, b       Bit
		sum, carry Bit
	}){
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{1, 0, 1, 0},
		{1, 1, 0, 1},
	}

	for _, entry := range table {
		sum, carry := ha.Execute(entry.a, entry.b)
		assert.Equal(entry.sum, sum, "sum(%v,%v)", entry.a, entry.b)
		assert.Equal(entry.carry, carry, "carry(%v,%v)", entry.a, entry.b)
	}
}

func TestFullAdder(t *testing.T) {
	assert := assert.New(t)

	fa := &FullAdder{Label: "FA"}

	for n := range 8 {
		a := Bit(n >> 2)
		b := Bit((n >> 1) & 1)
		cin := Bit(n & 1)

		sum, cout := fa.Execute(a, b, cin)

		total := int(a) + int(b) + int(cin)
		assert.Equal(Bit(total&1), sum, "sum(%v,%v,%v)", a, b, cin)
		assert.Equal(Bit(total>>1), cout, "carry(%v,%v,%v)", a, b, cin)
	}
}

func TestOneBitSubtractor(t *testing.T) {
	assert := assert.New(t)

	sb := &OneBitSubtractor{Label: "SUB"}

	// Full-adder semantics applied to (a, NOT b, borrowIn).
	for n := range 8 {
		a := Bit(n >> 2)
		b := Bit((n >> 1) & 1)
		bin := Bit(n & 1)

		diff, bout := sb.Execute(a, b, bin)

		total := int(a) + int(1-b) + int(bin)
		assert.Equal(Bit(total&1), diff, "diff(%v,%v,%v)", a, b, bin)
		assert.Equal(Bit(total>>1), bout, "borrow(%v,%v,%v)", a, b, bin)
	}
}
