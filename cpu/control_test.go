package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_Fields(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		code Code
		op   Op
		dst  int
		src1 int
		src2 int
	}){
		{"add_r2_r0_r1", MakeCode(OP_ADD, 2, 0, 1), OP_ADD, 2, 0, 1},
		{"sub_r0_r3_r3", MakeCode(OP_SUB, 0, 3, 3), OP_SUB, 0, 3, 3},
		{"mul_r1_r2_r0", MakeCode(OP_MUL, 1, 2, 0), OP_MUL, 1, 2, 0},
		{"mov_r3_r1_r2", MakeCode(OP_MOV, 3, 1, 2), OP_MOV, 3, 1, 2},
	}

	for _, entry := range table {
		assert.Equal(entry.op, entry.code.Op(), entry.name)
		assert.Equal(entry.dst, entry.code.Dst(), entry.name)
		assert.Equal(entry.src1, entry.code.Src1(), entry.name)
		assert.Equal(entry.src2, entry.code.Src2(), entry.name)
	}

	// Register fields clip to 2 bits.
	code := MakeCode(OP_ADD, 5, 0, 0)
	assert.Equal(1, code.Dst())
}

func TestControlUnit_Decode(t *testing.T) {
	assert := assert.New(t)

	cu := &ControlUnit{}

	op, dst, src1, src2 := cu.Decode(MakeCode(OP_ADD, 2, 0, 1))
	assert.Equal(OP_ADD, op)
	assert.Equal(2, dst)
	assert.Equal(0, src1)
	assert.Equal(1, src2)
	assert.Equal(Code(0b00_10_00_01), cu.Ir)
	assert.Equal("ADD", cu.OperationName())

	cu.Decode(MakeCode(OP_MOV, 0, 0, 0))
	assert.Equal("MOV", cu.OperationName())
}

func TestControlUnit_IncrementPcWraps(t *testing.T) {
	assert := assert.New(t)

	cu := &ControlUnit{}

	for range 256 {
		cu.IncrementPc()
	}
	assert.Equal(uint8(0), cu.Pc)

	cu.IncrementPc()
	assert.Equal(uint8(1), cu.Pc)
}

func TestControlUnit_Reset(t *testing.T) {
	assert := assert.New(t)

	cu := &ControlUnit{}
	cu.Decode(MakeCode(OP_MUL, 3, 2, 1))
	cu.IncrementPc()

	cu.Reset()
	assert.Equal(uint8(0), cu.Pc)
	assert.Equal(Code(0), cu.Ir)
	assert.Equal(OP_ADD, cu.Op)
	assert.Equal(0, cu.Dst)
}
