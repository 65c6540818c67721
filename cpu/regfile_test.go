package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFile_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}

	for n := range REGISTER_COUNT {
		ok := rf.Write(n, uint32(n*10))
		assert.True(ok, "write r%d", n)
	}
	for n := range REGISTER_COUNT {
		assert.Equal(uint8(n*10), rf.Read(n), "read r%d", n)
	}
}

func TestRegisterFile_WriteMasks(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}

	rf.Write(0, 0x1ff)
	assert.Equal(uint8(0xff), rf.Read(0))

	rf.Write(1, 0x1234)
	assert.Equal(uint8(0x34), rf.Read(1))
}

func TestRegisterFile_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}
	for n := range REGISTER_COUNT {
		rf.Write(n, uint32(n+1))
	}
	before := rf.Registers

	// Failed writes leave every register at its prior value.
	assert.False(rf.Write(8, 5))
	assert.False(rf.Write(-1, 5))
	assert.Equal(before, rf.Registers)

	assert.Equal(uint8(0), rf.Read(8))
	assert.Equal(uint8(0), rf.Read(-1))
}

func TestRegisterFile_All(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}
	rf.Write(3, 42)

	regs := rf.All()
	assert.Len(regs, REGISTER_COUNT)
	assert.Equal(uint8(42), regs["R3"])
	assert.Equal(uint8(0), regs["R0"])
}

func TestRegisterFile_Reset(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}
	for n := range REGISTER_COUNT {
		rf.Write(n, 0xff)
	}

	rf.Reset()
	assert.Equal([REGISTER_COUNT]uint8{}, rf.Registers)
}
