package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	assert.True(mem.Write(0x40, 99))
	assert.Equal(uint8(99), mem.Read(0x40))
	assert.Equal(0x40, mem.LastAddress)
	assert.Equal(uint8(99), mem.LastData)

	assert.True(mem.Write(0, 0x1ff))
	assert.Equal(uint8(0xff), mem.Read(0))
}

func TestMemory_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Write(10, 7)

	assert.False(mem.Write(256, 1))
	assert.False(mem.Write(-1, 1))
	assert.Equal(uint8(0), mem.Read(256))
	assert.Equal(uint8(0), mem.Read(-1))

	// Absorbed accesses do not disturb the last-access record.
	assert.Equal(10, mem.LastAddress)
	assert.Equal(uint8(7), mem.LastData)
}

func TestMemory_RangeWraps(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Write(254, 1)
	mem.Write(255, 2)
	mem.Write(0, 3)

	cells := mem.Range(254, 3)
	assert.Len(cells, 3)
	assert.Equal(MemoryCell{Address: 254, Value: 1}, cells[0])
	assert.Equal(MemoryCell{Address: 255, Value: 2}, cells[1])
	assert.Equal(MemoryCell{Address: 0, Value: 3}, cells[2])

	// Out-of-range window starts wrap too.
	cells = mem.Range(300, 1)
	assert.Equal(44, cells[0].Address)
}

func TestMemory_Reset(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Write(5, 5)

	mem.Reset()
	assert.Equal(uint8(0), mem.Read(5))
	assert.Equal(uint8(0), mem.LastData)
}
