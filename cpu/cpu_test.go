package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AVEng123/Microcontroller-CPU-Model/gate"
)

func TestCpu_ExecuteAdd(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Registers.Write(0, 10)
	cpu.Registers.Write(1, 20)

	value, flags, trace := cpu.ExecuteInstruction(MakeCode(OP_ADD, 2, 0, 1))

	assert.Equal(uint32(30), value)
	assert.Equal(uint8(30), cpu.Registers.Read(2))
	assert.Equal(gate.Bit(0), flags.Zero)
	assert.Equal(gate.Bit(0), flags.Carry)
	assert.Equal(1, cpu.Cycles)
	assert.Equal(uint8(1), cpu.Control.Pc)

	assert.Equal("ADD", trace.Operation)
	assert.Equal(2, trace.Dst)
	assert.Equal(0, trace.Src1)
	assert.Equal(1, trace.Src2)

	// The result transfer is visible on the data bus.
	assert.Equal(uint8(30), cpu.DataBus.Data)
	assert.Equal(BUS_ALU, cpu.DataBus.Source)
	assert.Equal("REG[R2]", cpu.DataBus.Destination)
}

func TestCpu_ExecuteSub(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Registers.Write(0, 20)
	cpu.Registers.Write(1, 20)

	value, flags, _ := cpu.ExecuteInstruction(MakeCode(OP_SUB, 3, 0, 1))
	assert.Equal(uint32(0), value)
	assert.Equal(gate.Bit(1), flags.Zero)
	assert.Equal(uint8(0), cpu.Registers.Read(3))
}

func TestCpu_ExecuteMul(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Registers.Write(1, 6)
	cpu.Registers.Write(2, 7)

	value, _, _ := cpu.ExecuteInstruction(MakeCode(OP_MUL, 0, 1, 2))
	assert.Equal(uint32(42), value)
	assert.Equal(uint8(42), cpu.Registers.Read(0))
}

func TestCpu_MovRunsDivideUnit(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Registers.Write(0, 17)
	cpu.Registers.Write(1, 5)

	// The 2-bit mov opcode dispatches ALU operation 3, the divider:
	// quotient in the low byte, remainder in the high byte.
	value, flags, trace := cpu.ExecuteInstruction(MakeCode(OP_MOV, 2, 0, 1))
	assert.Equal("MOV", trace.Operation)
	assert.Equal(uint32(3|(2<<8)), value)
	assert.Equal(uint8(3), cpu.Registers.Read(2)) // low byte only
	assert.Equal(gate.Bit(0), flags.Carry)
}

func TestCpu_DivideByZeroFlag(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Registers.Write(0, 9)

	_, flags, _ := cpu.ExecuteInstruction(MakeCode(OP_MOV, 2, 0, 1))
	assert.Equal(gate.Bit(1), flags.Carry)
	assert.Equal(uint8(0), cpu.Registers.Read(2))
}

func TestCpu_MemoryBusTrace(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	cpu.LoadMemory(0x40, 99)
	assert.Equal(uint8(0x40), cpu.AddressBus.Address)
	assert.Equal(BUS_CPU, cpu.AddressBus.Source)
	assert.Equal(uint8(99), cpu.DataBus.Data)
	assert.Equal(BUS_MEMORY, cpu.DataBus.Destination)

	value := cpu.ReadMemory(0x40)
	assert.Equal(uint8(99), value)
	assert.Equal(uint8(0x40), cpu.AddressBus.Address)
	assert.Equal(uint8(99), cpu.DataBus.Data)
	assert.Equal(BUS_MEMORY, cpu.DataBus.Source)
	assert.Equal(BUS_CPU, cpu.DataBus.Destination)
}

func TestCpu_MemoryOutOfRangeAbsorbed(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	// The write is absorbed but the bus still records the masked
	// address.
	cpu.LoadMemory(300, 7)
	assert.Equal(uint8(44), cpu.AddressBus.Address)
	assert.Equal(uint8(0), cpu.Memory.Read(44))
	assert.Equal(uint8(0), cpu.ReadMemory(300))
}

func TestCpu_Reset(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Registers.Write(0, 10)
	cpu.Registers.Write(1, 20)
	cpu.LoadMemory(5, 55)
	cpu.ExecuteInstruction(MakeCode(OP_ADD, 2, 0, 1))

	cpu.Reset()

	assert.Equal(uint8(0), cpu.Registers.Read(2))
	assert.Equal(uint8(0), cpu.Memory.Read(5))
	assert.Equal(uint8(0), cpu.Control.Pc)
	assert.Equal(0, cpu.Cycles)
	assert.Equal(uint32(0), cpu.LastResult)

	// Bus records survive a reset; the object graph is reused.
	assert.Equal(BUS_ALU, cpu.DataBus.Source)
}

func TestCpu_State(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Registers.Write(0, 10)
	cpu.Registers.Write(1, 20)
	cpu.LoadMemory(0, 0x12)
	cpu.ExecuteInstruction(MakeCode(OP_ADD, 2, 0, 1))

	state := cpu.State()
	assert.Equal(uint8(1), state.Pc)
	assert.Equal(MakeCode(OP_ADD, 2, 0, 1), state.Ir)
	assert.Equal(uint8(30), state.Registers["R2"])
	assert.Equal(uint32(30), state.AluResult)
	assert.Equal(1, state.Cycles)
	assert.Len(state.MemoryView, 16)
	assert.Equal(1, state.MemoryView[0].Address) // window at pc

	// Configurable window, wrapping at the end of memory.
	state = cpu.StateAt(250, 8)
	assert.Len(state.MemoryView, 8)
	assert.Equal(250, state.MemoryView[0].Address)
	assert.Equal(0, state.MemoryView[6].Address)
	assert.Equal(uint8(0x12), state.MemoryView[6].Value)
}

func TestCpu_CycleCounterMonotonic(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	for n := range 300 {
		assert.Equal(n, cpu.Cycles)
		cpu.ExecuteInstruction(MakeCode(OP_ADD, 0, 0, 0))
	}

	// The pc wrapped but the cycle counter kept counting.
	assert.Equal(300, cpu.Cycles)
	assert.Equal(uint8(300%256), cpu.Control.Pc)
}

func TestCpu_String(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Registers.Write(0, 0xab)

	text := cpu.String()
	assert.Contains(text, "R0: AB")
	assert.Contains(text, "pc: 00")
}
