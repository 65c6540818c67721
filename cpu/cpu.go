package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/AVEng123/Microcontroller-CPU-Model/alu"
)

var _cpu_defines = map[string]string{
	"OP_ADD":         fmt.Sprintf("%#v", int(OP_ADD)),
	"OP_SUB":         fmt.Sprintf("%#v", int(OP_SUB)),
	"OP_MUL":         fmt.Sprintf("%#v", int(OP_MUL)),
	"OP_MOV":         fmt.Sprintf("%#v", int(OP_MOV)),
	"MEMORY_SIZE":    fmt.Sprintf("%#v", MEMORY_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%#v", REGISTER_COUNT),
}

// Cpu composes the ALU, register file, memory, control unit, and
// buses into the fetch/decode/execute datapath.
//
// The cycle counter is the only clock in the model: it advances
// exactly once per ExecuteInstruction call and is never inferred from
// wall time. A Cpu is not safe for concurrent use; callers serialize.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Alu        *alu.Alu
	Registers  RegisterFile
	Memory     Memory
	Control    ControlUnit
	DataBus    DataBus
	AddressBus AddressBus

	Cycles     int
	LastResult uint32
	LastFlags  alu.Flags
}

// NewCpu creates a CPU with zeroed state and idle buses.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Alu:        &alu.Alu{Label: "ALU"},
		DataBus:    DataBus{Source: BUS_IDLE, Destination: BUS_IDLE},
		AddressBus: AddressBus{Source: BUS_IDLE},
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Trace describes one executed instruction for diagnostic consumers.
type Trace struct {
	Instruction Code
	Operation   string
	Result      uint32
	Flags       alu.Flags
	Dst         int
	Src1        int
	Src2        int
}

// ExecuteInstruction advances the program by one instruction: decode,
// read the source registers, run the ALU, write the result's low byte
// to the destination register, record the transfer on the data bus,
// and advance the cycle counter and program counter.
func (cpu *Cpu) ExecuteInstruction(instr Code) (value uint32, flags alu.Flags, trace Trace) {
	op, dst, src1, src2 := cpu.Control.Decode(instr)

	a := alu.VecOf(uint32(cpu.Registers.Read(src1)))
	b := alu.VecOf(uint32(cpu.Registers.Read(src2)))

	// The 2-bit operation field maps straight onto the low ALU
	// opcodes, so mov (3) runs the divide unit.
	result, flags := cpu.Alu.Execute(a, b, alu.AluOp(op))
	value = result.Uint()

	cpu.Registers.Write(dst, value)
	cpu.DataBus.Transfer(BUS_ALU, value, fmt.Sprintf("REG[%v]", RegisterName(dst)))

	cpu.LastResult = value
	cpu.LastFlags = flags
	cpu.Cycles++
	cpu.Control.IncrementPc()

	if cpu.Verbose {
		log.Printf("cpu: %v = %v flags %+v", instr, value, flags)
	}

	trace = Trace{
		Instruction: instr,
		Operation:   cpu.Control.OperationName(),
		Result:      value,
		Flags:       flags,
		Dst:         dst,
		Src1:        src1,
		Src2:        src2,
	}

	return value, flags, trace
}

// LoadMemory writes a byte directly into memory, recording the access
// on the address and data buses.
func (cpu *Cpu) LoadMemory(address int, value uint32) {
	cpu.Memory.Write(address, value)
	cpu.AddressBus.SetAddress(BUS_CPU, uint32(address))
	cpu.DataBus.Transfer(BUS_CPU, value, BUS_MEMORY)
}

// ReadMemory reads a byte directly from memory, recording the access
// on the address and data buses.
func (cpu *Cpu) ReadMemory(address int) (value uint8) {
	cpu.AddressBus.SetAddress(BUS_CPU, uint32(address))
	value = cpu.Memory.Read(address)
	cpu.DataBus.Transfer(BUS_MEMORY, uint32(value), BUS_CPU)
	return
}

// Reset returns the registers, memory, control unit, and counters to
// their zero state without reconstructing the datapath. The bus
// records keep their last transfer.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Memory.Reset()
	cpu.Control.Reset()
	cpu.Cycles = 0
	cpu.LastResult = 0
	cpu.LastFlags = alu.Flags{}
}

// CpuState is a full snapshot of the datapath for polling consumers.
type CpuState struct {
	Pc         uint8
	Ir         Code
	Registers  map[string]uint8
	AluResult  uint32
	AluFlags   alu.Flags
	Cycles     int
	DataBus    DataBus
	AddressBus AddressBus
	MemoryView []MemoryCell
}

// State snapshots the CPU with a 16-byte memory window at the program
// counter.
func (cpu *Cpu) State() CpuState {
	return cpu.StateAt(int(cpu.Control.Pc), 16)
}

// StateAt snapshots the CPU with a memory window of the given start
// and length, wrapping at the end of memory.
func (cpu *Cpu) StateAt(start, length int) (state CpuState) {
	state = CpuState{
		Pc:         cpu.Control.Pc,
		Ir:         cpu.Control.Ir,
		Registers:  cpu.Registers.All(),
		AluResult:  cpu.LastResult,
		AluFlags:   cpu.LastFlags,
		Cycles:     cpu.Cycles,
		DataBus:    cpu.DataBus,
		AddressBus: cpu.AddressBus,
		MemoryView: cpu.Memory.Range(start, length),
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("   pc: %02X\n   ir: %v\n", cpu.Control.Pc, cpu.Control.Ir)
	for n, value := range cpu.Registers.Registers {
		text += fmt.Sprintf("% 5s: %02X\n", RegisterName(n), value)
	}
	text += fmt.Sprintf("  alu: %04X c=%v z=%v o=%v s=%v\n",
		cpu.LastResult,
		cpu.LastFlags.Carry, cpu.LastFlags.Zero,
		cpu.LastFlags.Overflow, cpu.LastFlags.Sign)
	text += fmt.Sprintf("cycle: %v\n", cpu.Cycles)

	return
}
