// Package emulator drives the CPU through an assembled program.
//
// The program image is loaded into memory through the bus-traced
// entry points, then executed byte by byte from the program counter.
// The CPU itself never fetches; the emulator is the driver the
// datapath expects.
package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/AVEng123/Microcontroller-CPU-Model/cpu"
	"github.com/AVEng123/Microcontroller-CPU-Model/internal"
)

const (
	RUN_LIMIT = 1024 // Default instruction cap for Run.
)

var _emulator_defines = map[string]string{
	"RUN_LIMIT": fmt.Sprintf("%v", RUN_LIMIT),
}

// Emulator state. CPU + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded listing.
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the CPU state and reload the program image into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	image := emu.Program.Binary()
	if len(image) > cpu.MEMORY_SIZE {
		err = ErrImage
		return
	}
	for addr, value := range image {
		emu.Cpu.LoadMemory(addr, uint32(value))
	}

	return
}

// Cycles returns the total cycles since a reset.
func (emu *Emulator) Cycles() int {
	return emu.Cpu.Cycles
}

// LineNo returns the source line number for the instruction at the
// program counter, or 0 outside the program image.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(int(emu.Cpu.Control.Pc))
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Step fetches the byte at the program counter and executes it. done
// reports the program counter passing the end of the image. The
// datapath is total, so a step itself cannot fail.
func (emu *Emulator) Step() (done bool) {
	pc := int(emu.Cpu.Control.Pc)
	if pc >= emu.Program.Size() {
		done = true
		return
	}

	instr := emu.Cpu.ReadMemory(pc)
	emu.Cpu.ExecuteInstruction(cpu.Code(instr))

	return
}

// Run steps until the program completes or limit instructions have
// executed.
func (emu *Emulator) Run(limit int) (err error) {
	for range limit {
		if emu.Step() {
			return
		}
	}

	err = &ErrRuntime{LineNo: emu.LineNo(), Err: ErrRunaway}

	return
}
