package cpu

import (
	"iter"
)

// Opcode represents a line of assembled source with its location and
// generated instruction bytes.
type Opcode struct {
	LineNo int
	Addr   int
	Words  []string
	Codes  []Code
}

// Program is an assembled listing, loadable into memory at address 0.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the opcode covering an address.
type Debug struct {
	*Opcode
	Index int
}

func (prog *Program) Debug(addr int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if addr >= op.Addr && addr < op.Addr+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  addr - op.Addr,
			}
			break
		}
	}

	return
}

// Binary renders the flat byte image of the program.
func (prog *Program) Binary() (image []uint8) {
	for _, code := range prog.Codes() {
		image = append(image, uint8(code))
	}

	return
}

// Codes iterates (address, code) over the program in address order.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(addr int, code Code) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				if !yield(op.Addr+n, code) {
					return
				}
			}
		}
	}
}

// Size is the number of bytes in the program image.
func (prog *Program) Size() (size int) {
	if len(prog.Opcodes) == 0 {
		return
	}

	last := prog.Opcodes[len(prog.Opcodes)-1]

	return last.Addr + len(last.Codes)
}
