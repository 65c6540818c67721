package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":         "0",
	"MEMORY_SIZE":    fmt.Sprintf("%#v", MEMORY_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%#v", REGISTER_COUNT),
	"OP_ADD":         fmt.Sprintf("%#v", int(OP_ADD)),
	"OP_SUB":         fmt.Sprintf("%#v", int(OP_SUB)),
	"OP_MUL":         fmt.Sprintf("%#v", int(OP_MUL)),
	"OP_MOV":         fmt.Sprintf("%#v", int(OP_MOV)),
}

// The four registers addressable by a 2-bit instruction field.
var regMap = map[string]int{
	"r0": 0,
	"r1": 1,
	"r2": 2,
	"r3": 3,
}

// Mnemonics of the packed instruction encoding.
var opMap = map[string]Op{
	"add": OP_ADD,
	"sub": OP_SUB,
	"mul": OP_MUL,
	"mov": OP_MOV,
}

// Assembler is a single pass assembler for the packed 8-bit
// instruction encoding. It supports ';' comments, '.equ' equates,
// '.byte' data, labels naming the current address, and compile-time
// $() expression evaluation.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to image addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint32, err error) {
	v64, err := strconv.ParseInt(word, 0, 33)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 < 0 {
		value = uint32(0xffffffff + (v64 + 1))
	} else {
		value = uint32(v64)
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value32 uint32
		value32, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

// parseLine expands a single line into opcode words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	line = strings.ReplaceAll(line, ",", " ")
	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for strings.HasSuffix(words[0], ":") {
		label := strings.TrimSuffix(words[0], ":")
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentAddr()
		asm.Equate[label] = fmt.Sprintf("%#v", asm.currentAddr())
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// Substitute equates.
	for n, word := range words[1:] {
		equate, ok := asm.Equate[word]
		if ok {
			words[1+n] = equate
		}
	}

	return
}

// parseWords assembles one expanded line into opcodes.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	if len(words) == 0 {
		return
	}

	mnemonic := strings.ToLower(words[0])
	args := words[1:]

	if mnemonic == ".byte" {
		if len(args) == 0 {
			err = ErrByteSyntax
			return
		}
		var codes []Code
		for _, word := range args {
			var value uint32
			value, err = asm.valueOf(word)
			if err != nil {
				return
			}
			codes = append(codes, Code(value&0xff))
		}
		asm.emit(words, codes, lineno)
		return
	}

	op, ok := opMap[mnemonic]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}
	if len(args) != 3 {
		err = ErrOpcodeArgs
		return
	}

	var regs [3]int
	for n, word := range args {
		reg, ok := regMap[strings.ToLower(word)]
		if !ok {
			err = ErrRegisterInvalid
			return
		}
		regs[n] = reg
	}

	asm.emit(words, []Code{MakeCode(op, regs[0], regs[1], regs[2])}, lineno)
	return
}

// emit appends assembled codes at the current address.
func (asm *Assembler) emit(words []string, codes []Code, lineno int) {
	asm.Opcode = append(asm.Opcode, Opcode{
		LineNo: lineno,
		Addr:   asm.currentAddr(),
		Words:  words,
		Codes:  codes,
	})
}

// currentAddr gets the next free image address.
func (asm *Assembler) currentAddr() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Addr + len(last.Codes)
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(strings.Split(text, ";")[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	if asm.currentAddr() > MEMORY_SIZE {
		err = ErrProgramTooLarge
		return
	}

	prog = &Program{Opcodes: slices.Clone(asm.Opcode)}
	return
}
