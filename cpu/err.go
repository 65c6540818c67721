package cpu

import (
	"errors"

	"github.com/AVEng123/Microcontroller-CPU-Model/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrByteSyntax      = errors.New(f(".byte syntax"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrOpcodeArgs      = errors.New(f("expected 3 register arguments"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrProgramTooLarge = errors.New(f("program exceeds memory"))
)

// ErrSyntax locates an assembler error in its source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
