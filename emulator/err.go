package emulator

import (
	"errors"

	"github.com/AVEng123/Microcontroller-CPU-Model/translate"
)

var f = translate.From

var (
	ErrRunaway = errors.New(f("instruction limit reached"))
	ErrImage   = errors.New(f("program image exceeds memory"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
