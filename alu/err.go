package alu

import (
	"errors"

	"github.com/AVEng123/Microcontroller-CPU-Model/translate"
)

var f = translate.From

var (
	ErrVecWidth = errors.New(f("bit vector must be 8 bits"))
)
