package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/AVEng123/Microcontroller-CPU-Model/cpu"
	"github.com/AVEng123/Microcontroller-CPU-Model/emulator"
)

// parseWindow parses a "start:length" memory window specification.
func parseWindow(spec string) (start, length int, err error) {
	parts := strings.SplitN(spec, ":", 2)
	start, err = strconv.Atoi(parts[0])
	if err != nil {
		return
	}

	length = 16
	if len(parts) == 2 {
		length, err = strconv.Atoi(parts[1])
	}

	return
}

func main() {
	var compile string
	var limit int
	var window string
	var defines bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to compile")
	flag.IntVar(&limit, "n", emulator.RUN_LIMIT, "Instruction limit")
	flag.StringVar(&window, "w", "", "Memory window to dump, as start:length")
	flag.BoolVar(&defines, "D", false, "Print system defines, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	if defines {
		for key, value := range emu.Defines() {
			fmt.Printf("%v=%v\n", key, value)
		}
		return
	}

	// Compile a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run(limit)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(emu.Cpu.String())

	if len(window) != 0 {
		start, length, err := parseWindow(window)
		if err != nil {
			log.Fatalf("%v: %v", window, err)
		}
		for _, cell := range emu.Cpu.Memory.Range(start, length) {
			fmt.Printf("%02X: %02X\n", cell.Address, cell.Value)
		}
	}
}
