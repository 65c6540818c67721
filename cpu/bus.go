package cpu

import (
	"github.com/AVEng123/Microcontroller-CPU-Model/alu"
)

// Bus participant labels recorded on transfers.
const (
	BUS_IDLE   = "IDLE"
	BUS_CPU    = "CPU"
	BUS_ALU    = "ALU"
	BUS_MEMORY = "MEMORY"
)

// DataBus records the most recent byte transfer: value, source label,
// destination label. The record is purely diagnostic; the bus never
// blocks, validates, or arbitrates. It models a single always-available
// bus with one master.
type DataBus struct {
	Data        uint8
	Source      string
	Destination string
}

// Transfer records a transfer and returns the masked data.
func (bus *DataBus) Transfer(source string, value uint32, destination string) (data uint8) {
	bus.Data = uint8(value & 0xff)
	bus.Source = source
	bus.Destination = destination
	return bus.Data
}

// Bits returns the recorded data as a bit vector for display.
func (bus *DataBus) Bits() alu.Vec {
	return alu.VecOf(uint32(bus.Data))
}

// AddressBus records the most recently driven address and its source.
type AddressBus struct {
	Address uint8
	Source  string
}

// SetAddress records an address and returns it masked.
func (bus *AddressBus) SetAddress(source string, address uint32) (addr uint8) {
	bus.Address = uint8(address & 0xff)
	bus.Source = source
	return bus.Address
}

// Bits returns the recorded address as a bit vector for display.
func (bus *AddressBus) Bits() alu.Vec {
	return alu.VecOf(uint32(bus.Address))
}
