package cpu

const (
	MEMORY_SIZE = 256 // Flat byte-addressable memory, addresses 0-255.
)

// MemoryCell pairs an address with its value for windowed views.
type MemoryCell struct {
	Address int
	Value   uint8
}

// Memory is the flat 256-byte store. Direct reads and writes outside
// [0,255] are absorbed (zero reads, failed writes); windowed range
// reads wrap addresses modulo the memory size.
type Memory struct {
	Data [MEMORY_SIZE]uint8

	LastAddress int   // Address of the most recent in-range access.
	LastData    uint8 // Data of the most recent in-range access.
}

// Read returns the byte at address, or 0 out of range.
func (mem *Memory) Read(address int) (value uint8) {
	if inRange(address, len(mem.Data)) {
		value = mem.Data[address]
		mem.LastAddress = address
		mem.LastData = value
	}
	return
}

// Write stores the low 8 bits of value. An out-of-range address is a
// no-op reporting ok=false.
func (mem *Memory) Write(address int, value uint32) (ok bool) {
	if !inRange(address, len(mem.Data)) {
		return
	}
	mem.Data[address] = uint8(value & 0xff)
	mem.LastAddress = address
	mem.LastData = mem.Data[address]
	return true
}

// Range returns a window of length cells starting at start, with
// addresses taken modulo the memory size.
func (mem *Memory) Range(start, length int) (cells []MemoryCell) {
	size := len(mem.Data)
	for n := range length {
		addr := ((start+n)%size + size) % size
		cells = append(cells, MemoryCell{Address: addr, Value: mem.Data[addr]})
	}
	return
}

// Reset clears the memory contents.
func (mem *Memory) Reset() {
	clear(mem.Data[:])
	mem.LastAddress = 0
	mem.LastData = 0
}
