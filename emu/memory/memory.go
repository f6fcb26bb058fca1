// Package memory implements the 4 KB address space of the CHIP-8 machine.
package memory

import (
	"errors"
	"fmt"
)

// CHIP-8 memory map:
//
//	0x000-0x1FF: interpreter area, font glyphs live at FontAddress
//	0x200-0xFFF: program space
const (
	Size           = 4096
	FontAddress    = 0x050
	ProgramStart   = 0x200
	MaxProgramSize = Size - ProgramStart

	addressMask = Size - 1
)

// ErrOutOfRange is returned when a block does not fit into memory.
var ErrOutOfRange = errors.New("block exceeds memory")

// Memory is a flat byte array. Every address is taken modulo Size, so
// reads and writes never fault.
type Memory struct {
	cells [Size]byte
}

// Read returns the byte at addr.
func (m *Memory) Read(addr uint16) byte {
	return m.cells[addr&addressMask]
}

// Write stores value at addr.
func (m *Memory) Write(addr uint16, value byte) {
	m.cells[addr&addressMask] = value
}

// ReadWord returns the big-endian word at addr. The low byte wraps to
// address 0 when addr is the last cell.
func (m *Memory) ReadWord(addr uint16) uint16 {
	return uint16(m.Read(addr))<<8 | uint16(m.Read(addr+1))
}

// Load copies data to memory starting at addr. Nothing is written if the
// block would run past the end of memory.
func (m *Memory) Load(addr uint16, data []byte) error {
	start := int(addr & addressMask)
	if start+len(data) > Size {
		return fmt.Errorf("%w: %d bytes at 0x%03X, %d available",
			ErrOutOfRange, len(data), start, Size-start)
	}
	copy(m.cells[start:], data)
	return nil
}

// Clear zeroes all cells.
func (m *Memory) Clear() {
	m.cells = [Size]byte{}
}

// Slice returns a copy of length bytes starting at addr, wrapping at the
// end of memory.
func (m *Memory) Slice(addr uint16, length int) []byte {
	out := make([]byte, length)
	for i := range out {
		out[i] = m.Read(addr + uint16(i))
	}
	return out
}
