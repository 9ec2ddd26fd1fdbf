package okto8

import (
	"errors"
	"fmt"
	"strings"
)

var ErrProgramDoesNotFitIntoMemory = errors.New("the program does not fit into memory")

// StartOfProgram is the address where program code begins.
const StartOfProgram = 0x200

// MemorySize is the full addressable space: 4096 bytes.
const MemorySize = 4096

// Memory is the flat address space of the machine. Addresses 0x000-0x04F
// hold the font glyphs, 0x200 onward holds program code and data.
type Memory [MemorySize]byte

// NewMemory creates a memory of 4096 bytes with the font glyphs loaded
func NewMemory() *Memory {
	m := Memory([MemorySize]byte{})
	m.LoadFont()

	return &m
}

// ReadByte returns the byte at addr, or 0 for addresses outside the
// address space. It never faults.
func (mem *Memory) ReadByte(addr uint16) byte {
	if addr >= MemorySize {
		return 0
	}

	return mem[addr]
}

// WriteByte sets the byte at addr. It reports whether the write happened;
// false means addr was outside the address space and memory is unchanged.
func (mem *Memory) WriteByte(addr uint16, b byte) bool {
	if addr >= MemorySize {
		return false
	}

	mem[addr] = b

	return true
}

// ReadWord returns the big-endian 16-bit word at addr. Out-of-range bytes
// read as 0.
func (mem *Memory) ReadWord(addr uint16) uint16 {
	return uint16(mem.ReadByte(addr))<<8 | uint16(mem.ReadByte(addr+1))
}

// WriteWord sets the big-endian 16-bit word at addr. Both bytes must be in
// range or nothing is written and WriteWord reports false.
func (mem *Memory) WriteWord(addr uint16, w uint16) bool {
	if addr >= MemorySize || addr+1 >= MemorySize {
		return false
	}

	mem[addr] = byte(w >> 8)
	mem[addr+1] = byte(w)

	return true
}

// Clear zeroes the whole address space, font glyphs included.
func (mem *Memory) Clear() {
	*mem = Memory([MemorySize]byte{})
}

func (mem *Memory) Clone() *Memory {
	m := Memory([MemorySize]byte{})
	copy(m[:], mem[:])

	return &m
}

func (mem *Memory) String() string {
	sb := strings.Builder{}

	sb.WriteString("[ ")
	for _, b := range mem[:StartOfProgram] {
		sb.WriteString(fmt.Sprintf("%X ", b))
	}
	sb.WriteString("]\n")
	sb.WriteString("[ ")
	for _, b := range mem[StartOfProgram:] {
		sb.WriteString(fmt.Sprintf("%X ", b))
	}
	sb.WriteString("]")

	return sb.String()
}

// LoadProgram loads the program at the start-of-program address
func (mem *Memory) LoadProgram(program []byte) error {
	mem.LoadFont()

	if len(program) > MemorySize-StartOfProgram {
		return ErrProgramDoesNotFitIntoMemory
	}

	copy(mem[StartOfProgram:], program)

	return nil
}

// FontGlyphSize is the height in bytes of every font glyph.
const FontGlyphSize = 5

// LoadFont copies the 16 hexadecimal digit glyphs into addresses 0x000-0x04F.
func (mem *Memory) LoadFont() {
	copy(mem[:], []byte{
		// 0
		0xF0, 0x90, 0x90, 0x90, 0xF0,
		// 1
		0x20, 0x60, 0x20, 0x20, 0x70,
		// 2
		0xF0, 0x10, 0xF0, 0x80, 0xF0,
		// 3
		0xF0, 0x10, 0xF0, 0x10, 0xF0,
		// 4
		0x90, 0x90, 0xF0, 0x10, 0x10,
		// 5
		0xF0, 0x80, 0xF0, 0x10, 0xF0,
		// 6
		0xF0, 0x80, 0xF0, 0x90, 0xF0,
		// 7
		0xF0, 0x10, 0x20, 0x40, 0x40,
		// 8
		0xF0, 0x90, 0xF0, 0x90, 0xF0,
		// 9
		0xF0, 0x90, 0xF0, 0x10, 0xF0,
		// A
		0xF0, 0x90, 0xF0, 0x90, 0x90,
		// B
		0xE0, 0x90, 0xE0, 0x90, 0xE0,
		// C
		0xF0, 0x80, 0x80, 0x80, 0xF0,
		// D
		0xE0, 0x90, 0x90, 0x90, 0xE0,
		// E
		0xF0, 0x80, 0xF0, 0x80, 0xF0,
		// F
		0xF0, 0x80, 0xF0, 0x80, 0x80})
}
