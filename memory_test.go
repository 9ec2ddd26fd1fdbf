package okto8_test

import (
	"testing"

	"github.com/KaComet/okto8"
)

func TestMemoryByteRoundTrip(t *testing.T) {
	mem := okto8.NewMemory()

	for addr := uint16(0); addr < okto8.MemorySize; addr++ {
		if !mem.WriteByte(addr, byte(addr)) {
			t.Fatalf(`WriteByte(%03X) = false, expected true`, addr)
		}
		if got := mem.ReadByte(addr); got != byte(addr) {
			t.Fatalf(`ReadByte(%03X) = %X, expected %X`, addr, got, byte(addr))
		}
	}
}

func TestMemoryRejectsOutOfRangeWrites(t *testing.T) {
	mem := okto8.NewMemory()

	if mem.WriteByte(okto8.MemorySize, 0xFF) {
		t.Fatalf(`WriteByte(%d) = true, expected false`, okto8.MemorySize)
	}
	if mem.WriteByte(0xFFFF, 0xFF) {
		t.Fatalf(`WriteByte(0xFFFF) = true, expected false`)
	}
	if got := mem.ReadByte(okto8.MemorySize); got != 0 {
		t.Fatalf(`ReadByte out of range = %X, expected 0`, got)
	}
}

func TestMemoryWordRoundTrip(t *testing.T) {
	mem := okto8.NewMemory()

	if !mem.WriteWord(0x300, 0xABCD) {
		t.Fatalf(`WriteWord(0x300) = false, expected true`)
	}
	if got := mem.ReadWord(0x300); got != 0xABCD {
		t.Fatalf(`ReadWord(0x300) = %X, expected ABCD`, got)
	}
	// big-endian split
	if got := mem.ReadByte(0x300); got != 0xAB {
		t.Fatalf(`high byte = %X, expected AB`, got)
	}
	if got := mem.ReadByte(0x301); got != 0xCD {
		t.Fatalf(`low byte = %X, expected CD`, got)
	}
}

func TestMemoryWordNeedsBothBytesInRange(t *testing.T) {
	mem := okto8.NewMemory()

	if !mem.WriteWord(okto8.MemorySize-2, 0x1234) {
		t.Fatalf(`WriteWord at the last slot = false, expected true`)
	}
	if mem.WriteWord(okto8.MemorySize-1, 0x1234) {
		t.Fatalf(`WriteWord straddling the end = true, expected false`)
	}
	if got := mem.ReadByte(okto8.MemorySize - 1); got != 0x34 {
		t.Fatalf(`memory[last] = %X, expected the straddling write to be dropped`, got)
	}
}

func TestMemoryFontIsLoaded(t *testing.T) {
	mem := okto8.NewMemory()

	// first row of glyph 0 and last row of glyph F
	if got := mem.ReadByte(0); got != 0xF0 {
		t.Fatalf(`memory[0] = %X, expected F0`, got)
	}
	if got := mem.ReadByte(79); got != 0x80 {
		t.Fatalf(`memory[79] = %X, expected 80`, got)
	}
}

func TestMemoryProgramLoading(t *testing.T) {
	mem := okto8.NewMemory()

	program := []byte{0x12, 0x34, 0x56}
	if err := mem.LoadProgram(program); err != nil {
		t.Fatalf(`LoadProgram() returned an error %v`, err)
	}
	if got := mem.ReadByte(okto8.StartOfProgram); got != 0x12 {
		t.Fatalf(`memory[0x200] = %X, expected 12`, got)
	}

	tooBig := make([]byte, okto8.MemorySize-okto8.StartOfProgram+1)
	if err := mem.LoadProgram(tooBig); err != okto8.ErrProgramDoesNotFitIntoMemory {
		t.Fatalf(`LoadProgram() = %v, expected ErrProgramDoesNotFitIntoMemory`, err)
	}

	exact := make([]byte, okto8.MemorySize-okto8.StartOfProgram)
	if err := mem.LoadProgram(exact); err != nil {
		t.Fatalf(`LoadProgram() returned an error %v for an image that fits exactly`, err)
	}
}
