package okto8

import (
	"bufio"
	"fmt"
	"io"
)

// Disassemble returns the pseudo-asm mnemonic for one instruction word.
// It shares the decode table with the execution engine, so any word the
// machine would execute disassembles to its operation and any word the
// machine would ignore comes back as raw data.
func Disassemble(word uint16) string {
	in := Decode(word)

	switch in.Op {
	case OpCLS:
		return "CLS"
	case OpRET:
		return "RET"
	case OpSYS:
		return fmt.Sprintf("SYS %03X", in.NNN)
	case OpJP:
		return fmt.Sprintf("JP %03X", in.NNN)
	case OpCALL:
		return fmt.Sprintf("CALL %03X", in.NNN)
	case OpSEVxByte:
		return fmt.Sprintf("SE V%X, %02X", in.X, in.KK)
	case OpSNEVxByte:
		return fmt.Sprintf("SNE V%X, %02X", in.X, in.KK)
	case OpSEVxVy:
		return fmt.Sprintf("SE V%X, V%X", in.X, in.Y)
	case OpLDVxByte:
		return fmt.Sprintf("LD V%X, %02X", in.X, in.KK)
	case OpADDVxByte:
		return fmt.Sprintf("ADD V%X, %02X", in.X, in.KK)
	case OpLDVxVy:
		return fmt.Sprintf("LD V%X, V%X", in.X, in.Y)
	case OpORVxVy:
		return fmt.Sprintf("OR V%X, V%X", in.X, in.Y)
	case OpANDVxVy:
		return fmt.Sprintf("AND V%X, V%X", in.X, in.Y)
	case OpXORVxVy:
		return fmt.Sprintf("XOR V%X, V%X", in.X, in.Y)
	case OpADDVxVy:
		return fmt.Sprintf("ADD V%X, V%X", in.X, in.Y)
	case OpSUBVxVy:
		return fmt.Sprintf("SUB V%X, V%X", in.X, in.Y)
	case OpSHRVx:
		return fmt.Sprintf("SHR V%X", in.X)
	case OpSUBNVxVy:
		return fmt.Sprintf("SUBN V%X, V%X", in.X, in.Y)
	case OpSHLVx:
		return fmt.Sprintf("SHL V%X", in.X)
	case OpSNEVxVy:
		return fmt.Sprintf("SNE V%X, V%X", in.X, in.Y)
	case OpLDI:
		return fmt.Sprintf("LD I, %03X", in.NNN)
	case OpJPV0:
		return fmt.Sprintf("JP V0, %03X", in.NNN)
	case OpRNDVxByte:
		return fmt.Sprintf("RND V%X, %02X", in.X, in.KK)
	case OpDRWVxVyN:
		return fmt.Sprintf("DRW V%X, V%X, %X", in.X, in.Y, in.N)
	case OpSKPVx:
		return fmt.Sprintf("SKP V%X", in.X)
	case OpSKNPVx:
		return fmt.Sprintf("SKNP V%X", in.X)
	case OpLDVxDT:
		return fmt.Sprintf("LD V%X, DT", in.X)
	case OpLDVxK:
		return fmt.Sprintf("LD V%X, K", in.X)
	case OpLDDTVx:
		return fmt.Sprintf("LD DT, V%X", in.X)
	case OpLDSTVx:
		return fmt.Sprintf("LD ST, V%X", in.X)
	case OpADDIVx:
		return fmt.Sprintf("ADD I, V%X", in.X)
	case OpLDFVx:
		return fmt.Sprintf("LD F, V%X", in.X)
	case OpLDBVx:
		return fmt.Sprintf("LD B, V%X", in.X)
	case OpLDIVx:
		return fmt.Sprintf("LD [I], V%X", in.X)
	case OpLDVxI:
		return fmt.Sprintf("LD V%X, [I]", in.X)
	}

	return fmt.Sprintf("DW %04X", word)
}

// DisassembleProgram reads a raw program image and writes a listing, one
// instruction word per line, addressed from the start-of-program address.
// A trailing odd byte is emitted as raw data.
func DisassembleProgram(r io.Reader, w io.Writer) error {
	program, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(w)

	for i := 0; i+1 < len(program); i += 2 {
		word := uint16(program[i])<<8 | uint16(program[i+1])
		fmt.Fprintf(out, "%03X  %04X  %s\n", StartOfProgram+i, word, Disassemble(word))
	}
	if len(program)%2 == 1 {
		fmt.Fprintf(out, "%03X  %02X    DB %02X\n",
			StartOfProgram+len(program)-1, program[len(program)-1], program[len(program)-1])
	}

	return out.Flush()
}
