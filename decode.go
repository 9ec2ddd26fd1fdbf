package okto8

// Op identifies one instruction of the fixed instruction set.
type Op byte

const (
	// OpUnknown is any instruction word that matches no known pattern.
	OpUnknown Op = iota
	// OpSYS :: 0nnn - Jump to a machine code routine at nnn (ignored by modern interpreters).
	OpSYS
	// OpCLS :: 00E0 - Clear the display.
	OpCLS
	// OpRET :: 00EE - Return from a subroutine.
	OpRET
	// OpJP :: 1nnn - Jump to location nnn.
	OpJP
	// OpCALL :: 2nnn - Call subroutine at nnn.
	OpCALL
	// OpSEVxByte :: 3xkk - Skip next instruction if Vx = kk.
	OpSEVxByte
	// OpSNEVxByte :: 4xkk - Skip next instruction if Vx != kk.
	OpSNEVxByte
	// OpSEVxVy :: 5xy0 - Skip next instruction if Vx = Vy.
	OpSEVxVy
	// OpLDVxByte :: 6xkk - Set Vx = kk.
	OpLDVxByte
	// OpADDVxByte :: 7xkk - Set Vx = Vx + kk.
	OpADDVxByte
	// OpLDVxVy :: 8xy0 - Set Vx = Vy.
	OpLDVxVy
	// OpORVxVy :: 8xy1 - Set Vx = Vx OR Vy.
	OpORVxVy
	// OpANDVxVy :: 8xy2 - Set Vx = Vx AND Vy.
	OpANDVxVy
	// OpXORVxVy :: 8xy3 - Set Vx = Vx XOR Vy.
	OpXORVxVy
	// OpADDVxVy :: 8xy4 - Set Vx = Vx + Vy, set VF = carry.
	OpADDVxVy
	// OpSUBVxVy :: 8xy5 - Set Vx = Vx - Vy, set VF = NOT borrow.
	OpSUBVxVy
	// OpSHRVx :: 8xy6 - Set Vx = Vx SHR 1, set VF = bit shifted out.
	OpSHRVx
	// OpSUBNVxVy :: 8xy7 - Set Vx = Vy - Vx, set VF = NOT borrow.
	OpSUBNVxVy
	// OpSHLVx :: 8xyE - Set Vx = Vx SHL 1, set VF = bit shifted out.
	OpSHLVx
	// OpSNEVxVy :: 9xy0 - Skip next instruction if Vx != Vy.
	OpSNEVxVy
	// OpLDI :: Annn - Set I = nnn.
	OpLDI
	// OpJPV0 :: Bnnn - Jump to location nnn + V0.
	OpJPV0
	// OpRNDVxByte :: Cxkk - Set Vx = random byte AND kk.
	OpRNDVxByte
	// OpDRWVxVyN :: Dxyn - Display n-byte sprite at (Vx, Vy), set VF = collision.
	OpDRWVxVyN
	// OpSKPVx :: Ex9E - Skip next instruction if key with the value of Vx is pressed.
	OpSKPVx
	// OpSKNPVx :: ExA1 - Skip next instruction if key with the value of Vx is not pressed.
	OpSKNPVx
	// OpLDVxDT :: Fx07 - Set Vx = delay timer value.
	OpLDVxDT
	// OpLDVxK :: Fx0A - Wait for a key press, store the value of the key in Vx.
	OpLDVxK
	// OpLDDTVx :: Fx15 - Set delay timer = Vx.
	OpLDDTVx
	// OpLDSTVx :: Fx18 - Set sound timer = Vx.
	OpLDSTVx
	// OpADDIVx :: Fx1E - Set I = I + Vx.
	OpADDIVx
	// OpLDFVx :: Fx29 - Set I = location of font glyph for digit Vx.
	OpLDFVx
	// OpLDBVx :: Fx33 - Store BCD representation of Vx at I, I+1, I+2.
	OpLDBVx
	// OpLDIVx :: Fx55 - Store registers V0 through Vx in memory starting at I.
	OpLDIVx
	// OpLDVxI :: Fx65 - Read registers V0 through Vx from memory starting at I.
	OpLDVxI
)

// Instruction is a decoded instruction word: the operation plus its operand
// fields. Fields that an operation does not use are zero.
type Instruction struct {
	Op   Op
	Word uint16

	// X and Y are register numbers.
	X, Y byte
	// N is the low nibble.
	N byte
	// KK is the low byte.
	KK byte
	// NNN is the 12-bit address.
	NNN uint16
}

// Decode splits word into its four nibbles and maps it to the matching
// operation. Decoding is pure: it touches no machine state. Words that match
// no known pattern decode to OpUnknown.
func Decode(word uint16) Instruction {
	in := Instruction{
		Op:   OpUnknown,
		Word: word,
		X:    byte((word & 0x0F00) >> 8),
		Y:    byte(word&0x00F0) >> 4,
		N:    byte(word & 0x000F),
		KK:   byte(word & 0x00FF),
		NNN:  word & 0x0FFF,
	}

	switch word & 0xF000 {
	case 0x0000:
		switch word {
		case 0x00E0:
			in.Op = OpCLS
		case 0x00EE:
			in.Op = OpRET
		default:
			in.Op = OpSYS
		}

	case 0x1000:
		in.Op = OpJP

	case 0x2000:
		in.Op = OpCALL

	case 0x3000:
		in.Op = OpSEVxByte

	case 0x4000:
		in.Op = OpSNEVxByte

	case 0x5000:
		if in.N == 0x0 {
			in.Op = OpSEVxVy
		}

	case 0x6000:
		in.Op = OpLDVxByte

	case 0x7000:
		in.Op = OpADDVxByte

	case 0x8000:
		switch in.N {
		case 0x0:
			in.Op = OpLDVxVy
		case 0x1:
			in.Op = OpORVxVy
		case 0x2:
			in.Op = OpANDVxVy
		case 0x3:
			in.Op = OpXORVxVy
		case 0x4:
			in.Op = OpADDVxVy
		case 0x5:
			in.Op = OpSUBVxVy
		case 0x6:
			in.Op = OpSHRVx
		case 0x7:
			in.Op = OpSUBNVxVy
		case 0xE:
			in.Op = OpSHLVx
		}

	case 0x9000:
		if in.N == 0x0 {
			in.Op = OpSNEVxVy
		}

	case 0xA000:
		in.Op = OpLDI

	case 0xB000:
		in.Op = OpJPV0

	case 0xC000:
		in.Op = OpRNDVxByte

	case 0xD000:
		in.Op = OpDRWVxVyN

	case 0xE000:
		switch in.KK {
		case 0x9E:
			in.Op = OpSKPVx
		case 0xA1:
			in.Op = OpSKNPVx
		}

	case 0xF000:
		switch in.KK {
		case 0x07:
			in.Op = OpLDVxDT
		case 0x0A:
			in.Op = OpLDVxK
		case 0x15:
			in.Op = OpLDDTVx
		case 0x18:
			in.Op = OpLDSTVx
		case 0x1E:
			in.Op = OpADDIVx
		case 0x29:
			in.Op = OpLDFVx
		case 0x33:
			in.Op = OpLDBVx
		case 0x55:
			in.Op = OpLDIVx
		case 0x65:
			in.Op = OpLDVxI
		}
	}

	return in
}
