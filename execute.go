package okto8

// execute runs one decoded instruction. Handlers own the program counter:
// +2 on completion, +4 for a taken skip, untouched for OpUnknown and for
// the LD Vx, K wait issue (completion advances it in Step).
func (m *Machine) execute(in Instruction) {
	switch in.Op {
	case OpCLS:
		m.Screen.Clear()
		m.screenDirty = true
		m.PC += 2

	case OpRET:
		// Resume past the CALL that pushed the saved address. The stack is
		// a ring: popping below slot 0 wraps to slot 15.
		m.PC = m.Stack[m.SP] + 2
		if m.SP == 0 {
			m.SP = 0xF
		} else {
			m.SP--
		}

	case OpSYS:
		if m.MachineRoutineInterpreter != nil {
			m.MachineRoutineInterpreter(in.Word, m)
		}
		m.PC += 2

	case OpJP:
		m.PC = in.NNN

	case OpCALL:
		// Push the current, not yet advanced, program counter. The pointer
		// pre-increments and wraps at 16 back to slot 0.
		m.SP++
		if m.SP > 0xF {
			m.SP = 0
		}
		m.Stack[m.SP] = m.PC
		m.PC = in.NNN

	case OpSEVxByte:
		if m.V[in.X] == in.KK {
			m.PC += 4
		} else {
			m.PC += 2
		}

	case OpSNEVxByte:
		if m.V[in.X] != in.KK {
			m.PC += 4
		} else {
			m.PC += 2
		}

	case OpSEVxVy:
		if m.V[in.X] == m.V[in.Y] {
			m.PC += 4
		} else {
			m.PC += 2
		}

	case OpLDVxByte:
		m.V[in.X] = in.KK
		m.PC += 2

	case OpADDVxByte:
		m.V[in.X] = m.V[in.X] + in.KK
		m.PC += 2

	case OpLDVxVy:
		m.V[in.X] = m.V[in.Y]
		m.PC += 2

	case OpORVxVy:
		m.V[in.X] |= m.V[in.Y]
		m.PC += 2

	case OpANDVxVy:
		m.V[in.X] &= m.V[in.Y]
		m.PC += 2

	case OpXORVxVy:
		m.V[in.X] ^= m.V[in.Y]
		m.PC += 2

	case OpADDVxVy:
		r := uint16(m.V[in.X]) + uint16(m.V[in.Y])
		m.V[in.X] = byte(r)
		m.V[0xF] = byte(r >> 8)
		m.PC += 2

	case OpSUBVxVy:
		noBorrow := m.V[in.X] >= m.V[in.Y]
		m.V[in.X] = m.V[in.X] - m.V[in.Y]
		m.V[0xF] = bool2byte(noBorrow)
		m.PC += 2

	case OpSHRVx:
		carry := m.V[in.X] & 0b00000001
		m.V[in.X] = m.V[in.X] >> 1
		m.V[0xF] = carry
		m.PC += 2

	case OpSUBNVxVy:
		noBorrow := m.V[in.Y] >= m.V[in.X]
		m.V[in.X] = m.V[in.Y] - m.V[in.X]
		m.V[0xF] = bool2byte(noBorrow)
		m.PC += 2

	case OpSHLVx:
		carry := (m.V[in.X] & 0b10000000) >> 7
		m.V[in.X] = m.V[in.X] << 1
		m.V[0xF] = carry
		m.PC += 2

	case OpSNEVxVy:
		if m.V[in.X] != m.V[in.Y] {
			m.PC += 4
		} else {
			m.PC += 2
		}

	case OpLDI:
		m.I = in.NNN
		m.PC += 2

	case OpJPV0:
		m.PC = in.NNN + uint16(m.V[0])

	case OpRNDVxByte:
		m.V[in.X] = m.Rand.Byte() & in.KK
		m.PC += 2

	case OpDRWVxVyN:
		m.draw(in.X, in.Y, in.N)
		m.screenDirty = true
		m.PC += 2

	case OpSKPVx:
		if m.Keypad.IsPressed(m.V[in.X]) {
			m.PC += 4
		} else {
			m.PC += 2
		}

	case OpSKNPVx:
		if !m.Keypad.IsPressed(m.V[in.X]) {
			m.PC += 4
		} else {
			m.PC += 2
		}

	case OpLDVxDT:
		m.V[in.X] = m.Delay.Ceil()
		m.PC += 2

	case OpLDVxK:
		// The load completes in Step once a new press is detected; the
		// program counter stays put until then.
		m.keyDstRegister = in.X
		m.Keypad.Save()
		m.state = WaitingForKeypress

	case OpLDDTVx:
		m.Delay.Set(m.V[in.X])
		m.PC += 2

	case OpLDSTVx:
		m.Sound.Set(m.V[in.X])
		m.PC += 2

	case OpADDIVx:
		m.I = m.I + uint16(m.V[in.X])
		m.PC += 2

	case OpLDFVx:
		m.I = FontGlyphSize * uint16(m.V[in.X]&0x0F)
		m.PC += 2

	case OpLDBVx:
		v := m.V[in.X]
		m.Mem.WriteByte(m.I+0, v/100)
		m.Mem.WriteByte(m.I+1, (v/10)%10)
		m.Mem.WriteByte(m.I+2, v%10)
		m.PC += 2

	case OpLDIVx:
		for i := uint16(0); i <= uint16(in.X); i++ {
			if !m.Mem.WriteByte(m.I+i, m.V[i]) {
				break
			}
		}
		m.PC += 2

	case OpLDVxI:
		for i := uint16(0); i <= uint16(in.X); i++ {
			if m.I+i >= MemorySize {
				break
			}
			m.V[i] = m.Mem.ReadByte(m.I + i)
		}
		m.PC += 2

	case OpUnknown:
		// Unrecognized words freeze forward progress on this instruction.
	}
}

// draw XORs an n-byte sprite read from memory at I onto the screen at
// (Vx, Vy). The origin is taken modulo the screen dimensions and every
// target pixel wraps independently. VF reports, once per draw, whether any
// pixel went from lit to unlit.
func (m *Machine) draw(x, y, n byte) {
	xPos := m.V[x] % ScreenWidth
	yPos := m.V[y] % ScreenHeight

	collision := false
	for row := byte(0); row < n; row++ {
		sprite := m.Mem.ReadByte(m.I + uint16(row))
		screenRow := (yPos + row) % ScreenHeight

		for bit := byte(0); bit < 8; bit++ {
			if sprite&(0b10000000>>bit) == 0 {
				continue
			}

			screenCol := (xPos + bit) % ScreenWidth
			if m.Screen.Pixel(screenRow, screenCol) == Lit {
				m.Screen.SetPixel(screenRow, screenCol, Unlit)
				collision = true
			} else {
				m.Screen.SetPixel(screenRow, screenCol, Lit)
			}
		}
	}

	m.V[0xF] = bool2byte(collision)
}

func bool2byte(b bool) byte {
	if b {
		return 1
	}

	return 0
}
