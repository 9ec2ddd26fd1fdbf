package okto8

import (
	cryptorand "crypto/rand"
	"math/rand"
)

// RunState is the execution-control state of the machine.
type RunState byte

const (
	// Ready means the machine fetches and executes on every step.
	Ready RunState = iota
	// WaitingForKeypress means the machine only polls for a new key press;
	// it is entered by LD Vx, K and left once a press edge is detected.
	WaitingForKeypress
)

// RandomSource produces the random bytes consumed by RND Vx, byte. It is
// injected so tests can use a seeded source instead of a global generator.
type RandomSource interface {
	Byte() byte
}

// CryptoRandom is the default RandomSource, backed by crypto/rand.
type CryptoRandom struct{}

func (CryptoRandom) Byte() byte {
	buff := [1]byte{}
	cryptorand.Read(buff[:])

	return buff[0]
}

// SeededRandom is a deterministic RandomSource for tests and replays.
type SeededRandom struct {
	rng *rand.Rand
}

func NewSeededRandom(seed int64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewSource(seed))}
}

func (s *SeededRandom) Byte() byte {
	return byte(s.rng.Intn(256))
}

// MachineRoutineInterpreter interpretes 0nnn machine code routines.
// Left nil, SYS is a plain no-op as on modern interpreters.
type MachineRoutineInterpreter func(word uint16, m *Machine)

// Machine is one complete execution engine: memory, registers, stack,
// screen, keypad and timers, all exclusively owned by this instance.
// Access is single-actor: Step, resets, key delivery and timer decay must
// never run concurrently; the machine performs no internal locking.
type Machine struct {
	Mem    *Memory
	Screen *Screen
	Keypad *Keypad

	// V 8-bit general registers. VF doubles as the flag register.
	V [16]byte
	// I 16-bit index register (12-bit usable)
	I uint16
	// Program counter
	PC uint16
	// Stack pointer
	SP byte
	// Stack is a bounded ring of 16 return addresses. The pointer wraps at
	// both ends instead of faulting.
	Stack [16]uint16

	// Delay and Sound count down only through DecayDelay / DecaySound.
	Delay Timer
	Sound Timer

	Rand RandomSource

	MachineRoutineInterpreter MachineRoutineInterpreter

	state RunState
	// keyDstRegister is the destination recorded when LD Vx, K begins a wait.
	keyDstRegister byte

	steps       uint
	screenDirty bool
}

// NewMachine creates a machine in its hard-reset state: zeroed registers,
// font glyphs loaded, program counter at the start-of-program address.
func NewMachine() *Machine {
	m := &Machine{
		Mem:    NewMemory(),
		Screen: NewScreen(),
		Keypad: NewKeypad(),
		Rand:   CryptoRandom{},
	}
	m.HardReset()

	return m
}

// State returns the current run state.
func (m *Machine) State() RunState {
	return m.state
}

// Steps returns the number of executed steps since the last reset.
func (m *Machine) Steps() uint {
	return m.steps
}

// SoftReset clears only the execution-control state: program counter, index
// register, timers, stack pointer and run state. Memory, registers and the
// screen are left untouched.
func (m *Machine) SoftReset() {
	m.PC = StartOfProgram
	m.I = 0
	m.SP = 0
	m.Delay.Reset()
	m.Sound.Reset()
	m.state = Ready
	m.keyDstRegister = 0
	m.steps = 0
}

// HardReset additionally zeroes registers, stack, memory, keypad and screen,
// and reloads the font glyphs.
func (m *Machine) HardReset() {
	m.SoftReset()

	m.V = [16]byte{}
	m.Stack = [16]uint16{}
	m.Mem.Clear()
	m.Mem.LoadFont()
	m.Keypad.Reset()
	m.Screen.Clear()
	m.screenDirty = true
}

// LoadProgram soft-resets the machine and loads the program at the
// start-of-program address.
func (m *Machine) LoadProgram(program []byte) error {
	m.SoftReset()

	return m.Mem.LoadProgram(program)
}

// WriteByte writes one byte of memory. False means the address was out of
// range and memory is unchanged.
func (m *Machine) WriteByte(addr uint16, b byte) bool {
	return m.Mem.WriteByte(addr, b)
}

// WriteWord writes one big-endian word of memory. False means either byte
// would land out of range; nothing is written.
func (m *Machine) WriteWord(addr uint16, w uint16) bool {
	return m.Mem.WriteWord(addr, w)
}

// SetKey sets the state of key k. False means k was not a valid key.
func (m *Machine) SetKey(k byte, state KeyState) bool {
	return m.Keypad.Set(k, state)
}

// Pixel reads the pixel at (row, col); out-of-range coordinates read Unlit.
func (m *Machine) Pixel(row, col byte) PixelState {
	return m.Screen.Pixel(row, col)
}

// SetPixel sets the pixel at (row, col); out-of-range coordinates are ignored.
func (m *Machine) SetPixel(row, col byte, state PixelState) {
	m.Screen.SetPixel(row, col, state)
}

// SetProgramCounter moves the program counter. Addresses outside the address
// space are ignored.
func (m *Machine) SetProgramCounter(addr uint16) {
	if addr >= MemorySize {
		return
	}

	m.PC = addr
}

// DecayDelay subtracts amount from the delay timer, clamping at zero.
func (m *Machine) DecayDelay(amount float64) {
	m.Delay.Decay(amount)
}

// DecaySound subtracts amount from the sound timer, clamping at zero.
func (m *Machine) DecaySound(amount float64) {
	m.Sound.Decay(amount)
}

// ScreenDirty reports whether the screen changed since the last
// ConsumeScreenDirty.
func (m *Machine) ScreenDirty() bool {
	return m.screenDirty
}

// ConsumeScreenDirty returns the dirty flag and clears it.
func (m *Machine) ConsumeScreenDirty() bool {
	dirty := m.screenDirty
	m.screenDirty = false

	return dirty
}

// Step performs exactly one unit of forward progress.
//
// While waiting for a key press it only scans for a press edge: a key the
// snapshot shows unpressed and the live keypad shows pressed. Finding one
// finalizes the deferred LD Vx, K and returns the machine to Ready;
// otherwise the call is a no-op and the host must keep polling.
//
// When ready it fetches the word at the program counter, decodes it and
// executes the matching operation. Unknown words are silent no-ops that do
// not advance the counter, so execution freezes on them until external
// state changes. The program counter is reduced modulo the address space
// after every executed instruction.
func (m *Machine) Step() {
	if m.state == WaitingForKeypress {
		k, ok := m.Keypad.NewlyPressed()
		if !ok {
			// No edge this poll. Re-snapshot so a key that was held when
			// the wait began can still trigger once released and pressed
			// again.
			m.Keypad.Save()
			return
		}

		m.V[m.keyDstRegister] = k
		m.state = Ready
		m.PC += 2
		m.PC %= MemorySize
		m.steps++

		return
	}

	in := Decode(m.Mem.ReadWord(m.PC))
	m.execute(in)

	if m.PC >= MemorySize {
		m.PC %= MemorySize
	}

	m.steps++
}
