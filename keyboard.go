package okto8

import "sync"

// Keyboard is an input source that translates physical events into key-state
// updates. Update runs on the console loop between steps, so implementations
// collecting events on other goroutines must buffer them until then.
type Keyboard interface {
	// Boot initializes the component
	Boot() error
	// Update delivers the pending key state into the machine
	Update(m *Machine) error
}

// KeyboardLayout maps each of the 16 keys to the character that triggers it.
type KeyboardLayout [KeypadSize]rune

// DefaultKeyboardLayout is the classic 4x4 mapping:
//
//	1 2 3 4        1 2 3 C
//	q w e r   ->   4 5 6 D
//	a s d f        7 8 9 E
//	z x c v        A 0 B F
var DefaultKeyboardLayout = KeyboardLayout{
	0x0: 'x',
	0x1: '1',
	0x2: '2',
	0x3: '3',
	0x4: 'q',
	0x5: 'w',
	0x6: 'e',
	0x7: 'a',
	0x8: 's',
	0x9: 'd',
	0xA: 'z',
	0xB: 'c',
	0xC: '4',
	0xD: 'r',
	0xE: 'f',
	0xF: 'v',
}

// InMemoryKeyboard buffers key states set by the host (a GUI or a websocket
// handler, possibly on another goroutine) and hands them to the machine on
// Update.
type InMemoryKeyboard struct {
	mu    sync.Mutex
	state [KeypadSize]KeyState
}

func NewInMemoryKeyboard() *InMemoryKeyboard {
	return &InMemoryKeyboard{}
}

// Boot implements Keyboard.
func (kb *InMemoryKeyboard) Boot() error {
	return nil
}

// Update implements Keyboard.
func (kb *InMemoryKeyboard) Update(m *Machine) error {
	kb.mu.Lock()
	defer kb.mu.Unlock()

	for k := byte(0); k < KeypadSize; k++ {
		m.SetKey(k, kb.state[k])
	}

	return nil
}

func (kb *InMemoryKeyboard) Press(k byte) {
	kb.set(k, Pressed)
}

func (kb *InMemoryKeyboard) Release(k byte) {
	kb.set(k, Unpressed)
}

func (kb *InMemoryKeyboard) set(k byte, state KeyState) {
	if k >= KeypadSize {
		return
	}

	kb.mu.Lock()
	kb.state[k] = state
	kb.mu.Unlock()
}
