package okto8

import (
	"sync"
	"time"

	"github.com/pkg/term"
)

// keyHoldDuration is how long a key reads as pressed after its character is
// seen. Terminals only deliver key-down events, so releases are synthesized
// by timeout.
const keyHoldDuration = 150 * time.Millisecond

// TerminalKeyboard reads raw characters from the controlling terminal and
// maps them onto the hex keypad using a KeyboardLayout.
type TerminalKeyboard struct {
	Layout KeyboardLayout

	tty    *term.Term
	lookup map[rune]byte

	mu        sync.Mutex
	pressedAt [KeypadSize]time.Time
}

func NewTerminalKeyboard() *TerminalKeyboard {
	return &TerminalKeyboard{
		Layout: DefaultKeyboardLayout,
	}
}

// Boot implements Keyboard. It switches the terminal to raw mode and starts
// draining characters on a background goroutine.
func (kb *TerminalKeyboard) Boot() error {
	kb.lookup = make(map[rune]byte, KeypadSize)
	for k, ch := range kb.Layout {
		kb.lookup[ch] = byte(k)
	}

	tty, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return err
	}
	kb.tty = tty

	go kb.drain()

	return nil
}

func (kb *TerminalKeyboard) drain() {
	buff := [1]byte{}
	for {
		n, err := kb.tty.Read(buff[:])
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}

		k, ok := kb.lookup[rune(buff[0])]
		if !ok {
			continue
		}

		kb.mu.Lock()
		kb.pressedAt[k] = time.Now()
		kb.mu.Unlock()
	}
}

// Update implements Keyboard.
func (kb *TerminalKeyboard) Update(m *Machine) error {
	now := time.Now()

	kb.mu.Lock()
	defer kb.mu.Unlock()

	for k := byte(0); k < KeypadSize; k++ {
		if now.Sub(kb.pressedAt[k]) < keyHoldDuration {
			m.SetKey(k, Pressed)
		} else {
			m.SetKey(k, Unpressed)
		}
	}

	return nil
}

// Close restores the terminal state.
func (kb *TerminalKeyboard) Close() error {
	if kb.tty == nil {
		return nil
	}

	if err := kb.tty.Restore(); err != nil {
		return err
	}

	return kb.tty.Close()
}
