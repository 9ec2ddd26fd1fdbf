package okto8

// KeyState is the state of a single key of the 16-key keypad.
type KeyState byte

const (
	Unpressed KeyState = iota
	Pressed
)

// KeypadSize is the number of keys on the hex keypad.
const KeypadSize = 16

// Keypad holds the live state of the 16 keys plus a snapshot taken when the
// machine enters WaitingForKeypress. Comparing the snapshot against the live
// state lets the machine detect a key that became pressed after the wait
// began, as opposed to one that was already held.
type Keypad struct {
	keys     [KeypadSize]KeyState
	snapshot [KeypadSize]KeyState
}

func NewKeypad() *Keypad {
	return &Keypad{}
}

// Set changes the state of key k. It reports whether the state was applied;
// false means k was not a valid key and nothing changed.
func (kp *Keypad) Set(k byte, state KeyState) bool {
	if k >= KeypadSize {
		return false
	}

	kp.keys[k] = state

	return true
}

// IsPressed returns whether key k is currently pressed. Invalid keys read
// as unpressed.
func (kp *Keypad) IsPressed(k byte) bool {
	if k >= KeypadSize {
		return false
	}

	return kp.keys[k] == Pressed
}

// Save copies the live key state into the snapshot.
func (kp *Keypad) Save() {
	kp.snapshot = kp.keys
}

// NewlyPressed scans for the first key that the snapshot shows unpressed and
// the live state shows pressed. It returns the key and whether one was found.
func (kp *Keypad) NewlyPressed() (byte, bool) {
	for k := byte(0); k < KeypadSize; k++ {
		if kp.snapshot[k] == Unpressed && kp.keys[k] == Pressed {
			return k, true
		}
	}

	return 0, false
}

// Reset releases every key and clears the snapshot.
func (kp *Keypad) Reset() {
	kp.keys = [KeypadSize]KeyState{}
	kp.snapshot = [KeypadSize]KeyState{}
}
