package okto8_test

import (
	"testing"

	"github.com/KaComet/okto8"
)

func TestKeypadSetBounds(t *testing.T) {
	kp := okto8.NewKeypad()

	if !kp.Set(0, okto8.Pressed) {
		t.Fatalf(`Set(0) = false, expected true`)
	}
	if !kp.Set(15, okto8.Pressed) {
		t.Fatalf(`Set(15) = false, expected true`)
	}
	if kp.Set(16, okto8.Pressed) {
		t.Fatalf(`Set(16) = true, expected false`)
	}

	if !kp.IsPressed(0) || !kp.IsPressed(15) {
		t.Fatalf(`keys 0 and 15 should read as pressed`)
	}
	if kp.IsPressed(16) {
		t.Fatalf(`IsPressed(16) = true, expected false`)
	}
}

func TestKeypadNewlyPressed(t *testing.T) {
	kp := okto8.NewKeypad()

	// a key held before the snapshot is not a new press
	kp.Set(5, okto8.Pressed)
	kp.Save()

	if _, ok := kp.NewlyPressed(); ok {
		t.Fatalf(`NewlyPressed() found a key, expected none for a held key`)
	}

	// a key pressed after the snapshot is
	kp.Set(7, okto8.Pressed)
	k, ok := kp.NewlyPressed()
	if !ok || k != 7 {
		t.Fatalf(`NewlyPressed() = (%d, %v), expected (7, true)`, k, ok)
	}

	// the scan reports the lowest new key first
	kp.Set(2, okto8.Pressed)
	if k, _ := kp.NewlyPressed(); k != 2 {
		t.Fatalf(`NewlyPressed() = %d, expected the lowest new key 2`, k)
	}
}

func TestKeypadReset(t *testing.T) {
	kp := okto8.NewKeypad()

	kp.Set(3, okto8.Pressed)
	kp.Save()
	kp.Reset()

	if kp.IsPressed(3) {
		t.Fatalf(`key 3 still pressed after Reset`)
	}

	kp.Set(3, okto8.Pressed)
	if k, ok := kp.NewlyPressed(); !ok || k != 3 {
		t.Fatalf(`NewlyPressed() = (%d, %v), expected the snapshot to be cleared too`, k, ok)
	}
}
