package okto8_test

import (
	"testing"

	"github.com/KaComet/okto8"
)

func newTestConsole() (*okto8.Console, *okto8.InMemoryKeyboard, *okto8.InMemoryDisplay) {
	kb := okto8.NewInMemoryKeyboard()
	d := okto8.NewInMemoryDisplay()

	return okto8.NewConsole(okto8.NewMachine(), d, kb, okto8.NewDummyBuzzer()), kb, d
}

func TestConsoleMustBeBooted(t *testing.T) {
	c, _, _ := newTestConsole()

	if err := c.SingleStep(); err != okto8.ErrConsoleIsNotBooted {
		t.Fatalf(`SingleStep() = %v, expected ErrConsoleIsNotBooted`, err)
	}
	if err := c.Run(); err != okto8.ErrConsoleIsNotBooted {
		t.Fatalf(`Run() = %v, expected ErrConsoleIsNotBooted`, err)
	}
}

func TestConsoleSingleStep(t *testing.T) {
	c, _, _ := newTestConsole()

	if err := c.LoadProgram([]byte{0x6A, 0x05}); err != nil {
		t.Fatalf(`LoadProgram() returned an error %v`, err)
	}
	if err := c.Boot(); err != nil {
		t.Fatalf(`Boot() returned an error %v`, err)
	}

	// SingleStep runs even while stopped
	c.Stop()
	if err := c.SingleStep(); err != nil {
		t.Fatalf(`SingleStep() returned an error %v`, err)
	}

	if c.Machine.V[0xA] != 5 {
		t.Fatalf(`m.V[A] = %d, expected 5`, c.Machine.V[0xA])
	}
	if c.IsRunning() {
		t.Fatalf(`IsRunning() = true, expected the pause to survive a single step`)
	}
}

func TestConsoleRendersDirtyScreens(t *testing.T) {
	c, _, d := newTestConsole()

	if err := c.LoadProgram([]byte{
		0xA3, 0x00,
		0xD0, 0x11,
	}); err != nil {
		t.Fatalf(`LoadProgram() returned an error %v`, err)
	}
	c.Machine.WriteByte(0x300, 0xFF)

	if err := c.Boot(); err != nil {
		t.Fatalf(`Boot() returned an error %v`, err)
	}

	c.SingleStep()
	c.SingleStep()

	if d.Last.Pixel(0, 0) != okto8.Lit {
		t.Fatalf(`display did not receive the drawn frame`)
	}
}

func TestConsoleForwardsKeyState(t *testing.T) {
	c, kb, _ := newTestConsole()

	if err := c.LoadProgram([]byte{
		0x60, 0x05,
		// skip if key v0 pressed
		0xE0, 0x9E,
		0x61, 1,
		0x62, 1,
	}); err != nil {
		t.Fatalf(`LoadProgram() returned an error %v`, err)
	}
	if err := c.Boot(); err != nil {
		t.Fatalf(`Boot() returned an error %v`, err)
	}

	kb.Press(5)

	for i := 0; i < 3; i++ {
		if err := c.SingleStep(); err != nil {
			t.Fatalf(`SingleStep() returned an error %v`, err)
		}
	}

	if c.Machine.V[0x1] != 0 {
		t.Fatalf(`m.V[1] = %d, expected the skip to jump over it`, c.Machine.V[0x1])
	}
	if c.Machine.V[0x2] != 1 {
		t.Fatalf(`m.V[2] = %d, expected 1`, c.Machine.V[0x2])
	}
}
