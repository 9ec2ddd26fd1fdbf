package okto8

import (
	"io"
	"os"
)

// Display abstraction for a display
type Display interface {
	// Boot initializes the component
	Boot() error
	// Render presents the framebuffer
	Render(*Screen) error
}

// DummyDisplay is a display that does nothing
type DummyDisplay struct{}

func NewDummyDisplay() *DummyDisplay {
	return &DummyDisplay{}
}

func (d DummyDisplay) Boot() error {
	return nil
}

func (d DummyDisplay) Render(screen *Screen) error {
	return nil
}

// InMemoryDisplay keeps a copy of the last rendered screen.
type InMemoryDisplay struct {
	Last Screen
}

func NewInMemoryDisplay() *InMemoryDisplay {
	return &InMemoryDisplay{}
}

func (d *InMemoryDisplay) Boot() error {
	return nil
}

func (d *InMemoryDisplay) Render(screen *Screen) error {
	d.Last = *screen

	return nil
}

const esc = 0x1B

// TerminalDisplay renders the screen as text using ANSI escape sequences.
type TerminalDisplay struct {
	terminal        io.Writer
	OnChar, OffChar string
}

func NewTerminalDisplay() *TerminalDisplay {
	return NewTerminalDisplayWithOutput(os.Stdout)
}

func NewTerminalDisplayWithOutput(out io.Writer) *TerminalDisplay {
	return &TerminalDisplay{
		terminal: out,
		OnChar:   "##",
		OffChar:  "  ",
	}
}

// Boot implements Display.
func (disp *TerminalDisplay) Boot() error {
	_, err := disp.terminal.Write([]byte{
		// Move cursor to start
		esc, '[', '1', 'H',
		// clear the terminal
		esc, '[', '0', 'J',
	})

	return err
}

// Render implements Display.
func (disp *TerminalDisplay) Render(screen *Screen) error {
	buff := make([]byte, 0, ScreenWidth*ScreenHeight*2+ScreenHeight+8)
	buff = append(buff, esc, '[', '1', 'H')

	for row := byte(0); row < ScreenHeight; row++ {
		for col := byte(0); col < ScreenWidth; col++ {
			if screen.Pixel(row, col) == Lit {
				buff = append(buff, disp.OnChar...)
			} else {
				buff = append(buff, disp.OffChar...)
			}
		}
		buff = append(buff, '|', '\n')
	}

	_, err := disp.terminal.Write(buff)
	return err
}
