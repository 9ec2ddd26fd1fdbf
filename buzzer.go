package okto8

import (
	"io"
	"os"
)

type Buzzer interface {
	// Boot initializes the component
	Boot() error
	Play()
	Stop()
}

type DummyBuzzer struct {
	IsPlaying bool
}

func NewDummyBuzzer() *DummyBuzzer {
	return &DummyBuzzer{
		IsPlaying: false,
	}
}

// Boot implements Buzzer.
func (b *DummyBuzzer) Boot() error {
	return nil
}

// Play implements Buzzer.
func (b *DummyBuzzer) Play() {
	b.IsPlaying = true
}

// Stop implements Buzzer
func (b *DummyBuzzer) Stop() {
	b.IsPlaying = false
}

// TerminalBuzzer rings the terminal bell while the sound timer is active.
type TerminalBuzzer struct {
	terminal  io.Writer
	isPlaying bool
}

func NewTerminalBuzzer() *TerminalBuzzer {
	return &TerminalBuzzer{terminal: os.Stdout}
}

// Boot implements Buzzer.
func (b *TerminalBuzzer) Boot() error {
	return nil
}

// Play implements Buzzer.
func (b *TerminalBuzzer) Play() {
	if b.isPlaying {
		return
	}

	b.isPlaying = true
	b.terminal.Write([]byte{0x07})
}

// Stop implements Buzzer.
func (b *TerminalBuzzer) Stop() {
	b.isPlaying = false
}
