package okto8_test

import (
	"testing"

	"github.com/KaComet/okto8"
)

func TestTimerDecayClampsAtZero(t *testing.T) {
	var timer okto8.Timer

	timer.Set(2)
	for i := 0; i < 100; i++ {
		timer.Decay(1)
	}

	if timer.Ceil() != 0 {
		t.Fatalf(`Ceil() = %d, expected 0`, timer.Ceil())
	}
	if timer.IsActive() {
		t.Fatalf(`IsActive() = true, expected the clamp to keep the timer at zero`)
	}
}

func TestTimerCeilReads(t *testing.T) {
	var timer okto8.Timer

	timer.Set(10)
	if timer.Ceil() != 10 {
		t.Fatalf(`Ceil() = %d, expected 10`, timer.Ceil())
	}

	timer.Decay(0.25)
	if timer.Ceil() != 10 {
		t.Fatalf(`Ceil() = %d, expected a partial decay to still read 10`, timer.Ceil())
	}

	timer.Decay(0.75)
	if timer.Ceil() != 9 {
		t.Fatalf(`Ceil() = %d, expected 9`, timer.Ceil())
	}
}

func TestTimerIgnoresNegativeDecay(t *testing.T) {
	var timer okto8.Timer

	timer.Set(5)
	timer.Decay(-3)

	if timer.Ceil() != 5 {
		t.Fatalf(`Ceil() = %d, expected a negative decay to change nothing`, timer.Ceil())
	}
}
