package okto8_test

import (
	"testing"

	"github.com/KaComet/okto8"
)

func TestScreenPixelRoundTrip(t *testing.T) {
	s := okto8.NewScreen()

	s.SetPixel(3, 4, okto8.Lit)
	if got := s.Pixel(3, 4); got != okto8.Lit {
		t.Fatalf(`Pixel(3, 4) = %v, expected Lit`, got)
	}

	s.SetPixel(3, 4, okto8.Unlit)
	if got := s.Pixel(3, 4); got != okto8.Unlit {
		t.Fatalf(`Pixel(3, 4) = %v, expected Unlit`, got)
	}
}

func TestScreenOutOfRangeIsANoop(t *testing.T) {
	s := okto8.NewScreen()

	// writes out of range are dropped, reads come back unlit
	s.SetPixel(okto8.ScreenHeight, 0, okto8.Lit)
	s.SetPixel(0, okto8.ScreenWidth, okto8.Lit)

	if got := s.Pixel(okto8.ScreenHeight, 0); got != okto8.Unlit {
		t.Fatalf(`Pixel(32, 0) = %v, expected Unlit`, got)
	}
	if got := s.Pixel(0, okto8.ScreenWidth); got != okto8.Unlit {
		t.Fatalf(`Pixel(0, 64) = %v, expected Unlit`, got)
	}

	for row := byte(0); row < okto8.ScreenHeight; row++ {
		for col := byte(0); col < okto8.ScreenWidth; col++ {
			if s.Pixel(row, col) != okto8.Unlit {
				t.Fatalf(`pixel (%d, %d) lit, expected out-of-range writes to change nothing`, row, col)
			}
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := okto8.NewScreen()

	for row := byte(0); row < okto8.ScreenHeight; row++ {
		for col := byte(0); col < okto8.ScreenWidth; col++ {
			s.SetPixel(row, col, okto8.Lit)
		}
	}

	s.Clear()

	for row := byte(0); row < okto8.ScreenHeight; row++ {
		for col := byte(0); col < okto8.ScreenWidth; col++ {
			if s.Pixel(row, col) != okto8.Unlit {
				t.Fatalf(`pixel (%d, %d) lit after Clear`, row, col)
			}
		}
	}
}
