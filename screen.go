package okto8

// PixelState is the state of a single pixel of the screen.
type PixelState byte

const (
	Unlit PixelState = iota
	Lit
)

// Screen dimensions of the original 64x32 monochrome display.
const (
	ScreenWidth  = 64
	ScreenHeight = 32
)

// Screen is the 64x32 monochrome framebuffer, stored row-major. Pixels are
// addressed by (row < 32, col < 64); out-of-range coordinates degrade to
// no-ops instead of faulting.
type Screen [ScreenWidth * ScreenHeight]PixelState

func NewScreen() *Screen {
	s := Screen([ScreenWidth * ScreenHeight]PixelState{})
	return &s
}

// Pixel returns the state of the pixel at (row, col). Out-of-range
// coordinates read as Unlit.
func (s *Screen) Pixel(row, col byte) PixelState {
	if row >= ScreenHeight || col >= ScreenWidth {
		return Unlit
	}

	return s[uint16(row)*ScreenWidth+uint16(col)]
}

// SetPixel sets the pixel at (row, col). Out-of-range coordinates are
// silently ignored.
func (s *Screen) SetPixel(row, col byte, state PixelState) {
	if row >= ScreenHeight || col >= ScreenWidth {
		return
	}

	s[uint16(row)*ScreenWidth+uint16(col)] = state
}

// Clear sets every pixel to Unlit.
func (s *Screen) Clear() {
	*s = Screen([ScreenWidth * ScreenHeight]PixelState{})
}
