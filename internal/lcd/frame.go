package lcd

import (
	"fmt"
	"strings"
)

// Frame is an exported copy of a PixelBuffer in wire layout.
type Frame [BufferSize]byte

// DecodeFrame copies raw bytes received by a sink into a Frame.
func DecodeFrame(raw []byte) (Frame, error) {
	var f Frame
	if len(raw) != BufferSize {
		return f, fmt.Errorf("lcd: frame must be %d bytes, got %d", BufferSize, len(raw))
	}
	copy(f[:], raw)
	return f, nil
}

// At reports whether logical pixel (x, y) is lit, undoing the storage flip.
func (f *Frame) At(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	y = Height - 1 - y
	return f[(y/PageHeight)*Width+x]&(1<<(y%PageHeight)) != 0
}

// String renders the frame as ASCII art, one line per pixel row.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for y := 0; y < Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < Width; x++ {
			if f.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
