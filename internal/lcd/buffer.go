// Package lcd models the logical framebuffer of a 128x64 monochrome LCD.
// Pixels are packed one bit each into 8 horizontal pages of 8 pixel-rows,
// one byte per column within a page, matching the layout the display bus
// expects. It contains no game logic and no I/O.
package lcd

// Display geometry.
const (
	Width      = 128
	Height     = 64
	PageHeight = 8
	Pages      = Height / PageHeight
	BufferSize = Width * Pages // 1024 bytes
)

// PixelBuffer is a 1-bit-per-pixel bitmap in page/column order.
// The y axis is flipped on store to match the physical mounting of the panel.
//
// Pixels can only be set. The buffer is meant to be cleared and fully
// redrawn every tick; there is no way to clear a single pixel.
type PixelBuffer struct {
	data [BufferSize]byte
}

// NewPixelBuffer creates a cleared buffer.
func NewPixelBuffer() *PixelBuffer {
	return &PixelBuffer{}
}

// Clear zeroes the entire buffer.
func (b *PixelBuffer) Clear() {
	b.data = [BufferSize]byte{}
}

// SetPixel turns on the pixel at logical (x, y).
// Out-of-bounds coordinates are silently ignored.
func (b *PixelBuffer) SetPixel(x, y int) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	y = Height - 1 - y
	b.data[(y/PageHeight)*Width+x] |= 1 << (y % PageHeight)
}

// Pixel reports whether the pixel at logical (x, y) is set.
// Returns false for out-of-bounds coordinates.
func (b *PixelBuffer) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	y = Height - 1 - y
	return b.data[(y/PageHeight)*Width+x]&(1<<(y%PageHeight)) != 0
}

// Bytes returns the raw buffer, page-major then column order, already flipped.
// The returned slice aliases the buffer and is only valid until the next draw.
func (b *PixelBuffer) Bytes() []byte {
	return b.data[:]
}

// Export returns a copy of the raw buffer that is safe to hand to a sink.
func (b *PixelBuffer) Export() Frame {
	return Frame(b.data)
}

// Blit hands the current buffer to a sink.
func (b *PixelBuffer) Blit(dst Blitter) error {
	return dst.Blit(b.data[:])
}

// Count returns the number of set pixels.
func (b *PixelBuffer) Count() int {
	n := 0
	for _, v := range b.data {
		for v != 0 {
			v &= v - 1
			n++
		}
	}
	return n
}

// writeColumn replaces one whole column byte of a page.
// Used by the text writer, whose glyph cells are page aligned.
func (b *PixelBuffer) writeColumn(page, x int, v byte) {
	if page < 0 || page >= Pages || x < 0 || x >= Width {
		return
	}
	b.data[page*Width+x] = v
}
