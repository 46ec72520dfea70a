package lcd

// Text layout limits.
const (
	GlyphWidth   = 8
	MaxLineChars = Width / GlyphWidth // 16
)

// TextWriter draws text into a PixelBuffer using the built-in 8x8 glyphs.
// Each character cell replaces whatever was drawn beneath it.
type TextWriter struct {
	buf *PixelBuffer
}

// NewTextWriter returns a TextSink that writes into buf.
func NewTextWriter(buf *PixelBuffer) *TextWriter {
	return &TextWriter{buf: buf}
}

// DrawLine writes text on the given line (0 = top page).
// Lines above 7 and texts longer than 16 characters are ignored.
func (w *TextWriter) DrawLine(text string, line int) {
	if line < 0 || line >= Pages || len(text) > MaxLineChars {
		return
	}

	// Logical row 8*line+r lands on page 7-line, bit 7-r.
	page := Pages - 1 - line
	for j := 0; j < len(text); j++ {
		glyph := glyphFor(text[j])
		for col := 0; col < GlyphWidth; col++ {
			var v byte
			for row := 0; row < PageHeight; row++ {
				if glyph[row]&(1<<col) != 0 {
					v |= 1 << (PageHeight - 1 - row)
				}
			}
			w.buf.writeColumn(page, j*GlyphWidth+col, v)
		}
	}
}

var _ TextSink = (*TextWriter)(nil)
