package lcd

import "testing"

func TestDrawLineGlyphPlacement(t *testing.T) {
	b := NewPixelBuffer()
	w := NewTextWriter(b)

	w.DrawLine("A", 0)

	// Row 0 of 'A' is 0x0C: columns 2 and 3
	if !b.Pixel(2, 0) || !b.Pixel(3, 0) {
		t.Error("expected top of 'A' at (2,0) and (3,0)")
	}
	if b.Pixel(0, 0) || b.Pixel(4, 0) {
		t.Error("unexpected pixels beside the top of 'A'")
	}

	// Row 4 of 'A' is 0x3F: the crossbar
	for x := 0; x < 6; x++ {
		if !b.Pixel(x, 4) {
			t.Errorf("crossbar pixel (%d,4) missing", x)
		}
	}

	// Row 7 is empty
	for x := 0; x < GlyphWidth; x++ {
		if b.Pixel(x, 7) {
			t.Errorf("row 7 should be empty, got pixel at x=%d", x)
		}
	}
}

func TestDrawLineSecondCharacterAndLine(t *testing.T) {
	b := NewPixelBuffer()
	w := NewTextWriter(b)

	w.DrawLine(" .", 2)

	// '.' occupies rows 5-6, columns 2-3 of the second cell on line 2
	for _, p := range [][2]int{{10, 21}, {11, 21}, {10, 22}, {11, 22}} {
		if !b.Pixel(p[0], p[1]) {
			t.Errorf("expected dot pixel at (%d,%d)", p[0], p[1])
		}
	}
	if b.Count() != 4 {
		t.Errorf("Count() = %d, expected 4", b.Count())
	}
}

func TestDrawLineReplacesCell(t *testing.T) {
	b := NewPixelBuffer()
	b.SetPixel(7, 3)  // inside the first cell of line 0
	b.SetPixel(7, 8)  // line 1, untouched
	b.SetPixel(20, 3) // beyond a one-character text

	NewTextWriter(b).DrawLine(" ", 0)

	if b.Pixel(7, 3) {
		t.Error("a blank cell should erase what was beneath it")
	}
	if !b.Pixel(7, 8) {
		t.Error("pixels on other lines must be kept")
	}
	if !b.Pixel(20, 3) {
		t.Error("pixels past the end of the text must be kept")
	}
}

func TestDrawLineLimits(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{"too long", "seventeen chars!!", 0},
		{"line past bottom", "Hi", 8},
		{"negative line", "Hi", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewPixelBuffer()
			NewTextWriter(b).DrawLine(tt.text, tt.line)
			if b.Count() != 0 {
				t.Errorf("expected nothing drawn, got %d pixels", b.Count())
			}
		})
	}
}

func TestDrawLineFullWidth(t *testing.T) {
	b := NewPixelBuffer()
	NewTextWriter(b).DrawLine("Press any key to", 7)

	if b.Count() == 0 {
		t.Fatal("16-character line should be drawn")
	}
	for x := 0; x < Width; x++ {
		for y := 0; y < 56; y++ {
			if b.Pixel(x, y) {
				t.Fatalf("line 7 text leaked to (%d,%d)", x, y)
			}
		}
	}
}
