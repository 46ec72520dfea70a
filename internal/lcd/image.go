package lcd

import (
	"image"
	"image/color"
)

// Palette maps lit and unlit pixels to colours.
type Palette struct {
	On  color.RGBA
	Off color.RGBA
}

// GreenPalette imitates a yellow-green STN panel.
var GreenPalette = Palette{
	On:  color.RGBA{R: 0x0F, G: 0x38, B: 0x0F, A: 0xFF},
	Off: color.RGBA{R: 0x9B, G: 0xBC, B: 0x0F, A: 0xFF},
}

// Image converts the frame to a Width x Height RGBA image.
func (f *Frame) Image(p Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c := p.Off
			if f.At(x, y) {
				c = p.On
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
