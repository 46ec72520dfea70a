package invaders

import "github.com/vovakirdan/lcd-invaders/internal/lcd"

// Sprite is an 8x8 bitmap stored row by row; bit i of row j is the pixel
// at (x+i, y+j).
type Sprite [SpriteSize]byte

var (
	alienSprite = Sprite{0x00, 0x18, 0x3C, 0x7E, 0x5A, 0xFF, 0x54, 0xAA}
	shipSprite  = Sprite{0x00, 0x18, 0x3C, 0x18, 0x99, 0xBD, 0xFF, 0xE7}
)

// Draw ORs the sprite into buf with its top-left corner at (x, y).
// Parts that fall off screen are clipped by the buffer.
func (s *Sprite) Draw(buf *lcd.PixelBuffer, x, y int) {
	for j := 0; j < SpriteSize; j++ {
		row := s[j]
		for i := 0; i < SpriteSize; i++ {
			if row&(1<<i) != 0 {
				buf.SetPixel(x+i, y+j)
			}
		}
	}
}

// drawBullet draws a 2-pixel tall bullet.
func drawBullet(buf *lcd.PixelBuffer, x, y int) {
	buf.SetPixel(x, y)
	buf.SetPixel(x, y+1)
}
