package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lcd-invaders/internal/core"
	"github.com/vovakirdan/lcd-invaders/internal/lcd"
)

// Terminal space needed for the framebuffer, its border, the HUD and help.
const (
	MinTermWidth  = lcd.Width + 2
	MinTermHeight = lcd.Height/2 + 4
)

// LCD panel colours.
var (
	screenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C4F0C2")).
			Background(lipgloss.Color("#0F380F")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	hudStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))
)

// RenderFrame converts an LCD frame to text, packing two pixel rows into
// each line with half-block characters.
func RenderFrame(f *lcd.Frame) string {
	var sb strings.Builder
	// Block characters are 3 bytes in UTF-8
	sb.Grow((lcd.Width*3 + 1) * lcd.Height / 2)

	for y := 0; y < lcd.Height; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < lcd.Width; x++ {
			top, bottom := f.At(x, y), f.At(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

// RenderScreen draws the frame inside the styled LCD bezel.
func RenderScreen(f *lcd.Frame) string {
	return screenStyle.Render(RenderFrame(f))
}

// RenderHUD renders the status line shown above the screen.
func RenderHUD(title string, s core.GameState, high int, paused bool) string {
	lives := strings.Repeat("♥", core.Max(s.Lives, 0))
	line := fmt.Sprintf("%s  SCORE %d  HI %d  LIVES %s  ROUND %d", title, s.Score, core.Max(high, s.Score), lives, s.Round)
	if paused {
		return hudStyle.Render(line) + "  " + warnStyle.Render("PAUSED")
	}
	return hudStyle.Render(line)
}

// renderTooSmall explains the minimum terminal size.
func renderTooSmall(width, height int) string {
	msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", MinTermWidth, MinTermHeight, width, height)
	return warnStyle.Render(msg) + "\n" + dimStyle.Render("Resize the window or press q to quit.")
}

// centerText pads text so it appears centered in the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
