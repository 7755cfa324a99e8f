package core

import (
	"fmt"
	"strconv"
)

// Color is a terminal color spec understood by lipgloss: an ANSI index
// ("1".."255"), a hex triplet ("#RRGGBB"), or empty for the terminal default.
type Color string

// Palette used by the HUD and board chrome.
const (
	ColorDefault     Color = ""
	ColorRed         Color = "1"
	ColorGreen       Color = "2"
	ColorYellow      Color = "3"
	ColorCyan        Color = "6"
	ColorBrightRed   Color = "9"
	ColorBrightGreen Color = "10"
	ColorBlack       Color = "16"
	ColorBrightWhite Color = "15"
	ColorGray        Color = "245"
)

// RGB returns a 24-bit color in #RRGGBB form.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02X%02X%02X", r, g, b))
}

// IsDefault reports whether c leaves the terminal color untouched.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}

// Components parses a #RRGGBB color. ok is false for palette colors.
func (c Color) Components() (r, g, b uint8, ok bool) {
	if len(c) != 7 || c[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(string(c[1:]), 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// Contrast picks black or white text for readability on top of c.
func (c Color) Contrast() Color {
	r, g, b, ok := c.Components()
	if !ok {
		return ColorDefault
	}
	// ITU-R BT.601 luma
	luma := (299*int(r) + 587*int(g) + 114*int(b)) / 1000
	if luma > 140 {
		return ColorBlack
	}
	return ColorBrightWhite
}
