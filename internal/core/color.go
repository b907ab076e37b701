package core

import "image/color"

// Color is a foreground color for a screen cell, expressed as an ANSI 256-color slot.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorDarkGreen
	ColorGray
	ColorDarkGray
)

// ANSI returns the terminal color code for c, or "" for the default color.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "7"
	case ColorBrightRed:
		return "9"
	case ColorBrightGreen:
		return "10"
	case ColorBrightYellow:
		return "11"
	case ColorBrightWhite:
		return "15"
	case ColorDarkGreen:
		return "22"
	case ColorGray:
		return "245"
	case ColorDarkGray:
		return "238"
	default:
		return ""
	}
}

// RGBA returns the xterm palette value of c, used when rasterizing a screen.
// The default color maps to light gray.
func (c Color) RGBA() color.RGBA {
	switch c {
	case ColorRed:
		return color.RGBA{R: 128, A: 255}
	case ColorGreen:
		return color.RGBA{G: 128, A: 255}
	case ColorYellow:
		return color.RGBA{R: 128, G: 128, A: 255}
	case ColorCyan:
		return color.RGBA{G: 128, B: 128, A: 255}
	case ColorWhite:
		return color.RGBA{R: 192, G: 192, B: 192, A: 255}
	case ColorBrightRed:
		return color.RGBA{R: 255, A: 255}
	case ColorBrightGreen:
		return color.RGBA{G: 255, A: 255}
	case ColorBrightYellow:
		return color.RGBA{R: 255, G: 255, A: 255}
	case ColorBrightWhite:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case ColorDarkGreen:
		return color.RGBA{G: 95, A: 255}
	case ColorGray:
		return color.RGBA{R: 138, G: 138, B: 138, A: 255}
	case ColorDarkGray:
		return color.RGBA{R: 68, G: 68, B: 68, A: 255}
	default:
		return color.RGBA{R: 229, G: 229, B: 229, A: 255}
	}
}
