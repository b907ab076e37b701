package tui

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Pixel size of one screen cell in a PNG screenshot.
const (
	glyphW = 7
	glyphH = 13
)

var (
	screenshotFace = basicfont.Face7x13
	screenshotBG   = color.RGBA{A: 255}
)

// RasterizeScreen draws a screen buffer into an image, one glyphW x glyphH tile per cell.
// Block and box-drawing runes are painted as shapes; other runes use a 7x13 bitmap font.
func RasterizeScreen(s *core.Screen) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width()*glyphW, s.Height()*glyphH))
	draw.Draw(img, img.Bounds(), image.NewUniform(screenshotBG), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Face: screenshotFace}
	for y := range s.Height() {
		for x := range s.Width() {
			g := s.GetCell(x, y)
			if g.Rune == ' ' {
				continue
			}

			tile := image.Rect(x*glyphW, y*glyphH, (x+1)*glyphW, (y+1)*glyphH)
			fg := g.Color.RGBA()

			switch g.Rune {
			case '█':
				draw.Draw(img, tile, image.NewUniform(fg), image.Point{}, draw.Src)
			case '▓':
				shadeTile(img, tile, fg)
			default:
				if drawBoxRune(img, tile, g.Rune, fg) {
					continue
				}
				d.Src = image.NewUniform(fg)
				d.Dot = fixed.P(tile.Min.X, tile.Min.Y+screenshotFace.Ascent)
				d.DrawString(string(g.Rune))
			}
		}
	}
	return img
}

// shadeTile fills three pixels out of four, leaving a sparse dot pattern.
func shadeTile(img *image.RGBA, tile image.Rectangle, fg color.RGBA) {
	for y := tile.Min.Y; y < tile.Max.Y; y++ {
		for x := tile.Min.X; x < tile.Max.X; x++ {
			if x%2 == 0 && y%2 == 0 {
				continue
			}
			img.SetRGBA(x, y, fg)
		}
	}
}

// drawBoxRune paints the single-line box-drawing runes used for borders.
func drawBoxRune(img *image.RGBA, tile image.Rectangle, r rune, fg color.RGBA) bool {
	var left, right, up, down bool
	switch r {
	case '─':
		left, right = true, true
	case '│':
		up, down = true, true
	case '┌':
		right, down = true, true
	case '┐':
		left, down = true, true
	case '└':
		right, up = true, true
	case '┘':
		left, up = true, true
	default:
		return false
	}

	midX := tile.Min.X + glyphW/2
	midY := tile.Min.Y + glyphH/2
	if left {
		hline(img, tile.Min.X, midX, midY, fg)
	}
	if right {
		hline(img, midX, tile.Max.X-1, midY, fg)
	}
	if up {
		vline(img, midX, tile.Min.Y, midY, fg)
	}
	if down {
		vline(img, midX, midY, tile.Max.Y-1, fg)
	}
	return true
}

func hline(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y, c)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x, y, c)
	}
}

// writePNG saves a rasterized screen to path.
func writePNG(s *core.Screen, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("tui: cannot create screenshot: %w", err)
	}

	if err := png.Encode(f, RasterizeScreen(s)); err != nil {
		f.Close()
		return fmt.Errorf("tui: cannot encode screenshot: %w", err)
	}
	return f.Close()
}
