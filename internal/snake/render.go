package snake

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 1
	cellWidth = 2 // Terminal cells are roughly twice as tall as wide
)

// MinScreenSize returns the smallest screen that fits the HUD and the board.
func MinScreenSize() (w, h int) {
	return BoardSize*cellWidth + 2, BoardSize + 2 + hudHeight
}

// Render draws the current game to the screen.
func (c *Controller) Render(dst *core.Screen) {
	Render(dst, c.Snapshot())
}

// Render draws a snapshot to the screen.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	boardW := snap.Grid.Width*cellWidth + 2
	boardH := snap.Grid.Height + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		renderTooSmall(dst, boardW, boardH+hudHeight)
		return
	}

	renderHUD(dst, snap)

	board := core.NewRect((dst.Width()-boardW)/2, hudHeight, boardW, boardH)
	dst.DrawBox(board, core.ColorGray)

	for y := 0; y < snap.Grid.Height; y++ {
		for x := 0; x < snap.Grid.Width; x++ {
			plot(dst, board, Cell{X: x, Y: y}, '·', ' ', core.ColorDarkGray)
		}
	}

	plot(dst, board, snap.Food, '█', '█', core.ColorBrightRed)

	// Body first so the head is always on top
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			plot(dst, board, snap.Snake[i], '█', '█', core.ColorBrightGreen)
		} else {
			plot(dst, board, snap.Snake[i], '▓', '▓', core.ColorGreen)
		}
	}

	switch snap.Phase {
	case PhaseNotStarted:
		renderOverlay(dst, board, core.ColorBrightGreen,
			"SNAKE", "Press Enter to start")
	case PhasePaused:
		renderOverlay(dst, board, core.ColorBrightYellow,
			"PAUSED", "Press Space to resume")
	case PhaseOver:
		lines := []string{"Game Over!", fmt.Sprintf("Final Score: %d", snap.Score)}
		if snap.NewRecord && snap.Score > 0 {
			lines = append(lines, "New High Score!")
		}
		lines = append(lines, "Press Enter to play again")
		renderOverlay(dst, board, core.ColorBrightRed, lines...)
	}
}

// plot draws one grid cell as two screen columns inside the board frame.
func plot(dst *core.Screen, board core.Rect, c Cell, left, right rune, color core.Color) {
	x := board.X + 1 + c.X*cellWidth
	y := board.Y + 1 + c.Y
	dst.SetColored(x, y, left, color)
	dst.SetColored(x+1, y, right, color)
}

// renderHUD draws the title and score line.
func renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, "SNAKE", core.ColorBrightGreen)

	stats := fmt.Sprintf("Score: %d  High Score: %d  Speed: %dms",
		snap.Score, snap.HighScore, snap.Interval.Milliseconds())
	x := core.Clamp(dst.Width()-utf8.RuneCountInString(stats)-1, 7, dst.Width())
	dst.DrawTextColored(x, 0, stats, core.ColorBrightWhite)
}

// renderOverlay draws a framed message box centered on the board.
// The first line is the headline and gets the accent color.
func renderOverlay(dst *core.Screen, board core.Rect, accent core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	box := board.Centered(width+6, len(lines)+4)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, accent)

	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = accent
		}
		x := box.X + (box.W-utf8.RuneCountInString(l))/2
		dst.DrawTextColored(x, box.Y+2+i, l, color)
	}
}

// renderTooSmall replaces the game with a resize hint.
func renderTooSmall(dst *core.Screen, needW, needH int) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small", core.ColorBrightYellow)
	dst.DrawTextCentered(mid, fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()), core.ColorWhite)
}
