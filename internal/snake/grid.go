// Package snake implements the Snake game: the grid, food placement, the snake
// state machine and the controller that ties them to score, speed and high score.
// It contains no terminal or timer code; the platform layer drives it with commands.
package snake

import "fmt"

// BoardSize is the width and height of the square playing field.
const BoardSize = 20

// Cell is one discrete grid position, 0-indexed.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit movement vector. The zero value is DirNone.
type Direction struct {
	DX, DY int
}

var (
	DirNone  = Direction{}
	DirRight = Direction{DX: 1}
	DirLeft  = Direction{DX: -1}
	DirDown  = Direction{DY: 1}
	DirUp    = Direction{DY: -1}
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// Grid is the rectangular coordinate space the snake lives in.
type Grid struct {
	Width, Height int
}

// DefaultGrid returns the standard square board.
func DefaultGrid() Grid {
	return Grid{Width: BoardSize, Height: BoardSize}
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Area returns the number of cells in the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Center returns the middle cell, rounding down-right on even sizes.
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// CellSet is an unordered set of cells.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether c is in the set.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}
