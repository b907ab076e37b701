package snake

// Outcome is the result of advancing the snake one step.
type Outcome int

const (
	OutcomeNone Outcome = iota // No step was taken
	Advanced                   // Moved, tail dropped
	AteFood                    // Moved onto food, tail kept
	Collided                   // Hit a wall or itself, body unchanged
)

func (o Outcome) String() string {
	switch o {
	case Advanced:
		return "advanced"
	case AteFood:
		return "ate_food"
	case Collided:
		return "collided"
	default:
		return "none"
	}
}

// Snake is the ordered list of occupied cells, head first, plus its movement vector.
type Snake struct {
	grid      Grid
	body      []Cell    // Head at index 0
	direction Direction // Applied on the next step
	heading   Direction // Direction of the last step taken
}

// NewSnake creates a snake occupying the given cells, head first, standing still.
func NewSnake(grid Grid, cells ...Cell) *Snake {
	body := make([]Cell, len(cells))
	copy(body, cells)
	return &Snake{grid: grid, body: body}
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Occupied returns the body as a set.
func (s *Snake) Occupied() CellSet {
	return NewCellSet(s.body...)
}

// Occupies reports whether any segment is on c.
func (s *Snake) Occupies(c Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Direction returns the direction the next step will take.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Heading returns the direction of the last step taken.
func (s *Snake) Heading() Direction {
	return s.heading
}

// Face sets the direction unconditionally. Used when a game starts.
func (s *Snake) Face(d Direction) {
	s.direction = d
	s.heading = d
}

// SetDirection requests a turn and reports whether it was accepted.
// A vertical turn needs the current vertical component to be zero, a horizontal
// turn the horizontal one, so the snake can only turn perpendicular to its motion.
// The rule holds against both the pending direction and the last step taken, so two
// presses between ticks cannot fold the snake back onto its neck.
func (s *Snake) SetDirection(d Direction) bool {
	if d == DirNone || !perpendicular(s.direction, d) || !perpendicular(s.heading, d) {
		return false
	}
	s.direction = d
	return true
}

func perpendicular(current, next Direction) bool {
	if next.DY != 0 && current.DY != 0 {
		return false
	}
	if next.DX != 0 && current.DX != 0 {
		return false
	}
	return true
}

// Step advances the snake one cell in its direction.
// A head leaving the grid or landing on any current segment, the tail included,
// collides and leaves the body untouched.
func (s *Snake) Step(food Cell) Outcome {
	next := s.Head().Add(s.direction)

	if !s.grid.Contains(next) || s.Occupies(next) {
		return Collided
	}

	s.heading = s.direction
	s.body = append([]Cell{next}, s.body...)

	if next == food {
		return AteFood
	}

	s.body = s.body[:len(s.body)-1]
	return Advanced
}
