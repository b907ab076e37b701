package snake

import "time"

// Snapshot is a read-only copy of everything needed to draw or inspect a game.
type Snapshot struct {
	Grid      Grid
	Snake     []Cell // Head first
	Food      Cell
	Direction Direction
	Phase     Phase
	Score     int
	HighScore int
	NewRecord bool // High score was beaten during this game
	Interval  time.Duration
	Ticks     uint64
}

// Snapshot returns the current game state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Grid:      c.grid,
		Snake:     c.snake.Cells(),
		Food:      c.food,
		Direction: c.snake.Direction(),
		Phase:     c.phase,
		Score:     c.score,
		HighScore: c.highScore,
		NewRecord: c.newRecord,
		Interval:  c.interval,
		Ticks:     c.ticks,
	}
}
