package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Phase is the overall game state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// HighScoreStore persists the best score across sessions.
type HighScoreStore interface {
	// LoadHighScore returns the stored score, or false when none is stored
	// or it cannot be read.
	LoadHighScore() (int, bool)

	// StoreHighScore records a new best score.
	StoreHighScore(score int) error
}

// TickResult describes what a single tick did.
type TickResult struct {
	Outcome         Outcome
	NewRecord       bool  // The high score was raised this tick
	IntervalChanged bool  // The tick interval was reduced this tick
	PersistErr      error // Storing the new record failed
}

// Controller owns a game: the snake, the food, the phase, score, high score and speed.
// It is driven entirely from outside: the platform calls Start, Tick, SetDirection,
// TogglePause and Reset (or Dispatch) and arms its timer from Interval.
type Controller struct {
	cfg    config.SnakeConfig
	grid   Grid
	ramp   *config.SpeedRamp
	rng    *rand.Rand
	placer *FoodPlacer
	store  HighScoreStore

	snake     *Snake
	food      Cell
	phase     Phase
	score     int
	highScore int
	interval  time.Duration
	ticks     uint64
	newRecord bool // High score was beaten during the current game
}

// NewController creates a controller in the not-started phase.
// The high score is loaded from store once here; a nil store keeps it in memory only.
func NewController(cfg config.SnakeConfig, store HighScoreStore, seed int64) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	grid := DefaultGrid()
	c := &Controller{
		cfg:    cfg,
		grid:   grid,
		ramp:   config.NewSpeedRamp(cfg.Speed),
		rng:    rng,
		placer: NewFoodPlacer(grid, rng),
		store:  store,
	}

	if store != nil {
		if hs, ok := store.LoadHighScore(); ok && hs > 0 {
			c.highScore = hs
		}
	}

	c.Reset()
	return c, nil
}

// Reset discards the current game and returns to the not-started phase.
// The high score survives.
func (c *Controller) Reset() {
	c.snake = NewSnake(c.grid, c.grid.Center())
	c.food, _ = c.placer.Place(c.snake.Occupied())
	c.phase = PhaseNotStarted
	c.score = 0
	c.interval = c.ramp.Initial()
	c.ticks = 0
	c.newRecord = false
}

// Start begins the game, moving right. Only valid before the game started.
func (c *Controller) Start() bool {
	if c.phase != PhaseNotStarted {
		return false
	}
	c.snake.Face(DirRight)
	c.phase = PhaseRunning
	return true
}

// TogglePause switches between running and paused. Ignored in other phases.
func (c *Controller) TogglePause() bool {
	switch c.phase {
	case PhaseRunning:
		c.phase = PhasePaused
	case PhasePaused:
		c.phase = PhaseRunning
	default:
		return false
	}
	return true
}

// SetDirection forwards a turn request to the snake while the game is running.
func (c *Controller) SetDirection(d Direction) bool {
	if c.phase != PhaseRunning {
		return false
	}
	return c.snake.SetDirection(d)
}

// Tick advances the game one step. Only valid while running.
func (c *Controller) Tick() TickResult {
	if c.phase != PhaseRunning {
		return TickResult{}
	}
	c.ticks++

	res := TickResult{Outcome: c.snake.Step(c.food)}
	switch res.Outcome {
	case Collided:
		c.phase = PhaseOver
	case AteFood:
		c.eat(&res)
	}
	return res
}

// eat applies the consequences of the head landing on food.
func (c *Controller) eat(res *TickResult) {
	prev := c.score
	c.score += c.cfg.Scoring.Reward

	food, ok := c.placer.Place(c.snake.Occupied())
	if ok {
		c.food = food
	} else {
		// No free cell left
		c.phase = PhaseOver
	}

	if c.score > c.highScore {
		c.highScore = c.score
		c.newRecord = true
		res.NewRecord = true
		if c.store != nil {
			res.PersistErr = c.store.StoreHighScore(c.score)
		}
	}

	next := c.ramp.Next(c.interval, prev, c.score)
	if next != c.interval {
		c.interval = next
		res.IntervalChanged = true
	}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Score returns the current score.
func (c *Controller) Score() int {
	return c.score
}

// HighScore returns the best score seen so far, stored or current.
func (c *Controller) HighScore() int {
	return c.highScore
}

// Interval returns the current tick interval.
func (c *Controller) Interval() time.Duration {
	return c.interval
}

// Food returns the food cell.
func (c *Controller) Food() Cell {
	return c.food
}

// Grid returns the playing field.
func (c *Controller) Grid() Grid {
	return c.grid
}

// Ticks returns the number of ticks taken in the current game.
func (c *Controller) Ticks() uint64 {
	return c.ticks
}

// Length returns the snake length.
func (c *Controller) Length() int {
	return c.snake.Len()
}
