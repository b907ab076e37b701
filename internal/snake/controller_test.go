package snake

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// memStore is an in-memory HighScoreStore that counts writes.
type memStore struct {
	score   int
	present bool
	writes  []int
	failErr error
}

func (m *memStore) LoadHighScore() (int, bool) {
	return m.score, m.present
}

func (m *memStore) StoreHighScore(score int) error {
	m.writes = append(m.writes, score)
	if m.failErr != nil {
		return m.failErr
	}
	m.score = score
	m.present = true
	return nil
}

func newTestController(t *testing.T, store HighScoreStore) *Controller {
	t.Helper()
	c, err := NewController(config.DefaultSnakeConfig(), store, 12345)
	if err != nil {
		t.Fatalf("NewController() failed: %v", err)
	}
	return c
}

// place puts the running game into a known position.
func place(c *Controller, dir Direction, food Cell, body ...Cell) {
	c.snake = NewSnake(c.grid, body...)
	c.snake.Face(dir)
	c.food = food
	c.phase = PhaseRunning
}

func TestNewControllerInitialState(t *testing.T) {
	c := newTestController(t, nil)

	if c.Phase() != PhaseNotStarted {
		t.Errorf("Phase() = %v, expected not_started", c.Phase())
	}
	snap := c.Snapshot()
	if len(snap.Snake) != 1 || snap.Snake[0] != (Cell{10, 10}) {
		t.Errorf("initial snake = %v, expected [(10,10)]", snap.Snake)
	}
	if snap.Direction != DirNone {
		t.Errorf("initial direction = %v, expected none", snap.Direction)
	}
	if snap.Food == (Cell{10, 10}) || !c.Grid().Contains(snap.Food) {
		t.Errorf("initial food %v is invalid", snap.Food)
	}
	if c.Score() != 0 || c.HighScore() != 0 {
		t.Errorf("Score/HighScore = %d/%d, expected 0/0", c.Score(), c.HighScore())
	}
	if c.Interval() != 200*time.Millisecond {
		t.Errorf("Interval() = %v, expected 200ms", c.Interval())
	}
}

func TestNewControllerRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Scoring.Reward = 0
	if _, err := NewController(cfg, nil, 1); err == nil {
		t.Error("NewController() should reject a zero reward")
	}
}

func TestNewControllerLoadsHighScore(t *testing.T) {
	c := newTestController(t, &memStore{score: 120, present: true})
	if c.HighScore() != 120 {
		t.Errorf("HighScore() = %d, expected 120", c.HighScore())
	}

	c = newTestController(t, &memStore{})
	if c.HighScore() != 0 {
		t.Errorf("absent high score should default to 0, got %d", c.HighScore())
	}
}

func TestStartTransitions(t *testing.T) {
	c := newTestController(t, nil)

	if !c.Start() {
		t.Fatal("Start() should be accepted before the game started")
	}
	if c.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected running", c.Phase())
	}
	if c.Snapshot().Direction != DirRight {
		t.Errorf("start direction = %v, expected right", c.Snapshot().Direction)
	}
	if c.Start() {
		t.Error("Start() should be ignored while running")
	}
}

func TestTickIgnoredUnlessRunning(t *testing.T) {
	c := newTestController(t, nil)
	before := c.Snapshot()

	if res := c.Tick(); res.Outcome != OutcomeNone {
		t.Errorf("Tick() before start = %v, expected none", res.Outcome)
	}
	c.Start()
	c.TogglePause()
	if res := c.Tick(); res.Outcome != OutcomeNone {
		t.Errorf("Tick() while paused = %v, expected none", res.Outcome)
	}
	if c.Snapshot().Snake[0] != before.Snake[0] {
		t.Error("snake moved while not running")
	}
}

func TestTickEatsFood(t *testing.T) {
	store := &memStore{}
	c := newTestController(t, store)
	place(c, DirRight, Cell{11, 10}, Cell{10, 10})

	res := c.Tick()
	if res.Outcome != AteFood {
		t.Fatalf("Tick() = %v, expected AteFood", res.Outcome)
	}

	snap := c.Snapshot()
	if len(snap.Snake) != 2 || snap.Snake[0] != (Cell{11, 10}) || snap.Snake[1] != (Cell{10, 10}) {
		t.Errorf("snake = %v, expected [(11,10) (10,10)]", snap.Snake)
	}
	if c.Score() != 10 {
		t.Errorf("Score() = %d, expected 10", c.Score())
	}
	if snap.Food == (Cell{11, 10}) || snap.Food == (Cell{10, 10}) || !c.Grid().Contains(snap.Food) {
		t.Errorf("food relocated to invalid cell %v", snap.Food)
	}
	if !res.NewRecord || c.HighScore() != 10 {
		t.Errorf("NewRecord=%v HighScore=%d, expected true/10", res.NewRecord, c.HighScore())
	}
	if len(store.writes) != 1 || store.writes[0] != 10 {
		t.Errorf("store writes = %v, expected [10]", store.writes)
	}
}

func TestTickWallCollisionEndsGame(t *testing.T) {
	c := newTestController(t, nil)
	place(c, DirLeft, Cell{5, 5}, Cell{0, 10})

	res := c.Tick()
	if res.Outcome != Collided {
		t.Fatalf("Tick() = %v, expected Collided", res.Outcome)
	}
	if c.Phase() != PhaseOver {
		t.Errorf("Phase() = %v, expected over", c.Phase())
	}
	if snap := c.Snapshot(); len(snap.Snake) != 1 || snap.Snake[0] != (Cell{0, 10}) {
		t.Errorf("snake = %v, expected unchanged [(0,10)]", snap.Snake)
	}
}

func TestTickAdvances(t *testing.T) {
	c := newTestController(t, nil)
	place(c, DirUp, Cell{0, 0}, Cell{5, 5}, Cell{6, 5}, Cell{6, 6}, Cell{5, 6})

	if res := c.Tick(); res.Outcome != Advanced {
		t.Fatalf("Tick() = %v, expected Advanced", res.Outcome)
	}
	snap := c.Snapshot()
	if snap.Snake[0] != (Cell{5, 4}) || snap.Snake[len(snap.Snake)-1] != (Cell{6, 6}) {
		t.Errorf("snake = %v, expected head (5,4) and tail (6,6)", snap.Snake)
	}
	if c.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", c.Score())
	}
}

func TestHighScorePersistedOncePerRecordTick(t *testing.T) {
	store := &memStore{score: 20, present: true}
	c := newTestController(t, store)

	// 10 and 20 do not beat the stored 20, 30 and 40 do
	for i := 0; i < 4; i++ {
		head := c.snake.Head()
		if i == 0 {
			place(c, DirRight, Cell{1, 0}, Cell{0, 0})
			head = Cell{0, 0}
		}
		c.food = head.Add(DirRight)
		if res := c.Tick(); res.Outcome != AteFood {
			t.Fatalf("tick %d: %v, expected AteFood", i, res.Outcome)
		}
	}

	if c.Score() != 40 || c.HighScore() != 40 {
		t.Errorf("Score/HighScore = %d/%d, expected 40/40", c.Score(), c.HighScore())
	}
	if len(store.writes) != 2 || store.writes[0] != 30 || store.writes[1] != 40 {
		t.Errorf("store writes = %v, expected [30 40]", store.writes)
	}
}

func TestHighScorePersistErrorReported(t *testing.T) {
	store := &memStore{failErr: errors.New("disk full")}
	c := newTestController(t, store)
	place(c, DirRight, Cell{11, 10}, Cell{10, 10})

	res := c.Tick()
	if res.PersistErr == nil {
		t.Error("PersistErr should carry the store failure")
	}
	if c.HighScore() != 10 || c.Phase() != PhaseRunning {
		t.Errorf("a failed write must not disturb play: HighScore=%d Phase=%v", c.HighScore(), c.Phase())
	}
}

func TestSpeedRampOnScore(t *testing.T) {
	c := newTestController(t, nil)
	place(c, DirRight, Cell{1, 0}, Cell{0, 0})

	prev := c.Interval()
	for i := 0; i < 15; i++ {
		c.food = c.snake.Head().Add(DirRight)
		res := c.Tick()
		if res.Outcome != AteFood {
			t.Fatalf("tick %d: %v, expected AteFood", i, res.Outcome)
		}
		if c.Score()%10 != 0 {
			t.Fatalf("score %d is not a multiple of the reward", c.Score())
		}
		if c.Interval() > prev {
			t.Fatalf("interval increased at score %d", c.Score())
		}
		if res.IntervalChanged != (c.Interval() != prev) {
			t.Fatalf("IntervalChanged=%v but interval %v -> %v", res.IntervalChanged, prev, c.Interval())
		}
		prev = c.Interval()

		switch c.Score() {
		case 40:
			if c.Interval() != 200*time.Millisecond {
				t.Errorf("interval at 40 = %v, expected 200ms", c.Interval())
			}
		case 50:
			if c.Interval() != 180*time.Millisecond {
				t.Errorf("interval at 50 = %v, expected 180ms", c.Interval())
			}
		case 150:
			if c.Interval() != 140*time.Millisecond {
				t.Errorf("interval at 150 = %v, expected 140ms", c.Interval())
			}
		}
	}
}

func TestSpeedFloor(t *testing.T) {
	c := newTestController(t, nil)
	place(c, DirDown, Cell{0, 1}, Cell{0, 0})

	for i := 0; i < 19; i++ {
		c.food = c.snake.Head().Add(DirDown)
		c.Tick()
	}
	if c.Score() != 190 {
		t.Fatalf("Score() = %d, expected 190", c.Score())
	}
	if c.Interval() < 100*time.Millisecond {
		t.Errorf("interval %v dropped below the 100ms floor", c.Interval())
	}
}

func TestTogglePause(t *testing.T) {
	c := newTestController(t, nil)

	if c.TogglePause() {
		t.Error("TogglePause() should be ignored before start")
	}
	c.Start()
	if !c.TogglePause() || c.Phase() != PhasePaused {
		t.Fatalf("expected paused, got %v", c.Phase())
	}
	if c.SetDirection(DirUp) {
		t.Error("SetDirection() should be ignored while paused")
	}
	if !c.TogglePause() || c.Phase() != PhaseRunning {
		t.Fatalf("expected running, got %v", c.Phase())
	}

	place(c, DirLeft, Cell{5, 5}, Cell{0, 0})
	c.Tick()
	if c.TogglePause() {
		t.Error("TogglePause() should be ignored after game over")
	}
}

func TestSetDirectionWhileRunning(t *testing.T) {
	c := newTestController(t, nil)
	if c.SetDirection(DirUp) {
		t.Error("SetDirection() should be ignored before start")
	}
	c.Start()
	if c.SetDirection(DirLeft) {
		t.Error("reversal should be rejected")
	}
	if !c.SetDirection(DirDown) {
		t.Error("perpendicular turn should be accepted")
	}
}

func TestResetKeepsHighScore(t *testing.T) {
	c := newTestController(t, &memStore{})
	place(c, DirRight, Cell{11, 10}, Cell{10, 10})
	c.Tick()
	place(c, DirLeft, Cell{5, 5}, Cell{0, 3})
	c.Tick()
	if c.Phase() != PhaseOver {
		t.Fatalf("expected game over, got %v", c.Phase())
	}

	c.Reset()
	snap := c.Snapshot()
	if snap.Phase != PhaseNotStarted || snap.Score != 0 || len(snap.Snake) != 1 {
		t.Errorf("after Reset: phase=%v score=%d len=%d", snap.Phase, snap.Score, len(snap.Snake))
	}
	if snap.Interval != 200*time.Millisecond {
		t.Errorf("after Reset: interval = %v, expected 200ms", snap.Interval)
	}
	if snap.HighScore != 10 {
		t.Errorf("after Reset: high score = %d, expected 10", snap.HighScore)
	}
	if snap.NewRecord {
		t.Error("NewRecord should clear on reset")
	}
}

func TestBoardFullEndsGame(t *testing.T) {
	c := newTestController(t, nil)
	c.grid = Grid{Width: 2, Height: 1}
	c.placer = NewFoodPlacer(c.grid, c.rng)
	place(c, DirRight, Cell{1, 0}, Cell{0, 0})

	res := c.Tick()
	if res.Outcome != AteFood {
		t.Fatalf("Tick() = %v, expected AteFood", res.Outcome)
	}
	if c.Phase() != PhaseOver {
		t.Errorf("a full board should end the game, got %v", c.Phase())
	}
}

func TestDeterminism(t *testing.T) {
	c1 := newTestController(t, nil)
	c2 := newTestController(t, nil)

	turns := map[int]Direction{5: DirDown, 9: DirLeft, 14: DirUp, 20: DirRight}
	c1.Start()
	c2.Start()
	for i := 0; i < 40; i++ {
		if d, ok := turns[i]; ok {
			c1.SetDirection(d)
			c2.SetDirection(d)
		}
		c1.Tick()
		c2.Tick()
	}

	s1, s2 := c1.Snapshot(), c2.Snapshot()
	if s1.Food != s2.Food || s1.Score != s2.Score || s1.Phase != s2.Phase || s1.Ticks != s2.Ticks {
		t.Errorf("snapshots diverged: %+v vs %+v", s1, s2)
	}
}
