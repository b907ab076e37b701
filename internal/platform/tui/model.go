package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Rows reserved below the game screen for the short and the full help view.
const (
	shortHelpHeight = 1
	fullHelpHeight  = 4
)

// RunRecorder is implemented by stores that keep a history of finished games.
type RunRecorder interface {
	SaveRun(run storage.Run) (string, error)
}

// Options configures a game model.
type Options struct {
	Config config.SnakeConfig
	Store  snake.HighScoreStore // nil keeps the high score in memory
	Seed   int64                // 0 picks a time-based seed
	Logger *log.Logger          // nil uses the default logger

	// Initial terminal size. Updated by tea.WindowSizeMsg.
	Width  int
	Height int

	// ScreenshotDir defaults to ~/.snake/screenshots.
	ScreenshotDir string
	NoScreenshots bool // Ignore ctrl+s, e.g. for remote sessions
}

// Model is the Bubble Tea model for one game of snake.
type Model struct {
	ctrl   *snake.Controller
	screen *core.Screen
	runs   RunRecorder
	logger *log.Logger
	keys   KeyMap
	help   help.Model
	sched  scheduler
	now    func() time.Time

	screenshotDir string
	noScreenshots bool

	width, height int

	runningSince time.Time     // When the current running stretch began
	played       time.Duration // Running time of the current game before runningSince
	runSaved     bool          // Whether the finished game was recorded
	quitting     bool
}

// NewModel creates a model with a fresh, not-started game.
func NewModel(opts Options) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	ctrl, err := snake.NewController(opts.Config, opts.Store, opts.Seed)
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot create game: %w", err)
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		cfg := core.DefaultConfig()
		width, height = cfg.ScreenW, cfg.ScreenH
	}

	m := Model{
		ctrl:          ctrl,
		screen:        core.NewScreen(width, height-shortHelpHeight),
		logger:        logger,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		now:           time.Now,
		screenshotDir: opts.ScreenshotDir,
		noScreenshots: opts.NoScreenshots,
		width:         width,
		height:        height,
	}
	m.help.Width = width
	if rec, ok := opts.Store.(RunRecorder); ok {
		m.runs = rec
	}

	logger.Debug("game created", "seed", opts.Seed, "high_score", ctrl.HighScore())
	return m, nil
}

// Init sets the window title. The timer is only armed once the game starts.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Snake")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.fitScreen()
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.sched.cancel()
		return m, tea.Quit
	case core.ActionScreenshot:
		if m.noScreenshots {
			return m, nil
		}
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	cmd, ok := CommandFor(action, m.ctrl.Phase())
	if !ok {
		return m, nil
	}
	return m.dispatch(cmd)
}

// fitScreen sizes the screen buffer to the terminal minus the help view.
func (m *Model) fitScreen() {
	reserved := shortHelpHeight
	if m.help.ShowAll {
		reserved = fullHelpHeight
	}
	m.screen.Resize(m.width, m.height-reserved)
}

// handleTick advances the game if msg came from the live timer.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.live(msg) {
		return m, nil
	}
	m.sched.armed = false

	next, cmd := m.dispatch(snake.Command{Kind: snake.CmdTick})
	if next.ctrl.Phase() == snake.PhaseRunning && cmd == nil {
		// The timer fires once; keep it going at the current interval
		cmd = next.sched.arm(next.ctrl.Interval())
	}
	return next, cmd
}

// dispatch applies a controller command and re-arms or cancels the timer as reported.
func (m Model) dispatch(cmd snake.Command) (Model, tea.Cmd) {
	before := m.ctrl.Phase()
	res := m.ctrl.Dispatch(cmd)
	after := m.ctrl.Phase()

	if res.Tick.PersistErr != nil {
		m.logger.Warn("could not store high score", "error", res.Tick.PersistErr)
	}
	if res.Tick.NewRecord {
		m.logger.Debug("new high score", "score", m.ctrl.Score())
	}
	if res.Tick.IntervalChanged {
		m.logger.Debug("speed up", "interval", m.ctrl.Interval())
	}

	m.trackTime(before, after)
	if after == snake.PhaseOver && before != snake.PhaseOver {
		m.finishGame()
	}

	if !res.Reschedule {
		return m, nil
	}
	if after == snake.PhaseRunning {
		return m, m.sched.arm(m.ctrl.Interval())
	}
	m.sched.cancel()
	return m, nil
}

// trackTime accumulates the time spent running in the current game.
func (m *Model) trackTime(before, after snake.Phase) {
	now := m.now()
	switch {
	case after == snake.PhaseNotStarted:
		m.played = 0
		m.runSaved = false
	case before != snake.PhaseRunning && after == snake.PhaseRunning:
		m.runningSince = now
	case before == snake.PhaseRunning && after != snake.PhaseRunning:
		m.played += now.Sub(m.runningSince)
	}
}

// finishGame records the finished game once.
func (m *Model) finishGame() {
	score := m.ctrl.Score()
	m.logger.Info("game over",
		"score", score,
		"length", m.ctrl.Length(),
		"ticks", m.ctrl.Ticks(),
		"duration", m.played.Round(time.Millisecond),
	)

	if m.runSaved || m.runs == nil {
		return
	}
	m.runSaved = true

	id, err := m.runs.SaveRun(storage.Run{
		Score:    score,
		Length:   m.ctrl.Length(),
		Ticks:    m.ctrl.Ticks(),
		Duration: m.played,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "run_id", id)
}

// saveScreenshot writes the current screen as plain text and as a PNG image,
// and returns the path of the text file.
func (m *Model) saveScreenshot() (string, error) {
	m.ctrl.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.New("tui: no home directory for screenshots")
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	base := filepath.Join(dir, "snake_"+m.now().Format("20060102_150405.000"))
	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	if err := writePNG(m.screen, base+".png"); err != nil {
		return "", err
	}
	return base + ".txt", nil
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.ctrl.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Controller exposes the game being played.
func (m Model) Controller() *snake.Controller {
	return m.ctrl
}

// Played returns the running time of the current game up to the last pause or game over.
func (m Model) Played() time.Duration {
	return m.played
}

// Run starts a local game in the alternate screen and blocks until the player quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
