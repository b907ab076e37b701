package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Confirm    key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings: arrows and WASD steer.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Confirm, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Confirm, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// Action translates a key message to a platform action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// CommandFor routes an action to the controller command it means in the given phase.
// Space starts a fresh game and pauses a running one; Enter and R replay after game over.
func CommandFor(a core.Action, phase snake.Phase) (snake.Command, bool) {
	switch a {
	case core.ActionUp:
		return snake.Turn(snake.DirUp), true
	case core.ActionDown:
		return snake.Turn(snake.DirDown), true
	case core.ActionLeft:
		return snake.Turn(snake.DirLeft), true
	case core.ActionRight:
		return snake.Turn(snake.DirRight), true

	case core.ActionPause:
		switch phase {
		case snake.PhaseNotStarted:
			return snake.Command{Kind: snake.CmdStart}, true
		case snake.PhaseRunning, snake.PhasePaused:
			return snake.Command{Kind: snake.CmdTogglePause}, true
		}

	case core.ActionConfirm:
		switch phase {
		case snake.PhaseNotStarted:
			return snake.Command{Kind: snake.CmdStart}, true
		case snake.PhaseOver:
			return snake.Command{Kind: snake.CmdReset}, true
		}

	case core.ActionRestart:
		if phase == snake.PhaseOver {
			return snake.Command{Kind: snake.CmdReset}, true
		}
	}

	return snake.Command{}, false
}
