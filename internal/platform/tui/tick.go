// Package tui provides the Bubble Tea integration for the snake game.
// It owns the tick timer, maps keys to controller commands and draws the screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when an armed timer fires. Gen is the timer generation it was armed with.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// scheduler keeps at most one live timer. Arming or cancelling bumps the generation,
// so a TickMsg from an older timer is recognized as stale and dropped.
type scheduler struct {
	gen   int
	armed bool
}

// arm starts a new timer that fires once after d.
func (s *scheduler) arm(d time.Duration) tea.Cmd {
	s.gen++
	s.armed = true
	gen := s.gen
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// cancel invalidates the live timer, if any.
func (s *scheduler) cancel() {
	s.gen++
	s.armed = false
}

// live reports whether msg came from the current timer.
func (s *scheduler) live(msg TickMsg) bool {
	return s.armed && msg.Gen == s.gen
}
