package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

type fakeRuns struct {
	top    []storage.Run
	recent []storage.Run
	err    error
}

func (f fakeRuns) TopRuns(int) ([]storage.Run, error) { return f.top, f.err }
func (f fakeRuns) RecentRuns(int) ([]storage.Run, error) { return f.recent, f.err }

func (f fakeRuns) Stats() (*storage.Stats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &storage.Stats{RunsCount: len(f.top), HighScore: 90, AvgScore: 50, LastPlayed: time.Now()}, nil
}

func updateBoard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T, want ScoreboardModel", next)
	}
	return sm
}

func TestScoreboardViews(t *testing.T) {
	src := fakeRuns{
		top:    []storage.Run{{Score: 90}, {Score: 40}},
		recent: []storage.Run{{Score: 40}},
	}
	m := NewScoreboardModel(src, 90, 80, 24)

	if m.CurrentView() != ViewTop || len(m.Runs()) != 2 {
		t.Fatalf("initial view %v with %d runs, want Top with 2", m.CurrentView(), len(m.Runs()))
	}

	m = updateBoard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.CurrentView() != ViewRecent || len(m.Runs()) != 1 {
		t.Errorf("after tab: view %v with %d runs, want Recent with 1", m.CurrentView(), len(m.Runs()))
	}

	m = updateBoard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.CurrentView() != ViewTop {
		t.Errorf("second tab should cycle back to Top, got %v", m.CurrentView())
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES", "High Score: 90", "Games: 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardEmptyAndErrors(t *testing.T) {
	empty := NewScoreboardModel(nil, 0, 80, 24)
	if !strings.Contains(empty.View(), "No games recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	broken := NewScoreboardModel(fakeRuns{err: errors.New("locked")}, 0, 80, 24)
	if !strings.Contains(broken.View(), "locked") {
		t.Error("load error should be shown")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(fakeRuns{}, 0, 80, 24)

	back := updateBoard(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("esc should go back")
	}

	quit := updateBoard(t, m, runeKey('q'))
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{1500 * time.Millisecond, "0:02"},
		{65 * time.Second, "1:05"},
		{12*time.Minute + 3*time.Second, "12:03"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
