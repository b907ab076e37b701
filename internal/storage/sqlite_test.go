package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories are created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.snake/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".snake", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestHighScoreAbsent(t *testing.T) {
	store := openTestStore(t)

	score, ok := store.LoadHighScore()
	if ok || score != 0 {
		t.Errorf("LoadHighScore() = (%d, %v), want (0, false)", score, ok)
	}
}

func TestHighScoreNeverLowers(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{30, 10, 50, 40} {
		if err := store.StoreHighScore(s); err != nil {
			t.Fatalf("StoreHighScore(%d) failed: %v", s, err)
		}
	}

	score, ok := store.LoadHighScore()
	if !ok || score != 50 {
		t.Errorf("LoadHighScore() = (%d, %v), want (50, true)", score, ok)
	}
}

func TestHighScorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.StoreHighScore(120); err != nil {
		t.Fatalf("StoreHighScore() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	if score, ok := reopened.LoadHighScore(); !ok || score != 120 {
		t.Errorf("LoadHighScore() after reopen = (%d, %v), want (120, true)", score, ok)
	}
}

func TestResetHighScore(t *testing.T) {
	store := openTestStore(t)

	if err := store.StoreHighScore(70); err != nil {
		t.Fatalf("StoreHighScore() failed: %v", err)
	}
	if err := store.ResetHighScore(); err != nil {
		t.Fatalf("ResetHighScore() failed: %v", err)
	}
	if _, ok := store.LoadHighScore(); ok {
		t.Error("high score should be absent after reset")
	}

	// Lower scores are accepted again after a reset
	if err := store.StoreHighScore(10); err != nil {
		t.Fatalf("StoreHighScore() failed: %v", err)
	}
	if score, _ := store.LoadHighScore(); score != 10 {
		t.Errorf("score = %d, want 10", score)
	}
}

func TestSaveRunAssignsUUID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{Score: 40, Length: 5, Ticks: 90, Duration: 18 * time.Second})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run ID %q is not a UUID: %v", id, err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	r := runs[0]
	if r.RunID != id || r.Score != 40 || r.Length != 5 || r.Ticks != 90 {
		t.Errorf("unexpected run %+v", r)
	}
	if r.Duration != 18*time.Second {
		t.Errorf("Duration = %v, want 18s", r.Duration)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	want := uuid.NewString()
	got, err := store.SaveRun(Run{RunID: want, Score: 10, Length: 2})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != want {
		t.Errorf("SaveRun() = %q, want %q", got, want)
	}

	// Run IDs are unique
	if _, err := store.SaveRun(Run{RunID: want, Score: 20}); err == nil {
		t.Error("expected error for duplicate run ID")
	}
}

func TestTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200, 0} {
		if _, err := store.SaveRun(Run{Score: s, Length: 1 + s/10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	want := []int{200, 100, 50}
	for i, r := range runs {
		if r.Score != want[i] {
			t.Errorf("runs[%d].Score = %d, want %d", i, r.Score, want[i])
		}
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{10, 20, 30} {
		if _, err := store.SaveRun(Run{Score: s}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	// Same-second inserts fall back to insertion order
	if runs[0].Score != 30 || runs[2].Score != 10 {
		t.Errorf("unexpected order: %d, %d, %d", runs[0].Score, runs[1].Score, runs[2].Score)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 10})
	store.SaveRun(Run{Score: 20})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.RunsCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected empty stats %+v", empty)
	}

	for _, s := range []int{10, 20, 60} {
		store.SaveRun(Run{Score: s})
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 3 {
		t.Errorf("RunsCount = %d, want 3", stats.RunsCount)
	}
	if stats.HighScore != 60 {
		t.Errorf("HighScore = %d, want 60", stats.HighScore)
	}
	if stats.AvgScore != 30 {
		t.Errorf("AvgScore = %v, want 30", stats.AvgScore)
	}
	if stats.TotalScore != 90 {
		t.Errorf("TotalScore = %d, want 90", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", want, want},
		{"sqlite text", "2024-03-09 14:05:00", want},
		{"rfc3339", "2024-03-09T14:05:00Z", want},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTime(tt.in); !got.Equal(tt.want) {
				t.Errorf("parseTime(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
