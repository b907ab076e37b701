package config

import "time"

// SpeedRamp computes the tick interval as the score rises.
// The interval starts at the initial value, drops by a fixed step every time the
// score crosses a multiple of the threshold, and never goes below the floor.
type SpeedRamp struct {
	initial time.Duration
	floor   time.Duration
	step    time.Duration
	every   int
}

// NewSpeedRamp creates a ramp from the speed configuration.
func NewSpeedRamp(cfg SpeedConfig) *SpeedRamp {
	every := cfg.EveryPoints
	if every <= 0 {
		every = 1 // Prevent division by zero
	}
	floor := time.Duration(cfg.MinMS) * time.Millisecond
	return &SpeedRamp{
		initial: max(time.Duration(cfg.InitialMS)*time.Millisecond, floor),
		floor:   floor,
		step:    max(time.Duration(cfg.StepMS)*time.Millisecond, 0),
		every:   every,
	}
}

// Initial returns the interval at the start of a game.
func (r *SpeedRamp) Initial() time.Duration {
	return r.initial
}

// Floor returns the minimum interval.
func (r *SpeedRamp) Floor() time.Duration {
	return r.floor
}

// Next returns the interval after the score moved from prevScore to score.
// One step is applied for each threshold multiple crossed.
func (r *SpeedRamp) Next(current time.Duration, prevScore, score int) time.Duration {
	crossed := score/r.every - prevScore/r.every
	for range max(crossed, 0) {
		current = max(current-r.step, r.floor)
	}
	return current
}

// At returns the interval reached at the given score from a fresh game.
func (r *SpeedRamp) At(score int) time.Duration {
	return r.Next(r.initial, 0, score)
}
