// Package config provides YAML-based configuration for the Snake game:
// scoring, the speed ramp, high-score storage and the SSH server.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for the game and its surroundings.
type SnakeConfig struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Speed   SpeedConfig   `yaml:"speed"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// ScoringConfig defines how points are awarded.
type ScoringConfig struct {
	Reward int `yaml:"reward"` // Points per food eaten
}

// SpeedConfig defines the linear speed ramp.
type SpeedConfig struct {
	InitialMS   int `yaml:"initial_ms"`   // Tick interval at game start
	MinMS       int `yaml:"min_ms"`       // Floor for the tick interval
	StepMS      int `yaml:"step_ms"`      // Reduction per threshold crossed
	EveryPoints int `yaml:"every_points"` // Score multiple that triggers a reduction
}

// StorageConfig selects the high-score backend.
type StorageConfig struct {
	Backend string `yaml:"backend"`  // Registered backend name ("sqlite", "savedata", "memory")
	DBPath  string `yaml:"db_path"`  // SQLite database file
	AppName string `yaml:"app_name"` // Save-data application name
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Scoring.Reward <= 0 {
		errs = append(errs, fmt.Errorf("scoring.reward must be positive, got %d", c.Scoring.Reward))
	}
	if c.Speed.MinMS <= 0 {
		errs = append(errs, fmt.Errorf("speed.min_ms must be positive, got %d", c.Speed.MinMS))
	}
	if c.Speed.InitialMS < c.Speed.MinMS {
		errs = append(errs, fmt.Errorf("speed.initial_ms (%d) must not be below speed.min_ms (%d)",
			c.Speed.InitialMS, c.Speed.MinMS))
	}
	if c.Speed.StepMS < 0 {
		errs = append(errs, fmt.Errorf("speed.step_ms must not be negative, got %d", c.Speed.StepMS))
	}
	if c.Speed.EveryPoints <= 0 {
		errs = append(errs, fmt.Errorf("speed.every_points must be positive, got %d", c.Speed.EveryPoints))
	}
	if c.Storage.Backend == "" {
		errs = append(errs, errors.New("storage.backend must be set"))
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout_minutes must not be negative, got %d",
			c.Server.IdleTimeoutMinutes))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
