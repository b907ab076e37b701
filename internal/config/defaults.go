package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Scoring: ScoringConfig{
			Reward: 10,
		},
		Speed: SpeedConfig{
			InitialMS:   200,
			MinMS:       100,
			StepMS:      20,
			EveryPoints: 50,
		},
		Storage: StorageConfig{
			Backend: "sqlite",
			DBPath:  "~/.snake/scores.db",
			AppName: "tui-snake",
		},
		Server: ServerConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
