// Package config provides YAML-based configuration loading for the
// puzzle: board dimensions, spawn odds, win target and UI preferences.
package config

import "fmt"

// GameConfig contains all tunable game parameters.
type GameConfig struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
	Rules RulesConfig `yaml:"rules"`
	UI    UIConfig    `yaml:"ui"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines how fresh tiles are generated.
type SpawnConfig struct {
	FourProb float64 `yaml:"four_prob"` // Probability a spawn is a 4 instead of a 2
}

// RulesConfig defines the win condition.
type RulesConfig struct {
	WinTarget int `yaml:"win_target"`
}

// UIConfig defines presentation preferences.
type UIConfig struct {
	Theme string `yaml:"theme"` // "blue", "red" or "green"
}

// Validate checks the configuration for values the game cannot run with.
func (c GameConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("config: board dimensions must be positive, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Spawn.FourProb < 0 || c.Spawn.FourProb > 1 {
		return fmt.Errorf("config: spawn.four_prob must be in [0, 1], got %v", c.Spawn.FourProb)
	}
	if c.Rules.WinTarget < 2 {
		return fmt.Errorf("config: rules.win_target must be at least 2, got %d", c.Rules.WinTarget)
	}
	return nil
}
