package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the classic 4x4 setup.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Width:  4,
			Height: 4,
		},
		Spawn: SpawnConfig{
			FourProb: 0.1,
		},
		Rules: RulesConfig{
			WinTarget: 2048,
		},
		UI: UIConfig{
			Theme: "blue",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGameYAML
}
