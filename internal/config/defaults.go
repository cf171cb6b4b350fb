package config

import (
	_ "embed"
)

//go:embed defaults/x800.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/x800.yaml.
func Default() Config {
	return Config{
		Game: GameConfig{
			Random:          "gray",
			HighlightMerges: true,
			HighlightSpawn:  true,
			ShowTimer:       true,
			TickRate:        60,
		},
		Storage: StorageConfig{
			DBPath: "~/.x800/scores.db",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
