// Package config provides YAML configuration loading for x800.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Radialsum/X800W/internal/games/t2048/engine"
)

// Config is the complete application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig controls gameplay and presentation.
type GameConfig struct {
	Random          string `yaml:"random"` // "gray" or "std"
	HighlightMerges bool   `yaml:"highlight_merges"`
	HighlightSpawn  bool   `yaml:"highlight_spawn"`
	ShowTimer       bool   `yaml:"show_timer"`
	TickRate        int    `yaml:"tick_rate"`
}

// StorageConfig locates the score database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key_path"`
	IdleTimeout int    `yaml:"idle_timeout"` // minutes
}

// IdleTimeoutDuration returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeoutDuration() time.Duration {
	return time.Duration(s.IdleTimeout) * time.Minute
}

// LogConfig sets the logger verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ParsedLevel returns the configured level, or info if it does not parse.
func (l LogConfig) ParsedLevel() log.Level {
	lvl, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error

	if _, err := engine.NewRandomSource(c.Game.Random, 0); err != nil {
		errs = append(errs, fmt.Errorf("game.random: unknown source %q", c.Game.Random))
	}
	if c.Game.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("game.tick_rate: must be positive, got %d", c.Game.TickRate))
	}
	if c.Storage.DBPath == "" {
		errs = append(errs, errors.New("storage.db_path: must not be empty"))
	}
	if c.Server.Address == "" {
		errs = append(errs, errors.New("server.address: must not be empty"))
	}
	if c.Server.IdleTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout: must be positive, got %d", c.Server.IdleTimeout))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
