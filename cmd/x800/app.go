package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/Radialsum/X800W/internal/config"
	"github.com/Radialsum/X800W/internal/core"
	"github.com/Radialsum/X800W/internal/games/t2048"
	"github.com/Radialsum/X800W/internal/registry"
	"github.com/Radialsum/X800W/internal/storage"
)

type appContext struct {
	cfg    config.Config
	source string
	seed   int64
	logger *log.Logger
}

func loadApp(flags *pflag.FlagSet) (*appContext, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	applyFlags(&cfg, flags)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "x800",
		Level:           cfg.Log.ParsedLevel(),
	})
	logger.Debug("configuration loaded", "source", source)

	return &appContext{cfg: cfg, source: source, seed: flagSeed, logger: logger}, nil
}

// applyFlags overrides file values with flags the user set explicitly.
func applyFlags(cfg *config.Config, flags *pflag.FlagSet) {
	if flags.Changed("fps") {
		cfg.Game.TickRate = flagFPS
	}
	if flags.Changed("random") {
		cfg.Game.Random = flagRandom
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
}

// runtime builds the per-game settings for a screen of the given size.
func (a *appContext) runtime(width, height int) core.RuntimeConfig {
	g := a.cfg.Game
	return core.RuntimeConfig{
		ScreenW:         width,
		ScreenH:         height,
		TickRate:        g.TickRate,
		Seed:            a.seed,
		Random:          g.Random,
		HighlightMerges: g.HighlightMerges,
		HighlightSpawn:  g.HighlightSpawn,
		ShowTimer:       g.ShowTimer,
	}
}

// openStore opens the score database, or returns nil with a warning.
func (a *appContext) openStore() *storage.Store {
	store, err := storage.Open(a.cfg.Storage.DBPath)
	if err != nil {
		a.logger.Warn("could not open scores database", "path", a.cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// logToFile redirects the logger to ~/.x800/x800.log while a local TUI owns
// the terminal. The returned func restores stderr.
func (a *appContext) logToFile() func() {
	restore := func() { a.logger.SetOutput(os.Stderr) }

	dir := config.UserDir()
	if dir == "" || os.MkdirAll(dir, 0o755) != nil {
		a.logger.SetOutput(io.Discard)
		return restore
	}
	f, err := os.OpenFile(filepath.Join(dir, "x800.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		a.logger.SetOutput(io.Discard)
		return restore
	}
	a.logger.SetOutput(f)
	return func() {
		restore()
		f.Close()
	}
}

// resolveGameID accepts a registered id or a mode name.
func resolveGameID(arg string) (string, error) {
	if registry.Exists(arg) {
		return arg, nil
	}
	if id, ok := t2048.ModeID(t2048.Mode(arg)); ok {
		return id, nil
	}
	return "", fmt.Errorf("unknown mode %q (run 'x800 list' to see modes)", arg)
}

func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
