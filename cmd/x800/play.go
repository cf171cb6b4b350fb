package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Radialsum/X800W/internal/core"
	"github.com/Radialsum/X800W/internal/platform/tui"
	"github.com/Radialsum/X800W/internal/registry"
	"github.com/Radialsum/X800W/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play 2048",
	Long: `Start a game of 2048. Without a mode a menu lets you pick one.

Modes:
  classic (2048)          - Stop at the first 2048 tile and offer to continue
  endless (2048_endless)  - Keep merging until the board locks up

Controls:
  Arrows/WASD  - Slide tiles
  U/Z          - Undo the last move
  T ] [ V H    - Transpose, rotate, mirror the board
  Enter        - Keep going after a win
  P            - Pause
  R            - New game
  Esc/B        - Back to menu
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot to ~/.x800/screenshots

Examples:
  x800 play
  x800 play classic
  x800 play endless --seed 42 --random std`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	if err := play(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(args []string) error {
	gameID := ""
	if len(args) == 1 {
		id, err := resolveGameID(args[0])
		if err != nil {
			return err
		}
		gameID = id
	}

	// Get terminal size early for the first frame
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	cfg := app.runtime(width, height)

	store := app.openStore()
	if store != nil {
		defer store.Close()
	}

	restore := app.logToFile()
	defer restore()

	if gameID == "" {
		return tui.RunSession(store, app.logger, cfg, playerName())
	}
	return playOne(gameID, cfg, store)
}

// playOne runs a single mode. Going back from the game opens the menu.
func playOne(gameID string, cfg core.RuntimeConfig, store *storage.Store) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	back, err := tui.Run(game, store, app.logger, cfg, playerName())
	if err != nil || !back {
		return err
	}
	return tui.RunSession(store, app.logger, cfg, playerName())
}
