// x800 is a terminal 2048 puzzle with local score history and SSH hosting.
//
// Usage:
//
//	x800 play [mode]         - Play classic or endless 2048 (menu if omitted)
//	x800 list                - List game modes
//	x800 scores [mode]       - Show high scores and statistics
//	x800 serve               - Start SSH server for remote play
//	x800 config              - Print the default configuration
//
// Global flags:
//
//	--config <path> - Configuration file (default search: ~/.x800, ./configs)
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--random <name> - Random source: gray or std
//	--db <path>     - Set database path (default: ~/.x800/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagRandom   string
	flagDBPath   string
	flagLogLevel string
)

// app is the loaded configuration shared by all commands.
var app *appContext

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "x800",
	Short: "x800 - 2048 in your terminal",
	Long: `x800 is the 2048 sliding tile puzzle for the terminal.

Available commands:
  play     - Play a game (classic or endless)
  list     - Show the game modes
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  x800 play
  x800 play endless --seed 7
  x800 scores classic
  x800 serve`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		a, err := loadApp(cmd.Flags())
		if err != nil {
			return err
		}
		app = a
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagRandom, "random", "gray", "Random source: gray or std")
	pf.StringVar(&flagDBPath, "db", "~/.x800/scores.db", "Path to scores database")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
