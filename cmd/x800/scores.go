package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Radialsum/X800W/internal/registry"
	"github.com/Radialsum/X800W/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores and play statistics. Without a mode every
mode is listed.

Examples:
  x800 scores
  x800 scores classic
  x800 scores 2048_endless --limit 25
  x800 scores endless --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded scores of the given mode")
}

func runScores(_ *cobra.Command, args []string) {
	ids := registry.IDs()
	if len(args) == 1 {
		id, err := resolveGameID(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		ids = []string{id}
	} else if flagClear {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a mode")
		os.Exit(1)
	}

	store, err := storage.Open(app.cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(ids[0]); err != nil {
			app.logger.Error("cannot clear scores", "mode", ids[0], "error", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", ids[0])
		return
	}

	for i, id := range ids {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, id); err != nil {
			app.logger.Error("cannot read scores", "mode", id, "error", err)
		}
	}

	if len(args) == 0 {
		printTotals(store)
	}
}

// printTotals sums the statistics of every mode that has results.
func printTotals(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		app.logger.Error("cannot read statistics", "error", err)
		return
	}

	var games, wins, best int
	for _, st := range all {
		games += st.GamesCount
		wins += st.Wins
		best = max(best, st.BestTile)
	}
	if games == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("All modes: %d games, %d wins, best tile %d\n", games, wins, best)
}

func printScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'x800 play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-6s  %-3s  %-8s  %-12s  %s\n", "Rank", "Score", "Tile", "Moves", "Won", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-6s  %-3s  %-8s  %-12s  %s\n", "----", "-----", "----", "-----", "---", "----", "------", "----")
	for i, r := range scores {
		won := ""
		if r.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-8d  %-7d  %-6d  %-3s  %-8s  %-12s  %s\n",
			i+1, r.Score, r.MaxTile, r.Moves, won, r.Duration.Round(time.Second), r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	st, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games: %d  Wins: %d  Best: %d  Best tile: %d  Average: %.0f  Moves: %d\n",
		st.GamesCount, st.Wins, st.HighScore, st.BestTile, st.AvgScore, st.TotalMoves)
	return nil
}
