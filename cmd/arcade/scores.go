package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresAll   bool
	flagScoresRun   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores and recent runs for a mode",
	Long: `Display the top high scores, the most recent runs and overall stats
for the specified mode.

Examples:
  arcade scores shooter
  arcade scores shooter_daily --limit 20
  arcade scores shooter --all
  arcade scores shooter --run 0b8f3c9e-5d1a-4c61-9a57-3f0e2c7d4b21
  arcade scores shooter --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores and runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs for the mode")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded score instead of the top --limit")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show one stored run by its ID")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return
	}

	if flagScoresRun != "" {
		showRun(store, gameID, flagScoresRun)
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-5s  %-10s  %s\n", "Rank", "Score", "When")
	fmt.Printf("  %-5s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-5s  %-10s  %s\n", humanize.Ordinal(i+1), humanize.Comma(int64(entry.Score)), humanize.Time(entry.CreatedAt))
	}

	runs, err := store.RecentRuns(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	if len(runs) > 0 {
		fmt.Println()
		fmt.Println("Recent Runs")
		fmt.Println()
		fmt.Printf("  %-8s  %-5s  %-10s  %-7s  %-8s  %s\n", "Run", "Stage", "Score", "Kills", "Time", "Seed")
		fmt.Printf("  %-8s  %-5s  %-10s  %-7s  %-8s  %s\n", "---", "-----", "-----", "-----", "----", "----")
		for _, r := range runs {
			fmt.Printf("  %-8s  %-5d  %-10s  %-7s  %-8s  %d\n",
				r.ID[:8], r.Stage, humanize.Comma(int64(r.Score)), humanize.Comma(int64(r.Kills)),
				r.Duration.Truncate(time.Second), r.Seed)
		}
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %s  Games: %s  Avg: %s  Best stage: %d  Kills: %s\n",
			humanize.Comma(int64(stats.HighScore)),
			humanize.Comma(int64(stats.GamesCount)),
			humanize.CommafWithDigits(stats.AvgScore, 1),
			stats.BestStage,
			humanize.Comma(stats.TotalKills),
		)
	}
}

// showRun prints a single stored run and how to replay its seed.
func showRun(store *storage.Store, gameID, id string) {
	run, err := store.RunByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if run == nil || run.GameID != gameID {
		fmt.Fprintf(os.Stderr, "Error: no %s run with ID %q\n", gameID, id)
		os.Exit(1)
	}

	fmt.Printf("Run %s\n\n", run.ID)
	fmt.Printf("  Mode:   %s\n", run.GameID)
	fmt.Printf("  Stage:  %d\n", run.Stage)
	fmt.Printf("  Score:  %s\n", humanize.Comma(int64(run.Score)))
	fmt.Printf("  Kills:  %s\n", humanize.Comma(int64(run.Kills)))
	fmt.Printf("  Time:   %s\n", run.Duration.Truncate(time.Second))
	fmt.Printf("  Played: %s\n", humanize.Time(run.CreatedAt))
	fmt.Printf("  Seed:   %d\n\n", run.Seed)
	fmt.Printf("Replay the seed with 'arcade play shooter --seed %d'.\n", run.Seed)
}
