package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spiralfill/internal/platform/tui"
	"github.com/vovakirdan/spiralfill/internal/registry"
	"github.com/vovakirdan/spiralfill/internal/storage"
)

var (
	flagScoresSize  int
	flagScoresLimit int
	flagScoresStats bool
	flagScoresReset bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for a game variant.

Examples:
  spiralfill scores
  spiralfill scores spiralfill_open --size 11
  spiralfill scores --limit 0
  spiralfill scores --stats
  spiralfill scores --tui
  spiralfill scores spiralfill --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresSize, "size", 0, "Only show runs on this board size")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show (0 = every run)")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show aggregated statistics for all games")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete every score of the game")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresStats {
		return printStats(store)
	}
	if flagScoresTUI {
		rc := runtimeConfig()
		_, err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
		return err
	}

	gameID, err := gameArg(args)
	if err != nil {
		return err
	}
	info, _ := registry.Get(gameID)

	if flagScoresReset {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Scores for %s cleared.\n", info.Title)
		return nil
	}

	var scores []storage.ScoreEntry
	switch {
	case flagScoresSize > 0:
		limit := flagScoresLimit
		if limit <= 0 {
			limit = math.MaxInt32
		}
		scores, err = store.TopScoresBySize(gameID, flagScoresSize, limit)
	case flagScoresLimit <= 0:
		scores, err = store.AllScores(gameID)
	default:
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := fmt.Sprintf("High Scores - %s", info.Title)
	if flagScoresSize > 0 {
		title += fmt.Sprintf(" (%dx%d)", flagScoresSize, flagScoresSize)
	}
	fmt.Println(title)
	fmt.Println("================================")
	if len(scores) == 0 {
		fmt.Println("No scores yet. Be the first to play!")
		return nil
	}

	fmt.Printf("%-5s %-8s %-8s %-7s %-8s %s\n", "Rank", "Score", "Board", "Placed", "Cleared", "Date")
	fmt.Println("---------------------------------------------------------")
	for i, s := range scores {
		fmt.Printf("%-5d %-8d %-8s %-7d %-8d %s\n",
			i+1, s.Score, s.BoardSize(), s.Placed, s.Cleared, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printStats(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No games played yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("%-18s %-6s %-8s %-8s %-9s %-7s %s\n", "Game", "Runs", "Best", "Average", "Cleared", "Board", "Last played")
	fmt.Println("--------------------------------------------------------------------------")
	for _, id := range ids {
		gs := all[id]
		fmt.Printf("%-18s %-6d %-8d %-8.1f %-9d %-7d %s\n",
			id, gs.GamesCount, gs.HighScore, gs.AvgScore, gs.TotalCleared, gs.LargestBoard,
			gs.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
