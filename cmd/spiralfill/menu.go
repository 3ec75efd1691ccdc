package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spiralfill/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu to pick the variant, difficulty and size",
	Long: `Start in interactive menu mode. After a game you return to the menu.

Controls:
  Up/Down/j/k     - Navigate
  Left/Right/h/l  - Change difficulty or board size
  Enter/Space     - Play
  Tab             - High scores
  Q               - Quit

Examples:
  spiralfill menu
  spiralfill menu --fps 60
  spiralfill menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	if err := tui.RunSession(store, runtimeConfig()); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
