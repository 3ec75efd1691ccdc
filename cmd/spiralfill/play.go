package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spiralfill/internal/platform/tui"
	"github.com/vovakirdan/spiralfill/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The default game is spiralfill.

Controls:
  Arrows/hjkl  - Move the cursor
  Space/Enter  - Grab the spawner, press again to drop it at the cursor
  Mouse        - Drag the spawner with the left button
  S            - Start/stop spawning
  C            - Clear matching groups
  P            - Pause
  R            - New board (after game over)
  Esc          - Pause, press again to leave
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot

Difficulty presets:
  easy   - 10% blocked cells, slow start
  normal - 25% blocked cells
  hard   - 40% blocked cells, fast start
  fixed  - config block chance, no speed-up

Examples:
  spiralfill play
  spiralfill play spiralfill_open
  spiralfill play --difficulty hard --size 15
  spiralfill play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	id, err := gameArg(args)
	if err != nil {
		return err
	}
	game, err := registry.Create(id)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
