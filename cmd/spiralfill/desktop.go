package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spiralfill/internal/platform/desktop"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop [game]",
	Short: "Play in a native window",
	Long: `Open the game in a native window. Drag the spawner with the mouse and
use the HUD buttons or the keyboard.

Controls:
  Mouse drag   - Move the spawner
  S / Spawn    - Start/stop spawning
  C / Clear    - Clear matching groups
  P / Pause    - Pause
  R            - New board (after game over)
  Esc/Q        - Quit

Examples:
  spiralfill desktop
  spiralfill desktop spiralfill_open --size 31`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDesktop,
}

func runDesktop(_ *cobra.Command, args []string) error {
	id, err := gameArg(args)
	if err != nil {
		return err
	}
	game, err := createSpiralGame(id)
	if err != nil {
		return err
	}

	logger := consoleLogger("spiralfill-desktop")
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	rc := runtimeConfig()
	return desktop.Run(game, desktop.Options{
		Store:   store,
		Runtime: rc,
		Logger:  logger,
	})
}
