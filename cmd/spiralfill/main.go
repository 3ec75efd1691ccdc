// spiralfill is a grid puzzle where a draggable spawner fills the board in
// a spiral and same-colored groups are cleared on demand.
//
// Usage:
//
//	spiralfill list              - List game variants
//	spiralfill play [game]       - Play in the terminal
//	spiralfill menu              - Menu with variant, difficulty and size
//	spiralfill desktop [game]    - Play in a native window
//	spiralfill serve             - Start SSH server for remote play
//	spiralfill scores [game]     - Show high scores
//	spiralfill sim [game]        - Run a headless autoplay session
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 30)
//	--seed <value>        - RNG seed for reproducible boards
//	--db <path>           - Database path (default: ~/.spiralfill/scores.db)
//	--config <path>       - Config YAML (default: search path)
//	--difficulty <name>   - easy, normal, hard or fixed
//	--size <n>            - Board size override
//	--log <path>          - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spiralfill/internal/config"
	"github.com/vovakirdan/spiralfill/internal/core"
	"github.com/vovakirdan/spiralfill/internal/games/spiralfill"
	"github.com/vovakirdan/spiralfill/internal/platform/tui"
	"github.com/vovakirdan/spiralfill/internal/registry"
	"github.com/vovakirdan/spiralfill/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSize       int
	flagLogPath    string
)

// logFile is the --log destination, closed on exit.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spiralfill",
	Short: "SpiralFill - fill the board in a spiral, clear the colors",
	Long: `SpiralFill is a grid puzzle. A spawner sits on the board and drops
colored items into the nearest free cells, spiralling outward. Drag the
spawner to steer where the spiral grows, and clear groups of two or more
adjacent same-colored items for points. The run ends when the board is full
and nothing matches.

Available commands:
  list     - Show game variants
  play     - Play in the terminal
  menu     - Interactive menu
  desktop  - Play in a native window
  serve    - Start SSH server for remote play
  scores   - View high scores and stats
  sim      - Headless autoplay

Examples:
  spiralfill play
  spiralfill play spiralfill_open --size 13
  spiralfill menu --difficulty hard
  spiralfill desktop --size 21
  spiralfill serve --ssh :2222
  spiralfill sim --seed 42 --print`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (ticks per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.spiralfill/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagSize, "size", 0, "Board size (width and height); 0 uses the config")
	pf.StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd, playCmd, menuCmd, desktopCmd, serveCmd, scoresCmd, simCmd)
}

// applyGlobalFlags validates the shared flags and hands them to the game
// and platform packages.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagSize < 0 {
		return fmt.Errorf("--size must not be negative, got %d", flagSize)
	}
	if flagDifficulty != "" {
		p, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		spiralfill.SetDifficulty(p)
	}
	spiralfill.SetConfigPath(flagConfig)
	spiralfill.SetBoardSize(flagSize)

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		l := newLogger(f, "spiralfill")
		l.SetLevel(log.DebugLevel)
		spiralfill.SetLogger(l)
		tui.SetLogger(l)
	}
	return nil
}

// newLogger returns a timestamped logger in the project's format.
func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// consoleLogger logs to stderr, or to the --log file when one is set.
func consoleLogger(prefix string) *log.Logger {
	if logFile != nil {
		l := newLogger(logFile, prefix)
		l.SetLevel(log.DebugLevel)
		return l
	}
	return newLogger(os.Stderr, prefix)
}

// runtimeConfig builds the runtime config from flags and terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// gameArg returns the game ID from optional args, checking it exists.
func gameArg(args []string) (string, error) {
	id := spiralfill.GameID
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown game %q; run 'spiralfill list' to see available games", id)
	}
	return id, nil
}

// createSpiralGame creates a registered game that must be a SpiralFill
// variant, for frontends that need the concrete type.
func createSpiralGame(id string) (*spiralfill.Game, error) {
	g, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	sg, ok := g.(*spiralfill.Game)
	if !ok {
		return nil, fmt.Errorf("game %q is not a SpiralFill variant", id)
	}
	return sg, nil
}
