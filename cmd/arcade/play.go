package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/a,d   - Move
  Space        - Fire (f toggles autofire)
  x            - Focus fire (straight lanes only)
  Q/W/E/R      - Barrier, beam, bullet clear, nuke
  P/Esc        - Pause
  Enter        - Resume / retry
  N            - New run from an overlay
  B            - Back to menu from an overlay
  Mouse        - Click overlay buttons
  Ctrl+C       - Quit

Difficulty options:
  easy   - More hearts, stronger shots
  normal - Tuning file as is
  hard   - Fewer hearts
  fixed  - Tuning file as is, no preset adjustments

Examples:
  arcade play shooter
  arcade play shooter_daily
  arcade play shooter --difficulty hard
  arcade play shooter --config ./my-shooter.yaml --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.CreateWithLogger(gameID, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage if the database is unavailable
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	_, runErr := tui.Run(game, store, terminalConfig(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
