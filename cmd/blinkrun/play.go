package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blink-runner/internal/config"
	"github.com/vovakirdan/blink-runner/internal/platform/tui"
	"github.com/vovakirdan/blink-runner/internal/storage"
)

var flagFollow bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Start a local run.

Controls:
  Space/Up   - Blink (jump; starts or restarts a run)
  P/Esc      - Pause
  Q/Ctrl+C   - Quit

With --follow, newline-delimited JSON commands are read from stdin and fed
to the engine, so a blink classifier can drive the game:

  {"kind":"INPUT","payload":{"action":"jump"}}

Examples:
  blinkrun play
  blinkrun play --config ./my-settings.yaml
  classifier | blinkrun play --follow`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagFollow, "follow", false, "Read classifier commands from stdin")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Terminal size; fall back to a sane default when not a TTY
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var feed io.Reader
	if flagFollow {
		feed = os.Stdin
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage
		store = nil
	}

	runErr := tui.Run(store, tui.Options{
		Settings: cfg.Settings(),
		Palette:  cfg.ThemePalette(),
		TickRate: flagFPS,
		Seed:     flagSeed,
		Width:    width,
		Height:   height,
		Feed:     feed,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
