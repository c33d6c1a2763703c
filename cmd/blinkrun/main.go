// blinkrun is a blink-controlled endless runner for the terminal.
//
// The simulation engine is driven by triggers from an external blink
// classifier (over stdin) or by the keyboard standing in for one.
//
// Usage:
//
//	blinkrun play             - Play locally
//	blinkrun serve            - Start SSH server for remote play
//	blinkrun scores           - Show run history
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible runs
//	--db <path>      - Set database path (default: ~/.blinkrun/runs.db)
//	--config <path>  - Path to a custom settings YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blinkrun",
	Short: "Blink Runner - a blink-controlled endless runner in your terminal",
	Long: `Blink Runner is a terminal endless runner driven by eye blinks.

A single blink makes the runner jump, a quick double blink pauses. Triggers
come from an external blink classifier piped over stdin, or from the
keyboard when no classifier is attached.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - View run history

Examples:
  blinkrun play
  classifier | blinkrun play --follow
  blinkrun serve --ssh :2222
  blinkrun scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blinkrun/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
