// neonrush is a terminal lane-runner where survival runs unlock levels,
// shards, and zones.
//
// Usage:
//
//	neonrush play [level]    - Play a level (defaults to the next open one)
//	neonrush levels          - Show the level parameter table
//	neonrush progress        - Show per-level bests and run history
//	neonrush serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible runs
//	--db <path>      - Set database path (default: ~/.neonrush/progress.db)
//	--config <path>  - Path to custom tuning YAML
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "neonrush",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonrush",
	Short: "Neon Rush - lane-runner survival in your terminal",
	Long: `Neon Rush is a terminal lane-runner. Dodge obstacles of the wrong
color, collect shards, chain near misses into resonance, and spell out
the overdrive word to go invincible.

Available commands:
  play      - Play a level
  levels    - Show the level parameter table
  progress  - Per-level bests and run history
  serve     - Start SSH server for remote play

Examples:
  neonrush play
  neonrush play 12
  neonrush play 12 --seed 42
  neonrush levels
  neonrush progress
  neonrush serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neonrush/progress.db", "Path to progression database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}
