package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-rush/internal/config"
	"github.com/vovakirdan/neon-rush/internal/core"
	"github.com/vovakirdan/neon-rush/internal/level"
	"github.com/vovakirdan/neon-rush/internal/platform/tui"
	"github.com/vovakirdan/neon-rush/internal/progression"
	"github.com/vovakirdan/neon-rush/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start a run. Without an argument the next open level is played;
cleared levels can be replayed by number.

Controls:
  A/Left, D/Right - Swap lane (flips your color)
  S/Down          - Slow motion
  Space           - Phase dash (when charged)
  P/Esc           - Pause
  R               - Restore (on the downed screen)
  Q/Ctrl+C        - Quit

Examples:
  neonrush play
  neonrush play 12
  neonrush play 12 --seed 42
  neonrush play --config ./my-tuning.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("could not load tuning config, using defaults", "error", err)
		gameCfg = config.DefaultGameConfig()
	}

	// Open progression storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open progression database, progress will not persist", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	prog := loadProgression(store)

	// Resolve the level to play
	levelNum := prog.PlayerLevel() + 1
	if levelNum > level.MaxLevel {
		levelNum = level.MaxLevel
	}
	if len(args) == 1 {
		n, convErr := strconv.Atoi(args[0])
		if convErr != nil || n < 1 || n > level.MaxLevel {
			logger.Error("invalid level", "arg", args[0])
			os.Exit(1)
		}
		if n > prog.PlayerLevel()+1 {
			logger.Error("level is locked", "level", n, "open", prog.PlayerLevel()+1)
			os.Exit(1)
		}
		levelNum = n
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rtCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.PlayLevel(levelNum, gameCfg, prog, store, rtCfg); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// loadProgression loads the persisted state, or starts fresh when the
// database is unavailable.
func loadProgression(store *storage.Store) *progression.State {
	if store == nil {
		return progression.NewState()
	}
	snap, err := store.Load()
	if err != nil {
		logger.Warn("could not load progression, starting fresh", "error", err)
		return progression.NewState()
	}
	return progression.FromSnapshot(snap)
}
