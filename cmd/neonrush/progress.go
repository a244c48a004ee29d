package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-rush/internal/platform/tui"
	"github.com/vovakirdan/neon-rush/internal/storage"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show per-level bests and run history",
	Long: `Open the progress view: star ratings, best distances, and shard
counts per level, plus the recent run history. Tab switches between the
two tables.`,
	Run: runProgress,
}

func runProgress(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("could not open progression database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	prog := loadProgression(store)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if _, err := tui.RunProgress(prog, store, width, height); err != nil {
		logger.Error("progress view failed", "error", err)
		os.Exit(1)
	}
}
