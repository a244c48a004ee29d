package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-rush/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level parameter table",
	Long: `Print the derived parameters for a sample of levels: target
distance, base speed, obstacle density, and the chapter each level
belongs to.`,
	Run: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	headerStyle := lipgloss.NewStyle().Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	fmt.Println(headerStyle.Render("Level parameters"))
	fmt.Println()
	fmt.Printf("  %-6s %-10s %-8s %-9s %-8s %s\n",
		"Level", "Distance", "Speed", "Density", "Chapter", "Moving")
	fmt.Println(dimStyle.Render(fmt.Sprintf("  %-6s %-10s %-8s %-9s %-8s %s",
		"-----", "--------", "-----", "-------", "-------", "------")))

	samples := []int{1, 5, 10, 15, 20, 21, 25, 30, 40, 50, 75, 100}
	for _, lvl := range samples {
		cfg, err := level.New(lvl)
		if err != nil {
			continue
		}
		moving := ""
		if cfg.MovingObstacles {
			moving = "yes"
		}
		fmt.Printf("  %-6d %-10.0f %-8.2f %-9.2f %-8d %s\n",
			cfg.Level, cfg.TargetDistance, cfg.BaseSpeed, cfg.ObstacleDensity, cfg.Chapter, moving)
	}

	fmt.Println()
	fmt.Println(dimStyle.Render("Run 'neonrush play <level>' to play an unlocked level."))
}
