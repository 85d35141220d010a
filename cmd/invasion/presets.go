package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows the difficulty presets of the effective configuration.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, args []string) {
	cfg, _, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %-6s  %-6s  %-6s  %-6s  %s\n", "Preset", "Ship", "Bullet", "Alien", "Drop", "Points")
	fmt.Printf("  %-8s  %-6s  %-6s  %-6s  %-6s  %s\n", "------", "----", "------", "-----", "----", "------")

	for _, name := range cfg.PresetNames() {
		p := cfg.Presets[name]
		label := string(name)
		if name == cfg.Gameplay.DefaultDifficulty {
			label += "*"
		}
		fmt.Printf("  %-8s  %-6.1f  %-6.1f  %-6.1f  %-6.1f  %d\n",
			label, p.ShipSpeed, p.BulletSpeed, p.AlienSpeed, p.FleetDropSpeed, p.AlienPoints)
	}

	fmt.Println()
	fmt.Printf("* default. Speeds grow by x%.2f per level.\n", cfg.Progression.SpeedupScale)
}
