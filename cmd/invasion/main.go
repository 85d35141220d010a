// invasion is the Alien Invasion arcade shooter, playable in the terminal
// or in a desktop window.
//
// Usage:
//
//	invasion                 - Play in the terminal (same as "invasion play")
//	invasion play            - Play a game
//	invasion scores          - Show recorded runs and the high score
//	invasion presets         - List difficulty presets
//	invasion config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--db <path>      - Set database path (default: ~/.invasion/scores.db)
//	--config <path>  - Use a custom configuration YAML
//	--log <path>     - Set log file path (default: ~/.invasion/invasion.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invasion",
	Short: "Alien Invasion - shoot down the fleet before it lands",
	Long: `Alien Invasion is a fixed-screen arcade shooter. Steer your ship along
the bottom of the screen and shoot down the descending alien fleet before
it reaches you. Every cleared fleet comes back faster.

Available commands:
  play     - Play a game (default)
  scores   - View recorded runs and the high score
  presets  - List difficulty presets
  config   - Print the effective configuration

Examples:
  invasion
  invasion play --difficulty hard
  invasion play --gui
  invasion scores --interactive
  invasion config --config ./my-invasion.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invasion/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.invasion/invasion.log", "Path to log file for terminal play")

	// Play flags are accepted on the root command too
	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}
