package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/invasion"
	"github.com/vovakirdan/alien-invasion/internal/platform/gui"
	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
	"github.com/vovakirdan/alien-invasion/internal/session"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

var (
	flagDifficulty string
	flagGUI        bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start Alien Invasion at the pre-game menu.

Controls:
  Left/A, Right/D  - Steer
  Space            - Fire
  P                - Start a game with the current difficulty
  E / H            - Pick Easy or Hard after clicking Play
  Q/Ctrl+C         - Save the high score and quit

Click Play, then Easy or Hard, to start with the mouse.

Difficulty options:
  easy - Slower fleet, 50 points per alien (default)
  hard - Faster fleet, 100 points per alien

Examples:
  invasion play
  invasion play --difficulty hard
  invasion play --gui
  invasion play --config ./my-invasion.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for the P key: easy, hard")
	cmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a desktop window instead of the terminal")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal frontend owns the screen, so it logs to a file
	logger, closeLog := newLogger(!flagGUI)
	defer closeLog()
	logger.Info("config loaded", "source", source)

	settings := config.NewSettings(cfg)
	if preset != "" {
		if err := settings.ApplyPreset(preset); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Open score storage
	var scores session.ScoreStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
	} else {
		scores = store
		defer store.Close()
	}

	runtime := core.RuntimeConfig{TickRate: flagFPS}

	sess := session.New(invasion.New(settings), scores, logger)
	sess.Start(runtime)

	if flagGUI {
		err = gui.Run(sess, runtime)
	} else {
		// Get terminal size for the first frame
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		err = tui.Run(sess, runtime, width, height)
	}

	if err != nil {
		logger.Error("game exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
