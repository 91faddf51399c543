package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/racketball/internal/platform/tui"
	"github.com/vovakirdan/racketball/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start racketball in interactive menu mode.

Use arrow keys or j/k to navigate, Tab to change difficulty and Enter to
play. Leaving a game returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Tab          - Cycle difficulty
  Enter/Space  - Play
  Esc/B        - Back to menu (in game)
  Q            - Quit

Examples:
  racketball menu
  racketball menu --fps 30 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard, "racketball")
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := cmd.Context()
	cfg := runtimeConfig()
	chosen := difficulty

	// Menu loop
	for {
		menuResult, menuErr := tui.RunMenu(ctx, cfg, chosen)
		if menuErr != nil {
			return fmt.Errorf("menu: %w", menuErr)
		}

		// Keep size and difficulty for the next round
		cfg = menuResult.Config
		chosen = menuResult.Difficulty

		if menuResult.Quit || menuResult.GameID == "" {
			return nil
		}

		game, createErr := registry.Create(menuResult.GameID)
		if createErr != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "err", createErr)
			continue
		}
		if d, ok := game.(tui.Difficulty); ok {
			d.SetDifficulty(chosen)
		}

		back, runErr := tui.RunFromMenu(ctx, game, cfg)
		game.Close()
		if runErr != nil {
			return fmt.Errorf("running game: %w", runErr)
		}
		logger.Debug("game finished", "game", menuResult.GameID, "back", back)

		// Loop back to menu
	}
}
