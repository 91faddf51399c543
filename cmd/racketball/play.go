package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/racketball/internal/games/racket"
	"github.com/vovakirdan/racketball/internal/platform/tui"
	"github.com/vovakirdan/racketball/internal/registry"
	"github.com/vovakirdan/racketball/internal/sensor"
)

var (
	flagGyroTrace  string
	flagGyroLoop   bool
	flagSensorAddr string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (racket by default).

Controls:
  Left/Right, A/D   - Move the racket
  Mouse drag        - Move the racket
  Space or click    - Launch the ball
  P                 - Pause
  R                 - Restart
  Q/Ctrl+C          - Quit

Motion input:
  --gyro-trace replays a recorded YAML trace of {x, y, z, t_ms} points.
  --sensor-addr accepts phones streaming JSON samples over a WebSocket at
  ws://<addr>/sensor. Gyro samples move the racket once the ball is in play.

Examples:
  racketball play
  racketball play racket_practice
  racketball play --difficulty easy
  racketball play --gyro-trace ./tilt.yaml --gyro-loop
  racketball play --sensor-addr :8080 --log-file racket.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagGyroTrace, "gyro-trace", "", "Replay gyro samples from a YAML trace")
	playCmd.Flags().BoolVar(&flagGyroLoop, "gyro-loop", false, "Loop the gyro trace")
	playCmd.Flags().StringVar(&flagSensorAddr, "sensor-addr", "", "Accept phone sensor streams on this address (e.g. :8080)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := racket.VariantLives.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'racketball list' to see available variants", gameID)
	}

	// The alt screen owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard, "racketball")
	if err != nil {
		return err
	}
	defer closeLog()

	var trace sensor.Trace
	if flagGyroTrace != "" {
		trace, err = sensor.LoadTrace(flagGyroTrace)
		if err != nil {
			return err
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	defer game.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// Leaving the game stops the feeds
		defer cancel()
		runErr := tui.Run(gctx, game, runtimeConfig())
		if errors.Is(runErr, tea.ErrProgramKilled) || errors.Is(runErr, context.Canceled) {
			return nil
		}
		return runErr
	})

	if trace != nil {
		feed := &sensor.ReplayFeed{Trace: trace, Loop: flagGyroLoop, Logger: logger.With("feed", "trace")}
		g.Go(func() error {
			return feed.Run(gctx, game)
		})
	}

	if flagSensorAddr != "" {
		feed := &sensor.WebSocketFeed{Addr: flagSensorAddr, Logger: logger.With("feed", "websocket")}
		g.Go(func() error {
			return feed.Run(gctx, game)
		})
	}

	logger.Info("playing", "game", gameID, "difficulty", difficulty, "fps", flagFPS)
	if err := g.Wait(); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
