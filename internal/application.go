package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
)

// RunApp - plays one game on the console and returns once it is won or tied.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	sessionLogger := logger.With("session", uuid.NewString())
	log := sessionLogger.With("component", "app")

	board, err := entity.NewBoard(conf.BoardSize)
	if err != nil {
		return fmt.Errorf("could not create board: %w", err)
	}

	moves := tictactoe.NewHumanMoves(console.NewReader(in))
	game := tictactoe.NewGame(sessionLogger, board, conf.Human(), moves, console.NewDisplay(out))

	log.Info("Starting game", "size", conf.BoardSize)

	outcome, err := game.Run(context.Background())
	if err != nil {
		return fmt.Errorf("game run failed: %w", err)
	}

	log.Info("Game over", "outcome", outcome.String())

	return nil
}
