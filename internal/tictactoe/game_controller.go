package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// MoveSource supplies the next move for the mark whose turn it is. A move that
// could not be understood is reported with apperror.ErrInvalidInput; any other
// error ends the game.
type MoveSource interface {
	NextMove(ctx context.Context, turn entity.Mark) (entity.Coords, error)
}

// Display is the output side of a game session.
type Display interface {
	ShowTurn(mark entity.Mark)
	ShowBoard(board *entity.Board)
	ShowInvalidInput()
	ShowOutcome(outcome entity.Outcome)
}

// Game sequences turns on a board it owns exclusively.
type Game struct {
	logger *slog.Logger

	board   *entity.Board
	turn    entity.Mark
	human   entity.Mark
	outcome entity.Outcome

	moves   MoveSource
	display Display
}

func NewGame(logger *slog.Logger, board *entity.Board, human entity.Mark, moves MoveSource, display Display) *Game {
	return &Game{
		logger:  logger.With("component", "game"),
		board:   board,
		turn:    entity.PlayerX,
		human:   human,
		outcome: entity.Running(),
		moves:   moves,
		display: display,
	}
}

func (that *Game) Board() *entity.Board {
	return that.board
}

func (that *Game) Turn() entity.Mark {
	return that.turn
}

// Human returns the mark controlled from the console.
func (that *Game) Human() entity.Mark {
	return that.human
}

func (that *Game) Outcome() entity.Outcome {
	return that.outcome
}

func (that *Game) IsFinished() bool {
	return that.outcome.IsFinished()
}

// Reset clears the board and starts over with X to move.
func (that *Game) Reset() {
	that.board.Clear()
	that.turn = entity.PlayerX
	that.outcome = entity.Running()
}

// MakeTurn places the current mark at coords and advances the game.
func (that *Game) MakeTurn(coords entity.Coords) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := that.validateMove(coords); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.board.SetCell(coords, entity.Occupied(that.turn))
	that.updateGameStatus()

	return nil
}

// validateMove - checks if the move is valid.
func (that *Game) validateMove(coords entity.Coords) error {
	cell, ok := that.board.Cell(coords)
	if !ok {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, coords.Row, coords.Col)
	}

	if !cell.IsEmpty() {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func (that *Game) updateGameStatus() {
	outcome := that.board.Evaluate()
	if outcome.IsRunning() {
		that.turn = that.turn.Opponent()
		return
	}

	that.outcome = outcome
}

// RequestMove shows whose turn it is with the board and asks the move source for a move.
func (that *Game) RequestMove(ctx context.Context) (entity.Coords, error) {
	that.display.ShowTurn(that.turn)
	that.display.ShowBoard(that.board)

	coords, err := that.moves.NextMove(ctx, that.turn)
	if err != nil {
		return entity.Coords{}, fmt.Errorf("failed to get move for %s: %w", that.turn, err)
	}

	return coords, nil
}

// Run plays until the board is won or tied, then shows the result and the final board.
// It returns an error only when the move source fails.
func (that *Game) Run(ctx context.Context) (entity.Outcome, error) {
	that.logger.Debug("game started", "size", that.board.Size(), "human", that.human)

	for !that.IsFinished() {
		if err := ctx.Err(); err != nil {
			return that.outcome, fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.playTurn(ctx); err != nil {
			that.logger.Error("game aborted", "error", err)
			return that.outcome, err
		}
	}

	that.logger.Info("game finished", "status", that.outcome.Status, "winner", that.outcome.Winner)

	that.display.ShowOutcome(that.outcome)
	that.display.ShowBoard(that.board)

	return that.outcome, nil
}

// playTurn re-prompts until one valid move has been applied.
func (that *Game) playTurn(ctx context.Context) error {
	mark := that.turn

	for {
		coords, err := that.RequestMove(ctx)
		if err == nil {
			err = that.MakeTurn(coords)
		}

		switch {
		case err == nil:
			that.logger.Debug("move applied", "mark", mark, "row", coords.Row, "col", coords.Col)
			return nil
		case errors.Is(err, apperror.ErrInvalidInput),
			errors.Is(err, apperror.ErrInvalidCell),
			errors.Is(err, apperror.ErrCellOccupied):
			that.logger.Debug("move rejected", "mark", mark, "error", err)
			that.display.ShowInvalidInput()
		default:
			return err
		}
	}
}
