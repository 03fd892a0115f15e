package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell coordinates")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInputClosed      = errors.New("input stream closed")
	ErrInvalidBoardSize = errors.New("board size must be at least 1")
	ErrInvalidConfig    = errors.New("invalid config")
)
