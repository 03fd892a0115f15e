package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const DefaultBoardSize = 3

// Board is a square grid of cells addressed with 1-based coordinates.
type Board struct {
	size int
	grid [][]Cell
}

// NewBoard allocates an empty size x size board.
func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, size)
	}

	return &Board{
		size: size,
		grid: newGrid(size),
	}, nil
}

func newGrid(size int) [][]Cell {
	grid := make([][]Cell, size)
	for i := range grid {
		grid[i] = make([]Cell, size)
	}
	return grid
}

func (that *Board) Size() int {
	return that.size
}

// Contains reports whether both coordinates lie in [1, size].
func (that *Board) Contains(coords Coords) bool {
	return coords.Row >= 1 && coords.Row <= that.size &&
		coords.Col >= 1 && coords.Col <= that.size
}

// Cell returns the addressed cell, or false if the coordinates are out of range.
func (that *Board) Cell(coords Coords) (Cell, bool) {
	if !that.Contains(coords) {
		return EmptyCell, false
	}

	return that.grid[coords.Row-1][coords.Col-1], true
}

// SetCell writes value into the addressed cell. Out of range coordinates are ignored.
func (that *Board) SetCell(coords Coords, value Cell) {
	if !that.Contains(coords) {
		return
	}

	that.grid[coords.Row-1][coords.Col-1] = value
}

// Clear empties every cell, keeping the size.
func (that *Board) Clear() {
	that.grid = newGrid(that.size)
}

// Rows returns a copy of the grid in row-major order.
func (that *Board) Rows() [][]Cell {
	rows := make([][]Cell, that.size)
	for i, row := range that.grid {
		rows[i] = append([]Cell(nil), row...)
	}
	return rows
}

// Evaluate reports a win, a tie or a running game. X is checked first, so a board
// where both marks hold a full line reports X as the winner.
func (that *Board) Evaluate() Outcome {
	for _, mark := range []Mark{PlayerX, PlayerO} {
		if that.hasFullLine(Occupied(mark)) {
			return Won(mark)
		}
	}

	// the game will continue until all the cells are full
	for _, row := range that.grid {
		for _, cell := range row {
			if cell.IsEmpty() {
				return Running()
			}
		}
	}

	return Tied()
}

// hasFullLine checks every row, every column and both corner-to-corner diagonals.
func (that *Board) hasFullLine(target Cell) bool {
	last := that.size - 1

	for i := 0; i < that.size; i++ {
		if that.lineMatches(target, func(j int) Cell { return that.grid[i][j] }) ||
			that.lineMatches(target, func(j int) Cell { return that.grid[j][i] }) {
			return true
		}
	}

	return that.lineMatches(target, func(j int) Cell { return that.grid[j][j] }) ||
		that.lineMatches(target, func(j int) Cell { return that.grid[j][last-j] })
}

func (that *Board) lineMatches(target Cell, at func(j int) Cell) bool {
	for j := 0; j < that.size; j++ {
		if at(j) != target {
			return false
		}
	}
	return true
}
