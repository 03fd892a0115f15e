package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const InvalidInputMessage = "Invalid input."

// Display writes game output as plain text lines. Write errors are ignored.
type Display struct {
	out io.Writer
}

func NewDisplay(out io.Writer) *Display {
	return &Display{out: out}
}

func (that *Display) ShowTurn(mark entity.Mark) {
	that.println(fmt.Sprintf("%s's turn!", mark))
}

func (that *Display) ShowBoard(board *entity.Board) {
	for _, line := range RenderBoard(board) {
		that.println(line)
	}
}

func (that *Display) ShowInvalidInput() {
	that.println(InvalidInputMessage)
	that.println("")
}

func (that *Display) ShowOutcome(outcome entity.Outcome) {
	that.println(outcome.String())
}

func (that *Display) println(line string) {
	_, _ = fmt.Fprintln(that.out, line)
}

// RenderBoard draws the grid with 1-based column headers on top and row headers on the left:
//
//	  1 2 3
//	1 X| |O
//	  -----
//	2  |X|
func RenderBoard(board *entity.Board) []string {
	size := board.Size()
	lines := make([]string, 0, 2*size)

	header := make([]string, size)
	for i := range header {
		header[i] = strconv.Itoa(i + 1)
	}
	lines = append(lines, "  "+strings.Join(header, " "))

	separator := "  " + strings.Repeat("-", 2*size-1)
	for i, row := range board.Rows() {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cell.String()
		}

		lines = append(lines, strconv.Itoa(i+1)+" "+strings.Join(cells, "|"))
		if i < size-1 {
			lines = append(lines, separator)
		}
	}

	return lines
}
