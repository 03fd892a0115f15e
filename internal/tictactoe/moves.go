package tictactoe

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// LineReader returns one line of text per call.
type LineReader interface {
	ReadLine() (string, error)
}

// HumanMoves reads moves typed as "row col" or "row,col".
type HumanMoves struct {
	reader LineReader
}

func NewHumanMoves(reader LineReader) *HumanMoves {
	return &HumanMoves{reader: reader}
}

func (that *HumanMoves) NextMove(_ context.Context, _ entity.Mark) (entity.Coords, error) {
	line, err := that.reader.ReadLine()
	if err != nil {
		return entity.Coords{}, fmt.Errorf("failed to read move: %w", err)
	}

	return ParseMove(line)
}

// ParseMove takes the first two integers of a line split on whitespace and commas.
// Tokens that are not integers are skipped, as is anything after the second integer.
func ParseMove(line string) (entity.Coords, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	numbers := make([]int, 0, 2)
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			continue
		}

		numbers = append(numbers, n)
		if len(numbers) == 2 {
			return entity.Coords{Row: numbers[0], Col: numbers[1]}, nil
		}
	}

	return entity.Coords{}, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, line)
}
