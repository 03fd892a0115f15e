package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestReader_ReadLine(t *testing.T) {
	t.Run("Reads lines until end of stream", func(t *testing.T) {
		// Given: two lines, the last without a newline
		reader := NewReader(strings.NewReader("1 2\n3,3"))

		// When: reading every line
		first, err := reader.ReadLine()
		require.NoError(t, err)
		second, err := reader.ReadLine()
		require.NoError(t, err)
		_, err = reader.ReadLine()

		// Then: both lines are returned, then ErrInputClosed
		assert.Equal(t, "1 2", first)
		assert.Equal(t, "3,3", second)
		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Stream failure is reported", func(t *testing.T) {
		// Given: a stream that fails
		reader := NewReader(failingReader{})

		// When: reading a line
		_, err := reader.ReadLine()

		// Then: the underlying error is returned
		require.Error(t, err)
		assert.Contains(t, err.Error(), "device gone")
	})
}

func TestRenderBoard(t *testing.T) {
	t.Run("3x3 board", func(t *testing.T) {
		// Given: a board with a few marks
		board, err := entity.NewBoard(3)
		require.NoError(t, err)
		board.SetCell(entity.Coords{Row: 1, Col: 1}, entity.Occupied(entity.PlayerX))
		board.SetCell(entity.Coords{Row: 1, Col: 3}, entity.Occupied(entity.PlayerO))
		board.SetCell(entity.Coords{Row: 2, Col: 2}, entity.Occupied(entity.PlayerX))

		// When: rendering it
		lines := RenderBoard(board)

		// Then: headers, cells and separators are drawn
		assert.Equal(t, []string{
			"  1 2 3",
			"1 X| |O",
			"  -----",
			"2  |X| ",
			"  -----",
			"3  | | ",
		}, lines)
	})

	t.Run("1x1 board has no separator", func(t *testing.T) {
		board, err := entity.NewBoard(1)
		require.NoError(t, err)

		assert.Equal(t, []string{"  1", "1  "}, RenderBoard(board))
	})
}

func TestDisplay(t *testing.T) {
	// Given: a display writing to a buffer
	var out bytes.Buffer
	display := NewDisplay(&out)
	board, err := entity.NewBoard(2)
	require.NoError(t, err)

	// When: every kind of message is shown
	display.ShowTurn(entity.PlayerO)
	display.ShowBoard(board)
	display.ShowInvalidInput()
	display.ShowOutcome(entity.Won(entity.PlayerX))
	display.ShowOutcome(entity.Tied())

	// Then: the output has one line per message
	assert.Equal(t, strings.Join([]string{
		"O's turn!",
		"  1 2",
		"1  | ",
		"  ---",
		"2  | ",
		"Invalid input.",
		"",
		"X won!",
		"It's a tie.",
		"",
	}, "\n"), out.String())
}
