package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Reader reads newline-terminated lines from a stream.
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader(in io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(in)}
}

// ReadLine blocks until a line is available. End of stream is apperror.ErrInputClosed.
func (that *Reader) ReadLine() (string, error) {
	if that.scanner.Scan() {
		return that.scanner.Text(), nil
	}

	if err := that.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read line: %w", err)
	}

	return "", apperror.ErrInputClosed
}
