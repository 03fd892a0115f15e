package suite

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
)

const maxWaitDuration = 10 * time.Second

// Suite is a console session fed from scripted input with captured output.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	Input   *console.Reader
	Display *console.Display
	Output  *bytes.Buffer
}

// New builds a session whose input is the given lines, one per read.
func New(t *testing.T, lines ...string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(&testWriter{t: t}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	script := ""
	if len(lines) > 0 {
		script = strings.Join(lines, "\n") + "\n"
	}

	output := &bytes.Buffer{}

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Input:   console.NewReader(strings.NewReader(script)),
		Display: console.NewDisplay(output),
		Output:  output,
	}
}

// OutputLines returns everything written so far, split into lines.
func (that *Suite) OutputLines() []string {
	return strings.Split(strings.TrimSuffix(that.Output.String(), "\n"), "\n")
}

// CountLines returns how many output lines equal line.
func (that *Suite) CountLines(line string) int {
	count := 0
	for _, l := range that.OutputLines() {
		if l == line {
			count++
		}
	}
	return count
}

// testWriter routes log records to t.Log so they only show for failing tests.
type testWriter struct {
	t *testing.T
}

func (that *testWriter) Write(p []byte) (int, error) {
	that.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
