package entity

import "fmt"

const (
	StatusRunning Status = "running"
	StatusTied    Status = "tied"
	StatusWon     Status = "won"
)

type Status string

// Outcome is the evaluation of a board at a point in time. Winner is set only for StatusWon.
type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func Running() Outcome {
	return Outcome{Status: StatusRunning}
}

func Tied() Outcome {
	return Outcome{Status: StatusTied}
}

func Won(mark Mark) Outcome {
	return Outcome{Status: StatusWon, Winner: mark}
}

func (that Outcome) IsRunning() bool {
	return that.Status == StatusRunning
}

func (that Outcome) IsFinished() bool {
	return !that.IsRunning()
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWon:
		return fmt.Sprintf("%s won!", that.Winner)
	case StatusTied:
		return "It's a tie."
	default:
		return "Game in progress."
	}
}
