package engine

import (
	"errors"
	"war/game"
)

// ErrInputClosed reports that the console input ended before the session could start.
var ErrInputClosed = errors.New("input closed")

type Reason string

const (
	ReasonWon         Reason = "won"
	ReasonQuit        Reason = "quit"
	ReasonInputClosed Reason = "input_closed"
)

// Outcome summarizes a finished session.
type Outcome struct {
	Reason  Reason
	Mission game.Mission
	Turns   int
}

type Engine interface {
	// Run plays a session till the player wins, quits, or the input ends
	Run() (Outcome, error)
}
