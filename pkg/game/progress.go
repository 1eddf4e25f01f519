package game

import (
	"fmt"

	"github.com/cbodonnell/healer/pkg/game/constants"
)

// Progress is what carries over from one round to the next.
type Progress struct {
	Level int
	Lives int
}

// NewProgress returns the progress of a fresh game.
func NewProgress() Progress {
	return Progress{
		Level: constants.StartingLevel,
		Lives: constants.StartingLives,
	}
}

func (p Progress) String() string {
	return fmt.Sprintf("level %d, lives %d", p.Level, p.Lives)
}

// Outcome is how a round ended.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeDied
	OutcomeWon
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "Running"
	case OutcomeDied:
		return "Died"
	case OutcomeWon:
		return "Won"
	case OutcomeQuit:
		return "Quit"
	}
	return "Unknown"
}

type TransitionKind int

const (
	// TransitionContinue starts a new round with the transition's progress.
	TransitionContinue TransitionKind = iota
	TransitionGameOver
	TransitionVictory
	TransitionQuit
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionContinue:
		return "Continue"
	case TransitionGameOver:
		return "GameOver"
	case TransitionVictory:
		return "Victory"
	case TransitionQuit:
		return "Quit"
	}
	return "Unknown"
}

// Transition is the decision taken after a round ends.
type Transition struct {
	Kind TransitionKind
	// Progress is the progress to continue with, or the final progress
	// for the terminal kinds.
	Progress Progress
}

// Terminal reports whether the game stops after this transition.
func (t Transition) Terminal() bool {
	return t.Kind != TransitionContinue
}

// Caption returns the title and subtitle shown while pausing after the
// transition. Quitting shows nothing.
func (t Transition) Caption() (string, string) {
	switch t.Kind {
	case TransitionGameOver:
		return "Game Over", fmt.Sprintf("reached level %d", t.Progress.Level)
	case TransitionVictory:
		return "You Win!", fmt.Sprintf("%d lives left", t.Progress.Lives)
	case TransitionContinue:
		return fmt.Sprintf("Level %d", t.Progress.Level), fmt.Sprintf("%d lives left", t.Progress.Lives)
	}
	return "", ""
}

// Advance decides what follows a round that ended with outcome.
// Lives never drop below one and the level never passes MaxLevel.
func Advance(progress Progress, outcome Outcome) (Transition, error) {
	switch outcome {
	case OutcomeDied:
		if progress.Lives <= 1 {
			return Transition{Kind: TransitionGameOver, Progress: progress}, nil
		}
		progress.Lives--
		return Transition{Kind: TransitionContinue, Progress: progress}, nil
	case OutcomeWon:
		if progress.Level >= constants.MaxLevel {
			return Transition{Kind: TransitionVictory, Progress: progress}, nil
		}
		progress.Level++
		return Transition{Kind: TransitionContinue, Progress: progress}, nil
	case OutcomeQuit:
		return Transition{Kind: TransitionQuit, Progress: progress}, nil
	default:
		return Transition{}, fmt.Errorf("round has not ended: outcome %s", outcome)
	}
}
