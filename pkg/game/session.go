package game

import (
	"fmt"

	"github.com/cbodonnell/healer/pkg/log"
)

// Session threads progress through consecutive rounds. Each round ends in a
// transition; the caller pauses and then asks for the next round, so there is
// no recursion however many rounds are played.
type Session struct {
	progress Progress
	round    *Round
	last     *Transition
}

func NewSession(progress Progress) *Session {
	return &Session{
		progress: progress,
	}
}

func (s *Session) Progress() Progress {
	return s.progress
}

// Round returns the current round, or nil before the first call to NextRound.
func (s *Session) Round() *Round {
	return s.round
}

// Over reports whether a terminal transition has been taken.
func (s *Session) Over() bool {
	return s.last != nil && s.last.Terminal()
}

// NextRound destroys the current round and starts a fresh one with the
// carried progress.
func (s *Session) NextRound() (*Round, error) {
	if s.Over() {
		return nil, fmt.Errorf("session is over: %s", s.last.Kind)
	}
	if s.round != nil {
		if s.round.Outcome() == OutcomeRunning {
			return nil, fmt.Errorf("round %s is still running", s.round.ID)
		}
		s.round.Destroy()
	}
	s.round = NewRound(s.progress)
	s.last = nil
	log.Info("Starting round at %s", s.progress)
	return s.round, nil
}

// Finish takes the transition for the current round's outcome.
func (s *Session) Finish() (Transition, error) {
	if s.round == nil {
		return Transition{}, fmt.Errorf("no round has been started")
	}
	if s.last != nil {
		return *s.last, nil
	}

	outcome := s.round.Outcome()
	transition, err := Advance(s.progress, outcome)
	if err != nil {
		return Transition{}, fmt.Errorf("failed to advance progress: %v", err)
	}

	switch transition.Kind {
	case TransitionGameOver:
		log.Info("Game over")
	case TransitionVictory:
		log.Info("Current level %d", s.progress.Level)
		log.Info("You win!")
	case TransitionContinue:
		if outcome == OutcomeWon {
			log.Info("Current level %d", s.progress.Level)
		}
	}

	s.progress = transition.Progress
	s.last = &transition
	return transition, nil
}
