package scenes

import (
	"fmt"

	"github.com/cbodonnell/healer/client/objects"
	"github.com/cbodonnell/healer/pkg/game"
	"github.com/cbodonnell/healer/pkg/game/constants"
	"github.com/hajimehoshi/ebiten/v2"
)

// TransitionScene holds the last frame of a finished round under a caption
// for a fixed pause. Game over and victory pause too before the game stops.
// It owns the finished scene and destroys it with itself.
type TransitionScene struct {
	*BaseScene

	previous   Scene
	transition game.Transition
	remaining  float64
}

var _ Scene = &TransitionScene{}

func NewTransitionScene(previous Scene, transition game.Transition) *TransitionScene {
	title, subtitle := transition.Caption()
	return &TransitionScene{
		BaseScene:  NewBaseScene(objects.NewTextOverlayObject("overlay-transition", title, subtitle)),
		previous:   previous,
		transition: transition,
		remaining:  constants.TransitionPause,
	}
}

func (s *TransitionScene) Transition() game.Transition {
	return s.transition
}

// Done reports whether the pause is over.
func (s *TransitionScene) Done() bool {
	return s.remaining <= 0
}

func (s *TransitionScene) Update() error {
	s.remaining -= 1 / float64(ebiten.TPS())
	return s.BaseScene.Update()
}

func (s *TransitionScene) Draw(screen *ebiten.Image) {
	if s.previous != nil {
		s.previous.Draw(screen)
	}
	s.BaseScene.Draw(screen)
}

func (s *TransitionScene) Destroy() error {
	if s.previous != nil {
		if err := s.previous.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy finished round: %v", err)
		}
	}
	return s.BaseScene.Destroy()
}
