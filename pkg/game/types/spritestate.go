package types

import (
	"github.com/cbodonnell/healer/pkg/game/constants"
	"github.com/cbodonnell/healer/pkg/kinematic"
	"github.com/solarlune/resolv"
)

// SpriteState is a passively animating rectangle: it slides horizontally,
// bounces off the arena walls and spins.
type SpriteState struct {
	Position kinematic.Vector
	Size     kinematic.Vector
	// Speed is signed; its sign flips at the arena walls.
	Speed float64
	// Angle is the rotation in degrees, always in [0, 360).
	Angle  float64
	Object *resolv.Object
}

func NewSpriteState(x, y, w, h float64, tags ...string) *SpriteState {
	return &SpriteState{
		Position: kinematic.Vector{X: x, Y: y},
		Size:     kinematic.Vector{X: w, Y: h},
		Speed:    constants.EnemySpeed,
		Object:   resolv.NewObject(x, y, w, h, tags...),
	}
}

func (s *SpriteState) SetSpeed(speed float64) {
	s.Speed = speed
}

// MinX and MaxX are the walls the sprite bounces between.
func (s *SpriteState) MinX() float64 {
	return constants.ArenaMargin
}

func (s *SpriteState) MaxX() float64 {
	return constants.ArenaWidth - s.Size.X
}

// Update advances the sprite by one frame
func (s *SpriteState) Update() {
	s.Position.X, s.Speed = kinematic.Bounce(s.Position.X, s.Speed, s.MinX(), s.MaxX())
	s.Angle = kinematic.WrapAngle(s.Angle, constants.EnemyRotationStep)
	s.syncObject()
}

// MoveTo places the sprite without touching its speed or rotation.
func (s *SpriteState) MoveTo(x, y float64) {
	s.Position.X = x
	s.Position.Y = y
	s.syncObject()
}

func (s *SpriteState) syncObject() {
	s.Object.Position.X = s.Position.X
	s.Object.Position.Y = s.Position.Y
	s.Object.Update()
}
