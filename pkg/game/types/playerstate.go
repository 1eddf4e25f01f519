package types

import (
	"github.com/cbodonnell/healer/pkg/collisions"
	"github.com/cbodonnell/healer/pkg/game/constants"
	"github.com/cbodonnell/healer/pkg/kinematic"
	"github.com/solarlune/resolv"
)

// PlayerAnimation is a row in the player sprite sheet.
type PlayerAnimation uint8

const (
	PlayerAnimationUp   PlayerAnimation = 0
	PlayerAnimationDown PlayerAnimation = 2
	// There is no dedicated idle row; standing still shows the down row.
	PlayerAnimationIdle = PlayerAnimationDown
)

type PlayerState struct {
	Position kinematic.Vector
	Size     kinematic.Vector
	Speed    float64
	Object   *resolv.Object
	// Active is true while the player is moving.
	Active bool
	// Animation is the sheet row currently shown.
	Animation PlayerAnimation
	// Frame is the sheet column currently shown.
	Frame int

	frameColumns int
	frameRows    int
	frameTime    float64
}

// NewPlayerState returns a player at x, y whose sprite sheet is split into
// frameColumns by frameRows frames.
func NewPlayerState(x, y, w, h float64, frameColumns, frameRows int) *PlayerState {
	if frameColumns < 1 {
		frameColumns = 1
	}
	if frameRows < 1 {
		frameRows = 1
	}
	return &PlayerState{
		Position:     kinematic.Vector{X: x, Y: y},
		Size:         kinematic.Vector{X: w, Y: h},
		Speed:        constants.PlayerSpeed,
		Object:       resolv.NewObject(x, y, w, h, CollisionSpaceTagPlayer),
		Animation:    PlayerAnimationIdle,
		Frame:        constants.PlayerStartingColumn % frameColumns,
		frameColumns: frameColumns,
		frameRows:    frameRows,
	}
}

// FrameGrid returns the number of columns and rows of the sprite sheet.
func (p *PlayerState) FrameGrid() (int, int) {
	return p.frameColumns, p.frameRows
}

// FrameTime returns the active time accumulated towards the next frame.
func (p *PlayerState) FrameTime() float64 {
	return p.frameTime
}

// Update updates the player state from the input and the time passed.
// The clamp runs before the input is read, so a move past a bound is
// visible for one frame and pulled back on the next update.
func (p *PlayerState) Update(input InputState, deltaTime float64) {
	p.Position.Y = kinematic.Clamp(p.Position.Y, constants.PlayerMinY, constants.PlayerMaxY)

	switch {
	case input.Up:
		p.Position.Y -= p.Speed
		p.Animation = PlayerAnimationUp
		p.Active = true
	case input.Down:
		p.Position.Y += p.Speed
		p.Animation = PlayerAnimationDown
		p.Active = true
	default:
		p.Active = false
		p.Animation = PlayerAnimationIdle
	}

	if p.Active {
		p.frameTime += deltaTime
		if p.frameTime >= constants.PlayerFrameDuration {
			p.frameTime = 0
			p.Frame = (p.Frame + 1) % p.frameColumns
		}
	}

	p.Object.Position.X = p.Position.X
	p.Object.Position.Y = p.Position.Y
	p.Object.Update()
}

// CollidesWith reports whether the player's box overlaps other, edges included.
func (p *PlayerState) CollidesWith(other *resolv.Object) bool {
	return collisions.Overlaps(p.Object, other)
}
