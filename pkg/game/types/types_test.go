package types

import (
	"testing"

	"github.com/cbodonnell/healer/pkg/game/constants"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
)

func TestSpriteState_Update(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		w     float64
		speed float64
	}{
		{name: "enemy 1", x: 12, w: 40, speed: constants.EnemySpeed},
		{name: "enemy 2", x: 580, w: 50, speed: constants.EnemySpeed},
		{name: "enemy 3", x: 500, w: 40, speed: 14},
		{name: "enemy 4", x: 12, w: 50, speed: 18},
		{name: "moving left", x: 300, w: 50, speed: -18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpriteState(tt.x, 100, tt.w, tt.w, CollisionSpaceTagEnemy)
			s.SetSpeed(tt.speed)
			for i := 0; i < 500; i++ {
				prev := s.Speed
				s.Update()

				assert.GreaterOrEqual(t, s.Position.X, s.MinX())
				assert.LessOrEqual(t, s.Position.X, s.MaxX())
				assert.GreaterOrEqual(t, s.Angle, 0.0)
				assert.Less(t, s.Angle, 360.0)
				if prev != s.Speed {
					assert.True(t, s.Position.X == s.MinX() || s.Position.X == s.MaxX(), "speed flipped inside the arena at %v", s.Position.X)
				}
				assert.Equal(t, s.Position.X, s.Object.Position.X)
				assert.Equal(t, 100.0, s.Position.Y)
			}
		})
	}
}

func TestSpriteState_defaults(t *testing.T) {
	s := NewSpriteState(600, 85, 50, 50, CollisionSpaceTagEnemy)
	assert.Equal(t, constants.EnemySpeed, s.Speed)
	assert.Equal(t, 0.0, s.Angle)
	assert.True(t, s.Object.HasTags(CollisionSpaceTagEnemy))

	// starts past the right wall and is pulled back on the first update
	s.Update()
	assert.Equal(t, 590.0, s.Position.X)
	assert.Equal(t, -constants.EnemySpeed, s.Speed)
	assert.Equal(t, 10.0, s.Angle)
}

func TestPlayerState_Update_idle(t *testing.T) {
	p := NewPlayerState(constants.PlayerStartingX, constants.PlayerStartingY, 50, 50, 3, 4)
	for i := 0; i < 10; i++ {
		p.Update(InputState{}, 0.5)
		assert.Equal(t, constants.PlayerStartingY, p.Position.Y)
		assert.False(t, p.Active)
		assert.Equal(t, PlayerAnimationIdle, p.Animation)
		assert.Equal(t, constants.PlayerStartingColumn, p.Frame)
		assert.Equal(t, 0.0, p.FrameTime())
	}
}

func TestPlayerState_Update_idleOutOfBounds(t *testing.T) {
	p := NewPlayerState(294, 430, 50, 50, 3, 4)
	p.Update(InputState{}, 0.016)
	assert.Equal(t, constants.PlayerMaxY, p.Position.Y)

	p = NewPlayerState(294, 2, 50, 50, 3, 4)
	p.Update(InputState{}, 0.016)
	assert.Equal(t, constants.PlayerMinY, p.Position.Y)
}

func TestPlayerState_Update_up(t *testing.T) {
	p := NewPlayerState(constants.PlayerStartingX, constants.PlayerStartingY, 50, 50, 3, 4)
	for i := 0; i < 200; i++ {
		prev := p.Position.Y
		p.Update(InputState{Up: true}, 0.016)

		assert.True(t, p.Active)
		assert.Equal(t, PlayerAnimationUp, p.Animation)
		assert.Equal(t, constants.PlayerStartingX, p.Position.X)
		assert.GreaterOrEqual(t, p.Position.Y, constants.PlayerMinY-constants.PlayerSpeed)
		if prev >= constants.PlayerMinY {
			assert.Less(t, p.Position.Y, prev)
		}
	}
	assert.Equal(t, constants.PlayerMinY-constants.PlayerSpeed, p.Position.Y)
}

func TestPlayerState_Update_down(t *testing.T) {
	p := NewPlayerState(294, 12, 50, 50, 3, 4)
	for i := 0; i < 200; i++ {
		prev := p.Position.Y
		p.Update(InputState{Down: true}, 0.016)

		assert.True(t, p.Active)
		assert.Equal(t, PlayerAnimationDown, p.Animation)
		assert.LessOrEqual(t, p.Position.Y, constants.PlayerMaxY+constants.PlayerSpeed)
		if prev <= constants.PlayerMaxY {
			assert.Greater(t, p.Position.Y, prev)
		}
	}
	assert.Equal(t, constants.PlayerMaxY+constants.PlayerSpeed, p.Position.Y)
}

func TestPlayerState_Update_upWinsOverDown(t *testing.T) {
	p := NewPlayerState(294, 200, 50, 50, 3, 4)
	p.Update(InputState{Up: true, Down: true}, 0.016)
	assert.Equal(t, 195.0, p.Position.Y)
	assert.Equal(t, PlayerAnimationUp, p.Animation)
}

func TestPlayerState_Update_animation(t *testing.T) {
	p := NewPlayerState(294, 200, 50, 50, 3, 4)
	assert.Equal(t, 1, p.Frame)

	// 0.125 is exact in binary, two steps reach the frame duration
	want := []int{1, 2, 2, 0, 0, 1, 1, 2}
	for i, frame := range want {
		p.Update(InputState{Down: true}, 0.125)
		assert.Equal(t, frame, p.Frame, "step %d", i)
	}

	// standing still keeps the frame and the accumulator
	p.Update(InputState{Down: true}, 0.125)
	acc := p.FrameTime()
	p.Update(InputState{}, 10)
	assert.Equal(t, acc, p.FrameTime())
	assert.Equal(t, 2, p.Frame)
}

func TestPlayerState_Update_frameOnlyOncePerDuration(t *testing.T) {
	p := NewPlayerState(294, 200, 50, 50, 3, 4)
	advances := 0
	last := p.Frame
	// 0.0625 * 4 == 0.25
	for i := 0; i < 40; i++ {
		p.Update(InputState{Up: true}, 0.0625)
		if p.Frame != last {
			advances++
			last = p.Frame
		}
	}
	assert.Equal(t, 10, advances)
}

func TestPlayerState_CollidesWith(t *testing.T) {
	p := NewPlayerState(294, 400, 50, 50, 3, 4)
	assert.True(t, p.CollidesWith(resolv.NewObject(294, 400, 50, 50)))
	assert.True(t, p.CollidesWith(resolv.NewObject(344, 400, 40, 40)))
	assert.False(t, p.CollidesWith(resolv.NewObject(294, 12, 50, 50)))
	assert.False(t, p.CollidesWith(resolv.NewObject(12, 350, 40, 40)))
}

func TestNewPlayerState_grid(t *testing.T) {
	p := NewPlayerState(0, 0, 50, 50, 0, 0)
	cols, rows := p.FrameGrid()
	assert.Equal(t, 1, cols)
	assert.Equal(t, 1, rows)
	assert.Equal(t, 0, p.Frame)
}
