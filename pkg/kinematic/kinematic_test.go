package kinematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounce(t *testing.T) {
	tests := []struct {
		name      string
		position  float64
		speed     float64
		wantPos   float64
		wantSpeed float64
	}{
		{name: "inside", position: 100, speed: 8, wantPos: 108, wantSpeed: 8},
		{name: "lands on max", position: 582, speed: 8, wantPos: 590, wantSpeed: 8},
		{name: "passes max", position: 585, speed: 8, wantPos: 590, wantSpeed: -8},
		{name: "passes min", position: 12, speed: -8, wantPos: 10, wantSpeed: 8},
		{name: "lands on min", position: 18, speed: -8, wantPos: 10, wantSpeed: -8},
		{name: "starts beyond max", position: 600, speed: 8, wantPos: 590, wantSpeed: -8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, speed := Bounce(tt.position, tt.speed, 10, 590)
			assert.Equal(t, tt.wantPos, pos)
			assert.Equal(t, tt.wantSpeed, speed)
		})
	}
}

func TestBounce_staysInRange(t *testing.T) {
	for _, speed := range []float64{8, -8, 14, 18, -18} {
		pos, s := 300.0, speed
		for i := 0; i < 1000; i++ {
			prev := s
			pos, s = Bounce(pos, s, 10, 590)
			assert.GreaterOrEqual(t, pos, 10.0)
			assert.LessOrEqual(t, pos, 590.0)
			if prev != s {
				// a flip only ever happens on a wall
				assert.True(t, pos == 10 || pos == 590, "flip at %v", pos)
			}
		}
	}
}

func TestWrapAngle(t *testing.T) {
	angle := 0.0
	for i := 0; i < 100; i++ {
		angle = WrapAngle(angle, 10)
		assert.GreaterOrEqual(t, angle, 0.0)
		assert.Less(t, angle, 360.0)
	}
	assert.Equal(t, 0.0, WrapAngle(350, 10))
	assert.Equal(t, 350.0, WrapAngle(340, 10))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 10.0, Clamp(5, 10, 420))
	assert.Equal(t, 420.0, Clamp(425, 10, 420))
	assert.Equal(t, 200.0, Clamp(200, 10, 420))
}
