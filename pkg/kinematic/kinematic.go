package kinematic

// This package includes the small amount of motion math the arena needs:
// linear stepping, bouncing between two walls, clamping, and angle wrapping.

import (
	"math"
)

// Vector is a 2D position or displacement.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the sum of two vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Clamp restricts value to the closed range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Bounce advances position by speed and reflects off the walls min and max.
// When the new position passes a wall it is pulled back onto it and the speed
// is pointed away from that wall, so the result always lies in [min, max]
// given a starting position in that range.
func Bounce(position, speed, min, max float64) (float64, float64) {
	position += speed
	if position > max {
		return max, -math.Abs(speed)
	}
	if position < min {
		return min, math.Abs(speed)
	}
	return position, speed
}

// WrapAngle adds step degrees to angle and wraps to 0 once it passes 359.
func WrapAngle(angle, step float64) float64 {
	angle += step
	if angle > 359 {
		return 0
	}
	return angle
}
