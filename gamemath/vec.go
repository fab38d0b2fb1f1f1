package gamemath

import "math"

// Vec2 is a plain 2D vector. Value semantics throughout so recorded
// samples never alias live physics state.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns the unit vector, or the zero vector for zero input.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampAxis clamps a movement axis value to [-1, 1].
func ClampAxis(axis float64) float64 {
	if axis > 1 {
		return 1
	}
	if axis < -1 {
		return -1
	}
	return axis
}

// Lerp interpolates between a and b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// CalculateAimDirection returns an aim vector from input state.
// facingX is the character's facing direction (-1 or 1).
func CalculateAimDirection(facingX float64, upPressed, downPressed, movingHorizontally bool) (aimX, aimY float64) {
	if upPressed && !downPressed {
		if movingHorizontally {
			return facingX, -1.0
		}
		return 0, -1.0
	}
	if downPressed && !upPressed {
		if movingHorizontally {
			return facingX, 1.0
		}
		return 0, 1.0
	}
	return facingX, 0
}
