package math

import stdmath "math"

// FLOAT_EPSILON is the default tolerance of Vec2.Compare.
const FLOAT_EPSILON = 1.192092896e-07

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float64
}

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 */
func NewVec2(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Length() float64 {
	return stdmath.Sqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit vector with the direction of v. The zero vector stays zero.
 */
func (v Vec2) Normalized() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{v.X / length, v.Y / length}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vec2) Compare(other Vec2, tolerance float64) bool {
	if stdmath.Abs(v.X-other.X) > tolerance {
		return false
	}
	if stdmath.Abs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

// ClampTo keeps v inside the rectangle going from lo to hi.
func (v Vec2) ClampTo(lo, hi Vec2) Vec2 {
	return Vec2{
		X: Clamp(v.X, lo.X, hi.X),
		Y: Clamp(v.Y, lo.Y, hi.Y),
	}
}
