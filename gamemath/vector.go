// Package gamemath holds the planar math shared by the simulation systems.
// It has no dependencies on ebiten or donburi so it can be used from headless
// binaries and tests alike.
package gamemath

import "math"

// Vec is a point or direction on the arena plane. The arena's vertical axis
// is not modelled; Y here is the second planar axis.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the euclidean distance between two points.
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }

// Normalized returns the unit vector in the direction of v.
// A zero vector normalizes to the zero vector.
func (v Vec) Normalized() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Clamp limits a value to [-limit, limit].
func Clamp(value, limit float64) float64 {
	if value > limit {
		return limit
	}
	if value < -limit {
		return -limit
	}
	return value
}

// ClampVec clamps both components of v to [-limit, limit].
func ClampVec(v Vec, limit float64) Vec {
	return Vec{Clamp(v.X, limit), Clamp(v.Y, limit)}
}

// Facing returns the unit forward vector for a heading in radians.
// Heading 0 faces (0, -1); positive headings turn toward -X.
func Facing(heading float64) Vec {
	return Vec{-math.Sin(heading), -math.Cos(heading)}
}

// DirectionTo returns the unit vector from one point toward another, or the
// zero vector when the points coincide.
func DirectionTo(from, to Vec) Vec {
	return to.Sub(from).Normalized()
}

// ReflectAxis handles one axis of a boundary bounce. Whenever pos lies
// beyond bound, dir is negated and bounced is true.
func ReflectAxis(pos, dir, bound float64) (newDir float64, bounced bool) {
	if math.Abs(pos) <= bound {
		return dir, false
	}
	return -dir, true
}
