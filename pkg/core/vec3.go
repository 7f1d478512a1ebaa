package core

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a displacement or direction in world space
type Vec3 = r3.Vec

// Point3 is a position in world space. Point - Point is a Vec3, Point + Vec3 is a Point3.
type Point3 = r3.Vec

// ErrZeroVector is returned when a direction with no usable magnitude has to be normalized
var ErrZeroVector = errors.New("vector has zero or non-finite magnitude")

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return r3.Vec{X: x, Y: y, Z: z}
}

// NewPoint3 creates a new Point3
func NewPoint3(x, y, z float64) Point3 {
	return r3.Vec{X: x, Y: y, Z: z}
}

// UnitVec3 is a vector known to have unit length.
// The zero value is not a valid unit vector; use NewUnitVec3.
type UnitVec3 struct {
	v r3.Vec
}

// NewUnitVec3 normalizes v
func NewUnitVec3(v Vec3) (UnitVec3, error) {
	// divide by the largest component first so subnormal inputs
	// don't overflow 1/norm
	m := math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return UnitVec3{}, ErrZeroVector
	}
	s := r3.Vec{X: v.X / m, Y: v.Y / m, Z: v.Z / m}
	return UnitVec3{v: r3.Scale(1/r3.Norm(s), s)}, nil
}

// UnitZ returns the +Z axis
func UnitZ() UnitVec3 {
	return UnitVec3{v: r3.Vec{Z: 1}}
}

// Vec returns the underlying vector
func (u UnitVec3) Vec() Vec3 {
	return u.v
}

// Negate returns the opposite direction, still unit length
func (u UnitVec3) Negate() UnitVec3 {
	return UnitVec3{v: r3.Scale(-1, u.v)}
}

// Angle returns the angle in radians between two vectors, in [0, π].
// A zero vector yields 0.
func Angle(a, b Vec3) float64 {
	// acos of the normalized dot product loses precision near 0 and π
	return math.Atan2(r3.Norm(r3.Cross(a, b)), r3.Dot(a, b))
}

// ApproxEqual reports whether a and b are within tol of each other
func ApproxEqual(a, b Vec3, tol float64) bool {
	return r3.Norm(r3.Sub(a, b)) <= tol
}
