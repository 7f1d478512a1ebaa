package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Point3
	Direction UnitVec3
}

// NewRay creates a new ray, normalizing direction
func NewRay(origin Point3, direction Vec3) (Ray, error) {
	dir, err := NewUnitVec3(direction)
	if err != nil {
		return Ray{}, fmt.Errorf("invalid ray direction %v: %w", direction, err)
	}
	return Ray{Origin: origin, Direction: dir}, nil
}

// MustNewRay is like NewRay but panics on a zero direction.
// Only use it where the direction is non-zero by construction.
func MustNewRay(origin Point3, direction Vec3) Ray {
	r, err := NewRay(origin, direction)
	if err != nil {
		panic(err)
	}
	return r
}

// At returns the point at parameter t along the ray. Negative t lies behind the origin.
func (r Ray) At(t float64) Point3 {
	return r3.Add(r.Origin, r3.Scale(t, r.Direction.Vec()))
}

// ClosestPoint projects p onto the ray. The projection is clamped to the
// forward half-line, so points behind the origin map to the origin.
func (r Ray) ClosestPoint(p Point3) Point3 {
	d := r.Direction.Vec()
	t := r3.Dot(d, r3.Sub(p, r.Origin)) / r3.Norm2(d)
	return r.At(math.Max(0, t))
}
