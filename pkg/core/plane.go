package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Plane is the set of points p with dot(Normal, p) + Dist = 0.
// Normal does not need to be unit length.
type Plane struct {
	Normal Vec3
	Dist   float64
}

// NewPlane creates a plane from its normal and offset
func NewPlane(normal Vec3, dist float64) Plane {
	return Plane{Normal: normal, Dist: dist}
}

// NewPlaneAtPoint creates the plane through point with the given normal
func NewPlaneAtPoint(point Point3, normal Vec3) Plane {
	return Plane{Normal: normal, Dist: -r3.Dot(normal, point)}
}

// DistanceTo returns the unsigned distance from p to the plane
func (pl Plane) DistanceTo(p Point3) float64 {
	return math.Abs(r3.Dot(pl.Normal, p)+pl.Dist) / r3.Norm(pl.Normal)
}
