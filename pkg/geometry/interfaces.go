package geometry

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Intersect returns the closest forward hit time along the ray
	Intersect(ray core.Ray) (float64, bool)
	// Normal returns the surface normal at point. It is not normalized.
	Normal(point core.Point3) core.Vec3
}
