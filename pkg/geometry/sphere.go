package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Point3
	Radius float64
}

// NewSphere creates a new sphere. A negative radius is floored to zero.
func NewSphere(center core.Point3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: math.Max(0, radius),
	}
}

// Intersect tests if a ray intersects with the sphere.
// It returns the smaller positive root, or the larger one when the ray
// starts inside the sphere.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := r3.Sub(ray.Origin, s.Center)
	dir := ray.Direction.Vec()

	// Quadratic equation coefficients: at² + bt + c = 0
	a := r3.Norm2(dir)
	b := 2 * r3.Dot(oc, dir)
	c := r3.Norm2(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	near := (-b - sqrtD) / (2 * a)
	far := (-b + sqrtD) / (2 * a)

	switch {
	case near > 0:
		return near, true
	case far > 0:
		return far, true
	default:
		// sphere is entirely behind the ray
		return 0, false
	}
}

// Normal returns the outward direction at point, with magnitude equal to the radius
func (s *Sphere) Normal(point core.Point3) core.Vec3 {
	return r3.Sub(point, s.Center)
}
