package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

// TriangleEpsilon is the absolute tolerance below which a ray is treated as
// parallel to the triangle plane. It does not scale with the triangle size.
const TriangleEpsilon = 1e-6

// Triangle represents a single triangle defined by three vertices.
// Degenerate (collinear) triangles are allowed and never report a hit.
type Triangle struct {
	V1, V2, V3 core.Point3
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v1, v2, v3 core.Point3) *Triangle {
	return &Triangle{V1: v1, V2: v2, V3: v3}
}

// NewTriangleFromR3 wraps a gonum triangle
func NewTriangleFromR3(tri r3.Triangle) *Triangle {
	return NewTriangle(tri[0], tri[1], tri[2])
}

// R3 returns the vertices as a gonum triangle
func (t *Triangle) R3() r3.Triangle {
	return r3.Triangle{t.V1, t.V2, t.V3}
}

// TrueNormal returns e1 × e2, ignoring any smoothing. It is zero for a degenerate triangle.
func (t *Triangle) TrueNormal() core.Vec3 {
	e1 := r3.Sub(t.V2, t.V1)
	e2 := r3.Sub(t.V3, t.V1)
	return r3.Cross(e1, e2)
}

// Normal returns the true normal; it is the same everywhere on the triangle
func (t *Triangle) Normal(core.Point3) core.Vec3 {
	return t.TrueNormal()
}

// Intersect tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray) (float64, bool) {
	dir := ray.Direction.Vec()

	// Calculate two edge vectors
	e1 := r3.Sub(t.V2, t.V1)
	e2 := r3.Sub(t.V3, t.V1)

	s1 := r3.Cross(dir, e2)
	divisor := r3.Dot(s1, e1)

	// Ray lies parallel to the plane of the triangle
	if math.Abs(divisor) < TriangleEpsilon {
		return 0, false
	}

	inv := 1 / divisor
	s := r3.Sub(ray.Origin, t.V1)

	// First barycentric coordinate
	b1 := r3.Dot(s1, s) * inv
	if b1 < 0 || b1 > 1 {
		return 0, false
	}

	s2 := r3.Cross(s, e1)
	b2 := r3.Dot(dir, s2) * inv
	if b2 < 0 || b1+b2 > 1 {
		return 0, false
	}

	hitT := r3.Dot(e2, s2) * inv
	if hitT < 0 {
		return 0, false
	}
	return hitT, true
}
