package material

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

// reflection-space surface normal
var normalAxis = core.NewVec3(0, 0, 1)

// Lambert represents a perfectly diffuse surface
type Lambert struct {
	Color core.Color
}

// NewLambert creates a new lambertian BSDF with the given tint
func NewLambert(r, g, b float64) *Lambert {
	return &Lambert{Color: core.NewColor(r, g, b)}
}

// Evaluate scales the tint by the cosine between the normal and the light direction.
// The view direction does not matter for a diffuse surface. A zero light
// vector has no direction and reflects nothing.
func (l *Lambert) Evaluate(view, light core.Vec3) core.Color {
	lightLen := r3.Norm(light)
	if lightLen == 0 {
		return core.Black
	}
	cos := r3.Dot(normalAxis, light) / (r3.Norm(normalAxis) * lightLen)
	return l.Color.Scale(cos)
}
