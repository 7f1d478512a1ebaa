package lights

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

// PointLight is a zero-size light source with no distance attenuation
type PointLight struct {
	Position core.Point3
	Color    core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Point3, color core.Color) *PointLight {
	return &PointLight{Position: position, Color: color}
}

// DirectionFrom returns the unnormalized vector from point to the light
func (l *PointLight) DirectionFrom(point core.Point3) core.Vec3 {
	return r3.Sub(l.Position, point)
}
