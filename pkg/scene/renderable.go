package scene

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// Renderable is anything that can be both intersected and shaded
type Renderable interface {
	geometry.Shape
	material.Material
}

// ShapeMat binds one shape to one material
type ShapeMat struct {
	Shape    geometry.Shape
	Material material.Material
}

// NewShapeMat creates a new shape/material binding
func NewShapeMat(shape geometry.Shape, mat material.Material) *ShapeMat {
	return &ShapeMat{Shape: shape, Material: mat}
}

// Intersect forwards to the shape
func (sm *ShapeMat) Intersect(ray core.Ray) (float64, bool) {
	return sm.Shape.Intersect(ray)
}

// Normal forwards to the shape
func (sm *ShapeMat) Normal(point core.Point3) core.Vec3 {
	return sm.Shape.Normal(point)
}

// BSDF forwards to the material
func (sm *ShapeMat) BSDF(dg core.DiffGeom) material.BSDF {
	return sm.Material.BSDF(dg)
}
