package material

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
)

// UniformMaterial returns the same BSDF everywhere on a surface
type UniformMaterial struct {
	bsdf BSDF
}

// NewUniformMaterial creates a new spatially uniform material
func NewUniformMaterial(bsdf BSDF) *UniformMaterial {
	return &UniformMaterial{bsdf: bsdf}
}

// BSDF returns the wrapped BSDF regardless of position or normal
func (u *UniformMaterial) BSDF(core.DiffGeom) BSDF {
	return u.bsdf
}
