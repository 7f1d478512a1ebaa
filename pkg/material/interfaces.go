package material

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
)

// BSDF defines how light is reflected by a surface for a given view and light direction.
//
// Vectors are given in reflection space: the surface normal is the unit
// vector +Z (0, 0, 1). Neither vector needs to be unit length.
type BSDF interface {
	// Evaluate returns the ratio of light arriving along light that leaves along view
	Evaluate(view, light core.Vec3) core.Color
}

// Material supplies the BSDF to use at a point on a surface
type Material interface {
	BSDF(dg core.DiffGeom) BSDF
}
