package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Rotation is an orthonormal basis with determinant +1. It maps local
// coordinates (x, y, z) to world space as x*X + y*Y + z*Z.
type Rotation struct {
	toWorld *r3.Mat // columns are the local axes
	toLocal *r3.Mat // rows are the local axes
}

// NewRotation builds a rotation from three orthonormal, right-handed axes.
// The axes are not validated; see Det.
func NewRotation(x, y, z Vec3) Rotation {
	return Rotation{
		toWorld: r3.NewMat([]float64{
			x.X, y.X, z.X,
			x.Y, y.Y, z.Y,
			x.Z, y.Z, z.Z,
		}),
		toLocal: r3.NewMat([]float64{
			x.X, x.Y, x.Z,
			y.X, y.Y, y.Z,
			z.X, z.Y, z.Z,
		}),
	}
}

// IdentityRotation returns the rotation whose axes are the world axes
func IdentityRotation() Rotation {
	return NewRotation(NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1))
}

// Rotate maps a local vector into world space
func (r Rotation) Rotate(v Vec3) Vec3 {
	return r.toWorld.MulVec(v)
}

// Unrotate maps a world vector into local coordinates
func (r Rotation) Unrotate(v Vec3) Vec3 {
	return r.toLocal.MulVec(v)
}

// Axis returns local axis i (0, 1 or 2) in world space
func (r Rotation) Axis(i int) Vec3 {
	return NewVec3(r.toWorld.At(0, i), r.toWorld.At(1, i), r.toWorld.At(2, i))
}

// Det returns the determinant, +1 for a proper rotation
func (r Rotation) Det() float64 {
	return r.toWorld.Det()
}

// NewFrame returns a reflection-space frame whose local +Z is the
// direction of normal. Unrotate then maps world vectors so the surface
// normal lies along +Z. A zero normal yields ErrZeroVector.
func NewFrame(normal Vec3) (Rotation, error) {
	n, err := NewUnitVec3(normal)
	if err != nil {
		return Rotation{}, err
	}
	z := n.Vec()

	// any axis not parallel to the normal works as a seed
	var seed Vec3
	if math.Abs(z.X) > 0.1 {
		seed = NewVec3(0, 1, 0)
	} else {
		seed = NewVec3(1, 0, 0)
	}

	x := r3.Unit(r3.Cross(seed, z))
	y := r3.Cross(z, x)
	return NewRotation(x, y, z), nil
}
