package renderer

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

// ErrInvalidCamera is returned for camera parameters that cannot produce rays
var ErrInvalidCamera = errors.New("invalid camera")

// RayGenerator maps fractional screen coordinates in [0,1]² to a world-space ray
type RayGenerator interface {
	RayAt(x, y float64) core.Ray
}

// Camera is a pinhole camera. Its local +Z axis is the view direction,
// +X runs across the screen and +Y up it.
type Camera struct {
	Position    core.Point3
	Orientation core.Rotation
	Width       float64 // view rectangle width in world units
	Height      float64 // view rectangle height in world units
	FOV         float64 // horizontal field of view in radians
}

// NewCamera creates a camera from an explicit orientation
func NewCamera(position core.Point3, orientation core.Rotation, width, height, fov float64) (*Camera, error) {
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("%w: view size %gx%g must be positive", ErrInvalidCamera, width, height)
	}
	if !(fov > 0 && fov < math.Pi) {
		return nil, fmt.Errorf("%w: fov %g must be in (0, pi)", ErrInvalidCamera, fov)
	}
	return &Camera{
		Position:    position,
		Orientation: orientation,
		Width:       width,
		Height:      height,
		FOV:         fov,
	}, nil
}

// LookAt creates a camera at position whose view axis points at target.
// up only fixes the roll and does not need to be perpendicular to the view axis.
func LookAt(position, target core.Point3, up core.Vec3, width, height, fov float64) (*Camera, error) {
	forward, err := core.NewUnitVec3(r3.Sub(target, position))
	if err != nil {
		return nil, fmt.Errorf("%w: target must differ from position", ErrInvalidCamera)
	}
	z := forward.Vec()

	side := r3.Cross(up, z)
	if n := r3.Norm(side); n == 0 || n < 1e-9*r3.Norm(up) {
		return nil, fmt.Errorf("%w: up %v is parallel to the view direction", ErrInvalidCamera, up)
	}
	x := r3.Unit(side)
	y := r3.Cross(z, x)

	return NewCamera(position, core.NewRotation(x, y, z), width, height, fov)
}

// Forward returns the view axis in world space
func (c *Camera) Forward() core.Vec3 {
	return c.Orientation.Axis(2)
}

// ViewPlane returns the plane through the camera position facing along the view axis.
// Every ray origin lies on it.
func (c *Camera) ViewPlane() core.Plane {
	return core.NewPlaneAtPoint(c.Position, c.Forward())
}

// FocalDistance is how far behind the view plane the rays converge
func (c *Camera) FocalDistance() float64 {
	return c.Width / (2 * math.Tan(c.FOV/2))
}

// RayAt returns the ray through (x, y) on the view rectangle.
// (0.5, 0.5) is the center; the ray origin is on the view plane, not at the eye.
func (c *Camera) RayAt(x, y float64) core.Ray {
	offset := c.Orientation.Rotate(core.NewVec3((x-0.5)*c.Width, (y-0.5)*c.Height, 0))
	point := r3.Add(c.Position, offset)

	backward := c.Orientation.Rotate(core.NewVec3(0, 0, -1))
	focalPoint := r3.Add(c.Position, r3.Scale(c.FocalDistance(), backward))

	// never zero: the focal point is off the view plane
	return core.MustNewRay(point, r3.Sub(point, focalPoint))
}

// OrthoCamera casts parallel rays from a rectangle on the z = Origin.Z plane.
// (x, y) maps to Origin + (x*Width, y*Height, 0).
type OrthoCamera struct {
	Origin    core.Point3
	Width     float64
	Height    float64
	Direction core.UnitVec3
}

// NewOrthoCamera creates an orthographic camera looking along +Z
func NewOrthoCamera(origin core.Point3, width, height float64) *OrthoCamera {
	return &OrthoCamera{Origin: origin, Width: width, Height: height, Direction: core.UnitZ()}
}

// RayAt returns the ray from (x, y) on the view rectangle.
// A zero-value Direction travels along +Z.
func (c *OrthoCamera) RayAt(x, y float64) core.Ray {
	origin := r3.Add(c.Origin, core.NewVec3(x*c.Width, y*c.Height, 0))
	dir := c.Direction
	if dir.Vec() == (core.Vec3{}) {
		dir = core.UnitZ()
	}
	return core.Ray{Origin: origin, Direction: dir}
}
