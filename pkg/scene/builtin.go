package scene

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
	"github.com/df07/go-direct-raytracer/pkg/lights"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// NewSphereScene creates a single red sphere centered at (50, 50, 100) with radius 25,
// lit from far behind the viewer. It is laid out for a 100x100 orthographic view along +Z.
func NewSphereScene() *Scene {
	s := Empty()

	red := material.NewUniformMaterial(material.NewLambert(1.0, 0.0, 0.0))
	s.Add(NewShapeMat(geometry.NewSphere(core.NewPoint3(50, 50, 100), 25), red))

	s.AddLight(lights.NewPointLight(core.NewPoint3(50, 50, -10000), core.NewColor(1, 1, 1)))
	return s
}

// NewCubeScene creates the unit cube [0,1]³ as twelve triangles with the
// same material and light as an imported mesh
func NewCubeScene() *Scene {
	s := FromTriangles(unitCubeTriangles(), DefaultMeshMaterial())
	s.AddLight(DefaultMeshLight())
	return s
}

// unitCubeTriangles returns the faces of [0,1]³, wound counter-clockwise seen from outside
func unitCubeTriangles() []r3.Triangle {
	v := func(x, y, z float64) core.Point3 { return core.NewPoint3(x, y, z) }
	quads := [][4]core.Point3{
		{v(0, 0, 0), v(0, 1, 0), v(1, 1, 0), v(1, 0, 0)}, // -Z
		{v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1)}, // +Z
		{v(0, 0, 0), v(0, 0, 1), v(0, 1, 1), v(0, 1, 0)}, // -X
		{v(1, 0, 0), v(1, 1, 0), v(1, 1, 1), v(1, 0, 1)}, // +X
		{v(0, 0, 0), v(1, 0, 0), v(1, 0, 1), v(0, 0, 1)}, // -Y
		{v(0, 1, 0), v(0, 1, 1), v(1, 1, 1), v(1, 1, 0)}, // +Y
	}

	tris := make([]r3.Triangle, 0, 2*len(quads))
	for _, q := range quads {
		tris = append(tris,
			r3.Triangle{q[0], q[1], q[2]},
			r3.Triangle{q[0], q[2], q[3]},
		)
	}
	return tris
}
