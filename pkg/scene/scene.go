package scene

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
	"github.com/df07/go-direct-raytracer/pkg/lights"
	"github.com/df07/go-direct-raytracer/pkg/loaders"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// It is read-only while a render is in progress.
type Scene struct {
	Renderables []Renderable         // Objects in the scene
	Lights      []*lights.PointLight // Lights in the scene, in priority order
}

// Empty returns a scene with no objects and no lights
func Empty() *Scene {
	return &Scene{
		Renderables: make([]Renderable, 0),
		Lights:      make([]*lights.PointLight, 0),
	}
}

// Add appends renderables to the scene
func (s *Scene) Add(renderables ...Renderable) {
	s.Renderables = append(s.Renderables, renderables...)
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(light *lights.PointLight) {
	s.Lights = append(s.Lights, light)
}

// IntersectsRenderable finds the renderable with the smallest hit time along ray.
// This is a linear scan; ties go to the renderable added first.
func (s *Scene) IntersectsRenderable(ray core.Ray) (Renderable, float64, bool) {
	var closest Renderable
	closestT := 0.0
	hitAnything := false

	for _, r := range s.Renderables {
		if t, isHit := r.Intersect(ray); isHit && (!hitAnything || t < closestT) {
			hitAnything = true
			closestT = t
			closest = r
		}
	}

	return closest, closestT, hitAnything
}

// FromTriangles builds a scene from imported triangles, all sharing mat
func FromTriangles(tris []r3.Triangle, mat material.Material) *Scene {
	s := Empty()
	for _, tri := range tris {
		s.Add(NewShapeMat(geometry.NewTriangleFromR3(tri), mat))
	}
	return s
}

// DefaultMeshMaterial is applied to imported meshes, which carry no material data
func DefaultMeshMaterial() material.Material {
	return material.NewUniformMaterial(material.NewLambert(1.0, 0.0, 0.0))
}

// DefaultMeshLight is the white light added to imported meshes
func DefaultMeshLight() *lights.PointLight {
	return lights.NewPointLight(core.NewPoint3(5, 5, 1), core.NewColor(1, 1, 1))
}

// LoadOBJ builds a scene from a triangulated OBJ file.
// A load failure leaves no partial scene behind.
func LoadOBJ(path string, logger core.Logger) (*Scene, error) {
	data, err := loaders.LoadOBJ(path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}

	s := FromTriangles(data.Triangles, DefaultMeshMaterial())
	s.AddLight(DefaultMeshLight())
	return s, nil
}
