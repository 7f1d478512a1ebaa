package geometry

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

func TestTriangle_Intersect_ConcreteCase(t *testing.T) {
	triangle := NewTriangle(
		core.NewPoint3(0, -1, 1),
		core.NewPoint3(0, -1, -1),
		core.NewPoint3(0, 1, 0),
	)
	ray := core.MustNewRay(core.NewPoint3(-1, 0, 0), core.NewVec3(1, 0, 0))

	hitT, isHit := triangle.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hitT-1.0) > 1e-5 {
		t.Errorf("Expected t=1.0, got t=%f", hitT)
	}
}

func TestTriangle_Intersect(t *testing.T) {
	// Create a triangle in the XY plane
	triangle := NewTriangle(
		core.NewPoint3(0, 0, 0),
		core.NewPoint3(1, 0, 0),
		core.NewPoint3(0, 1, 0),
	)

	tests := []struct {
		name      string
		origin    core.Point3
		direction core.Vec3
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray hits triangle interior",
			origin:    core.NewPoint3(0.25, 0.25, -1),
			direction: core.NewVec3(0, 0, 1),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray hits back face",
			origin:    core.NewPoint3(0.25, 0.25, 2),
			direction: core.NewVec3(0, 0, -1),
			shouldHit: true,
			expectedT: 2.0,
		},
		{
			name:      "Ray hits triangle edge",
			origin:    core.NewPoint3(0.5, 0, -1),
			direction: core.NewVec3(0, 0, 1),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray misses triangle",
			origin:    core.NewPoint3(2, 2, -1),
			direction: core.NewVec3(0, 0, 1),
			shouldHit: false,
		},
		{
			name:      "Ray parallel to triangle",
			origin:    core.NewPoint3(-1, 0.25, 0),
			direction: core.NewVec3(1, 0, 0),
			shouldHit: false,
		},
		{
			name:      "Triangle behind ray",
			origin:    core.NewPoint3(0.25, 0.25, 1),
			direction: core.NewVec3(0, 0, 1),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.MustNewRay(tt.origin, tt.direction)
			hitT, isHit := triangle.Intersect(ray)

			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got hit=%t (t=%f)", tt.shouldHit, isHit, hitT)
			}
			if isHit && math.Abs(hitT-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hitT)
			}
		})
	}
}

func TestTriangle_Degenerate(t *testing.T) {
	triangle := NewTriangle(
		core.NewPoint3(0, 0, 0),
		core.NewPoint3(1, 1, 1),
		core.NewPoint3(2, 2, 2),
	)

	if n := triangle.TrueNormal(); r3.Norm(n) != 0 {
		t.Errorf("Expected zero true normal, got %v", n)
	}

	ray := core.MustNewRay(core.NewPoint3(1, 0, 0), core.NewVec3(-1, 1, 0))
	if hitT, isHit := triangle.Intersect(ray); isHit {
		t.Errorf("Degenerate triangle should never be hit, got t=%f", hitT)
	}
}

func TestTriangle_NormalIsConstant(t *testing.T) {
	triangle := NewTriangle(
		core.NewPoint3(0, 0, 0),
		core.NewPoint3(2, 0, 0),
		core.NewPoint3(0, 2, 0),
	)

	expected := core.NewVec3(0, 0, 4)
	for _, p := range []core.Point3{triangle.V1, triangle.V2, core.NewPoint3(0.5, 0.5, 0)} {
		if n := triangle.Normal(p); !core.ApproxEqual(n, expected, 1e-12) {
			t.Errorf("Expected normal %v at %v, got %v", expected, p, n)
		}
	}
}

func TestTriangle_HitLiesOnPlane(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	hits := 0

	for i := 0; i < 1000; i++ {
		triangle := NewTriangle(
			randomVec(random, -1000, 1000),
			randomVec(random, -1000, 1000),
			randomVec(random, -1000, 1000),
		)

		// aim at a random point inside the triangle so most rays hit
		b1, b2 := random.Float64(), random.Float64()
		if b1+b2 > 1 {
			b1, b2 = 1-b1, 1-b2
		}
		e1 := r3.Sub(triangle.V2, triangle.V1)
		e2 := r3.Sub(triangle.V3, triangle.V1)
		target := r3.Add(triangle.V1, r3.Add(r3.Scale(b1, e1), r3.Scale(b2, e2)))

		origin := randomVec(random, -1000, 1000)
		dir := r3.Sub(target, origin)
		if r3.Norm(dir) < 1e-3 {
			continue
		}
		ray := core.MustNewRay(origin, dir)

		hitT, isHit := triangle.Intersect(ray)
		if !isHit {
			continue
		}
		hits++

		n := r3.Unit(triangle.TrueNormal())
		offset := r3.Dot(n, r3.Sub(ray.At(hitT), triangle.V1))
		if math.Abs(offset) > 1e-4 {
			t.Fatalf("Hit point is %g off the triangle plane", offset)
		}
	}

	if hits == 0 {
		t.Fatal("Expected at least one hit")
	}
}

func TestTriangle_R3RoundTrip(t *testing.T) {
	tri := r3.Triangle{
		core.NewPoint3(1, 2, 3),
		core.NewPoint3(4, 5, 6),
		core.NewPoint3(7, 8, 10),
	}
	if got := NewTriangleFromR3(tri).R3(); got != tri {
		t.Errorf("Expected %v, got %v", tri, got)
	}
}
