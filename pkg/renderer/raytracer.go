package renderer

import (
	"image"
	"time"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/lights"
	"github.com/df07/go-direct-raytracer/pkg/scene"
)

// LightMode selects which scene lights contribute to shading
type LightMode int

const (
	// FirstLight shades with the first light in the scene only
	FirstLight LightMode = iota
	// AllLights sums the contribution of every light
	AllLights
)

// String implements fmt.Stringer
func (m LightMode) String() string {
	switch m {
	case FirstLight:
		return "first"
	case AllLights:
		return "all"
	default:
		return "unknown"
	}
}

// Config contains rendering configuration
type Config struct {
	Width     int       // Image width in pixels
	Height    int       // Image height in pixels
	LightMode LightMode // Which lights are used for shading
}

// DefaultConfig returns the reference 100x100 single-light configuration
func DefaultConfig() Config {
	return Config{
		Width:     100,
		Height:    100,
		LightMode: FirstLight,
	}
}

// Raytracer renders a scene with one ray per pixel and direct lighting only
type Raytracer struct {
	scene  *scene.Scene
	camera RayGenerator
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(s *scene.Scene, camera RayGenerator, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:  s,
		camera: camera,
		config: config,
		logger: logger,
	}
}

// Render traces every pixel and returns the image.
// Pixel (x, y) uses the camera ray at (x/width, y/height).
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	startTime := time.Now()
	width, height := rt.config.Width, rt.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stats := RenderStats{TotalPixels: width * height}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ray := rt.camera.RayAt(float64(x)/float64(width), float64(y)/float64(height))
			color, isHit := rt.RayColor(ray)
			if isHit {
				stats.HitPixels++
			}
			img.SetRGBA(x, y, color.Pixel())
		}
	}

	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Rendered %dx%d (%d/%d pixels hit, %s lights) in %v\n",
		width, height, stats.HitPixels, stats.TotalPixels, rt.config.LightMode, stats.Duration)
	return img, stats
}

// RayColor returns the color seen along ray and whether it hit anything.
// Misses are black.
func (rt *Raytracer) RayColor(ray core.Ray) (core.Color, bool) {
	hit, t, isHit := rt.scene.IntersectsRenderable(ray)
	if !isHit {
		return core.Black, false
	}

	switch rt.config.LightMode {
	case AllLights:
		total := core.Black
		for _, light := range rt.scene.Lights {
			total = total.Add(Shade(ray, hit, t, light))
		}
		return total, true
	default:
		if len(rt.scene.Lights) == 0 {
			return core.Black, true
		}
		return Shade(ray, hit, t, rt.scene.Lights[0]), true
	}
}

// Shade evaluates direct illumination from one light at the hit ray.At(t).
// There is no shadow test. The BSDF sees the view and light vectors in
// reflection space, with the surface normal along +Z.
func Shade(ray core.Ray, hit scene.Renderable, t float64, light *lights.PointLight) core.Color {
	point := ray.At(t)
	normal := hit.Normal(point)

	frame, err := core.NewFrame(normal)
	if err != nil {
		// degenerate surface, no orientation to shade with
		return core.Black
	}

	bsdf := hit.BSDF(core.DiffGeom{Position: point, Normal: normal})
	view := frame.Unrotate(ray.Direction.Negate().Vec())
	toLight := frame.Unrotate(light.DirectionFrom(point))

	return light.Color.Mul(bsdf.Evaluate(view, toLight))
}
