package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/renderer"
	"github.com/df07/go-direct-raytracer/pkg/scene"
)

// setup is a scene together with the camera that frames it
type setup struct {
	name   string
	scene  *scene.Scene
	camera renderer.RayGenerator
}

// meshCamera frames the unit cube from above and in front, as the mesh scenes expect
func meshCamera(fovDegrees float64) (renderer.RayGenerator, error) {
	cam, err := renderer.LookAt(
		core.NewPoint3(1, 2, -2),
		core.NewPoint3(0.5, 0.5, 0.5),
		core.NewVec3(0, 1, 0),
		2, 2,
		fovDegrees*math.Pi/180,
	)
	if err != nil {
		return nil, err
	}
	return cam, nil
}

// createScene resolves a built-in scene name or an OBJ path
func createScene(sceneType string, fovDegrees float64, logger core.Logger) (*setup, error) {
	switch {
	case sceneType == "sphere":
		return &setup{
			name:   "sphere",
			scene:  scene.NewSphereScene(),
			camera: renderer.NewOrthoCamera(core.NewPoint3(0, 0, 0), 100, 100),
		}, nil
	case sceneType == "cube":
		cam, err := meshCamera(fovDegrees)
		if err != nil {
			return nil, err
		}
		return &setup{name: "cube", scene: scene.NewCubeScene(), camera: cam}, nil
	case strings.HasSuffix(strings.ToLower(sceneType), ".obj"):
		s, err := scene.LoadOBJ(sceneType, logger)
		if err != nil {
			return nil, err
		}
		cam, err := meshCamera(fovDegrees)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(sceneType), filepath.Ext(sceneType))
		return &setup{name: name, scene: s, camera: cam}, nil
	default:
		return nil, fmt.Errorf("unknown scene type: %q", sceneType)
	}
}

// options holds the command line settings for one render
type options struct {
	sceneType  string
	width      int
	height     int
	fov        float64
	allLights  bool
	outputRoot string
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "sphere", "Scene type: 'sphere', 'cube' or a path to a triangulated .obj file")
	width := flag.Int("width", 100, "Image width in pixels")
	height := flag.Int("height", 100, "Image height in pixels")
	fov := flag.Float64("fov", 90, "Horizontal field of view in degrees (mesh scenes)")
	allLights := flag.Bool("all-lights", false, "Sum every light instead of using only the first")
	outputRoot := flag.String("out", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Direct Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <out>/<scene>/render_<timestamp>.png")
		return
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	opts := options{
		sceneType:  *sceneType,
		width:      *width,
		height:     *height,
		fov:        *fov,
		allLights:  *allLights,
		outputRoot: *outputRoot,
	}
	filename, err := run(opts, logger)
	if err != nil {
		logger.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("Render saved as %s\n", filename)
}

// run renders the selected scene and returns the path of the written PNG
func run(opts options, logger core.Logger) (string, error) {
	selected, err := createScene(opts.sceneType, opts.fov, logger)
	if err != nil {
		return "", fmt.Errorf("creating scene: %w", err)
	}

	config := renderer.DefaultConfig()
	config.Width = opts.width
	config.Height = opts.height
	if opts.allLights {
		config.LightMode = renderer.AllLights
	}

	// Create output directory for this scene
	outputDir := filepath.Join(opts.outputRoot, selected.name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	logger.Printf("Rendering %s: %d objects, %d lights\n",
		selected.name, len(selected.scene.Renderables), len(selected.scene.Lights))

	raytracer := renderer.NewRaytracer(selected.scene, selected.camera, config, logger)
	img, _ := raytracer.Render()

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := savePNG(filename, img); err != nil {
		return "", err
	}
	return filename, nil
}

// savePNG encodes img to filename. A failed close is reported like a failed write.
func savePNG(filename string, img image.Image) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", filename, cerr)
		}
	}()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}
	return nil
}
