package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

var (
	// ErrLoadObj reports mesh data that could not be read or parsed
	ErrLoadObj = errors.New("failed to load OBJ data")
	// ErrGeneralPolygon reports a face that is not a triangle
	ErrGeneralPolygon = errors.New("OBJ face is not a triangle")
)

// OBJData contains the geometry read from a Wavefront OBJ file
type OBJData struct {
	Vertices  []core.Point3
	Triangles []r3.Triangle
}

// LoadOBJ loads an OBJ file and returns its triangles.
// Only triangulated meshes are supported.
func LoadOBJ(filename string, logger core.Logger) (*OBJData, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadObj, err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	if logger != nil {
		logger.Printf("Loaded OBJ data: %d vertices, %d triangles in %v\n",
			len(data.Vertices), len(data.Triangles), time.Since(startTime))
	}
	return data, nil
}

// ParseOBJ reads vertex ("v") and face ("f") records. Every other record
// (normals, texture coordinates, groups, materials) is ignored.
func ParseOBJ(r io.Reader) (*OBJData, error) {
	data := &OBJData{}
	var faces [][3]int
	var faceLines []int

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrLoadObj, lineNum, err)
			}
			data.Vertices = append(data.Vertices, v)
		case "f":
			if len(fields)-1 != 3 {
				return nil, fmt.Errorf("%w: line %d has %d vertices", ErrGeneralPolygon, lineNum, len(fields)-1)
			}
			var face [3]int
			for i, ref := range fields[1:] {
				idx, err := parseIndex(ref, len(data.Vertices))
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrLoadObj, lineNum, err)
				}
				face[i] = idx
			}
			faces = append(faces, face)
			faceLines = append(faceLines, lineNum)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadObj, err)
	}

	// faces may only reference vertices declared anywhere in the file
	data.Triangles = make([]r3.Triangle, 0, len(faces))
	for i, face := range faces {
		var tri r3.Triangle
		for j, idx := range face {
			if idx < 0 || idx >= len(data.Vertices) {
				return nil, fmt.Errorf("%w: line %d: vertex index %d out of range", ErrLoadObj, faceLines[i], idx+1)
			}
			tri[j] = data.Vertices[idx]
		}
		data.Triangles = append(data.Triangles, tri)
	}

	return data, nil
}

// parseVertex parses "x y z [w]"
func parseVertex(fields []string) (core.Point3, error) {
	if len(fields) < 3 {
		return core.Point3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var coords [3]float64
	for i := range coords {
		val, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Point3{}, fmt.Errorf("invalid coordinate %q", fields[i])
		}
		coords[i] = val
	}
	return core.NewPoint3(coords[0], coords[1], coords[2]), nil
}

// parseIndex converts a face reference ("7", "7/1", "7//3", "-1") into a
// zero-based vertex index. Negative indices count back from the most
// recently declared vertex.
func parseIndex(ref string, vertexCount int) (int, error) {
	pos, _, _ := strings.Cut(ref, "/")
	idx, err := strconv.Atoi(pos)
	if err != nil {
		return 0, fmt.Errorf("invalid vertex reference %q", ref)
	}
	switch {
	case idx > 0:
		return idx - 1, nil
	case idx < 0:
		return vertexCount + idx, nil
	default:
		return 0, fmt.Errorf("vertex index 0 is not valid")
	}
}
