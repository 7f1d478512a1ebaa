package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

func TestParseOBJ_Triangles(t *testing.T) {
	input := `# a single quad split into two triangles
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
vt 0 0
g front
usemtl red
f 1/1/1 2/1/1 3/1/1
f 1//1 3//1 -1//1
`
	data, err := ParseOBJ(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(data.Vertices) != 4 {
		t.Errorf("Expected 4 vertices, got %d", len(data.Vertices))
	}
	if len(data.Triangles) != 2 {
		t.Fatalf("Expected 2 triangles, got %d", len(data.Triangles))
	}

	second := data.Triangles[1]
	expected := [3]core.Point3{
		core.NewPoint3(0, 0, 0),
		core.NewPoint3(1, 1, 0),
		core.NewPoint3(0, 1, 0),
	}
	for i := range expected {
		if second[i] != expected[i] {
			t.Errorf("Vertex %d: expected %v, got %v", i, expected[i], second[i])
		}
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "quad face",
			input:    "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n",
			expected: ErrGeneralPolygon,
		},
		{
			name:     "line face",
			input:    "v 0 0 0\nv 1 0 0\nf 1 2\n",
			expected: ErrGeneralPolygon,
		},
		{
			name:     "bad coordinate",
			input:    "v 0 zero 0\n",
			expected: ErrLoadObj,
		},
		{
			name:     "missing coordinate",
			input:    "v 0 0\n",
			expected: ErrLoadObj,
		},
		{
			name:     "index out of range",
			input:    "v 0 0 0\nv 1 0 0\nf 1 2 3\n",
			expected: ErrLoadObj,
		},
		{
			name:     "zero index",
			input:    "v 0 0 0\nv 1 0 0\nv 1 1 0\nf 0 1 2\n",
			expected: ErrLoadObj,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ParseOBJ(strings.NewReader(tt.input))
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
			if data != nil {
				t.Errorf("Expected no partial data, got %d triangles", len(data.Triangles))
			}
		})
	}
}

func TestParseOBJ_Empty(t *testing.T) {
	data, err := ParseOBJ(strings.NewReader("# nothing here\n"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(data.Triangles) != 0 {
		t.Errorf("Expected no triangles, got %d", len(data.Triangles))
	}
}

func TestLoadOBJ_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	content := "v 0 -1 1\nv 0 -1 -1\nv 0 1 0\nf 1 2 3\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	data, err := LoadOBJ(path, core.NopLogger{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(data.Triangles) != 1 {
		t.Errorf("Expected 1 triangle, got %d", len(data.Triangles))
	}
}

func TestLoadOBJ_MissingFile(t *testing.T) {
	_, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"), nil)
	if !errors.Is(err, ErrLoadObj) {
		t.Errorf("Expected ErrLoadObj, got %v", err)
	}
}
