package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(string, ...interface{}) {}

// DiffGeom is the local differential geometry at a hit point.
// Normal is not guaranteed to be unit length.
type DiffGeom struct {
	Position Point3
	Normal   Vec3
}
