package camera

import "github.com/go-gl/mathgl/mgl32"

// Lens describes a perspective projection. FOV is vertical, in degrees.
type Lens struct {
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32
}

// NewLens builds a lens for a viewport of the given size.
func NewLens(fov float32, width, height int, near, far float32) Lens {
	return Lens{FOV: fov, Aspect: aspect(width, height), Near: near, Far: far}
}

// SetViewport updates the aspect ratio after a resize. A zero height, as
// reported for minimized windows, keeps the previous ratio.
func (l *Lens) SetViewport(width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	l.Aspect = aspect(width, height)
}

func (l Lens) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(l.FOV), l.Aspect, l.Near, l.Far)
}

func aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
