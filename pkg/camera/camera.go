// Package camera generates primary rays for a fixed pinhole view and
// accumulates per-pixel samples into a sensor: a precomputed origin and
// horizontal/vertical basis, with Sample(x,y) mapping a pixel coordinate
// to a world-space ray.
package camera

import (
	"github.com/arcflux/pathtracer/pkg/core"
)

// Camera is a pinhole camera with a fixed field of view, parameterized
// by position/direction/width/height/fov/up rather than a hardcoded
// viewport and aspect ratio.
type Camera struct {
	Position  core.Vec3
	Width     int
	Height    int
	right     core.Vec3
	up        core.Vec3
	direction core.Vec3
}

// New constructs a camera looking from position toward direction (not
// required to be normalized) with the given image dimensions. fov scales
// the image-plane basis directly: at unit distance the image spans fov
// vertically and fov*width/height horizontally (fov=1 is a vertical
// field of view of about 53 degrees). The vertical basis vector is
// right x direction, normalized and scaled by fov; up is accepted but
// not used.
func New(position, direction core.Vec3, width, height int, fov float64, up core.Vec3) *Camera {
	dir := direction.Normalize()
	aspect := float64(width) / float64(height)

	right := NewVec3RightFromFovAspect(fov, aspect)
	upPrime := right.Cross(dir).Normalize().Multiply(fov)

	return &Camera{
		Position:  position,
		Width:     width,
		Height:    height,
		right:     right,
		up:        upPrime,
		direction: dir,
	}
}

// NewVec3RightFromFovAspect builds the camera's right basis vector:
// right = (w*fov/h, 0, 0), the world X axis scaled by aspect*fov,
// independent of the camera direction.
func NewVec3RightFromFovAspect(fov, aspect float64) core.Vec3 {
	return core.NewVec3(aspect*fov, 0, 0)
}

// Sample returns a primary ray through pixel (x, y), jittered within the
// pixel by (jx, jy) each in [0, 1) (the caller supplies stratified or
// random jitter for antialiasing).
func (c *Camera) Sample(x, y int, jx, jy float64) core.Ray {
	u := (float64(x)+jx)/float64(c.Width) - 0.5
	v := -(float64(y)+jy)/float64(c.Height) + 0.5

	dir := c.right.Multiply(u).Add(c.up.Multiply(v)).Add(c.direction)
	return core.NewRay(c.Position, dir.Normalize())
}

