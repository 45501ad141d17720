package core

import "math"

// Ray is a parametric ray origin + unit direction with a valid parametric
// interval [MinT, MaxT], both ends inclusive. Direction must be
// unit-length; MinT >= 0 and MaxT > MinT hold at construction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	MinT      float64
	MaxT      float64
}

// NewRay creates a ray with the default [1e-4, math.MaxFloat64] interval.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, MinT: 1e-4, MaxT: math.MaxFloat64}
}

// NewRayWithInterval creates a ray with an explicit parametric interval.
func NewRayWithInterval(origin, direction Vec3, minT, maxT float64) Ray {
	return Ray{Origin: origin, Direction: direction, MinT: minT, MaxT: maxT}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
