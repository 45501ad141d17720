package shape

import (
	"math"

	"github.com/arcflux/pathtracer/pkg/bsdf"
	"github.com/arcflux/pathtracer/pkg/core"
)

// Sphere is an analytic sphere shape: a standard ray/sphere quadratic
// solve restated over core.Ray's [MinT,MaxT] interval instead of
// separate tMin/tMax parameters, extended with Sample/Area for use as
// an area light.
type Sphere struct {
	Center core.Vec3
	Radius float64
	BSDF   bsdf.BSDF
	Light  AreaLightRef
}

// NewSphere creates a sphere shape with the given material.
func NewSphere(center core.Vec3, radius float64, material bsdf.BSDF) *Sphere {
	return &Sphere{Center: center, Radius: radius, BSDF: material}
}

// Intersect solves the ray/sphere quadratic for the closest root within
// the ray's valid interval.
func (s *Sphere) Intersect(ray core.Ray) (*Interaction, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < ray.MinT || root > ray.MaxT {
		root = (-halfB + sqrtD) / a
		if root < ray.MinT || root > ray.MaxT {
			return nil, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	return &Interaction{
		T:      root,
		Point:  point,
		Normal: normal,
		BSDF:   s.BSDF,
		Light:  s.Light,
	}, true
}

// IntersectP is a boolean-only variant of Intersect for shadow rays.
func (s *Sphere) IntersectP(ray core.Ray) bool {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root >= ray.MinT && root <= ray.MaxT {
		return true
	}
	root = (-halfB + sqrtD) / a
	return root >= ray.MinT && root <= ray.MaxT
}

// Bounds returns the sphere's axis-aligned bounding box.
func (s *Sphere) Bounds() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// Area returns the sphere's surface area, 4*pi*r^2.
func (s *Sphere) Area() float64 {
	return 4 * math.Pi * s.Radius * s.Radius
}

// Sample draws a uniform point on the sphere's surface with pdf
// 1/(4*pi*r^2) with respect to surface area.
func (s *Sphere) Sample(u core.Vec2) (core.Vec3, core.Vec3, float64) {
	normal := core.SampleUniformSphere(u)
	point := s.Center.Add(normal.Multiply(s.Radius))
	pdf := 1.0 / s.Area()
	return point, normal, pdf
}
