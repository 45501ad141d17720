// Package shape implements the geometric primitives the ray-scene
// intersection engine operates on: spheres and triangle meshes. Meshes
// store raw vertex/index data for the acceleration package to build
// TriAccel records and a BVH from; this package's own intersection paths
// are the reference (unaccelerated) implementations used to validate
// those faster paths and to support shapes too small to bother
// accelerating, such as a single sphere.
package shape

import (
	"github.com/arcflux/pathtracer/pkg/bsdf"
	"github.com/arcflux/pathtracer/pkg/core"
)

// Interaction describes a ray/shape intersection: the hit point, its
// local shading frame basis (via Normal), the material at the hit, and
// (when the hit shape doubles as a light) a backlink to that light so
// the integrator can evaluate emitted radiance without a second lookup.
type Interaction struct {
	T      float64
	Point  core.Vec3
	Normal core.Vec3
	BSDF   bsdf.BSDF
	Light  AreaLightRef
}

// AreaLightRef is satisfied by pkg/light.AreaLight. Declared here rather
// than imported to avoid a shape<->light import cycle (an area light
// embeds the shape it emits from).
type AreaLightRef interface {
	EmittedRadiance() core.Spectrum
}

// Shape is the common contract for intersectable, sampleable geometry.
type Shape interface {
	// Intersect finds the closest hit along ray within [ray.MinT, ray.MaxT].
	Intersect(ray core.Ray) (*Interaction, bool)

	// IntersectP is a cheaper any-hit test for shadow rays.
	IntersectP(ray core.Ray) bool

	// Bounds returns the shape's world-space axis-aligned bounding box.
	Bounds() core.AABB

	// Area returns the shape's surface area.
	Area() float64

	// Sample draws a uniform point on the shape's surface, returning the
	// point, its outward normal, and the pdf with respect to surface area.
	Sample(u core.Vec2) (point core.Vec3, normal core.Vec3, pdf float64)
}
