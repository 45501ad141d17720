// Package scene owns a renderable scene's immutable geometry and lights
// and builds the acceleration structure the renderer's integrator
// intersects against: a Scene struct holding Shapes/Lights/BVH, with a
// Preprocess step that builds the BVH once all shapes are added.
package scene

import (
	"github.com/arcflux/pathtracer/pkg/accel"
	"github.com/arcflux/pathtracer/pkg/core"
	"github.com/arcflux/pathtracer/pkg/light"
	"github.com/arcflux/pathtracer/pkg/shape"
)

// Scene holds the meshes, analytic shapes, and lights that make up a
// render, plus the BVH built over them by Preprocess.
type Scene struct {
	Meshes []*shape.TriangleMesh
	Shapes []shape.Shape // analytic shapes (spheres); meshes are not repeated here
	Lights []light.Light

	bvh *accel.BVH
}

// New creates an empty scene. Meshes, Shapes, and Lights are populated
// directly before calling Preprocess.
func New() *Scene {
	return &Scene{}
}

// AddAreaLight wraps shape s as a Lambertian area light of the given
// radiance, appends it to both Shapes/Meshes and Lights, and wires the
// shape's Light backlink so a path ray landing on it directly can read
// emission through Interaction.Light without a second lookup, keeping
// the light's underlying shape in Shapes for direct ray intersection.
func (s *Scene) AddAreaLight(sh shape.Shape, radiance core.Spectrum, twoSided bool) *light.AreaLight {
	al := light.NewAreaLight(sh, radiance, twoSided)
	switch concrete := sh.(type) {
	case *shape.Sphere:
		concrete.Light = al
		s.Shapes = append(s.Shapes, concrete)
	case *shape.TriangleMesh:
		concrete.Light = al
		s.Meshes = append(s.Meshes, concrete)
	default:
		s.Shapes = append(s.Shapes, sh)
	}
	s.Lights = append(s.Lights, al)
	return al
}

// AddShape appends a non-emissive analytic shape or mesh to the scene.
func (s *Scene) AddShape(sh shape.Shape) {
	switch concrete := sh.(type) {
	case *shape.TriangleMesh:
		s.Meshes = append(s.Meshes, concrete)
	default:
		s.Shapes = append(s.Shapes, sh)
	}
}

// AddLight appends a non-shape light (a PointLight) to the scene.
func (s *Scene) AddLight(l light.Light) {
	s.Lights = append(s.Lights, l)
}

// Preprocess flattens every mesh's triangles and every analytic shape
// into accel.Primitives and builds the BVH. It must be called once,
// after all shapes/meshes/lights have been added and before the first
// Intersect/IntersectShadow call.
func (s *Scene) Preprocess() {
	var prims []accel.Primitive

	for _, mesh := range s.Meshes {
		for i := 0; i < mesh.TriangleCount(); i++ {
			v0, v1, v2, n0, n1, n2 := mesh.Triangle(i)
			prims = append(prims, accel.Primitive{
				Bounds:     core.AABBFromPoints(v0, v1, v2),
				IsTriangle: true,
				Tri:        accel.NewTriAccel(v0, v1, v2),
				N0:         n0,
				N1:         n1,
				N2:         n2,
				BSDF:       mesh.BSDF,
				Light:      mesh.Light,
			})
		}
	}

	for _, sh := range s.Shapes {
		prims = append(prims, accel.Primitive{
			Bounds: sh.Bounds(),
			Shape:  sh,
		})
	}

	s.bvh = accel.Build(prims)
}

// Intersect finds the closest hit along ray against every shape and
// triangle in the scene.
func (s *Scene) Intersect(ray core.Ray) (*shape.Interaction, bool) {
	return s.bvh.Intersect(ray)
}

// IntersectShadow is a cheaper any-hit test with the same geometry,
// intended for shadow rays whose MaxT the caller has already clamped to
// just short of a light sample's distance.
func (s *Scene) IntersectShadow(ray core.Ray) bool {
	return s.bvh.IntersectP(ray)
}

// PrimitiveCount returns the total number of primitives (triangles plus
// analytic shapes) the scene's BVH was built over, for reporting.
func (s *Scene) PrimitiveCount() int {
	count := len(s.Shapes)
	for _, mesh := range s.Meshes {
		count += mesh.TriangleCount()
	}
	return count
}
