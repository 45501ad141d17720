package shape

import (
	"math"

	"github.com/arcflux/pathtracer/pkg/bsdf"
	"github.com/arcflux/pathtracer/pkg/core"
)

// TriangleMesh stores raw vertex and index data for a set of triangles
// sharing one material. This mesh does not build its own BVH: pkg/accel
// flattens a scene's meshes into TriAccel/TriAccel8 records and a single
// shared BVH, so Intersect/IntersectP here are the unaccelerated
// reference path used to validate that faster traversal, not the hot
// path a renderer takes.
//
// Per-vertex normals are smoothed by averaging adjacent face normals at
// construction, rather than each triangle carrying a flat face normal
// or an explicit per-vertex override.
type TriangleMesh struct {
	Positions []core.Vec3
	Normals   []core.Vec3 // one per vertex, smoothed
	Indices   []int       // triangle i uses Indices[3i:3i+3]
	BSDF      bsdf.BSDF
	Light     AreaLightRef

	bounds        core.AABB
	triangleAreas []float64
	cumulativeCDF []float64
	totalArea     float64
}

// NewTriangleMesh builds a mesh from flat position/index arrays and
// computes smoothed per-vertex normals.
func NewTriangleMesh(positions []core.Vec3, indices []int, material bsdf.BSDF) *TriangleMesh {
	if len(indices)%3 != 0 {
		panic("shape: triangle indices must be a multiple of 3")
	}

	m := &TriangleMesh{
		Positions: positions,
		Indices:   indices,
		BSDF:      material,
	}
	m.computeSmoothNormals()
	m.computeBounds()
	m.computeAreas()
	return m
}

// TriangleCount returns the number of triangles in the mesh.
func (m *TriangleMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the three vertex positions and smoothed normals of
// triangle i.
func (m *TriangleMesh) Triangle(i int) (v0, v1, v2, n0, n1, n2 core.Vec3) {
	i0, i1, i2 := m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
	return m.Positions[i0], m.Positions[i1], m.Positions[i2],
		m.Normals[i0], m.Normals[i1], m.Normals[i2]
}

// faceNormal returns triangle i's flat geometric normal.
func (m *TriangleMesh) faceNormal(i int) core.Vec3 {
	v0, v1, v2, _, _, _ := m.Triangle(i)
	return v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
}

func (m *TriangleMesh) computeSmoothNormals() {
	m.Normals = make([]core.Vec3, len(m.Positions))
	for i := 0; i < m.TriangleCount(); i++ {
		i0, i1, i2 := m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
		fn := m.faceNormal(i)
		m.Normals[i0] = m.Normals[i0].Add(fn)
		m.Normals[i1] = m.Normals[i1].Add(fn)
		m.Normals[i2] = m.Normals[i2].Add(fn)
	}
	for i, n := range m.Normals {
		m.Normals[i] = n.Normalize()
	}
}

func (m *TriangleMesh) computeBounds() {
	if len(m.Positions) == 0 {
		m.bounds = core.EmptyAABB()
		return
	}
	m.bounds = core.AABBFromPoints(m.Positions...)
}

func (m *TriangleMesh) computeAreas() {
	n := m.TriangleCount()
	m.triangleAreas = make([]float64, n)
	m.cumulativeCDF = make([]float64, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		v0, v1, v2, _, _, _ := m.Triangle(i)
		area := v1.Subtract(v0).Cross(v2.Subtract(v0)).Length() * 0.5
		m.triangleAreas[i] = area
		sum += area
		m.cumulativeCDF[i] = sum
	}
	m.totalArea = sum
}

// Bounds returns the mesh's world-space axis-aligned bounding box.
func (m *TriangleMesh) Bounds() core.AABB { return m.bounds }

// Area returns the total surface area across all triangles.
func (m *TriangleMesh) Area() float64 { return m.totalArea }

// Sample draws a uniform point across the mesh's surface: a triangle is
// chosen with probability proportional to its area, then a uniform point
// within it via the standard sqrt barycentric mapping.
func (m *TriangleMesh) Sample(u core.Vec2) (core.Vec3, core.Vec3, float64) {
	target := u.X * m.totalArea
	idx := lowerBound(m.cumulativeCDF, target)

	lo := 0.0
	if idx > 0 {
		lo = m.cumulativeCDF[idx-1]
	}
	hi := m.cumulativeCDF[idx]
	remapped := (target - lo) / (hi - lo)

	v0, v1, v2, _, _, _ := m.Triangle(idx)
	su := math.Sqrt(remapped)
	b0 := 1 - su
	b1 := u.Y * su
	point := v0.Multiply(b0).Add(v1.Multiply(b1)).Add(v2.Multiply(1 - b0 - b1))

	return point, m.faceNormal(idx), 1.0 / m.totalArea
}

func lowerBound(cdf []float64, target float64) int {
	lo, hi := 0, len(cdf)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if cdf[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Intersect is the unaccelerated Moeller-Trumbore reference path, used to
// validate pkg/accel's TriAccel/BVH traversal rather than as a renderer's
// hot path.
func (m *TriangleMesh) Intersect(ray core.Ray) (*Interaction, bool) {
	var best *Interaction
	bestT := ray.MaxT

	for i := 0; i < m.TriangleCount(); i++ {
		if hit, ok := m.intersectTriangle(ray, i, bestT); ok {
			best = hit
			bestT = hit.T
		}
	}
	return best, best != nil
}

// IntersectP reports whether any triangle in the mesh is hit.
func (m *TriangleMesh) IntersectP(ray core.Ray) bool {
	for i := 0; i < m.TriangleCount(); i++ {
		if _, ok := m.intersectTriangle(ray, i, ray.MaxT); ok {
			return true
		}
	}
	return false
}

const triEpsilon = 1e-8

func (m *TriangleMesh) intersectTriangle(ray core.Ray, i int, maxT float64) (*Interaction, bool) {
	v0, v1, v2, n0, n1, n2 := m.Triangle(i)

	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -triEpsilon && a < triEpsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(v0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return nil, false
	}

	t := f * edge2.Dot(q)
	if t < ray.MinT || t > maxT {
		return nil, false
	}

	w := 1 - u - v
	normal := n0.Multiply(w).Add(n1.Multiply(u)).Add(n2.Multiply(v)).Normalize()

	return &Interaction{
		T:      t,
		Point:  ray.At(t),
		Normal: normal,
		BSDF:   m.BSDF,
		Light:  m.Light,
	}, true
}
