// Package accel implements the ray-scene intersection engine: a
// Wald-projected per-triangle representation (TriAccel), an 8-wide SoA
// pack of those records (TriAccel8), and a BVH that flattens into an
// array for iterative stack-based traversal.
package accel

import "github.com/arcflux/pathtracer/pkg/core"

// axisUV maps a dominant axis k to the two axes (u, v) the triangle is
// projected onto.
var axisUV = [3][2]int{
	{1, 2}, // k=0 (X dominant): project onto Y,Z
	{2, 0}, // k=1 (Y dominant): project onto Z,X
	{0, 1}, // k=2 (Z dominant): project onto X,Y
}

// TriAccel is Wald's projected-triangle representation: the triangle's
// plane and two edge-test planes are restated in terms of the dominant
// axis k and the remaining two axes (u, v), reducing ray/triangle
// intersection to a single division, two multiply-adds and two
// half-plane tests. The precomputed-record shape follows the style of
// flat, precomputed per-primitive records used by other BVH
// implementations that cache plane coefficients alongside bounds.
type TriAccel struct {
	K          uint8 // dominant axis of the triangle's normal
	Nu, Nv, Nd float64
	Bnu, Bnv, Bd float64
	Cnu, Cnv, Cd float64
}

// NewTriAccel precomputes the Wald projection for a triangle with
// vertices v0, v1, v2.
func NewTriAccel(v0, v1, v2 core.Vec3) TriAccel {
	n := v1.Subtract(v0).Cross(v2.Subtract(v0))

	k := 0
	if absf(n.At(1)) > absf(n.At(k)) {
		k = 1
	}
	if absf(n.At(2)) > absf(n.At(k)) {
		k = 2
	}
	u, v := axisUV[k][0], axisUV[k][1]

	nk := n.At(k)

	t := TriAccel{K: uint8(k)}
	t.Nu = n.At(u) / nk
	t.Nv = n.At(v) / nk
	t.Nd = n.Dot(v0) / nk

	e1u, e1v := v1.At(u)-v0.At(u), v1.At(v)-v0.At(v)
	e2u, e2v := v2.At(u)-v0.At(u), v2.At(v)-v0.At(v)
	det := e1u*e2v - e1v*e2u
	invDet := 1.0 / det

	t.Bnu = e2v * invDet
	t.Bnv = -e2u * invDet
	t.Bd = (e2u*v0.At(v) - e2v*v0.At(u)) * invDet

	t.Cnu = -e1v * invDet
	t.Cnv = e1u * invDet
	t.Cd = (e1v*v0.At(u) - e1u*v0.At(v)) * invDet

	return t
}

// Intersect tests ray against the projected triangle, returning the hit
// distance and the barycentric weights of vertices 1 and 2 (beta, gamma;
// vertex 0's weight is 1-beta-gamma).
func (t *TriAccel) Intersect(ray core.Ray) (tHit, beta, gamma float64, ok bool) {
	k := int(t.K)
	u, v := axisUV[k][0], axisUV[k][1]

	ok_, ov, ok2 := ray.Origin.At(u), ray.Origin.At(v), ray.Origin.At(k)
	dk, du, dv := ray.Direction.At(k), ray.Direction.At(u), ray.Direction.At(v)

	denom := t.Nu*du + t.Nv*dv + dk
	if denom == 0 {
		return 0, 0, 0, false
	}

	tHit = (t.Nd - ok2 - t.Nu*ok_ - t.Nv*ov) / denom
	if tHit < ray.MinT || tHit > ray.MaxT {
		return 0, 0, 0, false
	}

	hu := ok_ + tHit*du
	hv := ov + tHit*dv

	beta = t.Bnu*hu + t.Bnv*hv + t.Bd
	if beta < 0 {
		return 0, 0, 0, false
	}
	gamma = t.Cnu*hu + t.Cnv*hv + t.Cd
	if gamma < 0 || beta+gamma > 1 {
		return 0, 0, 0, false
	}

	return tHit, beta, gamma, true
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
