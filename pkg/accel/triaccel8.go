package accel

import "github.com/arcflux/pathtracer/pkg/core"

// laneWidth is the number of triangles packed into one TriAccel8 record.
const laneWidth = 8

// TriAccel8 packs up to laneWidth TriAccel records into a struct-of-arrays
// layout: every field is stored as eight parallel lanes instead of eight
// separate structs, so testing the whole pack walks each field array once
// rather than bouncing between eight independently-laid-out TriAccel
// values. Go's toolchain has no portable SIMD intrinsics, so the
// intersection loop below is scalarized lane-by-lane rather than
// vectorized — the SoA layout is still what a real 8-wide SIMD kernel
// would operate on, it is just walked with an ordinary loop here.
type TriAccel8 struct {
	Count int
	Valid [laneWidth]bool
	Index [laneWidth]int32 // original triangle index, for shading lookup

	K            [laneWidth]uint8
	Nu, Nv, Nd   [laneWidth]float64
	Bnu, Bnv, Bd [laneWidth]float64
	Cnu, Cnv, Cd [laneWidth]float64
}

// NewTriAccel8 packs up to laneWidth TriAccel records (with their original
// triangle indices) into one SoA pack. Fewer than laneWidth records leave
// the trailing lanes marked invalid.
func NewTriAccel8(tris []TriAccel, indices []int32) TriAccel8 {
	if len(tris) > laneWidth {
		panic("accel: NewTriAccel8 given more than 8 triangles")
	}

	var p TriAccel8
	p.Count = len(tris)
	for i, t := range tris {
		p.Valid[i] = true
		p.Index[i] = indices[i]
		p.K[i] = t.K
		p.Nu[i], p.Nv[i], p.Nd[i] = t.Nu, t.Nv, t.Nd
		p.Bnu[i], p.Bnv[i], p.Bd[i] = t.Bnu, t.Bnv, t.Bd
		p.Cnu[i], p.Cnv[i], p.Cd[i] = t.Cnu, t.Cnv, t.Cd
	}
	return p
}

// Intersect tests ray against every valid lane in the pack and returns the
// closest hit: the hit distance, its barycentric weights, and the
// original triangle index of the winning lane.
func (p *TriAccel8) Intersect(ray core.Ray) (tHit, beta, gamma float64, triIndex int32, ok bool) {
	best := ray.MaxT
	found := false

	for lane := 0; lane < p.Count; lane++ {
		if !p.Valid[lane] {
			continue
		}

		k := int(p.K[lane])
		u, v := axisUV[k][0], axisUV[k][1]

		ou, ov, ok2 := ray.Origin.At(u), ray.Origin.At(v), ray.Origin.At(k)
		dk, du, dv := ray.Direction.At(k), ray.Direction.At(u), ray.Direction.At(v)

		denom := p.Nu[lane]*du + p.Nv[lane]*dv + dk
		if denom == 0 {
			continue
		}

		t := (p.Nd[lane] - ok2 - p.Nu[lane]*ou - p.Nv[lane]*ov) / denom
		if t < ray.MinT || t > best {
			continue
		}

		hu := ou + t*du
		hv := ov + t*dv

		b := p.Bnu[lane]*hu + p.Bnv[lane]*hv + p.Bd[lane]
		if b < 0 {
			continue
		}
		g := p.Cnu[lane]*hu + p.Cnv[lane]*hv + p.Cd[lane]
		if g < 0 || b+g > 1 {
			continue
		}

		best = t
		beta, gamma = b, g
		triIndex = p.Index[lane]
		found = true
	}

	return best, beta, gamma, triIndex, found
}
