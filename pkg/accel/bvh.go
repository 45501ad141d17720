package accel

import (
	"sort"

	"github.com/arcflux/pathtracer/pkg/bsdf"
	"github.com/arcflux/pathtracer/pkg/core"
	"github.com/arcflux/pathtracer/pkg/shape"
)

// leafThreshold: once a subtree holds this many primitives or fewer it
// becomes a leaf rather than splitting further. It is also TriAccel8's
// lane width, so an all-triangle leaf packs into exactly one SoA record.
const leafThreshold = 8

// Primitive is a BVH build-time input: either a Wald-projected triangle
// (Tri, with its shading data carried alongside since TriAccel itself
// stores none) or an opaque Shape (a sphere, tested directly rather than
// projected).
type Primitive struct {
	Bounds     core.AABB
	IsTriangle bool

	Tri        TriAccel
	N0, N1, N2 core.Vec3
	BSDF       bsdf.BSDF
	Light      shape.AreaLightRef

	Shape shape.Shape
}

// FlatBvhNode is one entry of the depth-first, left-first flattened tree.
// An internal node's left child is always the next entry in the array;
// SecondChildOffset locates the right child. A leaf references a
// contiguous range of the BVH's Shapes array and at most one TriAccel8
// pack.
type FlatBvhNode struct {
	Bounds            core.AABB
	Axis              uint8
	IsLeaf            bool
	SecondChildOffset int32

	PackIndex  int32 // -1 if this leaf has no triangles
	ShapeStart int32
	ShapeCount int32
}

// BVH is the flattened bounding volume hierarchy produced by Build: a
// flat node array with an explicit traversal stack, near/far child
// ordering by the sign of the ray direction on the node's split axis,
// and a recursive build with a midpoint split along the longest axis,
// falling back to a median split when midpoint splitting produces an
// empty side (see DESIGN.md's accel section).
type BVH struct {
	Nodes []FlatBvhNode
	Packs []TriAccel8

	TriN0, TriN1, TriN2 []core.Vec3
	TriBSDF             []bsdf.BSDF
	TriLight            []shape.AreaLightRef

	Shapes []shape.Shape
}

type buildNode struct {
	bounds core.AABB
	axis   int
	left   *buildNode
	right  *buildNode
	prims  []Primitive // non-nil only for leaves
}

// Build constructs a BVH over the given primitives.
func Build(prims []Primitive) *BVH {
	bvh := &BVH{}
	if len(prims) == 0 {
		return bvh
	}
	root := buildRecursive(prims)
	flatten(root, bvh)
	return bvh
}

func buildRecursive(prims []Primitive) *buildNode {
	bounds := core.EmptyAABB()
	for _, p := range prims {
		bounds = bounds.Union(p.Bounds)
	}

	if len(prims) <= leafThreshold {
		return &buildNode{bounds: bounds, prims: prims}
	}

	axis := bounds.LongestAxis()
	mid := (bounds.Min.At(axis) + bounds.Max.At(axis)) * 0.5

	var left, right []Primitive
	for _, p := range prims {
		if p.Bounds.Center().At(axis) < mid {
			left = append(left, p)
		} else {
			right = append(right, p)
		}
	}

	if len(left) == 0 || len(right) == 0 {
		sorted := make([]Primitive, len(prims))
		copy(sorted, prims)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Bounds.Center().At(axis) < sorted[j].Bounds.Center().At(axis)
		})
		half := len(sorted) / 2
		left, right = sorted[:half], sorted[half:]
	}

	return &buildNode{
		bounds: bounds,
		axis:   axis,
		left:   buildRecursive(left),
		right:  buildRecursive(right),
	}
}

// flatten appends n (and its subtree) to bvh depth-first, left-first, and
// returns n's index in bvh.Nodes.
func flatten(n *buildNode, bvh *BVH) int32 {
	idx := int32(len(bvh.Nodes))
	bvh.Nodes = append(bvh.Nodes, FlatBvhNode{Bounds: n.bounds})

	if n.prims != nil {
		var triPrims []Primitive
		var shapePrims []shape.Shape
		for _, p := range n.prims {
			if p.IsTriangle {
				triPrims = append(triPrims, p)
			} else {
				shapePrims = append(shapePrims, p.Shape)
			}
		}

		bvh.Nodes[idx].IsLeaf = true
		bvh.Nodes[idx].ShapeStart = int32(len(bvh.Shapes))
		bvh.Shapes = append(bvh.Shapes, shapePrims...)
		bvh.Nodes[idx].ShapeCount = int32(len(shapePrims))

		if len(triPrims) > 0 {
			tris := make([]TriAccel, len(triPrims))
			indices := make([]int32, len(triPrims))
			for i, p := range triPrims {
				gidx := int32(len(bvh.TriN0))
				bvh.TriN0 = append(bvh.TriN0, p.N0)
				bvh.TriN1 = append(bvh.TriN1, p.N1)
				bvh.TriN2 = append(bvh.TriN2, p.N2)
				bvh.TriBSDF = append(bvh.TriBSDF, p.BSDF)
				bvh.TriLight = append(bvh.TriLight, p.Light)
				tris[i] = p.Tri
				indices[i] = gidx
			}
			bvh.Packs = append(bvh.Packs, NewTriAccel8(tris, indices))
			bvh.Nodes[idx].PackIndex = int32(len(bvh.Packs) - 1)
		} else {
			bvh.Nodes[idx].PackIndex = -1
		}

		return idx
	}

	bvh.Nodes[idx].Axis = uint8(n.axis)
	flatten(n.left, bvh)
	rightIdx := flatten(n.right, bvh)
	bvh.Nodes[idx].SecondChildOffset = rightIdx
	return idx
}

// maxStackDepth bounds the iterative traversal stack. A balanced tree over
// even a very large scene stays well under this; it exists so traversal
// is allocation-free rather than to model a real depth limit.
const maxStackDepth = 64

// Intersect finds the closest hit along ray, testing triangle packs and
// shape primitives in near-to-far order as the traversal descends.
func (b *BVH) Intersect(ray core.Ray) (*shape.Interaction, bool) {
	if len(b.Nodes) == 0 {
		return nil, false
	}

	var stack [maxStackDepth]int32
	sp := 0
	stack[0] = 0
	sp = 1

	bestT := ray.MaxT
	var best *shape.Interaction

	for sp > 0 {
		sp--
		idx := stack[sp]
		node := &b.Nodes[idx]

		if _, _, hit := node.Bounds.Hit(ray, ray.MinT, bestT); !hit {
			continue
		}

		if node.IsLeaf {
			if node.PackIndex >= 0 {
				probe := core.NewRayWithInterval(ray.Origin, ray.Direction, ray.MinT, bestT)
				if t, beta, gamma, triIdx, ok := b.Packs[node.PackIndex].Intersect(probe); ok {
					bestT = t
					n0, n1, n2 := b.TriN0[triIdx], b.TriN1[triIdx], b.TriN2[triIdx]
					normal := n0.Multiply(1 - beta - gamma).Add(n1.Multiply(beta)).Add(n2.Multiply(gamma)).Normalize()
					best = &shape.Interaction{
						T:      t,
						Point:  ray.At(t),
						Normal: normal,
						BSDF:   b.TriBSDF[triIdx],
						Light:  b.TriLight[triIdx],
					}
				}
			}

			for s := node.ShapeStart; s < node.ShapeStart+node.ShapeCount; s++ {
				probe := core.NewRayWithInterval(ray.Origin, ray.Direction, ray.MinT, bestT)
				if hitI, ok := b.Shapes[s].Intersect(probe); ok {
					bestT = hitI.T
					best = hitI
				}
			}
			continue
		}

		left := idx + 1
		right := node.SecondChildOffset
		near, far := left, right
		if ray.Direction.At(int(node.Axis)) < 0 {
			near, far = right, left
		}
		stack[sp] = far
		sp++
		stack[sp] = near
		sp++
	}

	return best, best != nil
}

// IntersectP is a cheaper any-hit test for shadow rays: it returns as soon
// as any primitive is hit, without ordering traversal by distance.
func (b *BVH) IntersectP(ray core.Ray) bool {
	if len(b.Nodes) == 0 {
		return false
	}

	var stack [maxStackDepth]int32
	stack[0] = 0
	sp := 1

	for sp > 0 {
		sp--
		idx := stack[sp]
		node := &b.Nodes[idx]

		if _, _, hit := node.Bounds.Hit(ray, ray.MinT, ray.MaxT); !hit {
			continue
		}

		if node.IsLeaf {
			if node.PackIndex >= 0 {
				if _, _, _, _, ok := b.Packs[node.PackIndex].Intersect(ray); ok {
					return true
				}
			}
			for s := node.ShapeStart; s < node.ShapeStart+node.ShapeCount; s++ {
				if b.Shapes[s].IntersectP(ray) {
					return true
				}
			}
			continue
		}

		stack[sp] = idx + 1
		sp++
		stack[sp] = node.SecondChildOffset
		sp++
	}

	return false
}
