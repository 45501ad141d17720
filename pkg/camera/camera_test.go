package camera

import (
	"math"
	"testing"

	"github.com/arcflux/pathtracer/pkg/core"
)

func TestCamera_CenterPixelPointsAlongDirection(t *testing.T) {
	cam := New(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 100, 100, 1.0, core.NewVec3(0, 1, 0))
	ray := cam.Sample(49, 49, 0.5, 0.5)

	dot := ray.Direction.Dot(core.NewVec3(0, 0, 1))
	if dot < 0.99 {
		t.Errorf("center ray direction = %v, want ~(0,0,1)", ray.Direction)
	}
}

func TestCamera_RayDirectionIsUnit(t *testing.T) {
	cam := New(core.NewVec3(1, 2, 3), core.NewVec3(0, 0, -1), 64, 48, 1.0, core.NewVec3(0, 1, 0))
	for _, p := range [][2]int{{0, 0}, {63, 0}, {0, 47}, {63, 47}, {32, 24}} {
		ray := cam.Sample(p[0], p[1], 0.5, 0.5)
		if math.Abs(ray.Direction.Length()-1) > 1e-9 {
			t.Errorf("Sample(%d,%d) direction length = %v, want 1", p[0], p[1], ray.Direction.Length())
		}
	}
}

func TestCamera_RayOriginIsCameraPosition(t *testing.T) {
	pos := core.NewVec3(5, 6, 7)
	cam := New(pos, core.NewVec3(0, 0, 1), 32, 32, 1.0, core.NewVec3(0, 1, 0))
	ray := cam.Sample(10, 10, 0.5, 0.5)
	if ray.Origin != pos {
		t.Errorf("Origin = %v, want %v", ray.Origin, pos)
	}
}

func TestCamera_LeftAndRightEdgesDivergeSymmetrically(t *testing.T) {
	cam := New(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 100, 100, 1.0, core.NewVec3(0, 1, 0))
	left := cam.Sample(0, 49, 0.5, 0.5)
	right := cam.Sample(99, 49, 0.5, 0.5)

	if left.Direction.X >= 0 {
		t.Errorf("left edge ray X = %v, want negative", left.Direction.X)
	}
	if right.Direction.X <= 0 {
		t.Errorf("right edge ray X = %v, want positive", right.Direction.X)
	}
	if math.Abs(left.Direction.X+right.Direction.X) > 1e-9 {
		t.Errorf("left/right edges should diverge symmetrically: %v vs %v", left.Direction.X, right.Direction.X)
	}
}

func TestCamera_TopAndBottomEdgesDivergeSymmetrically(t *testing.T) {
	// Looking down -z, right x direction is +Y, so the top row points up.
	cam := New(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 100, 100, 1.0, core.NewVec3(0, 1, 0))
	top := cam.Sample(49, 0, 0.5, 0.5)
	bottom := cam.Sample(49, 99, 0.5, 0.5)

	if top.Direction.Y <= 0 {
		t.Errorf("top edge ray Y = %v, want positive", top.Direction.Y)
	}
	if bottom.Direction.Y >= 0 {
		t.Errorf("bottom edge ray Y = %v, want negative", bottom.Direction.Y)
	}
}
