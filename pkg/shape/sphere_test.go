package shape

import (
	"math"
	"testing"

	"github.com/arcflux/pathtracer/pkg/bsdf"
	"github.com/arcflux/pathtracer/pkg/core"
)

func TestSphere_IntersectHeadOn(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, -5), 1, bsdf.NewLambertian(core.NewSpectrum(0.5, 0.5, 0.5)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := s.Intersect(ray)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("T = %v, want 4", hit.T)
	}
	wantNormal := core.NewVec3(0, 0, 1)
	if hit.Normal.Subtract(wantNormal).Length() > 1e-9 {
		t.Errorf("Normal = %v, want %v", hit.Normal, wantNormal)
	}
}

func TestSphere_IntersectMiss(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, -5), 1, nil)
	ray := core.NewRay(core.NewVec3(5, 5, 0), core.NewVec3(0, 0, -1))
	if _, ok := s.Intersect(ray); ok {
		t.Fatal("expected miss")
	}
}

func TestSphere_IntersectPAgreesWithIntersect(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, -5), 1, nil)
	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(5, 5, 0), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(0.5, 0, 0), core.NewVec3(0, 0, -1)),
	}
	for i, r := range rays {
		_, hit := s.Intersect(r)
		hitP := s.IntersectP(r)
		if hit != hitP {
			t.Errorf("ray %d: Intersect ok=%v, IntersectP=%v disagree", i, hit, hitP)
		}
	}
}

func TestSphere_AreaAndSamplePdf(t *testing.T) {
	s := NewSphere(core.NewVec3(1, 2, 3), 2, nil)
	wantArea := 4 * math.Pi * 4
	if math.Abs(s.Area()-wantArea) > 1e-9 {
		t.Errorf("Area() = %v, want %v", s.Area(), wantArea)
	}

	point, normal, pdf := s.Sample(core.NewVec2(0.3, 0.7))
	if math.Abs(pdf-1.0/wantArea) > 1e-9 {
		t.Errorf("pdf = %v, want %v", pdf, 1.0/wantArea)
	}
	if math.Abs(point.Subtract(s.Center).Length()-s.Radius) > 1e-9 {
		t.Errorf("sampled point %v not on sphere surface", point)
	}
	if math.Abs(normal.Length()-1) > 1e-9 {
		t.Errorf("normal %v not unit length", normal)
	}
}

func TestSphere_Bounds(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, 0), 2, nil)
	b := s.Bounds()
	if !b.Contains(core.NewAABB(core.NewVec3(-2, -2, -2), core.NewVec3(2, 2, 2))) {
		t.Errorf("Bounds() = %v, want to contain [-2,2]^3", b)
	}
}
