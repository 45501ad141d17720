package integrator

import (
	"math"
	"testing"

	"github.com/arcflux/pathtracer/pkg/bsdf"
	"github.com/arcflux/pathtracer/pkg/core"
	"github.com/arcflux/pathtracer/pkg/light"
	"github.com/arcflux/pathtracer/pkg/scene"
	"github.com/arcflux/pathtracer/pkg/shape"
)

func TestPathTracer_MissReturnsBlack(t *testing.T) {
	s := scene.New()
	s.Preprocess()
	pt := New(s, 8)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	L := pt.Li(ray, core.NewRNG(1))
	if !L.IsBlack() {
		t.Errorf("Li() = %v, want black for an empty scene", L)
	}
}

func TestPathTracer_DirectHitOnAreaLight(t *testing.T) {
	s := scene.New()
	sphere := shape.NewSphere(core.NewVec3(0, 0, 5), 1, nil)
	s.AddAreaLight(sphere, core.NewSpectrum(4, 4, 4), false)
	s.Preprocess()
	pt := New(s, 8)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	L := pt.Li(ray, core.NewRNG(2))
	if L.R != 4 {
		t.Errorf("Li().R = %v, want 4 (direct hit on the light's front face)", L.R)
	}
}

func TestPathTracer_DiffuseSurfaceReceivesPointLight(t *testing.T) {
	s := scene.New()
	mat := bsdf.NewLambertian(core.NewSpectrum(0.8, 0.8, 0.8))
	s.AddShape(shape.NewSphere(core.NewVec3(0, 0, 5), 1, mat))
	s.AddLight(light.NewPointLight(core.NewVec3(0, 0, 0), core.NewSpectrum(50, 50, 50)))
	s.Preprocess()
	pt := New(s, 8)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	rng := core.NewRNG(3)
	var sum float64
	const samples = 256
	for i := 0; i < samples; i++ {
		sum += pt.Li(ray, rng).R
	}
	avg := sum / samples
	if avg <= 0 {
		t.Errorf("average Li().R = %v, want > 0 for a lit diffuse surface", avg)
	}
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		t.Fatalf("average Li().R = %v, want a finite number", avg)
	}
}

func TestPathTracer_OccludedLightSceneStaysFinite(t *testing.T) {
	s := scene.New()
	mat := bsdf.NewLambertian(core.NewSpectrum(0.8, 0.8, 0.8))
	// A blocking sphere sits directly between the lit sphere and the light.
	s.AddShape(shape.NewSphere(core.NewVec3(0, 0, 5), 1, mat))
	s.AddShape(shape.NewSphere(core.NewVec3(0, 0, 2), 0.9, bsdf.NewLambertian(core.Spectrum{})))
	s.AddLight(light.NewPointLight(core.NewVec3(0, 0, 0), core.NewSpectrum(50, 50, 50)))
	s.Preprocess()
	pt := New(s, 8)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.05, 0, 1).Normalize())
	rng := core.NewRNG(4)
	for i := 0; i < 16; i++ {
		L := pt.Li(ray, rng)
		if math.IsNaN(L.R) || math.IsInf(L.R, 0) {
			t.Fatalf("Li().R = %v, want a finite number", L.R)
		}
	}
}

func TestPathTracer_MaxDepthZeroReturnsBlack(t *testing.T) {
	s := scene.New()
	sphere := shape.NewSphere(core.NewVec3(0, 0, 5), 1, nil)
	s.AddAreaLight(sphere, core.NewSpectrum(4, 4, 4), false)
	s.Preprocess()
	pt := New(s, 0)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	L := pt.Li(ray, core.NewRNG(5))
	if !L.IsBlack() {
		t.Errorf("Li() = %v, want black when MaxDepth is 0", L)
	}
}

func TestPathTracer_RRMinBouncesDelaysTermination(t *testing.T) {
	s := scene.New()
	mat := bsdf.NewLambertian(core.NewSpectrum(0.9, 0.9, 0.9))
	s.AddShape(shape.NewSphere(core.NewVec3(0, 0, 5), 1, mat))
	s.AddLight(light.NewPointLight(core.NewVec3(0, 10, 0), core.NewSpectrum(50, 50, 50)))
	s.Preprocess()

	pt := New(s, 32)
	pt.RRMinBounces = 32 // never eligible for roulette within MaxDepth

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	rng := core.NewRNG(6)
	for i := 0; i < 8; i++ {
		L := pt.Li(ray, rng)
		if math.IsNaN(L.R) || math.IsInf(L.R, 0) {
			t.Fatalf("Li().R = %v, want a finite number", L.R)
		}
	}
}
