package light

import (
	"math"
	"testing"

	"github.com/arcflux/pathtracer/pkg/core"
	"github.com/arcflux/pathtracer/pkg/shape"
)

func TestAreaLight_SampleFacingPoint(t *testing.T) {
	sphere := shape.NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	al := NewAreaLight(sphere, core.NewSpectrum(5, 5, 5), false)

	shadingPoint := core.NewVec3(0, 0, 10)
	rng := core.NewRNG(1)

	for i := 0; i < 64; i++ {
		wi, distance, li, pdf, ok := al.Sample(shadingPoint, rng.Get2D())
		if !ok {
			continue
		}
		if distance <= 0 {
			t.Fatalf("sample %d: distance = %v, want > 0", i, distance)
		}
		if pdf <= 0 {
			t.Fatalf("sample %d: pdf = %v, want > 0", i, pdf)
		}
		if li.IsBlack() {
			t.Fatalf("sample %d: li is black for a facing sample", i)
		}
		if math.Abs(wi.Length()-1) > 1e-9 {
			t.Fatalf("sample %d: wi = %v not unit length", i, wi)
		}
	}
}

func TestAreaLight_OneSidedBlocksBackFace(t *testing.T) {
	sphere := shape.NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	al := NewAreaLight(sphere, core.NewSpectrum(5, 5, 5), false)

	// A point light sample landing on the far side of the sphere as seen
	// from inside it should contribute nothing for a one-sided emitter.
	insidePoint := core.NewVec3(0, 0, 0.5)
	blocked := 0
	rng := core.NewRNG(2)
	for i := 0; i < 200; i++ {
		_, _, _, _, ok := al.Sample(insidePoint, rng.Get2D())
		if !ok {
			blocked++
		}
	}
	if blocked == 0 {
		t.Error("expected some samples from inside the sphere to face away and be blocked")
	}
}

func TestAreaLight_TwoSidedNeverBlocked(t *testing.T) {
	sphere := shape.NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	al := NewAreaLight(sphere, core.NewSpectrum(5, 5, 5), true)

	insidePoint := core.NewVec3(0, 0, 0.5)
	rng := core.NewRNG(2)
	for i := 0; i < 200; i++ {
		_, _, li, _, ok := al.Sample(insidePoint, rng.Get2D())
		if !ok {
			t.Fatalf("sample %d: two-sided light should never be blocked", i)
		}
		if li.IsBlack() {
			t.Fatalf("sample %d: expected non-black emission", i)
		}
	}
}

func TestAreaLight_EmittedRadianceMatchesField(t *testing.T) {
	radiance := core.NewSpectrum(2, 3, 4)
	sphere := shape.NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	al := NewAreaLight(sphere, radiance, false)
	if al.EmittedRadiance() != radiance {
		t.Errorf("EmittedRadiance() = %v, want %v", al.EmittedRadiance(), radiance)
	}
}

func TestAreaLight_PowerScalesWithArea(t *testing.T) {
	small := shape.NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	big := shape.NewSphere(core.NewVec3(0, 0, 0), 2, nil)
	radiance := core.NewSpectrum(1, 1, 1)

	smallLight := NewAreaLight(small, radiance, false)
	bigLight := NewAreaLight(big, radiance, false)

	if bigLight.Power().R <= smallLight.Power().R {
		t.Error("expected a larger emitter to radiate more power")
	}
}

func TestAreaLight_IsDelta(t *testing.T) {
	sphere := shape.NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	al := NewAreaLight(sphere, core.NewSpectrum(1, 1, 1), false)
	if al.IsDelta() {
		t.Error("IsDelta() = true, want false")
	}
}
