package bsdf

import (
	"testing"

	"github.com/arcflux/pathtracer/pkg/core"
)

func TestFresnelDielectric_SplitsReflectAndRefract(t *testing.T) {
	d := NewFresnelDielectric(core.NewSpectrum(1, 1, 1), 1.5)
	wo := core.NewVec3(0, 0, 1)

	reflected, refracted := 0, 0
	rng := core.NewRNG(3)
	for i := 0; i < 2000; i++ {
		wi, pdf, f, ok := d.Sample(wo, rng.Get2D())
		if !ok {
			t.Fatalf("sample %d: expected ok", i)
		}
		if pdf <= 0 || pdf > 1 {
			t.Fatalf("sample %d: pdf = %v, want in (0,1]", i, pdf)
		}
		if f.IsBlack() {
			t.Fatalf("sample %d: f is black", i)
		}
		if wi.Z > 0 {
			reflected++
		} else {
			refracted++
		}
	}

	if reflected == 0 || refracted == 0 {
		t.Errorf("expected both branches to occur: reflected=%d refracted=%d", reflected, refracted)
	}
}

func TestFresnelDielectric_TotalInternalReflectionAlwaysReflects(t *testing.T) {
	d := NewFresnelDielectric(core.NewSpectrum(1, 1, 1), 1.5)
	wo := core.NewVec3(0.99, 0, 0.14).Normalize()

	rng := core.NewRNG(11)
	for i := 0; i < 100; i++ {
		wi, _, _, ok := d.Sample(wo, rng.Get2D())
		if !ok {
			t.Fatalf("sample %d: expected ok", i)
		}
		if wi.Z <= 0 {
			t.Fatalf("sample %d: expected reflection under TIR, wi=%v", i, wi)
		}
	}
}

func TestFresnelDielectric_IsDelta(t *testing.T) {
	d := NewFresnelDielectric(core.NewSpectrum(1, 1, 1), 1.5)
	if !d.IsDelta() {
		t.Error("IsDelta() = false, want true")
	}
}
