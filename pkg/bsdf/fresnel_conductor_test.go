package bsdf

import (
	"testing"

	"github.com/arcflux/pathtracer/pkg/core"
)

func TestFresnelConductor_ReflectsAboutNormal(t *testing.T) {
	eta := core.NewSpectrum(0.2, 0.9, 1.1)
	k := core.NewSpectrum(3.9, 2.5, 2.1)
	c := NewFresnelConductor(eta, k)

	wo := core.NewVec3(0.5, 0, 0.866)
	wi, pdf, f, ok := c.Sample(wo, core.NewVec2(0.2, 0.7))
	if !ok {
		t.Fatal("expected ok")
	}
	if wi.Subtract(core.NewVec3(-0.5, 0, 0.866)).Length() > 1e-9 {
		t.Errorf("wi = %v, want mirror reflection", wi)
	}
	if pdf != 1.0 {
		t.Errorf("pdf = %v, want 1", pdf)
	}
	if f.IsBlack() {
		t.Error("f should not be black for a reflective conductor")
	}
}

func TestFresnelConductor_GlancingAngleIsBrighter(t *testing.T) {
	eta := core.NewSpectrum(0.2, 0.9, 1.1)
	k := core.NewSpectrum(3.9, 2.5, 2.1)
	c := NewFresnelConductor(eta, k)

	_, _, fNormal, _ := c.Sample(core.NewVec3(0, 0, 1), core.NewVec2(0, 0))
	_, _, fGrazing, _ := c.Sample(core.NewVec3(0.999, 0, 0.045).Normalize(), core.NewVec2(0, 0))

	if fGrazing.Y() < fNormal.Y() {
		t.Errorf("expected grazing reflectance (%v) >= normal reflectance (%v)", fGrazing, fNormal)
	}
}

func TestFresnelConductor_IsDelta(t *testing.T) {
	c := NewFresnelConductor(core.NewSpectrum(1, 1, 1), core.NewSpectrum(1, 1, 1))
	if !c.IsDelta() {
		t.Error("IsDelta() = false, want true")
	}
}
