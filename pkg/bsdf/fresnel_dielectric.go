package bsdf

import (
	"math"

	"github.com/arcflux/pathtracer/pkg/core"
)

// FresnelDielectric is a transparent interface that stochastically
// reflects or refracts each sample, the branch chosen by a coin flip
// against schlickFresnel's reflectance estimate. The reflectance is
// identical across channels for a non-absorptive dielectric, so there
// is no RGB-vs-luminance ambiguity in which channel drives the split.
type FresnelDielectric struct {
	Rho core.Spectrum
	Eta float64
}

// NewFresnelDielectric creates a stochastic dielectric BSDF with tint rho
// and index of refraction eta.
func NewFresnelDielectric(rho core.Spectrum, eta float64) *FresnelDielectric {
	return &FresnelDielectric{Rho: rho, Eta: eta}
}

// F is always black: a delta BSDF has no density to evaluate pointwise.
func (d *FresnelDielectric) F(wo, wi core.Vec3) core.Spectrum { return core.Spectrum{} }

// Sample flips a coin weighted by the Fresnel reflectance at the incident
// angle: on heads it reflects, on tails it refracts (or reflects anyway
// under total internal reflection).
func (d *FresnelDielectric) Sample(wo core.Vec3, u core.Vec2) (core.Vec3, float64, core.Spectrum, bool) {
	cosThetaO := wo.Z
	if math.Abs(cosThetaO) < cosEpsilon {
		return core.Vec3{}, 0, core.Spectrum{}, false
	}

	etaI, etaT := d.Eta, 1.0
	if cosThetaO < 0 {
		etaI, etaT = 1.0, d.Eta
	}
	fr := schlickFresnel(math.Abs(cosThetaO), etaI, etaT)

	if u.X < fr {
		wi := reflectLocal(wo)
		f := d.Rho.Scale(fr / absCosTheta(wi))
		return wi, fr, f, true
	}

	wt, refracted := refractLocal(wo, d.Eta)
	if !refracted {
		wi := reflectLocal(wo)
		f := d.Rho.Scale(fr / absCosTheta(wi))
		return wi, fr, f, true
	}

	pdf := 1 - fr
	f := d.Rho.Scale(pdf / absCosTheta(wt))
	return wt, pdf, f, true
}

// IsDelta is always true: both branches of the coin flip are delta lobes.
func (d *FresnelDielectric) IsDelta() bool { return true }
