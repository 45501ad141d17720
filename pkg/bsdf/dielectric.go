package bsdf

import (
	"math"

	"github.com/arcflux/pathtracer/pkg/core"
)

// PerfectDielectric is an idealized transparent interface: every incident
// ray deterministically refracts according to Snell's law, or reflects
// under total internal reflection. This is a delta BSDF, unlike the
// probabilistic reflect/refract mix in FresnelDielectric.
type PerfectDielectric struct {
	Rho core.Spectrum
	Eta float64 // index of refraction on the normal's (+Z) side; the other side has index 1
}

// NewPerfectDielectric creates a perfect-refractor BSDF with reflectance
// rho (applied on total internal reflection) and index of refraction eta.
func NewPerfectDielectric(rho core.Spectrum, eta float64) *PerfectDielectric {
	return &PerfectDielectric{Rho: rho, Eta: eta}
}

// F is always black: a delta BSDF has no density to evaluate pointwise.
func (d *PerfectDielectric) F(wo, wi core.Vec3) core.Spectrum { return core.Spectrum{} }

// Sample refracts wo deterministically through the interface. Under total
// internal reflection it instead reflects wo about the normal.
func (d *PerfectDielectric) Sample(wo core.Vec3, u core.Vec2) (core.Vec3, float64, core.Spectrum, bool) {
	if absCosTheta(wo) < cosEpsilon {
		return core.Vec3{}, 0, core.Spectrum{}, false
	}

	wt, refracted := refractLocal(wo, d.Eta)
	if !refracted {
		wi := reflectLocal(wo)
		f := d.Rho.Scale(1.0 / absCosTheta(wi))
		return wi, 1.0, f, true
	}

	f := d.Rho.Scale(1.0 / absCosTheta(wt))
	return wt, 1.0, f, true
}

// IsDelta is always true for a perfect refractor.
func (d *PerfectDielectric) IsDelta() bool { return true }

// refractLocal refracts wo through the local shading frame's interface.
// The +Z side has index of refraction eta and the -Z side index 1, so a
// wo with positive cosine starts inside the index-eta medium and can
// undergo total internal reflection. Follows the standard vector form of
// Snell's law; returns ok=false on total internal reflection.
func refractLocal(wo core.Vec3, eta float64) (core.Vec3, bool) {
	cosThetaI := wo.Z
	etaRatio := eta // etaI/etaT, leaving the index-eta medium
	n := core.NewVec3(0, 0, 1)
	if cosThetaI < 0 {
		etaRatio = 1.0 / eta
		cosThetaI = -cosThetaI
		n = core.NewVec3(0, 0, -1)
	}

	sin2ThetaI := math.Max(0, 1-cosThetaI*cosThetaI)
	sin2ThetaT := etaRatio * etaRatio * sin2ThetaI
	if sin2ThetaT >= 1 {
		return core.Vec3{}, false
	}
	cosThetaT := math.Sqrt(1 - sin2ThetaT)

	wt := wo.Negate().Multiply(etaRatio).Add(n.Multiply(etaRatio*cosThetaI - cosThetaT))
	return wt, true
}
