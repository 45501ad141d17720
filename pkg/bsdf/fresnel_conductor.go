package bsdf

import "github.com/arcflux/pathtracer/pkg/core"

// FresnelConductor is a perfect mirror whose reflectance is not constant
// but computed per-hit from the conductor's complex index of refraction
// (Eta, K), via frConductor, rather than a flat albedo.
type FresnelConductor struct {
	Eta core.Spectrum
	K   core.Spectrum
}

// NewFresnelConductor creates a conductor mirror BSDF from its complex
// index of refraction.
func NewFresnelConductor(eta, k core.Spectrum) *FresnelConductor {
	return &FresnelConductor{Eta: eta, K: k}
}

// F is always black: a delta BSDF has no density to evaluate pointwise.
func (c *FresnelConductor) F(wo, wi core.Vec3) core.Spectrum { return core.Spectrum{} }

// Sample reflects wo about the normal with pdf 1, scaled by the
// conductor's Fresnel reflectance at the incident angle.
func (c *FresnelConductor) Sample(wo core.Vec3, u core.Vec2) (core.Vec3, float64, core.Spectrum, bool) {
	if absCosTheta(wo) < cosEpsilon {
		return core.Vec3{}, 0, core.Spectrum{}, false
	}
	wi := reflectLocal(wo)
	fr := frConductor(absCosTheta(wo), c.Eta, c.K)
	f := fr.Scale(1.0 / absCosTheta(wi))
	return wi, 1.0, f, true
}

// IsDelta is always true for a Fresnel-conductor mirror.
func (c *FresnelConductor) IsDelta() bool { return true }
