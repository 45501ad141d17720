package bsdf

import "github.com/arcflux/pathtracer/pkg/core"

// PerfectConductor is an idealized mirror: all incident light reflects
// about the normal, scaled by a constant reflectance. This is the
// zero-roughness limit of a glossy metal BRDF, expressed directly as a
// delta BSDF rather than a roughness parameter clamped to zero.
type PerfectConductor struct {
	Rho core.Spectrum
}

// NewPerfectConductor creates a perfect-mirror BSDF with reflectance rho.
func NewPerfectConductor(rho core.Spectrum) *PerfectConductor {
	return &PerfectConductor{Rho: rho}
}

// F is always black: a delta BSDF has no density to evaluate pointwise.
func (m *PerfectConductor) F(wo, wi core.Vec3) core.Spectrum { return core.Spectrum{} }

// Sample reflects wo about the normal with pdf 1, returning rho/|cos(wi)|.
func (m *PerfectConductor) Sample(wo core.Vec3, u core.Vec2) (core.Vec3, float64, core.Spectrum, bool) {
	if absCosTheta(wo) < cosEpsilon {
		return core.Vec3{}, 0, core.Spectrum{}, false
	}
	wi := reflectLocal(wo)
	f := m.Rho.Scale(1.0 / absCosTheta(wi))
	return wi, 1.0, f, true
}

// IsDelta is always true for a perfect mirror.
func (m *PerfectConductor) IsDelta() bool { return true }
