package bsdf

import (
	"math"

	"github.com/arcflux/pathtracer/pkg/core"
)

// Lambertian is a perfectly diffuse reflector with reflectance Rho:
// f = rho/pi, sampled cosine-weighted about the normal with pdf
// cos(theta)/pi.
type Lambertian struct {
	Rho core.Spectrum
}

// NewLambertian creates a Lambertian BSDF with the given reflectance.
func NewLambertian(rho core.Spectrum) *Lambertian {
	return &Lambertian{Rho: rho}
}

// F returns rho/pi when wo and wi are on the same hemisphere side.
func (l *Lambertian) F(wo, wi core.Vec3) core.Spectrum {
	if !sameHemisphere(wo, wi) {
		return core.Spectrum{}
	}
	return l.Rho.Scale(1.0 / math.Pi)
}

// Sample draws a cosine-weighted direction about the normal on wo's side
// of the hemisphere, returning the raw BRDF value f(wo,wi) = rho/pi; the
// caller multiplies by |cos(wi)| and divides by pdf.
func (l *Lambertian) Sample(wo core.Vec3, u core.Vec2) (core.Vec3, float64, core.Spectrum, bool) {
	if absCosTheta(wo) < cosEpsilon {
		return core.Vec3{}, 0, core.Spectrum{}, false
	}

	wi := core.SampleCosineHemisphere(u)
	if wo.Z < 0 {
		wi.Z = -wi.Z
	}

	pdf := absCosTheta(wi) / math.Pi
	if pdf <= 0 {
		return core.Vec3{}, 0, core.Spectrum{}, false
	}

	return wi, pdf, l.F(wo, wi), true
}

// IsDelta is always false for Lambertian.
func (l *Lambertian) IsDelta() bool { return false }
