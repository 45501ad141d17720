package bsdf

import (
	"math"

	"github.com/arcflux/pathtracer/pkg/core"
)

// frDielectric evaluates the unpolarized Fresnel reflectance for a
// dielectric interface, cosThetaI measured against the normal on the
// incident side, etaI/etaT the indices of refraction on either side.
// Returns the mean of the parallel and perpendicular polarizations.
func frDielectric(cosThetaI, etaI, etaT float64) float64 {
	cosThetaI = clamp(cosThetaI, -1, 1)

	if cosThetaI < 0 {
		etaI, etaT = etaT, etaI
		cosThetaI = -cosThetaI
	}

	sinThetaI := math.Sqrt(math.Max(0, 1-cosThetaI*cosThetaI))
	sinThetaT := etaI / etaT * sinThetaI
	if sinThetaT >= 1 {
		return 1.0 // total internal reflection
	}
	cosThetaT := math.Sqrt(math.Max(0, 1-sinThetaT*sinThetaT))

	rParallel := (etaT*cosThetaI - etaI*cosThetaT) / (etaT*cosThetaI + etaI*cosThetaT)
	rPerp := (etaI*cosThetaI - etaT*cosThetaT) / (etaI*cosThetaI + etaT*cosThetaT)
	return (rParallel*rParallel + rPerp*rPerp) / 2
}

// frConductor evaluates the Fresnel reflectance of a conductor per
// channel from its complex index of refraction (eta, k).
func frConductor(cosThetaI float64, eta, k core.Spectrum) core.Spectrum {
	cosThetaI = clamp(cosThetaI, 0, 1)
	return core.NewSpectrum(
		frConductorChannel(cosThetaI, eta.R, k.R),
		frConductorChannel(cosThetaI, eta.G, k.G),
		frConductorChannel(cosThetaI, eta.B, k.B),
	)
}

func frConductorChannel(cosThetaI, eta, k float64) float64 {
	cos2 := cosThetaI * cosThetaI
	sin2 := 1 - cos2
	eta2 := eta * eta
	k2 := k * k

	t0 := eta2 - k2 - sin2
	a2plusb2 := math.Sqrt(math.Max(0, t0*t0+4*eta2*k2))
	t1 := a2plusb2 + cos2
	a := math.Sqrt(math.Max(0, 0.5*(a2plusb2+t0)))
	t2 := 2 * a * cosThetaI
	rs := (t1 - t2) / (t1 + t2)

	t3 := cos2*a2plusb2 + sin2*sin2
	t4 := t2 * sin2
	rp := rs * (t3 - t4) / (t3 + t4)

	return 0.5 * (rp + rs)
}

// schlickR0 returns the normal-incidence reflectance used by Schlick's
// approximation.
func schlickR0(etaI, etaT float64) float64 {
	r0 := (etaI - etaT) / (etaI + etaT)
	return r0 * r0
}

// schlickFresnel is the Schlick approximation to frDielectric.
func schlickFresnel(cosTheta, etaI, etaT float64) float64 {
	r0 := schlickR0(etaI, etaT)
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
