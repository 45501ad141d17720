// Package bsdf implements the shading model family: a common
// sample/evaluate/pdf contract shared by six material kinds (Lambertian,
// perfect mirror, perfect refractor, Fresnel conductor, Fresnel
// dielectric, and Torrance-Sparrow conductor).
//
// All directions are in the local shading frame built from the surface
// normal: +Z is the normal, cos(theta) of a direction w is w.Z.
package bsdf

import "github.com/arcflux/pathtracer/pkg/core"

// cosEpsilon guards divisions by a near-zero cosine at glancing angles.
// Below this a BSDF treats the direction as black rather than dividing by
// (near) zero.
const cosEpsilon = 1e-4

// BSDF is the common contract every shading model implements.
type BSDF interface {
	// F evaluates the scattering density for the given outgoing/incoming
	// local directions. Delta BSDFs always return black from F — their
	// contribution can only be reached through Sample.
	F(wo, wi core.Vec3) core.Spectrum

	// Sample draws an incoming direction wi for the given outgoing
	// direction wo. It returns the sampled direction, its pdf, and the
	// raw scattering value f(wo,wi) — the same value F would return for a
	// non-delta BSDF, or the delta lobe's coefficient for one that isn't.
	// Neither the |cos(wi)| factor nor the division by pdf is applied
	// here; the caller applies both. ok is false when the sample is
	// degenerate (e.g. glancing incidence, zero pdf) and must be treated
	// as black with no division. The dielectrics handle total internal
	// reflection by reflecting, with ok=true.
	Sample(wo core.Vec3, u core.Vec2) (wi core.Vec3, pdf float64, f core.Spectrum, ok bool)

	// IsDelta reports whether this BSDF's distribution is a Dirac delta
	// (perfect mirror/refractor, Fresnel conductor/dielectric). Delta
	// BSDFs can only be sampled, never evaluated pointwise by F.
	IsDelta() bool
}

// absCosTheta returns |w.Z|, the cosine of w against the local normal.
func absCosTheta(w core.Vec3) float64 {
	if w.Z < 0 {
		return -w.Z
	}
	return w.Z
}

// sameHemisphere reports whether two local directions lie on the same
// side of the shading plane.
func sameHemisphere(a, b core.Vec3) bool {
	return a.Z*b.Z > 0
}

// reflectLocal mirrors a local direction about the local normal: the
// perfect-specular reflection rule, (-wo.X, -wo.Y, wo.Z).
func reflectLocal(wo core.Vec3) core.Vec3 {
	return core.NewVec3(-wo.X, -wo.Y, wo.Z)
}
