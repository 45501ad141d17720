package bsdf

import (
	"math"

	"github.com/arcflux/pathtracer/pkg/core"
)

// maxBlinnExponent caps the Blinn microfacet sharpness so near-specular
// configurations stay numerically stable rather than degenerating into an
// actual delta function.
const maxBlinnExponent = 10000.0

// TorranceSparrowConductor is a rough-conductor microfacet BSDF using a
// Blinn-Phong normal distribution D(wh) = (alpha+2)/(2*pi) * |cos(thetaH)|^alpha,
// the Torrance-Sparrow V-cavity geometric masking G, and the conductor Fresnel term from
// frConductor, built directly from the classic Torrance-Sparrow
// distribution and masking formulas.
type TorranceSparrowConductor struct {
	Eta   core.Spectrum
	K     core.Spectrum
	Alpha float64 // Blinn exponent; higher is smoother
}

// NewTorranceSparrowConductor creates a rough-conductor BSDF. Alpha is
// clamped to a finite maximum to avoid treating this as a delta BSDF.
func NewTorranceSparrowConductor(eta, k core.Spectrum, alpha float64) *TorranceSparrowConductor {
	if alpha > maxBlinnExponent {
		alpha = maxBlinnExponent
	}
	if alpha < 0 {
		alpha = 0
	}
	return &TorranceSparrowConductor{Eta: eta, K: k, Alpha: alpha}
}

// IsDelta is always false: this is a rough (non-delta) microfacet lobe.
func (c *TorranceSparrowConductor) IsDelta() bool { return false }

// blinnD evaluates the Blinn-Phong microfacet normal distribution at the
// local half vector wh.
func (c *TorranceSparrowConductor) blinnD(wh core.Vec3) float64 {
	cosThetaH := absCosTheta(wh)
	if cosThetaH <= 0 {
		return 0
	}
	return (c.Alpha + 2) / (2 * math.Pi) * math.Pow(cosThetaH, c.Alpha)
}

// smithG evaluates the Torrance-Sparrow geometric masking-shadowing term.
func smithG(wo, wi, wh core.Vec3) float64 {
	woDotWh := math.Abs(wo.Dot(wh))
	if woDotWh <= 0 {
		return 0
	}
	cosThetaH := absCosTheta(wh)
	g := 2 * cosThetaH * absCosTheta(wo) / woDotWh
	g = math.Min(g, 2*cosThetaH*absCosTheta(wi)/woDotWh)
	return math.Min(1.0, g)
}

// F evaluates the microfacet BRDF for wo and wi on the same hemisphere.
func (c *TorranceSparrowConductor) F(wo, wi core.Vec3) core.Spectrum {
	cosThetaO := absCosTheta(wo)
	cosThetaI := absCosTheta(wi)
	if !sameHemisphere(wo, wi) || cosThetaO < cosEpsilon || cosThetaI < cosEpsilon {
		return core.Spectrum{}
	}

	wh := wo.Add(wi)
	if wh.LengthSquared() == 0 {
		return core.Spectrum{}
	}
	wh = wh.Normalize()

	d := c.blinnD(wh)
	g := smithG(wo, wi, wh)
	fr := frConductor(math.Abs(wo.Dot(wh)), c.Eta, c.K)

	return fr.Scale(d * g / (4 * cosThetaO * cosThetaI))
}

// Sample draws a half vector from the Blinn distribution and reflects wo
// about it to produce wi.
func (c *TorranceSparrowConductor) Sample(wo core.Vec3, u core.Vec2) (core.Vec3, float64, core.Spectrum, bool) {
	if absCosTheta(wo) < cosEpsilon {
		return core.Vec3{}, 0, core.Spectrum{}, false
	}

	cosThetaH := math.Pow(u.X, 1.0/(c.Alpha+2))
	sinThetaH := math.Sqrt(math.Max(0, 1-cosThetaH*cosThetaH))
	phiH := 2 * math.Pi * u.Y

	wh := core.NewVec3(sinThetaH*math.Cos(phiH), sinThetaH*math.Sin(phiH), cosThetaH)
	if wo.Z < 0 {
		wh.Z = -wh.Z
	}

	woDotWh := wo.Dot(wh)
	if woDotWh <= 0 {
		return core.Vec3{}, 0, core.Spectrum{}, false
	}

	wi := wh.Multiply(2 * woDotWh).Subtract(wo)
	if !sameHemisphere(wo, wi) {
		return core.Vec3{}, 0, core.Spectrum{}, false
	}

	pdfH := c.blinnD(wh) * absCosTheta(wh)
	pdf := pdfH / (4 * woDotWh)
	if pdf <= 0 {
		return core.Vec3{}, 0, core.Spectrum{}, false
	}

	return wi, pdf, c.F(wo, wi), true
}
