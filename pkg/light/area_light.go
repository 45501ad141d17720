package light

import (
	"math"

	"github.com/arcflux/pathtracer/pkg/core"
	"github.com/arcflux/pathtracer/pkg/shape"
)

// AreaLight embeds a shape and emits a constant Lambertian radiance from
// its surface: the light IS-A shape rather than HAS-A shape, generalized
// over any shape.Shape so the same type serves both sphere and
// triangle-mesh emitters.
type AreaLight struct {
	shape.Shape
	Radiance core.Spectrum
	TwoSided bool
}

// NewAreaLight wraps a shape as a light emitting radiance from one side
// of its surface (or both, if twoSided).
func NewAreaLight(s shape.Shape, radiance core.Spectrum, twoSided bool) *AreaLight {
	return &AreaLight{Shape: s, Radiance: radiance, TwoSided: twoSided}
}

// EmittedRadiance satisfies shape.AreaLightRef: when the integrator's
// path ray hits this light's shape directly (not through Sample), it
// reads emission back through the Interaction's Light backlink rather
// than looking the light up a second time.
func (a *AreaLight) EmittedRadiance() core.Spectrum {
	return a.Radiance
}

// Sample draws a point on the light's shape and converts its area-measure
// pdf to the solid-angle measure the integrator's NEE needs.
func (a *AreaLight) Sample(point core.Vec3, u core.Vec2) (core.Vec3, float64, core.Spectrum, float64, bool) {
	lightPoint, normal, pdfArea := a.Shape.Sample(u)

	toLight := lightPoint.Subtract(point)
	distSq := toLight.LengthSquared()
	if distSq == 0 {
		return core.Vec3{}, 0, core.Spectrum{}, 0, false
	}
	distance := math.Sqrt(distSq)
	wi := toLight.Multiply(1.0 / distance)

	cosLight := normal.Dot(wi.Negate())
	if cosLight <= 0 {
		if !a.TwoSided {
			return core.Vec3{}, 0, core.Spectrum{}, 0, false
		}
		cosLight = -cosLight
	}

	pdf := pdfArea * distSq / cosLight
	if pdf <= 0 || math.IsInf(pdf, 1) {
		return core.Vec3{}, 0, core.Spectrum{}, 0, false
	}

	return wi, distance, a.Radiance, pdf, true
}

// Power approximates total emitted power as a Lambertian emitter's
// radiance integrated over its area and the hemisphere, L*A*pi (doubled
// if two-sided).
func (a *AreaLight) Power() core.Spectrum {
	p := a.Radiance.Scale(a.Shape.Area() * math.Pi)
	if a.TwoSided {
		p = p.Scale(2)
	}
	return p
}

// IsDelta is always false: an area light has area to hit directly.
func (a *AreaLight) IsDelta() bool { return false }
