// Package integrator implements the path-tracing estimator that turns a
// camera ray into a radiance sample: hit the scene, add any emission,
// sample a light for direct lighting, sample the BSDF for the next
// bounce, Russian-roulette terminate on throughput. An explicit loop
// over bounces rather than recursion, with next-event estimation's
// light selection left uniform (no MIS power-heuristic combining, since
// there is no bidirectional subpath to blend with).
package integrator

import (
	"math"

	"github.com/arcflux/pathtracer/pkg/core"
	"github.com/arcflux/pathtracer/pkg/light"
	"github.com/arcflux/pathtracer/pkg/scene"
	"github.com/arcflux/pathtracer/pkg/shape"
)

// rayEpsilon offsets spawned rays off the hit surface to avoid immediate
// self-intersection, and shortens shadow rays just short of the light
// sample's distance to avoid self-occlusion at the light.
const rayEpsilon = 1e-4

// PathTracer estimates radiance along camera rays via unidirectional
// Monte Carlo path tracing with next-event estimation.
type PathTracer struct {
	Scene    *scene.Scene
	MaxDepth int

	// RRMinBounces delays Russian-roulette termination until this many
	// bounces have happened, zero meaning the clamped throughput test in
	// clampRoulette runs from the first bounce (plain unconditional
	// Russian roulette). Set above zero for a min-bounce-gated variant,
	// exposed as the CLI's -rr-min-bounces flag.
	RRMinBounces int
}

// New creates a path tracer bound to a preprocessed scene.
func New(s *scene.Scene, maxDepth int) *PathTracer {
	return &PathTracer{Scene: s, MaxDepth: maxDepth}
}

// Li estimates the radiance arriving along ray via the bounce loop:
// intersect, credit direct hits on lights, next-event-estimate direct
// lighting, Russian-roulette, sample the BSDF, repeat.
func (pt *PathTracer) Li(ray core.Ray, rng *core.RNG) core.Spectrum {
	var L core.Spectrum
	beta := core.NewSpectrum(1, 1, 1)
	evaluateDirectLightHit := true

	for bounce := 0; bounce < pt.MaxDepth; bounce++ {
		hit, ok := pt.Scene.Intersect(ray)
		if !ok {
			break
		}

		if evaluateDirectLightHit && hit.Light != nil {
			L = L.Add(beta.Mul(hit.Light.EmittedRadiance()))
		}

		if hit.BSDF == nil {
			break
		}

		frame := core.NewFrame(hit.Normal)
		wo := frame.ToLocal(ray.Direction.Negate())

		L = L.Add(beta.Mul(pt.sampleDirectLighting(hit, frame, wo, rng)))

		if bounce >= pt.RRMinBounces {
			q := clampRoulette(beta.Y())
			if rng.Get1D() >= q {
				break
			}
			beta = beta.Scale(1.0 / q)
		}

		wiLocal, pdf, f, sampled := hit.BSDF.Sample(wo, rng.Get2D())
		if !sampled || pdf <= 0 {
			break
		}
		if f.IsBlack() {
			break
		}

		wiWorld := frame.ToWorld(wiLocal)
		cosWi := math.Abs(hit.Normal.Dot(wiWorld))
		beta = beta.Mul(f.Scale(cosWi / pdf))
		if beta.IsBlack() {
			break
		}

		evaluateDirectLightHit = hit.BSDF.IsDelta()

		ray = core.NewRay(offsetPoint(hit.Point, wiWorld), wiWorld)
	}

	return L
}

// sampleDirectLighting implements next-event estimation: pick one light
// uniformly from the scene's K lights, sample it, and trace a shadow ray
// to check visibility before crediting its contribution.
func (pt *PathTracer) sampleDirectLighting(hit *shape.Interaction, frame core.Frame, wo core.Vec3, rng *core.RNG) core.Spectrum {
	lights := pt.Scene.Lights
	k := len(lights)
	if k == 0 {
		return core.Spectrum{}
	}

	chosen := lights[rng.Intn(k)]
	return pt.evaluateLightSample(hit, frame, wo, chosen, rng).Scale(float64(k))
}

// evaluateLightSample samples l from the hit point, checks occlusion, and
// returns f(wo,wi) * Le * |cos(theta)| / pdf for that single light
// (undivided by the number of lights; the caller applies the 1/K -> *K
// uniform-selection correction).
func (pt *PathTracer) evaluateLightSample(hit *shape.Interaction, frame core.Frame, wo core.Vec3, l light.Light, rng *core.RNG) core.Spectrum {
	wiWorld, distance, le, pdf, ok := l.Sample(hit.Point, rng.Get2D())
	if !ok || pdf <= 0 || le.IsBlack() {
		return core.Spectrum{}
	}

	wiLocal := frame.ToLocal(wiWorld)
	f := hit.BSDF.F(wo, wiLocal)
	if f.IsBlack() {
		return core.Spectrum{}
	}

	shadowRay := core.NewRayWithInterval(offsetPoint(hit.Point, wiWorld), wiWorld, rayEpsilon, distance-rayEpsilon)
	if pt.Scene.IntersectShadow(shadowRay) {
		return core.Spectrum{}
	}

	cosTheta := math.Abs(wiLocal.Z)
	return f.Mul(le).Scale(cosTheta / pdf)
}

// clampRoulette bounds a throughput-luminance survival probability to
// (0, 1], so a throughput of exactly zero or greater than one never
// produces a degenerate continuation probability.
func clampRoulette(luminance float64) float64 {
	if luminance <= 0 {
		return 1e-6
	}
	if luminance > 1 {
		return 1
	}
	return luminance
}

// offsetPoint nudges a spawned ray's origin along wi by rayEpsilon to
// avoid immediately re-intersecting the surface it left.
func offsetPoint(p, wi core.Vec3) core.Vec3 {
	return p.Add(wi.Multiply(rayEpsilon))
}
