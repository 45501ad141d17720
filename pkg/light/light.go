// Package light implements the scene's emitters: a delta point light and
// a shape-embedding area light, sharing one sample/power/delta contract
// the integrator's next-event estimation draws against.
package light

import "github.com/arcflux/pathtracer/pkg/core"

// Light is the common contract every emitter implements.
type Light interface {
	// Sample draws a direction from point toward the light, returning the
	// incident radiance along that direction, the distance to the
	// sampled point, and the pdf with respect to solid angle at point.
	// ok is false when the light contributes nothing from this point
	// (e.g. a one-sided area light sampled from behind).
	Sample(point core.Vec3, u core.Vec2) (wi core.Vec3, distance float64, li core.Spectrum, pdf float64, ok bool)

	// Power returns the light's total emitted power. The integrator's
	// light selection is uniform and does not read it (see
	// pkg/integrator).
	Power() core.Spectrum

	// IsDelta reports whether the light occupies a single point (no
	// area to hit with a scattered ray, so it can only contribute
	// through Sample, never be hit directly).
	IsDelta() bool
}
