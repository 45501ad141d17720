package light

import (
	"math"

	"github.com/arcflux/pathtracer/pkg/core"
)

// PointLight is an idealized isotropic point source: a single position,
// 1/distance^2 falloff, a delta pdf. No spot-cone restriction; directional
// falloff is left to AreaLight's shape-bound emission instead.
type PointLight struct {
	Position  core.Vec3
	Intensity core.Spectrum // radiant intensity, watts/sr
}

// NewPointLight creates an isotropic point light.
func NewPointLight(position core.Vec3, intensity core.Spectrum) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// Sample always succeeds: a point light illuminates every point in space.
func (p *PointLight) Sample(point core.Vec3, u core.Vec2) (core.Vec3, float64, core.Spectrum, float64, bool) {
	toLight := p.Position.Subtract(point)
	distance := toLight.Length()
	if distance == 0 {
		return core.Vec3{}, 0, core.Spectrum{}, 0, false
	}
	wi := toLight.Multiply(1.0 / distance)
	li := p.Intensity.Scale(1.0 / (distance * distance))
	return wi, distance, li, 1.0, true
}

// Power returns the intensity integrated over the full sphere of
// directions, 4*pi*I.
func (p *PointLight) Power() core.Spectrum {
	return p.Intensity.Scale(4 * math.Pi)
}

// IsDelta is always true for a point light.
func (p *PointLight) IsDelta() bool { return true }
