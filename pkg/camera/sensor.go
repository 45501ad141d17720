package camera

import "github.com/arcflux/pathtracer/pkg/core"

// PixelStats tracks the accumulated samples for a single pixel: what a
// single-pass (non-adaptive) renderer needs is a running color
// accumulator and the sample count dividing it, without any
// luminance/luminance-squared variance tracking for adaptive
// convergence.
type PixelStats struct {
	ColorAccum  core.Spectrum
	SampleCount int
}

// AddSample folds one more radiance estimate into the pixel's running
// average.
func (ps *PixelStats) AddSample(color core.Spectrum) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// Color returns the pixel's current average radiance.
func (ps *PixelStats) Color() core.Spectrum {
	if ps.SampleCount == 0 {
		return core.Spectrum{}
	}
	return ps.ColorAccum.Scale(1.0 / float64(ps.SampleCount))
}

// Sensor is the per-pixel accumulator a camera owns, scoped to the image
// buffer itself rather than a separate stats report (cmd/pathtracer's
// stats table is built from renderer.TileStats, not from Sensor).
type Sensor struct {
	Width, Height int
	pixels        []PixelStats
}

// NewSensor allocates a zeroed sensor for an image of the given size.
func NewSensor(width, height int) *Sensor {
	return &Sensor{Width: width, Height: height, pixels: make([]PixelStats, width*height)}
}

// AddSample records one radiance sample at pixel (x, y).
func (s *Sensor) AddSample(x, y int, color core.Spectrum) {
	s.pixels[y*s.Width+x].AddSample(color)
}

// Color returns the current average radiance at pixel (x, y).
func (s *Sensor) Color(x, y int) core.Spectrum {
	return s.pixels[y*s.Width+x].Color()
}

// TotalSamples sums the sample count across every pixel, for the
// renderer's closing stats report.
func (s *Sensor) TotalSamples() int {
	total := 0
	for i := range s.pixels {
		total += s.pixels[i].SampleCount
	}
	return total
}
